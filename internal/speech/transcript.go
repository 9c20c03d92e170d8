// Package speech is the transcript pipeline: it extracts a video's audio
// track, transcribes it through an external speech-to-text service, and
// reports the waveform's duration. It runs strictly after the frame loop.
package speech

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel texts substituted on non-fatal failures, matching the report's
// locale.
const (
	SentinelUnintelligible = "[Konuşma anlaşılamadı]"
	sentinelNoAudio        = "[Ses ayrıştırılamadı]"
)

// Transcript is the transcript pipeline result.
type Transcript struct {
	Text    string
	Minutes float64
}

// Pipeline extracts, transcribes and measures a video's audio track.
type Pipeline struct {
	client     *Transcriber
	locale     string
	sampleRate int

	// injectable for tests
	extract func(ctx context.Context, videoPath string, sampleRate int) (string, error)
}

// NewPipeline builds a transcript pipeline for one configured locale.
func NewPipeline(client *Transcriber, locale string, sampleRate int) *Pipeline {
	return &Pipeline{
		client:     client,
		locale:     locale,
		sampleRate: sampleRate,
		extract:    ExtractAudio,
	}
}

// Run produces (transcript text, duration in minutes) for the video.
// Transcription failure is never fatal: recognition failures and service
// errors are substituted with sentinel text. The intermediate waveform file
// is deleted unconditionally before returning.
func (p *Pipeline) Run(ctx context.Context, videoPath string) Transcript {
	wavPath, err := p.extract(ctx, videoPath, p.sampleRate)
	if err != nil {
		logrus.Warnf("audio extraction failed: %v", err)
		return Transcript{Text: sentinelNoAudio}
	}
	defer os.Remove(wavPath)

	var text string
	switch recognized, err := p.client.Transcribe(ctx, wavPath, p.locale); {
	case err != nil:
		logrus.Warnf("speech recognition failed: %v", err)
		text = fmt.Sprintf("[ASR hatası: %v]", err)
	case strings.TrimSpace(recognized) == "":
		text = SentinelUnintelligible
	default:
		text = recognized
	}

	// Duration comes from the waveform's own metadata, not the video
	minutes := 0.0
	if dur, err := WavDuration(wavPath); err != nil {
		logrus.Warnf("failed to read waveform duration: %v", err)
	} else {
		minutes = math.Round(dur.Minutes()*100) / 100
	}

	return Transcript{Text: text, Minutes: minutes}
}
