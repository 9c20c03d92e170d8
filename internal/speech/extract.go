package speech

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ExtractAudio pulls the audio track out of a video into a temporary 16-bit
// PCM mono WAV file and returns its path. The caller is responsible for
// removing the file.
func ExtractAudio(ctx context.Context, videoPath string, sampleRate int) (string, error) {
	tmp, err := os.CreateTemp("", "moodlens-audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp waveform: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", "1",
		wavPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logrus.Debugf("extracting audio: %s -> %s", videoPath, wavPath)
	if err := cmd.Run(); err != nil {
		os.Remove(wavPath)
		return "", fmt.Errorf("ffmpeg failed: %w: %s", err, stderr.String())
	}
	return wavPath, nil
}
