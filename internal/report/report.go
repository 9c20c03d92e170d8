// Package report defines the analysis result structure shared by all
// pipeline variants, its text rendering, and JSON persistence.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one detected-and-processed face occurrence.
type Entry struct {
	Frame    int    `json:"frame"`
	Identity string `json:"identity"`
	Emotion  string `json:"emotion"`
}

// Report is the terminal artifact of one pipeline run.
type Report struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalFrames  int                `json:"total_frames"`
	PresenceTime map[string]float64 `json:"presence_time"`
	EmotionTime  map[string]float64 `json:"emotion_time"`
	Details      []Entry            `json:"details"`

	// Combined (speaker) variant only
	FirstEmotion     map[string]string `json:"first_emotion,omitempty"`
	AppearanceCounts map[string]int    `json:"appearance_counts,omitempty"`
	FPS              float64           `json:"fps,omitempty"`
	Transcript       string            `json:"transcript,omitempty"`
	SpeechMinutes    float64           `json:"speech_minutes,omitempty"`
}

// New creates an empty report for one source.
func New(source string) *Report {
	return &Report{
		RunID:        uuid.NewString(),
		Source:       source,
		GeneratedAt:  time.Now(),
		PresenceTime: map[string]float64{},
		EmotionTime:  map[string]float64{},
	}
}

// Summary renders the per-identity and per-emotion totals as a short text
// block.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Toplam Kare: %d\n", r.TotalFrames)
	b.WriteString("Kişi Bazında Toplam Süre (sn):\n")
	for _, name := range sortedKeys(r.PresenceTime) {
		fmt.Fprintf(&b, "- %s: %.2f\n", name, r.PresenceTime[name])
	}
	b.WriteString("Duygu Bazında Toplam Süre (sn):\n")
	for _, label := range sortedKeys(r.EmotionTime) {
		fmt.Fprintf(&b, "- %s: %.2f\n", label, r.EmotionTime[label])
	}
	return b.String()
}

// RenderCombined renders the speaker/transcript/emotion report as text.
func (r *Report) RenderCombined() string {
	lines := []string{"Görüntüde Tanınan Kişiler ve Duyguları:"}
	for _, name := range sortedKeys(r.FirstEmotion) {
		lines = append(lines, fmt.Sprintf("- %s: %s", name, r.FirstEmotion[name]))
	}

	lines = append(lines, "", "Kişilerin Görünme Süresi:")
	for _, name := range sortedKeys(r.PresenceTime) {
		lines = append(lines, fmt.Sprintf("- %s: %.2f saniye (%d kare)",
			name, r.PresenceTime[name], r.AppearanceCounts[name]))
	}

	lines = append(lines, "", "Konuşma Metni:", r.Transcript)
	lines = append(lines, "", fmt.Sprintf("Toplam Konuşma Süresi (dakika): %.2f", r.SpeechMinutes))
	return strings.Join(lines, "\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
