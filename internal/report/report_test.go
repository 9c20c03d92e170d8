package report_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/report"
)

func TestNew(t *testing.T) {
	r := report.New("video.mp4")
	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, "video.mp4", r.Source)
	assert.NotNil(t, r.PresenceTime)
	assert.NotNil(t, r.EmotionTime)
}

func TestSummary(t *testing.T) {
	r := report.New("video.mp4")
	r.TotalFrames = 150
	r.PresenceTime = map[string]float64{"Ayşe": 5.0, "Bilinmiyor": 1.5}
	r.EmotionTime = map[string]float64{"Happy": 5.0}

	out := r.Summary()
	assert.Contains(t, out, "Toplam Kare: 150")
	assert.Contains(t, out, "- Ayşe: 5.00")
	assert.Contains(t, out, "- Bilinmiyor: 1.50")
	assert.Contains(t, out, "- Happy: 5.00")
}

func TestRenderCombined(t *testing.T) {
	r := report.New("video.mp4")
	r.FirstEmotion = map[string]string{"Ayşe": "Happy"}
	r.PresenceTime = map[string]float64{"Ayşe": 4.27}
	r.AppearanceCounts = map[string]int{"Ayşe": 128}
	r.Transcript = "merhaba"
	r.SpeechMinutes = 1.25

	out := r.RenderCombined()
	assert.Contains(t, out, "Görüntüde Tanınan Kişiler ve Duyguları:")
	assert.Contains(t, out, "- Ayşe: Happy")
	assert.Contains(t, out, "- Ayşe: 4.27 saniye (128 kare)")
	assert.Contains(t, out, "Konuşma Metni:\nmerhaba")
	assert.Contains(t, out, "Toplam Konuşma Süresi (dakika): 1.25")
}

func TestPersist(t *testing.T) {
	r := report.New("video.mp4")
	r.TotalFrames = 10
	r.PresenceTime["Ayşe"] = 2.0

	path, err := report.Persist(t.TempDir(), r)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded report.Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, r.RunID, loaded.RunID)
	assert.Equal(t, 10, loaded.TotalFrames)
	assert.Equal(t, 2.0, loaded.PresenceTime["Ayşe"])
}
