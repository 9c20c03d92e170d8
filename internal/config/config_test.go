package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moodlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
services:
  embedding:
    url: http://localhost:5100
  emotion:
    url: http://localhost:5200
  asr:
    url: http://localhost:5300
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Analysis.Stride)
	assert.Equal(t, 5.0, cfg.Analysis.LiveFPSLimit)
	assert.Equal(t, 1000, cfg.Analysis.MaxFrames)
	assert.Equal(t, 48, cfg.Analysis.EmotionInputSize)
	assert.Equal(t, "tr-TR", cfg.Audio.Locale)
	assert.Equal(t, 16000, cfg.Audio.SampleRate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5100", cfg.Services.Embedding.URL)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
analysis:
  stride: 10
  live_fps_limit: 2
audio:
  locale: en-US
services:
  embedding:
    url: http://127.0.0.1:9100
    api_key: secret
  emotion:
    url: http://localhost:5200
  asr:
    url: http://localhost:5300
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.Analysis.Stride)
	assert.Equal(t, 2.0, cfg.Analysis.LiveFPSLimit)
	assert.Equal(t, "en-US", cfg.Audio.Locale)
	assert.Equal(t, "http://127.0.0.1:9100", cfg.Services.Embedding.URL)
	assert.Equal(t, "secret", cfg.Services.Embedding.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("MOODLENS_SERVICES_EMBEDDING_URL", "http://127.0.0.1:9999")
	t.Setenv("MOODLENS_SERVICES_EMBEDDING_API_KEY", "env-secret")
	t.Setenv("MOODLENS_ANALYSIS_STRIDE", "7")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999", cfg.Services.Embedding.URL)
	assert.Equal(t, "env-secret", cfg.Services.Embedding.APIKey)
	assert.Equal(t, 7, cfg.Analysis.Stride)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
analysis:
  stride: 0
services:
  embedding:
    url: http://localhost:5100
  emotion:
    url: http://localhost:5200
  asr:
    url: http://localhost:5300
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
