package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// Speech-to-Text Service HTTP Client
// ============================================================================

// Transcriber talks to the external speech recognition service.
type Transcriber struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// NewTranscriber creates a new speech recognition client
func NewTranscriber(baseURL string, apiKey string) *Transcriber {
	return &Transcriber{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// TranscribeResponse is the recognition reply for a full waveform.
type TranscribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Transcribe uploads a WAV file and returns the recognized text.
// POST /transcribe
func (t *Transcriber) Transcribe(ctx context.Context, wavPath string, locale string) (string, error) {
	url := fmt.Sprintf("%s/transcribe", t.BaseURL)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	fd, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to open waveform: %w", err)
	}
	defer fd.Close()
	if _, err = io.Copy(part, fd); err != nil {
		return "", fmt.Errorf("failed to write waveform data: %w", err)
	}
	if err = writer.WriteField("language", locale); err != nil {
		return "", fmt.Errorf("failed to write language field: %w", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if t.APIKey != "" {
		req.Header.Set("x-api-key", t.APIKey)
	}

	logrus.Tracef("Transcribe: POST %s (%s, locale=%s)", url, filepath.Base(wavPath), locale)
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var out TranscribeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return out.Text, nil
}
