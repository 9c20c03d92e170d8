package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// Embedding Service HTTP Client
// ============================================================================

// Embedder talks to the external face embedding service.
type Embedder struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// NewEmbedder creates a new embedding service client
func NewEmbedder(baseURL string, apiKey string) *Embedder {
	return &Embedder{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// EmbedResponse is the embedding service reply
type EmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed produces a fixed-length embedding vector for a cropped face image.
// POST /embed
func (e *Embedder) Embed(ctx context.Context, imageBytes []byte, filename string) ([]float64, error) {
	url := fmt.Sprintf("%s/embed", e.BaseURL)

	// Create multipart form
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = part.Write(imageBytes); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if e.APIKey != "" {
		req.Header.Set("x-api-key", e.APIKey)
	}

	logrus.Tracef("Embed: POST %s (%d bytes)", url, len(imageBytes))
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var out EmbedResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("embedding service returned empty vector")
	}

	logrus.Debugf("Embed: got %d-dimensional vector", len(out.Embedding))
	return out.Embedding, nil
}
