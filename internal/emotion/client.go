package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// Emotion Scoring Service HTTP Client
// ============================================================================

// Scorer talks to the external emotion scoring service.
type Scorer struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// NewScorer creates a new emotion service client
func NewScorer(baseURL string, apiKey string) *Scorer {
	return &Scorer{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ScoreRequest carries a normalized face image as a flat pixel array,
// row-major, BGR interleaved, values in [0,1]. The scoring model was
// trained on BGR frames, so crops are sent in frame channel order.
type ScoreRequest struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Pixels []float32 `json:"pixels"`
}

// ScoreResponse is the service reply: a single probability scalar.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// Score runs the emotion model on a normalized face image.
// POST /score
func (s *Scorer) Score(ctx context.Context, req ScoreRequest) (float64, error) {
	url := fmt.Sprintf("%s/score", s.BaseURL)

	payload, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		httpReq.Header.Set("x-api-key", s.APIKey)
	}

	logrus.Tracef("Score: POST %s (%dx%d)", url, req.Width, req.Height)
	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var out ScoreResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	if out.Score < 0 || out.Score > 1 {
		return 0, fmt.Errorf("score %g outside [0,1]", out.Score)
	}
	return out.Score, nil
}
