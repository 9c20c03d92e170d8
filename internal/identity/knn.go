package identity

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Model is a nearest-neighbour classifier over labelled face embeddings,
// stored as a single JSON file.
type Model struct {
	Version    int         `json:"version"`
	Labels     []string    `json:"labels"`
	Embeddings [][]float64 `json:"embeddings"`
}

// LoadModel reads a trained model from disk. A missing or corrupt model file
// is a setup-time failure.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knn model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse knn model %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid knn model %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the model to disk.
func (m *Model) Save(path string) error {
	if err := m.validate(); err != nil {
		return fmt.Errorf("refusing to save invalid model: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal knn model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write knn model: %w", err)
	}
	return nil
}

// Add appends one labelled embedding.
func (m *Model) Add(label string, embedding []float64) {
	m.Labels = append(m.Labels, label)
	m.Embeddings = append(m.Embeddings, embedding)
}

// Nearest returns the label of the training sample closest to the embedding
// in Euclidean distance. There is no distance threshold: the nearest label
// wins no matter how far away it is.
func (m *Model) Nearest(embedding []float64) (string, error) {
	if len(m.Labels) == 0 {
		return "", fmt.Errorf("knn model has no samples")
	}
	best := -1
	bestDist := 0.0
	for i, sample := range m.Embeddings {
		if len(sample) != len(embedding) {
			return "", fmt.Errorf("embedding dimension mismatch: model has %d, got %d", len(sample), len(embedding))
		}
		d := floats.Distance(sample, embedding, 2)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return m.Labels[best], nil
}

func (m *Model) validate() error {
	if len(m.Labels) != len(m.Embeddings) {
		return fmt.Errorf("%d labels but %d embeddings", len(m.Labels), len(m.Embeddings))
	}
	if len(m.Embeddings) == 0 {
		return fmt.Errorf("model is empty")
	}
	dim := len(m.Embeddings[0])
	for i, e := range m.Embeddings {
		if len(e) != dim {
			return fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(e), dim)
		}
	}
	return nil
}
