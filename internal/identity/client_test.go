package identity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/identity"
)

func TestEmbed(t *testing.T) {
	imageBytes := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/embed", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "face.jpg", header.Filename)
		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, imageBytes, uploaded)

		json.NewEncoder(w).Encode(identity.EmbedResponse{Embedding: []float64{0.1, 0.2, 0.3}})
	}))
	defer server.Close()

	embedder := identity.NewEmbedder(server.URL, "test-key")
	embedding, err := embedder.Embed(context.Background(), imageBytes, "face.jpg")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, embedding)
}

func TestEmbedErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no face found", http.StatusBadRequest)
		}))
		defer server.Close()

		embedder := identity.NewEmbedder(server.URL, "")
		_, err := embedder.Embed(context.Background(), []byte{1}, "face.jpg")
		assert.ErrorContains(t, err, "API error 400")
	})

	t.Run("empty embedding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(identity.EmbedResponse{})
		}))
		defer server.Close()

		embedder := identity.NewEmbedder(server.URL, "")
		_, err := embedder.Embed(context.Background(), []byte{1}, "face.jpg")
		assert.ErrorContains(t, err, "empty vector")
	})

	t.Run("unreachable service", func(t *testing.T) {
		embedder := identity.NewEmbedder("http://127.0.0.1:1", "")
		_, err := embedder.Embed(context.Background(), []byte{1}, "face.jpg")
		assert.Error(t, err)
	})
}
