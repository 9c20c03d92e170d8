// Package identity maps cropped face regions to person labels by embedding
// the crop through an external service and classifying the vector with a
// nearest-neighbour model loaded once per pipeline invocation.
package identity

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/moodlens/moodlens/pkg/faceutil"
)

// Unknown is the sentinel identity substituted when classification fails.
const Unknown = "Bilinmiyor"

// Classifier is the identity classifier adapter: crop → embed → nearest label.
type Classifier struct {
	embedder *Embedder
	model    *Model
}

// NewClassifier wires an embedding client to a loaded nearest-neighbour model.
func NewClassifier(embedder *Embedder, model *Model) *Classifier {
	return &Classifier{embedder: embedder, model: model}
}

// Classify returns the identity label for the face at box within frame.
// Any failure is returned to the caller; the pipeline substitutes Unknown
// and keeps going.
func (c *Classifier) Classify(ctx context.Context, frame gocv.Mat, box image.Rectangle) (string, error) {
	box = faceutil.Clamp(box, frame.Cols(), frame.Rows())
	if box.Empty() {
		return "", fmt.Errorf("face box outside frame bounds")
	}

	crop := frame.Region(box)
	defer crop.Close()

	// The embedding model expects RGB input
	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(crop, &rgb, gocv.ColorBGRToRGB)

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, rgb)
	if err != nil {
		return "", fmt.Errorf("failed to encode face crop: %w", err)
	}
	defer buf.Close()

	embedding, err := c.embedder.Embed(ctx, buf.GetBytes(), "face.jpg")
	if err != nil {
		return "", fmt.Errorf("embedding failed: %w", err)
	}

	label, err := c.model.Nearest(embedding)
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}
	return label, nil
}
