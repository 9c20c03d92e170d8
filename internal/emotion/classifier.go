package emotion

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/moodlens/moodlens/pkg/faceutil"
)

// Classifier is the emotion classifier adapter: crop → resize → normalize →
// score → threshold decision.
type Classifier struct {
	scorer    *Scorer
	inputSize int
}

// NewClassifier wires a scoring client to the model's fixed input size.
func NewClassifier(scorer *Scorer, inputSize int) *Classifier {
	return &Classifier{scorer: scorer, inputSize: inputSize}
}

// Classify returns the emotion for the face at box within frame. Failures
// are returned to the caller; the pipeline excludes them from emotion time
// but still counts the face's presence.
func (c *Classifier) Classify(ctx context.Context, frame gocv.Mat, box image.Rectangle) (Result, error) {
	box = faceutil.Clamp(box, frame.Cols(), frame.Rows())
	if box.Empty() {
		return Result{}, fmt.Errorf("face box outside frame bounds")
	}

	crop := frame.Region(box)
	defer crop.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(crop, &resized, image.Pt(c.inputSize, c.inputSize), 0, 0, gocv.InterpolationLinear)

	// Normalize pixel values to [0,1]
	normalized := gocv.NewMat()
	defer normalized.Close()
	resized.ConvertToWithParams(&normalized, gocv.MatTypeCV32FC3, 1.0/255.0, 0)

	view, err := normalized.DataPtrFloat32()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read normalized pixels: %w", err)
	}
	pixels := make([]float32, len(view))
	copy(pixels, view)

	p, err := c.scorer.Score(ctx, ScoreRequest{
		Width:  c.inputSize,
		Height: c.inputSize,
		Pixels: pixels,
	})
	if err != nil {
		return Result{}, fmt.Errorf("emotion scoring failed: %w", err)
	}
	return Decide(p), nil
}
