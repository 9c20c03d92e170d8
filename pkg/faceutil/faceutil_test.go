package faceutil_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodlens/moodlens/pkg/faceutil"
)

func TestDimensions(t *testing.T) {
	w, h := faceutil.Dimensions(image.Rect(10, 20, 110, 170))
	assert.Equal(t, 100, w)
	assert.Equal(t, 150, h)
}

func TestMeetsMinSize(t *testing.T) {
	tests := []struct {
		name    string
		box     image.Rectangle
		minSize int
		want    bool
	}{
		{"large enough", image.Rect(0, 0, 64, 64), 64, true},
		{"too narrow", image.Rect(0, 0, 63, 100), 64, false},
		{"too short", image.Rect(0, 0, 100, 63), 64, false},
		{"zero min accepts anything", image.Rect(0, 0, 1, 1), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, faceutil.MeetsMinSize(tt.box, tt.minSize))
		})
	}
}

func TestClamp(t *testing.T) {
	// box spilling past the right and bottom edges
	box := faceutil.Clamp(image.Rect(600, 400, 700, 500), 640, 480)
	assert.Equal(t, image.Rect(600, 400, 640, 480), box)

	// box fully inside is untouched
	inside := image.Rect(10, 10, 50, 50)
	assert.Equal(t, inside, faceutil.Clamp(inside, 640, 480))

	// box fully outside clamps to empty
	assert.True(t, faceutil.Clamp(image.Rect(700, 500, 800, 600), 640, 480).Empty())
}
