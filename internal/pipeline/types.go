// Package pipeline implements the per-frame analysis core: face
// localization, identity and emotion classification, annotation, temporal
// aggregation and frame logging over one video source.
package pipeline

import (
	"context"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/moodlens/moodlens/internal/emotion"
)

// Frame is a single raster image with its 1-based arrival index. The Mat is
// owned by the Source and only valid until the next Read.
type Frame struct {
	Index int
	Mat   gocv.Mat
}

// Source yields frames in arrival order at a known frame rate.
type Source interface {
	// Read fills f with the next frame. It returns false at end of stream
	// or when the source becomes unreadable; both are normal termination.
	Read(f *Frame) bool
	FPS() float64
	Close() error
}

// Sink receives every frame, processed or not, in original arrival order.
type Sink interface {
	Write(f *Frame) error
	Close() error
}

// Localizer detects face boxes in a frame. It never errors; no faces means
// an empty slice.
type Localizer interface {
	Detect(frame gocv.Mat) []image.Rectangle
}

// IdentityClassifier maps a face region to a person label.
type IdentityClassifier interface {
	Classify(ctx context.Context, frame gocv.Mat, box image.Rectangle) (string, error)
}

// EmotionClassifier maps a face region to an emotion result.
type EmotionClassifier interface {
	Classify(ctx context.Context, frame gocv.Mat, box image.Rectangle) (emotion.Result, error)
}

// Annotator draws a face box and its labels onto the frame in place.
type Annotator interface {
	Annotate(frame *gocv.Mat, box image.Rectangle, name string, emotionText string)
}

// Display shows processed frames and carries the cooperative cancellation
// signal, polled once per iteration.
type Display interface {
	Show(f *Frame)
	Cancelled() bool
	Close() error
}

// Options selects the sampling, aggregation and output strategies for one
// run. Nil fields disable the corresponding output.
type Options struct {
	Sampler     Sampler
	Accumulator Accumulator
	Annotator   Annotator
	Sink        Sink
	Display     Display
	Log         *FrameLog

	// MaxProcessed caps the number of processed frames; zero means
	// unlimited.
	MaxProcessed int

	// TrackFirstEmotion records the first emotion seen per identity, for
	// the combined report.
	TrackFirstEmotion bool

	// Now overrides the wall clock, for tests. Defaults to time.Now.
	Now func() time.Time
}
