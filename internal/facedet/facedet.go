// Package facedet wraps the OpenCV Haar cascade face detector.
package facedet

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/moodlens/moodlens/pkg/faceutil"
)

// Detector parameters. These match the cascade the identity model was
// trained against and are not configurable.
const (
	scaleFactor  = 1.1
	minNeighbors = 5
)

// Localizer detects face bounding boxes in video frames.
type Localizer struct {
	classifier  gocv.CascadeClassifier
	minFaceSize int
}

// NewLocalizer loads the Haar cascade from cascadePath. A missing or corrupt
// cascade file is a setup-time failure and aborts the whole analysis request.
func NewLocalizer(cascadePath string, minFaceSize int) (*Localizer, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load face cascade: %s", cascadePath)
	}
	return &Localizer{classifier: classifier, minFaceSize: minFaceSize}, nil
}

// Close releases the cascade.
func (l *Localizer) Close() error {
	return l.classifier.Close()
}

// Detect returns the face boxes found in the frame, in detector order.
// Detection never errors; a frame without faces yields an empty slice.
func (l *Localizer) Detect(frame gocv.Mat) []image.Rectangle {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	rects := l.classifier.DetectMultiScaleWithParams(
		gray, scaleFactor, minNeighbors, 0, image.Point{}, image.Point{})

	if l.minFaceSize <= 0 {
		return rects
	}
	filtered := rects[:0]
	for _, r := range rects {
		if faceutil.MeetsMinSize(r, l.minFaceSize) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
