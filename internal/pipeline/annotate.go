package pipeline

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Annotation colors, matching the original output videos.
var (
	boxColor     = color.RGBA{R: 100, G: 255, B: 100}
	nameColor    = color.RGBA{R: 255, G: 255, B: 0}
	emotionColor = color.RGBA{G: 200, B: 255}
)

// BoxAnnotator burns a bounding box with the identity above and the emotion
// below into the frame.
type BoxAnnotator struct{}

func (BoxAnnotator) Annotate(frame *gocv.Mat, box image.Rectangle, name string, emotionText string) {
	gocv.Rectangle(frame, box, boxColor, 2)
	gocv.PutText(frame, name,
		image.Pt(box.Min.X, box.Min.Y-10),
		gocv.FontHersheySimplex, 0.7, nameColor, 2)
	gocv.PutText(frame, emotionText,
		image.Pt(box.Min.X, box.Max.Y+25),
		gocv.FontHersheySimplex, 0.7, emotionColor, 2)
}
