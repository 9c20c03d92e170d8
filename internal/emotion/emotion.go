// Package emotion classifies the emotional state of a cropped face by
// normalizing it to the model's fixed input size and scoring it through an
// external service.
package emotion

import (
	"fmt"
	"math"
)

// The two emotion classes. The scoring model emits a single scalar with
// "Sad" as the positive class; there is no path to more classes.
const (
	LabelHappy = "Happy"
	LabelSad   = "Sad"
)

// NotDetected is the sentinel text substituted when classification fails.
const NotDetected = "Tespit edilemedi"

// Result is a classified emotion with its confidence percentage.
type Result struct {
	Label      string
	Confidence float64 // percent, in [50, 100]
}

// Decide applies the fixed decision rule to the model's output scalar:
// "Sad" iff p > 0.5, confidence max(p, 1-p) as a percentage.
func Decide(p float64) Result {
	label := LabelHappy
	if p > 0.5 {
		label = LabelSad
	}
	return Result{
		Label:      label,
		Confidence: math.Max(p, 1-p) * 100,
	}
}

// Text renders the result the way it appears on annotated frames and in the
// frame log, e.g. "Happy (87.3%)".
func (r Result) Text() string {
	return fmt.Sprintf("%s (%.1f%%)", r.Label, r.Confidence)
}
