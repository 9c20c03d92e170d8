package faceutil

import "image"

// ============================================================================
// Pure Utility Functions
// ============================================================================
//
// This file contains only domain-agnostic helpers for face bounding boxes
// that can be used across any part of the application.
// ============================================================================

// Dimensions returns the width and height of a face bounding box
func Dimensions(box image.Rectangle) (int, int) {
	return box.Dx(), box.Dy()
}

// MeetsMinSize checks if a face meets the minimum size requirement
func MeetsMinSize(box image.Rectangle, minSize int) bool {
	width, height := Dimensions(box)
	return width >= minSize && height >= minSize
}

// Clamp constrains a bounding box to the given frame dimensions. Detectors
// occasionally report boxes that spill past the frame edge; cropping with
// such a box would fail.
func Clamp(box image.Rectangle, frameWidth, frameHeight int) image.Rectangle {
	return box.Intersect(image.Rect(0, 0, frameWidth, frameHeight))
}
