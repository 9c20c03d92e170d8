package pipeline

import (
	"fmt"

	"gocv.io/x/gocv"
)

// CaptureSource adapts a gocv VideoCapture (file or camera) to the Source
// interface. It owns one reusable Mat for the lifetime of the capture.
type CaptureSource struct {
	cap   *gocv.VideoCapture
	mat   gocv.Mat
	index int
}

// OpenFile opens a video file as a frame source.
func OpenFile(path string) (*CaptureSource, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	return &CaptureSource{cap: cap, mat: gocv.NewMat()}, nil
}

// OpenCamera opens a live camera device as a frame source.
func OpenCamera(device int) (*CaptureSource, error) {
	cap, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera %d: %w", device, err)
	}
	return &CaptureSource{cap: cap, mat: gocv.NewMat()}, nil
}

// Read fills f with the next frame, returning false at end of stream.
func (s *CaptureSource) Read(f *Frame) bool {
	if !s.cap.Read(&s.mat) || s.mat.Empty() {
		return false
	}
	s.index++
	f.Index = s.index
	f.Mat = s.mat
	return true
}

// FPS returns the source frame rate.
func (s *CaptureSource) FPS() float64 {
	return s.cap.Get(gocv.VideoCaptureFPS)
}

// FrameCount returns the total frame count, or 0 when unknown (live
// sources).
func (s *CaptureSource) FrameCount() int {
	n := s.cap.Get(gocv.VideoCaptureFrameCount)
	if n < 0 {
		return 0
	}
	return int(n)
}

// Size returns the frame dimensions.
func (s *CaptureSource) Size() (width int, height int) {
	return int(s.cap.Get(gocv.VideoCaptureFrameWidth)),
		int(s.cap.Get(gocv.VideoCaptureFrameHeight))
}

// Close releases the capture handle and its frame buffer.
func (s *CaptureSource) Close() error {
	s.mat.Close()
	return s.cap.Close()
}

// VideoSink re-encodes frames into an output video file at the source's
// resolution and frame rate.
type VideoSink struct {
	writer *gocv.VideoWriter
}

// NewVideoSink creates an mp4v-encoded output video.
func NewVideoSink(path string, fps float64, width int, height int) (*VideoSink, error) {
	writer, err := gocv.VideoWriterFile(path, "mp4v", fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("failed to open output video %s: %w", path, err)
	}
	return &VideoSink{writer: writer}, nil
}

func (s *VideoSink) Write(f *Frame) error {
	return s.writer.Write(f.Mat)
}

func (s *VideoSink) Close() error {
	return s.writer.Close()
}
