package pipeline

import "gocv.io/x/gocv"

const quitKey = 'q'

// WindowDisplay shows processed frames in an interactive window and treats
// a 'q' key-press as the cancellation signal.
type WindowDisplay struct {
	win *gocv.Window
}

// NewWindowDisplay opens a named display window.
func NewWindowDisplay(title string) *WindowDisplay {
	return &WindowDisplay{win: gocv.NewWindow(title)}
}

func (d *WindowDisplay) Show(f *Frame) {
	d.win.IMShow(f.Mat)
}

// Cancelled polls the window event loop for the quit key. Polled once per
// pipeline iteration; there is no preemption of in-flight inference.
func (d *WindowDisplay) Cancelled() bool {
	return d.win.WaitKey(1) == quitKey
}

func (d *WindowDisplay) Close() error {
	return d.win.Close()
}
