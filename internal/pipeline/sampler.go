package pipeline

import "time"

// Sampler decides which frames are processed and how much time each
// processed frame represents.
type Sampler interface {
	// Admit reports whether the frame with the given arrival index should
	// be processed.
	Admit(index int, now time.Time) bool
	// Slot is the duration in seconds attributed to one processed frame.
	Slot(fps float64) float64
}

// strideSampler processes every Nth frame by arrival index. Deterministic
// and independent of wall-clock time.
type strideSampler struct {
	n int
}

// NewStrideSampler returns a frame-count-based sampler processing every nth
// frame.
func NewStrideSampler(n int) Sampler {
	if n < 1 {
		n = 1
	}
	return &strideSampler{n: n}
}

func (s *strideSampler) Admit(index int, _ time.Time) bool {
	return index%s.n == 0
}

func (s *strideSampler) Slot(fps float64) float64 {
	return float64(s.n) / fps
}

// rateSampler admits at most one frame per interval of wall-clock time.
// Frames arriving too soon are dropped, not buffered: slow analysis causes
// skipping rather than queueing, bounding memory and latency.
type rateSampler struct {
	interval time.Duration
	last     time.Time
}

// NewRateSampler returns a wall-clock-gated sampler limited to fpsLimit
// processed frames per second.
func NewRateSampler(fpsLimit float64) Sampler {
	return &rateSampler{
		interval: time.Duration(float64(time.Second) / fpsLimit),
	}
}

func (s *rateSampler) Admit(_ int, now time.Time) bool {
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	return true
}

func (s *rateSampler) Slot(_ float64) float64 {
	return s.interval.Seconds()
}
