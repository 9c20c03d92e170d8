package pipeline

// Accumulator aggregates per-identity screen time and per-emotion duration
// over one run. Implementations are single-writer, owned by one pipeline
// invocation.
type Accumulator interface {
	// RecordPresence attributes seconds of screen time to an identity.
	// Called for every localized face, whether or not classification
	// succeeded.
	RecordPresence(identity string, seconds float64)
	// RecordEmotion attributes seconds to an emotion label. Only called
	// when an emotion was successfully classified.
	RecordEmotion(label string, seconds float64)
	// Totals finalizes the aggregation given the source frame rate.
	Totals(fps float64) (presence map[string]float64, emotionTime map[string]float64)
	// Counts returns per-identity appearance counts, or nil for
	// accumulators that track durations directly.
	Counts() map[string]int
}

// DurationAccumulator adds the sampling slot duration on every record.
type DurationAccumulator struct {
	presence map[string]float64
	emotions map[string]float64
}

// NewDurationAccumulator returns an empty duration-based accumulator.
func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{
		presence: map[string]float64{},
		emotions: map[string]float64{},
	}
}

func (a *DurationAccumulator) RecordPresence(identity string, seconds float64) {
	a.presence[identity] += seconds
}

func (a *DurationAccumulator) RecordEmotion(label string, seconds float64) {
	a.emotions[label] += seconds
}

func (a *DurationAccumulator) Totals(_ float64) (map[string]float64, map[string]float64) {
	return a.presence, a.emotions
}

func (a *DurationAccumulator) Counts() map[string]int { return nil }

// CountAccumulator counts processed-frame occurrences and derives durations
// at finalization as count/fps. Used when total exposure proportional to
// sampling density matters more than per-event timing.
type CountAccumulator struct {
	presence map[string]int
	emotions map[string]int
}

// NewCountAccumulator returns an empty count-based accumulator.
func NewCountAccumulator() *CountAccumulator {
	return &CountAccumulator{
		presence: map[string]int{},
		emotions: map[string]int{},
	}
}

func (a *CountAccumulator) RecordPresence(identity string, _ float64) {
	a.presence[identity]++
}

func (a *CountAccumulator) RecordEmotion(label string, _ float64) {
	a.emotions[label]++
}

func (a *CountAccumulator) Totals(fps float64) (map[string]float64, map[string]float64) {
	presence := make(map[string]float64, len(a.presence))
	emotions := make(map[string]float64, len(a.emotions))
	if fps > 0 {
		for k, n := range a.presence {
			presence[k] = float64(n) / fps
		}
		for k, n := range a.emotions {
			emotions[k] = float64(n) / fps
		}
	}
	return presence, emotions
}

func (a *CountAccumulator) Counts() map[string]int {
	counts := make(map[string]int, len(a.presence))
	for k, n := range a.presence {
		counts[k] = n
	}
	return counts
}
