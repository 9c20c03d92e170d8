package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrideSampler(t *testing.T) {
	s := NewStrideSampler(5)

	var admitted []int
	for i := 1; i <= 20; i++ {
		if s.Admit(i, time.Time{}) {
			admitted = append(admitted, i)
		}
	}
	assert.Equal(t, []int{5, 10, 15, 20}, admitted)
	assert.InDelta(t, 5.0/30.0, s.Slot(30), 1e-9)
}

func TestStrideSamplerClampsToOne(t *testing.T) {
	s := NewStrideSampler(0)
	for i := 1; i <= 5; i++ {
		assert.True(t, s.Admit(i, time.Time{}))
	}
	assert.InDelta(t, 1.0/25.0, s.Slot(25), 1e-9)
}

func TestRateSampler(t *testing.T) {
	s := NewRateSampler(5) // 200ms interval
	t0 := time.Unix(0, 0)

	assert.True(t, s.Admit(1, t0), "first frame is always admitted")
	assert.False(t, s.Admit(2, t0.Add(100*time.Millisecond)))
	assert.False(t, s.Admit(3, t0.Add(199*time.Millisecond)))
	assert.True(t, s.Admit(4, t0.Add(200*time.Millisecond)))
	// the gate resets from the last admission, not from rejected frames
	assert.False(t, s.Admit(5, t0.Add(350*time.Millisecond)))
	assert.True(t, s.Admit(6, t0.Add(400*time.Millisecond)))

	assert.InDelta(t, 0.2, s.Slot(30), 1e-9)
}
