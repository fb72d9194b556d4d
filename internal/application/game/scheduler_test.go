package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingTicker logs each callback in order
type recordingTicker struct {
	calls []string
	dts   []float64
}

func (r *recordingTicker) Update(dt float64) {
	r.calls = append(r.calls, "update")
	r.dts = append(r.dts, dt)
}

func (r *recordingTicker) FixedUpdate(dt float64) {
	r.calls = append(r.calls, "fixed")
	r.dts = append(r.dts, dt)
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(0, 0)
	assert.Equal(t, 0.02, s.FixedDT())

	tk := &recordingTicker{}
	// 1 second of backlog but a single step allowed
	n := s.Advance(1, tk)
	assert.Equal(t, 1, n)
}

func TestScheduler_Advance(t *testing.T) {
	tests := []struct {
		name   string
		frames []float64
		want   []int
	}{
		{"exact step", []float64{0.25}, []int{1}},
		{"two steps", []float64{0.5}, []int{2}},
		{"accumulates", []float64{0.125, 0.125, 0.125, 0.125}, []int{0, 1, 0, 1}},
		{"carries remainder", []float64{0.375, 0.125}, []int{1, 1}},
		{"zero frame", []float64{0}, []int{0}},
		{"negative frame", []float64{-1}, []int{0}},
		{"capped", []float64{2}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(0.25, 3)
			tk := &recordingTicker{}

			for i, dt := range tt.frames {
				assert.Equal(t, tt.want[i], s.Advance(dt, tk), "frame %d", i)
			}
		})
	}
}

func TestScheduler_OrderAndDT(t *testing.T) {
	s := NewScheduler(0.25, 5)
	tk := &recordingTicker{}

	s.Advance(0.5, tk)

	assert.Equal(t, []string{"update", "fixed", "fixed"}, tk.calls)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, tk.dts)
	assert.Equal(t, uint64(1), s.Frames())
	assert.Equal(t, uint64(2), s.Steps())
}

func TestScheduler_BacklogDropped(t *testing.T) {
	s := NewScheduler(0.25, 2)
	tk := &recordingTicker{}

	assert.Equal(t, 2, s.Advance(1.0, tk))
	assert.Equal(t, 0.0, s.Alpha(), "backlog beyond the cap is discarded")

	assert.Equal(t, 0, s.Advance(0.125, tk))
	assert.Equal(t, 0.5, s.Alpha())
}

func TestScheduler_Reset(t *testing.T) {
	s := NewScheduler(0.25, 2)
	tk := &recordingTicker{}
	s.Advance(0.375, tk)

	s.Reset()

	assert.Equal(t, uint64(0), s.Frames())
	assert.Equal(t, uint64(0), s.Steps())
	assert.Equal(t, 0.0, s.Alpha())
	assert.Equal(t, 0, s.Advance(0.125, tk))
}
