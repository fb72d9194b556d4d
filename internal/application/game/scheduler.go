package game

import "log/slog"

// Ticker receives the two scheduler callbacks
type Ticker interface {
	// Update runs once per rendered frame
	Update(dt float64)
	// FixedUpdate runs once per physics tick
	FixedUpdate(dt float64)
}

// Scheduler turns variable frame time into one frame tick plus a whole
// number of fixed ticks. Leftover time carries into the next frame.
type Scheduler struct {
	fixedDT  float64
	maxSteps int
	acc      float64
	frames   uint64
	steps    uint64
}

// NewScheduler creates a scheduler ticking every fixedDT seconds and running
// at most maxSteps fixed ticks per frame. Non-positive values fall back to
// 50Hz and one step.
func NewScheduler(fixedDT float64, maxSteps int) *Scheduler {
	if fixedDT <= 0 {
		fixedDT = 0.02
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Scheduler{
		fixedDT:  fixedDT,
		maxSteps: maxSteps,
	}
}

// Advance runs one frame: t.Update(frameDT), then as many t.FixedUpdate
// calls as the accumulated time allows. Returns the number of fixed ticks.
func (s *Scheduler) Advance(frameDT float64, t Ticker) int {
	if frameDT < 0 {
		frameDT = 0
	}
	s.frames++
	t.Update(frameDT)

	s.acc += frameDT
	n := 0
	for s.acc >= s.fixedDT && n < s.maxSteps {
		t.FixedUpdate(s.fixedDT)
		s.acc -= s.fixedDT
		n++
	}
	s.steps += uint64(n)

	// Drop the backlog rather than spiral
	if s.acc >= s.fixedDT {
		slog.Debug("fixed step backlog dropped", "frame", s.frames, "seconds", s.acc)
		s.acc = 0
	}
	return n
}

// FixedDT returns the physics tick length in seconds
func (s *Scheduler) FixedDT() float64 {
	return s.fixedDT
}

// Alpha returns how far the accumulator is into the next fixed tick (0..1)
func (s *Scheduler) Alpha() float64 {
	return s.acc / s.fixedDT
}

// Frames returns the number of frames advanced
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Steps returns the number of fixed ticks run
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// Reset clears the accumulator and counters
func (s *Scheduler) Reset() {
	s.acc = 0
	s.frames = 0
	s.steps = 0
}
