// Package animation is the host animation layer: a parameter store for
// boolean flags and one-shot triggers, and a small state graph that reads
// them once per frame.
package animation

import "sort"

// State is a node of the animation graph
type State int

const (
	StateIdle State = iota
	StateRun
	StateAirborne
	StateAction
)

// String returns the string representation of the animation state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRun:
		return "Run"
	case StateAirborne:
		return "Airborne"
	case StateAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Params names the parameters the graph reads
type Params struct {
	Moving   string
	Grounded string
	Action   string
}

// Animator stores parameters and advances the graph.
// A trigger stays armed until the graph consumes it or it is reset.
type Animator struct {
	params     Params
	bools      map[string]bool
	triggers   map[string]bool
	actionClip float64

	state   State
	stateT  float64
	entered map[State]int
}

// New creates an animator in the Idle state. actionClip is how long the
// action state holds before returning to locomotion.
func New(params Params, actionClip float64) *Animator {
	return &Animator{
		params:     params,
		bools:      make(map[string]bool),
		triggers:   make(map[string]bool),
		actionClip: actionClip,
		state:      StateIdle,
		entered:    make(map[State]int),
	}
}

// SetBool sets a boolean parameter
func (a *Animator) SetBool(name string, value bool) {
	a.bools[name] = value
}

// Bool returns a boolean parameter; unset parameters are false
func (a *Animator) Bool(name string) bool {
	return a.bools[name]
}

// SetTrigger arms a trigger
func (a *Animator) SetTrigger(name string) {
	a.triggers[name] = true
}

// ResetTrigger disarms a trigger
func (a *Animator) ResetTrigger(name string) {
	delete(a.triggers, name)
}

// Triggered reports whether a trigger is armed
func (a *Animator) Triggered(name string) bool {
	return a.triggers[name]
}

// consume disarms and reports an armed trigger
func (a *Animator) consume(name string) bool {
	if !a.triggers[name] {
		return false
	}
	delete(a.triggers, name)
	return true
}

// State returns the current graph state
func (a *Animator) State() State {
	return a.state
}

// StateTime returns seconds spent in the current state
func (a *Animator) StateTime() float64 {
	return a.stateT
}

// Entered returns how many times the graph has entered s
func (a *Animator) Entered(s State) int {
	return a.entered[s]
}

// Armed returns the armed trigger names in sorted order
func (a *Animator) Armed() []string {
	names := make([]string, 0, len(a.triggers))
	for name := range a.triggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Advance evaluates transitions, then moves the state clock by dt.
// The action state is only reachable while grounded; it holds for the
// action clip unless the character leaves the ground.
func (a *Animator) Advance(dt float64) {
	grounded := a.bools[a.params.Grounded]
	moving := a.bools[a.params.Moving]

	next := a.state
	restart := false
	switch {
	case a.state == StateAction && grounded && a.stateT < a.actionClip:
		// hold
	case grounded && a.consume(a.params.Action):
		next = StateAction
		restart = true
	case !grounded:
		next = StateAirborne
	case moving:
		next = StateRun
	default:
		next = StateIdle
	}

	if next != a.state || restart {
		a.enter(next)
	}
	a.stateT += dt
}

func (a *Animator) enter(s State) {
	a.state = s
	a.stateT = 0
	a.entered[s]++
}
