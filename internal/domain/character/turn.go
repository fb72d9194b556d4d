package character

import (
	"github.com/tanema/gween/ease"
	"github.com/younwookim/turnabout/internal/domain/entity"
)

// TurnState is the state of a Turn
type TurnState int

const (
	TurnIdle TurnState = iota
	TurnTurning
)

// String returns the string representation of the turn state
func (s TurnState) String() string {
	switch s {
	case TurnIdle:
		return "Idle"
	case TurnTurning:
		return "Turning"
	default:
		return "Unknown"
	}
}

// Turn interpolates an orientation from Start to Target over Duration seconds.
// Begin discards any turn in progress.
type Turn struct {
	Start    entity.Quat
	Target   entity.Quat
	Elapsed  float64
	Duration float64
	// Ease reshapes the elapsed fraction. nil means linear.
	Ease ease.TweenFunc

	state TurnState
}

// Begin starts a fresh turn, replacing the current one.
func (t *Turn) Begin(start, target entity.Quat, duration float64, easing ease.TweenFunc) {
	t.Start = start
	t.Target = target
	t.Elapsed = 0
	t.Duration = duration
	t.Ease = easing
	t.state = TurnTurning
}

// State returns Idle or Turning
func (t *Turn) State() TurnState {
	return t.state
}

// Active reports whether a turn is in progress
func (t *Turn) Active() bool {
	return t.state == TurnTurning
}

// Fraction returns elapsed / duration clamped to [0, 1].
// A non-positive duration counts as complete.
func (t *Turn) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Advance moves the turn forward by dt and returns the orientation to apply.
// ok is false when no turn is in progress. Once elapsed reaches the duration
// the exact target is returned and the turn goes idle.
func (t *Turn) Advance(dt float64) (q entity.Quat, ok bool) {
	if t.state != TurnTurning {
		return entity.Quat{}, false
	}

	t.Elapsed += dt
	if t.Duration <= 0 || t.Elapsed >= t.Duration {
		t.state = TurnIdle
		return t.Target, true
	}

	f := t.Elapsed / t.Duration
	if t.Ease != nil {
		f = float64(t.Ease(float32(f), 0, 1, 1))
	}
	return entity.Lerp(t.Start, t.Target, f), true
}

// Cancel stops the turn where it is.
func (t *Turn) Cancel() {
	t.state = TurnIdle
}

var easings = map[string]ease.TweenFunc{
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
}

// Easing looks up a named easing curve. "linear" and "" resolve to nil
// (plain fraction) with ok true; unknown names also resolve to nil but
// report ok false.
func Easing(name string) (ease.TweenFunc, bool) {
	if name == "" || name == "linear" {
		return nil, true
	}
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames lists the recognized curve names besides "linear".
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}
