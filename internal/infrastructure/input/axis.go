package input

import "math"

// AxisState smooths a digital direction into an analog value in [-1, 1].
// The value moves toward the held direction at sensitivity units per second
// and back toward zero at gravity units per second. With snap set, pressing
// the opposite direction jumps to zero first.
type AxisState struct {
	Value float64
}

// Step advances the axis by dt with raw direction dir (-1, 0 or 1)
func (a *AxisState) Step(dir int, dt, sensitivity, gravity float64, snap bool) float64 {
	switch {
	case dir == 0:
		a.Value = moveToward(a.Value, 0, gravity*dt)
	default:
		target := float64(dir)
		if snap && a.Value*target < 0 {
			a.Value = 0
		}
		a.Value = moveToward(a.Value, target, sensitivity*dt)
	}
	return a.Value
}

// Override replaces the smoothed value with an analog reading
func (a *AxisState) Override(v float64) {
	a.Value = clamp(v, -1, 1)
}

// moveToward moves v toward target by at most step; a non-positive step
// jumps straight to the target
func moveToward(v, target, step float64) float64 {
	if step <= 0 || math.Abs(target-v) <= step {
		return target
	}
	if target > v {
		return v + step
	}
	return v - step
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// direction combines two held states into -1, 0 or 1
func direction(negative, positive bool) int {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}
