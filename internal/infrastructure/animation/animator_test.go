package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testParams = Params{Moving: "moving", Grounded: "isGrounded", Action: "actionTrigger"}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "Idle"},
		{StateRun, "Run"},
		{StateAirborne, "Airborne"},
		{StateAction, "Action"},
		{State(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestAnimator_Params(t *testing.T) {
	a := New(testParams, 0.4)

	assert.False(t, a.Bool("moving"), "unset bool is false")
	a.SetBool("moving", true)
	assert.True(t, a.Bool("moving"))

	a.SetTrigger("actionTrigger")
	a.SetTrigger("other")
	assert.True(t, a.Triggered("actionTrigger"))
	assert.Equal(t, []string{"actionTrigger", "other"}, a.Armed())

	a.ResetTrigger("actionTrigger")
	assert.False(t, a.Triggered("actionTrigger"))
	a.ResetTrigger("never-set")
	assert.Equal(t, []string{"other"}, a.Armed())
}

func TestAnimator_Locomotion(t *testing.T) {
	a := New(testParams, 0.4)

	a.SetBool("isGrounded", true)
	a.Advance(0.016)
	assert.Equal(t, StateIdle, a.State())

	a.SetBool("moving", true)
	a.Advance(0.016)
	assert.Equal(t, StateRun, a.State())

	a.SetBool("isGrounded", false)
	a.Advance(0.016)
	assert.Equal(t, StateAirborne, a.State())

	a.SetBool("isGrounded", true)
	a.SetBool("moving", false)
	a.Advance(0.016)
	assert.Equal(t, StateIdle, a.State())
}

func TestAnimator_ActionConsumesTrigger(t *testing.T) {
	a := New(testParams, 0.1)
	a.SetBool("isGrounded", true)

	a.SetTrigger("actionTrigger")
	a.Advance(0.05)

	assert.Equal(t, StateAction, a.State())
	assert.False(t, a.Triggered("actionTrigger"), "one-shot is consumed")
	assert.Equal(t, 1, a.Entered(StateAction))

	// Holds for the clip even while moving
	a.SetBool("moving", true)
	a.Advance(0.04)
	assert.Equal(t, StateAction, a.State())
	assert.InDelta(t, 0.09, a.StateTime(), 1e-9)

	a.Advance(0.05)
	assert.Equal(t, StateAction, a.State(), "0.09 < 0.1 still holds")

	a.Advance(0.05)
	assert.Equal(t, StateRun, a.State(), "clip finished")
}

func TestAnimator_ActionNeedsGround(t *testing.T) {
	a := New(testParams, 0.1)
	a.SetBool("isGrounded", false)
	a.SetTrigger("actionTrigger")

	a.Advance(0.016)

	assert.Equal(t, StateAirborne, a.State())
	assert.True(t, a.Triggered("actionTrigger"), "stays armed while airborne")

	a.SetBool("isGrounded", true)
	a.Advance(0.016)
	assert.Equal(t, StateAction, a.State())
}

func TestAnimator_ActionLeavesOnTakeoff(t *testing.T) {
	a := New(testParams, 1)
	a.SetBool("isGrounded", true)
	a.SetTrigger("actionTrigger")
	a.Advance(0.016)
	assert.Equal(t, StateAction, a.State())

	a.SetBool("isGrounded", false)
	a.Advance(0.016)
	assert.Equal(t, StateAirborne, a.State())
}

func TestAnimator_ActionRetriggers(t *testing.T) {
	a := New(testParams, 0.1)
	a.SetBool("isGrounded", true)

	a.SetTrigger("actionTrigger")
	a.Advance(0.2)
	a.SetTrigger("actionTrigger")
	a.Advance(0.016)

	assert.Equal(t, StateAction, a.State())
	assert.Equal(t, 2, a.Entered(StateAction))
	assert.InDelta(t, 0.016, a.StateTime(), 1e-9)
}
