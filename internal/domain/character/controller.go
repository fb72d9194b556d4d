// Package character implements the platform character controller: input
// resolution, grounded jumping, the one-shot action trigger, horizontal
// motion and the facing turn.
//
// The controller owns no engine state. Everything it touches on the host
// side comes in through the interfaces in ports.go, and it is driven from
// two explicit entry points: Update once per rendered frame and FixedUpdate
// once per fixed physics tick.
package character

import (
	"fmt"
	"log/slog"

	"github.com/tanema/gween/ease"
	"github.com/younwookim/turnabout/internal/domain/entity"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

// DeadZone is the axis magnitude below which input resolves to exactly zero.
const DeadZone = 0.1

// Animation parameter names
const (
	ParamMoving   = "moving"
	ParamGrounded = "isGrounded"
	ParamAction   = "actionTrigger"
)

// Deps are the host capabilities a Controller drives.
type Deps struct {
	Input     InputSource
	Body      Body
	Probe     GroundProbe
	Anim      Animator
	Transform Transform
}

// Controller is the per-character state machine.
type Controller struct {
	cfg       *config.CharacterConfig
	easing    ease.TweenFunc
	input     InputSource
	body      Body
	probe     GroundProbe
	anim      Animator
	transform Transform

	horizontal float64
	grounded   bool
	facing     entity.Facing
	baseYaw    float64
	turn       Turn
}

// New creates a controller facing right. The transform's current yaw becomes
// the base orientation that right-facing turns return to.
func New(deps Deps, cfg *config.CharacterConfig) *Controller {
	c := &Controller{
		input:     deps.Input,
		body:      deps.Body,
		probe:     deps.Probe,
		anim:      deps.Anim,
		transform: deps.Transform,
		grounded:  true,
		facing:    entity.FacingRight,
		baseYaw:   deps.Transform.Rotation().Yaw(),
	}
	c.SetConfig(cfg)
	return c
}

// CheckConfig validates cfg, including the easing name.
func CheckConfig(cfg *config.CharacterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, ok := Easing(cfg.TurnEasing); !ok {
		return fmt.Errorf("unknown turnEasing %q", cfg.TurnEasing)
	}
	return nil
}

// SetConfig swaps the tunables. A turn in progress keeps its duration.
// An unknown easing name falls back to linear.
func (c *Controller) SetConfig(cfg *config.CharacterConfig) {
	c.cfg = cfg
	easing, ok := Easing(cfg.TurnEasing)
	if !ok {
		slog.Warn("unknown turn easing, using linear", "easing", cfg.TurnEasing)
	}
	c.easing = easing
}

// Config returns the active tunables
func (c *Controller) Config() *config.CharacterConfig {
	return c.cfg
}

// Update runs the per-frame decision pass.
func (c *Controller) Update(dt float64) {
	c.resolveInput()
	c.checkJump()
	c.checkAction()
	c.checkFlip()
	c.advanceTurn(dt)
}

// FixedUpdate runs the per-physics-tick motion pass. Only the horizontal
// velocity component is written.
func (c *Controller) FixedUpdate(_ float64) {
	v := c.body.Velocity()
	v.X = c.horizontal * c.cfg.MoveSpeed
	c.body.SetVelocity(v)
}

// resolveInput samples the horizontal axis and applies the dead zone
func (c *Controller) resolveInput() {
	h := c.input.Axis(c.cfg.Axis)
	if h > -DeadZone && h < DeadZone {
		h = 0
	}
	c.horizontal = h

	c.anim.SetBool(ParamMoving, h != 0)
	if h != 0 {
		c.anim.ResetTrigger(ParamAction)
	}
}

// checkJump probes for ground and applies the jump impulse
func (c *Controller) checkJump() {
	probe := c.cfg.GroundProbe
	feet := c.body.Position().Add(probe.Anchor)
	c.grounded = c.probe.Overlaps(feet, probe.HalfExtents, probe.Layer)
	c.anim.SetBool(ParamGrounded, c.grounded)

	if !c.grounded {
		return
	}
	c.anim.ResetTrigger(ParamAction)

	if c.anyJustPressed(c.cfg.JumpBindings) {
		c.body.AddImpulse(entity.Up.Scale(c.cfg.JumpImpulse))
	}
}

func (c *Controller) anyJustPressed(bindings []string) bool {
	for _, b := range bindings {
		if c.input.JustPressed(b) {
			return true
		}
	}
	return false
}

// checkAction arms the action trigger on every press
func (c *Controller) checkAction() {
	if c.cfg.ActionKey == "" || !c.input.JustPressed(c.cfg.ActionKey) {
		return
	}
	c.anim.SetTrigger(ParamAction)
}

// checkFlip starts a turn when the input points away from the facing.
// The new turn takes its first step in the same frame.
func (c *Controller) checkFlip() {
	if !c.facing.Disagrees(c.horizontal) {
		return
	}
	c.facing = c.facing.Opposite()
	c.turn.Begin(c.transform.Rotation(), c.TargetRotation(), c.cfg.TurnDuration, c.easing)
}

func (c *Controller) advanceTurn(dt float64) {
	if q, ok := c.turn.Advance(dt); ok {
		c.transform.SetRotation(q)
	}
}

// TargetRotation returns the rest orientation for the current facing.
func (c *Controller) TargetRotation() entity.Quat {
	if c.facing == entity.FacingRight {
		return entity.FromYaw(c.baseYaw)
	}
	return entity.FromYaw(c.baseYaw + 180)
}

// Horizontal returns the resolved horizontal input of the last frame
func (c *Controller) Horizontal() float64 {
	return c.horizontal
}

// Grounded returns the last ground probe result
func (c *Controller) Grounded() bool {
	return c.grounded
}

// Facing returns the current facing
func (c *Controller) Facing() entity.Facing {
	return c.facing
}

// BaseYaw returns the yaw captured at construction
func (c *Controller) BaseYaw() float64 {
	return c.baseYaw
}

// Turn returns the turn record
func (c *Controller) Turn() *Turn {
	return &c.turn
}
