package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/turnabout/internal/domain/entity"
)

// DefaultGame returns the game config used when a field is absent from game.json
func DefaultGame() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		World: WorldConfig{
			Gravity:       600,
			MaxFallSpeed:  400,
			FixedStep:     0.02,
			MaxFixedSteps: 5,
			CellSize:      16,
			Body:          BodyConfig{Width: 12, Height: 24, Mass: 1},
			SolidLayers:   []string{"Ground"},
		},
		Input: InputConfig{
			Sensitivity:    3,
			Gravity:        3,
			Snap:           true,
			AnalogDeadzone: 0.2,
			Axes: map[string]AxisBinding{
				"Horizontal": {
					Negative: []string{"A", "ArrowLeft"},
					Positive: []string{"D", "ArrowRight"},
					Stick:    "leftX",
				},
			},
			Buttons: map[string]ButtonBinding{
				"Jump": {Keys: []string{"Space"}, Gamepad: []string{"RightBottom"}},
			},
		},
		Anim: AnimConfig{ActionClip: 0.4},
	}
}

// DefaultCharacter returns the character tunables used when a field is
// absent from character.yaml
func DefaultCharacter() CharacterConfig {
	return CharacterConfig{
		GroundProbe: GroundProbeConfig{
			Anchor:      entity.Vec3{Y: -12},
			HalfExtents: entity.Vec3{X: 6, Y: 2, Z: 0.5},
			Layer:       "Ground",
		},
		MoveSpeed:    90,
		JumpImpulse:  260,
		ActionKey:    "E",
		JumpBindings: []string{"Jump", "W"},
		Axis:         "Horizontal",
		TurnDuration: 0.2,
		TurnEasing:   "linear",
	}
}

// Validate rejects tunables that cannot be simulated. Zero speed, impulse
// and turn duration are accepted.
func (c *CharacterConfig) Validate() error {
	var errs []error
	if c.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("moveSpeed must not be negative, got %v", c.MoveSpeed))
	}
	if c.JumpImpulse < 0 {
		errs = append(errs, fmt.Errorf("jumpImpulse must not be negative, got %v", c.JumpImpulse))
	}
	if c.TurnDuration < 0 {
		errs = append(errs, fmt.Errorf("turnDuration must not be negative, got %v", c.TurnDuration))
	}
	he := c.GroundProbe.HalfExtents
	if he.X < 0 || he.Y < 0 || he.Z < 0 {
		errs = append(errs, fmt.Errorf("groundProbe.halfExtents must not be negative, got %+v", he))
	}
	if c.GroundProbe.Layer == "" {
		errs = append(errs, errors.New("groundProbe.layer is required"))
	}
	return errors.Join(errs...)
}

// Validate rejects world settings that would stall the loop
func (w *WorldConfig) Validate() error {
	var errs []error
	if w.FixedStep <= 0 {
		errs = append(errs, fmt.Errorf("world.fixedStep must be positive, got %v", w.FixedStep))
	}
	if w.MaxFixedSteps <= 0 {
		errs = append(errs, fmt.Errorf("world.maxFixedSteps must be positive, got %v", w.MaxFixedSteps))
	}
	if w.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("world.cellSize must be positive, got %v", w.CellSize))
	}
	if w.Body.Width <= 0 || w.Body.Height <= 0 {
		errs = append(errs, fmt.Errorf("world.body size must be positive, got %vx%v", w.Body.Width, w.Body.Height))
	}
	if w.Body.Mass <= 0 {
		errs = append(errs, fmt.Errorf("world.body.mass must be positive, got %v", w.Body.Mass))
	}
	return errors.Join(errs...)
}
