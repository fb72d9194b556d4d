package config

import "github.com/younwookim/turnabout/internal/domain/entity"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	World   WorldConfig   `json:"world"`
	Input   InputConfig   `json:"input"`
	Anim    AnimConfig    `json:"animation"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// WorldConfig configures the physics world and the character body
type WorldConfig struct {
	Gravity       float64    `json:"gravity"`
	MaxFallSpeed  float64    `json:"maxFallSpeed"`
	FixedStep     float64    `json:"fixedStep"`     // Seconds per physics tick
	MaxFixedSteps int        `json:"maxFixedSteps"` // Per rendered frame
	CellSize      int        `json:"cellSize"`
	Body          BodyConfig `json:"body"`
	// SolidLayers are the collision layers bodies cannot pass through
	SolidLayers []string `json:"solidLayers"`
}

type BodyConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Mass   float64 `json:"mass"`
}

// InputConfig configures axes and virtual buttons
type InputConfig struct {
	// Keyboard axis behaviour: units per second toward the pressed
	// direction, units per second back to rest, and whether reversing
	// snaps through zero.
	Sensitivity float64 `json:"sensitivity"`
	Gravity     float64 `json:"gravity"`
	Snap        bool    `json:"snap"`
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64                  `json:"analogDeadzone"`
	Axes           map[string]AxisBinding   `json:"axes"`
	Buttons        map[string]ButtonBinding `json:"buttons"`
}

// AxisBinding maps an axis name to keys and a stick
type AxisBinding struct {
	Negative []string `json:"negative"`
	Positive []string `json:"positive"`
	Stick    string   `json:"stick"` // "leftX", "leftY", "rightX", "rightY" or empty
}

// ButtonBinding maps a virtual button name to keys and gamepad buttons
type ButtonBinding struct {
	Keys    []string `json:"keys"`
	Gamepad []string `json:"gamepad"`
}

// AnimConfig configures the animator graph
type AnimConfig struct {
	ActionClip float64 `json:"actionClip"` // Seconds the action pose is held
}

// GroundProbeConfig locates the feet probe relative to the body
type GroundProbeConfig struct {
	Anchor      entity.Vec3 `yaml:"anchor"`
	HalfExtents entity.Vec3 `yaml:"halfExtents"`
	Layer       string      `yaml:"layer"`
}

// CharacterConfig is the root config for character.yaml
type CharacterConfig struct {
	GroundProbe  GroundProbeConfig `yaml:"groundProbe"`
	MoveSpeed    float64           `yaml:"moveSpeed"`
	JumpImpulse  float64           `yaml:"jumpImpulse"`
	ActionKey    string            `yaml:"actionKey"`
	JumpBindings []string          `yaml:"jumpBindings"`
	Axis         string            `yaml:"axis"`
	TurnDuration float64           `yaml:"turnDuration"` // Seconds
	TurnEasing   string            `yaml:"turnEasing"`
}
