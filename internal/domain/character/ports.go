package character

import "github.com/younwookim/turnabout/internal/domain/entity"

// InputSource answers per-frame input queries.
type InputSource interface {
	// Axis returns the named axis value in [-1, 1].
	Axis(name string) float64
	// JustPressed reports whether the binding went down this frame.
	JustPressed(binding string) bool
}

// Body is the physics body the controller drives.
type Body interface {
	Position() entity.Vec3
	Velocity() entity.Vec3
	SetVelocity(v entity.Vec3)
	// AddImpulse applies an instantaneous change in momentum.
	AddImpulse(j entity.Vec3)
}

// GroundProbe tests a box volume against a collision layer.
type GroundProbe interface {
	Overlaps(center, halfExtents entity.Vec3, layer string) bool
}

// Animator receives animation parameters.
type Animator interface {
	SetBool(name string, value bool)
	// SetTrigger arms a one-shot parameter until it is consumed or reset.
	SetTrigger(name string)
	ResetTrigger(name string)
}

// Transform holds the character's orientation.
type Transform interface {
	Rotation() entity.Quat
	SetRotation(q entity.Quat)
}
