package physics

import (
	"github.com/solarlune/resolv"
	"github.com/younwookim/turnabout/internal/domain/entity"
)

// Body is a kinematic box moved by the World. It also carries the
// character's orientation, so it serves as both physics body and transform.
type Body struct {
	obj      *resolv.Object
	vel      entity.Vec3
	depth    float64
	mass     float64
	onGround bool
	rotation entity.Quat
}

// Position returns the body centre in world coordinates
func (b *Body) Position() entity.Vec3 {
	return entity.Vec3{
		X: b.obj.X + b.obj.W/2,
		Y: toScreenY(b.obj.Y + b.obj.H/2),
		Z: b.depth,
	}
}

// Velocity returns the world velocity in units per second
func (b *Body) Velocity() entity.Vec3 {
	return b.vel
}

// SetVelocity overwrites the velocity
func (b *Body) SetVelocity(v entity.Vec3) {
	b.vel = v
}

// AddImpulse changes velocity by j / mass
func (b *Body) AddImpulse(j entity.Vec3) {
	b.vel = b.vel.Add(j.Scale(1 / b.mass))
}

// Rotation returns the orientation
func (b *Body) Rotation() entity.Quat {
	return b.rotation
}

// SetRotation sets the orientation
func (b *Body) SetRotation(q entity.Quat) {
	b.rotation = q
}

// OnGround reports whether the last step ended resting on a solid layer
func (b *Body) OnGround() bool {
	return b.onGround
}

// Rect returns the body box in stage pixels (Y down)
func (b *Body) Rect() (x, y, w, h float64) {
	return b.obj.X, b.obj.Y, b.obj.W, b.obj.H
}

// Teleport moves the body so its feet sit at the given stage pixel and
// clears its velocity
func (b *Body) Teleport(feetX, feetY float64) {
	b.obj.X = feetX - b.obj.W/2
	b.obj.Y = feetY - b.obj.H
	b.obj.Update()
	b.vel = entity.Vec3{}
}
