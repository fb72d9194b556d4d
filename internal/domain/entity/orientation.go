package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a unit quaternion describing an orientation.
// The zero value is not valid; use Identity or FromYaw.
type Quat mgl64.Quat

// Identity is the orientation with no rotation.
var Identity = Quat(mgl64.QuatIdent())

var yAxis = mgl64.Vec3{0, 1, 0}

// FromYaw returns the rotation of deg degrees about the vertical (Y) axis.
func FromYaw(deg float64) Quat {
	return Quat(mgl64.QuatRotate(mgl64.DegToRad(deg), yAxis))
}

// Yaw returns the rotation about the vertical axis in degrees, normalized to [0, 360).
// Only meaningful for orientations that rotate purely about Y.
func (q Quat) Yaw() float64 {
	deg := mgl64.RadToDeg(2 * math.Atan2(q.V.Y(), q.W))
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quat) Dot(o Quat) float64 {
	return mgl64.Quat(q).Dot(mgl64.Quat(o))
}

// Mul returns the composition q * o (o applied first).
func (q Quat) Mul(o Quat) Quat {
	return Quat(mgl64.Quat(q).Mul(mgl64.Quat(o)))
}

// Normalize returns q scaled to unit length. A zero quaternion yields Identity.
func (q Quat) Normalize() Quat {
	return Quat(mgl64.Quat(q).Normalize())
}

// Lerp interpolates from a to b by t (clamped to [0, 1]) along the shorter
// arc and normalizes the result.
func Lerp(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mb := mgl64.Quat(b)
	if a.Dot(b) < 0 {
		mb = mb.Scale(-1)
	}
	return Quat(mgl64.QuatNlerp(mgl64.Quat(a), mb, t))
}

// AngleTo returns the angle in degrees between two orientations.
func (q Quat) AngleTo(o Quat) float64 {
	d := mgl64.Clamp(mgl64.Abs(q.Dot(o)), 0, 1)
	return mgl64.RadToDeg(2 * math.Acos(d))
}
