// Package entity holds the value types shared by the character controller
// and the host adapters: vectors, orientations and facing.
package entity

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a world-space vector. Y points up, Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

// VecFrom converts an mgl64 vector
func VecFrom(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl returns v as an mgl64 vector
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return VecFrom(v.Mgl().Add(o.Mgl()))
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return VecFrom(v.Mgl().Sub(o.Mgl()))
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return VecFrom(v.Mgl().Mul(s))
}

// Abs returns the component-wise absolute value
func (v Vec3) Abs() Vec3 {
	return Vec3{mgl64.Abs(v.X), mgl64.Abs(v.Y), mgl64.Abs(v.Z)}
}

// Len returns the Euclidean length
func (v Vec3) Len() float64 {
	return v.Mgl().Len()
}
