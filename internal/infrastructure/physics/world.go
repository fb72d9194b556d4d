// Package physics is the host physics layer: a resolv collision space built
// from stage geometry, kinematic bodies integrated on a fixed step, and box
// overlap queries against named collision layers.
//
// Stage geometry and resolv objects live in screen pixels with Y down. The
// public API speaks world coordinates (entity.Vec3, Y up); see toScreenY.
package physics

import (
	"github.com/solarlune/resolv"
	"github.com/younwookim/turnabout/internal/domain/entity"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

// probeTag marks the scratch object used for overlap queries
const probeTag = "probe"

// World owns the collision space and every body in it
type World struct {
	cfg    config.WorldConfig
	space  *resolv.Space
	bodies []*Body
	probe  *resolv.Object
	width  int
	height int
}

// NewWorld builds a collision space from stage geometry
func NewWorld(cfg config.WorldConfig, stage *config.Stage) *World {
	space := resolv.NewSpace(stage.Width, stage.Height, cfg.CellSize, cfg.CellSize)

	for _, r := range stage.Solids {
		space.Add(resolv.NewObject(r.X, r.Y, r.W, r.H, r.Layer))
	}

	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)

	return &World{
		cfg:    cfg,
		space:  space,
		probe:  probe,
		width:  stage.Width,
		height: stage.Height,
	}
}

// Size returns the stage size in pixels
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Space exposes the collision space for debug drawing
func (w *World) Space() *resolv.Space {
	return w.space
}

// Bodies returns the bodies in the world
func (w *World) Bodies() []*Body {
	return w.bodies
}

// NewBody adds a body whose feet (bottom centre) sit at the given stage pixel
func (w *World) NewBody(feetX, feetY float64) *Body {
	bc := w.cfg.Body
	obj := resolv.NewObject(feetX-bc.Width/2, feetY-bc.Height, bc.Width, bc.Height, "body")
	w.space.Add(obj)

	mass := bc.Mass
	if mass <= 0 {
		mass = 1
	}
	b := &Body{
		obj:      obj,
		mass:     mass,
		rotation: entity.Identity,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Remove takes a body out of the world
func (w *World) Remove(b *Body) {
	w.space.Remove(b.obj)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Step integrates every body by dt seconds
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		w.stepBody(b, dt)
	}
}

// stepBody applies gravity and sweeps the body against solid layers,
// horizontal axis first
func (w *World) stepBody(b *Body, dt float64) {
	solid := w.cfg.SolidLayers

	// Gravity pulls toward -Y in world space
	b.vel.Y -= w.cfg.Gravity * dt
	if w.cfg.MaxFallSpeed > 0 && b.vel.Y < -w.cfg.MaxFallSpeed {
		b.vel.Y = -w.cfg.MaxFallSpeed
	}

	b.onGround = false
	b.depth += b.vel.Z * dt

	dx := b.vel.X * dt
	if dx != 0 && len(solid) > 0 {
		if check := b.obj.Check(dx, 0, solid...); check != nil {
			if solids := check.ObjectsByTags(solid...); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				b.vel.X = 0
			}
		}
	}
	b.obj.X += dx

	// Screen-space vertical displacement
	dy := -b.vel.Y * dt
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}
	if len(solid) == 0 {
		b.obj.Y += dy
		b.obj.Update()
		return
	}
	if check := b.obj.Check(0, checkDist, solid...); check != nil {
		if solids := check.ObjectsByTags(solid...); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			if b.vel.Y <= 0 {
				b.onGround = true
			}
			b.vel.Y = 0
		}
	}
	b.obj.Y += dy

	b.obj.Update()
}

// Overlaps reports whether a box (world centre and half extents) touches
// any object on layer. Depth is ignored: the stage is a single plane.
func (w *World) Overlaps(center, halfExtents entity.Vec3, layer string) bool {
	he := halfExtents.Abs()
	x := center.X - he.X
	y := toScreenY(center.Y) - he.Y
	wd := 2 * he.X
	ht := 2 * he.Y

	w.probe.X = x
	w.probe.Y = y
	w.probe.W = wd
	w.probe.H = ht
	w.probe.Update()

	check := w.probe.Check(0, 0, layer)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(layer) {
		if rectsOverlap(x, y, wd, ht, obj.X, obj.Y, obj.W, obj.H) {
			return true
		}
	}
	return false
}

// rectsOverlap is a strict AABB test: boxes that only share an edge do not
// overlap, so a body flush against a wall is not grounded by it
func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// toScreenY converts a world Y (up) to a screen Y (down) and back
func toScreenY(y float64) float64 {
	return -y
}
