package character

import (
	"fmt"

	"github.com/younwookim/turnabout/internal/domain/entity"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

type fakeInput struct {
	axis     float64
	axisName string
	pressed  map[string]bool
}

func (f *fakeInput) Axis(name string) float64 {
	f.axisName = name
	return f.axis
}

func (f *fakeInput) JustPressed(binding string) bool {
	return f.pressed[binding]
}

// press arms bindings for the next frame only
func (f *fakeInput) press(bindings ...string) {
	f.pressed = make(map[string]bool, len(bindings))
	for _, b := range bindings {
		f.pressed[b] = true
	}
}

type fakeBody struct {
	pos      entity.Vec3
	vel      entity.Vec3
	impulses []entity.Vec3
}

func (f *fakeBody) Position() entity.Vec3     { return f.pos }
func (f *fakeBody) Velocity() entity.Vec3     { return f.vel }
func (f *fakeBody) SetVelocity(v entity.Vec3) { f.vel = v }
func (f *fakeBody) AddImpulse(j entity.Vec3) {
	f.impulses = append(f.impulses, j)
	f.vel = f.vel.Add(j)
}

type fakeProbe struct {
	grounded   bool
	center     entity.Vec3
	half       entity.Vec3
	layer      string
	queryCount int
}

func (f *fakeProbe) Overlaps(center, halfExtents entity.Vec3, layer string) bool {
	f.center = center
	f.half = halfExtents
	f.layer = layer
	f.queryCount++
	return f.grounded
}

// fakeAnim records every call in order
type fakeAnim struct {
	bools    map[string]bool
	triggers map[string]bool
	calls    []string
}

func newFakeAnim() *fakeAnim {
	return &fakeAnim{bools: make(map[string]bool), triggers: make(map[string]bool)}
}

func (f *fakeAnim) SetBool(name string, value bool) {
	f.bools[name] = value
	f.calls = append(f.calls, fmt.Sprintf("SetBool(%s,%t)", name, value))
}

func (f *fakeAnim) SetTrigger(name string) {
	f.triggers[name] = true
	f.calls = append(f.calls, "SetTrigger("+name+")")
}

func (f *fakeAnim) ResetTrigger(name string) {
	delete(f.triggers, name)
	f.calls = append(f.calls, "ResetTrigger("+name+")")
}

type fakeTransform struct {
	rot  entity.Quat
	sets int
}

func (f *fakeTransform) Rotation() entity.Quat { return f.rot }
func (f *fakeTransform) SetRotation(q entity.Quat) {
	f.rot = q
	f.sets++
}

type harness struct {
	input     *fakeInput
	body      *fakeBody
	probe     *fakeProbe
	anim      *fakeAnim
	transform *fakeTransform
	cfg       *config.CharacterConfig
	ctrl      *Controller
}

func createTestConfig() *config.CharacterConfig {
	cfg := config.DefaultCharacter()
	cfg.MoveSpeed = 5
	cfg.JumpImpulse = 260
	cfg.TurnDuration = 1.0
	return &cfg
}

func newHarness(cfg *config.CharacterConfig, baseYaw float64) *harness {
	h := &harness{
		input:     &fakeInput{},
		body:      &fakeBody{pos: entity.Vec3{X: 100, Y: 50}},
		probe:     &fakeProbe{grounded: true},
		anim:      newFakeAnim(),
		transform: &fakeTransform{rot: entity.FromYaw(baseYaw)},
		cfg:       cfg,
	}
	h.ctrl = New(Deps{
		Input:     h.input,
		Body:      h.body,
		Probe:     h.probe,
		Anim:      h.anim,
		Transform: h.transform,
	}, cfg)
	return h
}

// frame runs one decision pass with the given axis value
func (h *harness) frame(axis, dt float64, pressed ...string) {
	h.input.axis = axis
	h.input.press(pressed...)
	h.anim.calls = nil
	h.ctrl.Update(dt)
}
