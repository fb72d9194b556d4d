// Package input is the host input layer: named axes with keyboard smoothing
// and analog sticks, and edge-detected bindings, read from Ebitengine.
package input

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"RightBottom":   ebiten.StandardGamepadButtonRightBottom,
	"RightRight":    ebiten.StandardGamepadButtonRightRight,
	"RightLeft":     ebiten.StandardGamepadButtonRightLeft,
	"RightTop":      ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":  ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight": ebiten.StandardGamepadButtonFrontTopRight,
	"CenterRight":   ebiten.StandardGamepadButtonCenterRight,
	"LeftTop":       ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":    ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":      ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":     ebiten.StandardGamepadButtonLeftRight,
}

var sticks = map[string]ebiten.StandardGamepadAxis{
	"leftX":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"leftY":  ebiten.StandardGamepadAxisLeftStickVertical,
	"rightX": ebiten.StandardGamepadAxisRightStickHorizontal,
	"rightY": ebiten.StandardGamepadAxisRightStickVertical,
}

// binding is a resolved set of keys and gamepad buttons
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

type axis struct {
	negative []ebiten.Key
	positive []ebiten.Key
	stick    ebiten.StandardGamepadAxis
	hasStick bool
	state    AxisState
}

// Source reads Ebitengine input. Call Poll once per frame before anything
// queries it.
type Source struct {
	cfg      config.InputConfig
	axes     map[string]*axis
	bindings map[string]binding
	warned   map[string]struct{}
}

// New resolves the key and button names in cfg
func New(cfg config.InputConfig) (*Source, error) {
	s := &Source{
		cfg:      cfg,
		axes:     make(map[string]*axis, len(cfg.Axes)),
		bindings: make(map[string]binding, len(cfg.Buttons)),
		warned:   make(map[string]struct{}),
	}

	for name, ab := range cfg.Axes {
		neg, err := parseKeys(ab.Negative)
		if err != nil {
			return nil, fmt.Errorf("axis %s: %w", name, err)
		}
		pos, err := parseKeys(ab.Positive)
		if err != nil {
			return nil, fmt.Errorf("axis %s: %w", name, err)
		}
		a := &axis{negative: neg, positive: pos}
		if ab.Stick != "" {
			stick, ok := sticks[ab.Stick]
			if !ok {
				return nil, fmt.Errorf("axis %s: unknown stick %q", name, ab.Stick)
			}
			a.stick = stick
			a.hasStick = true
		}
		s.axes[name] = a
	}

	for name, bb := range cfg.Buttons {
		b, err := parseBinding(bb)
		if err != nil {
			return nil, fmt.Errorf("button %s: %w", name, err)
		}
		s.bindings[name] = b
	}

	return s, nil
}

// ParseKey converts a key name such as "E", "Space" or "ArrowLeft"
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseBinding(bb config.ButtonBinding) (binding, error) {
	keys, err := parseKeys(bb.Keys)
	if err != nil {
		return binding{}, err
	}
	b := binding{keys: keys}
	for _, n := range bb.Gamepad {
		btn, ok := gamepadButtons[n]
		if !ok {
			return binding{}, fmt.Errorf("unknown gamepad button %q", n)
		}
		b.buttons = append(b.buttons, btn)
	}
	return b, nil
}

// resolve returns the binding for a virtual button name or a bare key name.
// Bare keys are cached on first use.
func (s *Source) resolve(name string) (binding, bool) {
	if b, ok := s.bindings[name]; ok {
		return b, true
	}
	k, err := ParseKey(name)
	if err != nil {
		if _, seen := s.warned[name]; !seen {
			s.warned[name] = struct{}{}
			slog.Warn("unknown input binding", "binding", name)
		}
		return binding{}, false
	}
	b := binding{keys: []ebiten.Key{k}}
	s.bindings[name] = b
	return b, true
}

// Poll advances axis smoothing by dt
func (s *Source) Poll(dt float64) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for _, a := range s.axes {
		dir := direction(anyKeyPressed(a.negative), anyKeyPressed(a.positive))
		a.state.Step(dir, dt, s.cfg.Sensitivity, s.cfg.Gravity, s.cfg.Snap)

		if !a.hasStick {
			continue
		}
		if v, ok := stickValue(a.stick, s.cfg.AnalogDeadzone); ok {
			a.state.Override(v)
		}
	}
}

// Axis returns the named axis value; unknown axes read zero
func (s *Source) Axis(name string) float64 {
	a, ok := s.axes[name]
	if !ok {
		return 0
	}
	return a.state.Value
}

// JustPressed reports a press edge on any key or gamepad button of binding
func (s *Source) JustPressed(name string) bool {
	b, ok := s.resolve(name)
	if !ok {
		return false
	}
	for _, k := range b.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// AxisNames returns the configured axis names in sorted order
func (s *Source) AxisNames() []string {
	names := make([]string, 0, len(s.axes))
	for name := range s.axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// stickValue returns the first stick reading outside the deadzone
func stickValue(stick ebiten.StandardGamepadAxis, deadzone float64) (float64, bool) {
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, stick)
		if math.Abs(v) >= deadzone {
			return v, true
		}
	}
	return 0, false
}
