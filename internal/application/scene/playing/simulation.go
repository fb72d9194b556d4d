package playing

import (
	"log/slog"
	"slices"

	"github.com/younwookim/turnabout/internal/application/state"
	"github.com/younwookim/turnabout/internal/domain/character"
	"github.com/younwookim/turnabout/internal/domain/entity"
	"github.com/younwookim/turnabout/internal/infrastructure/animation"
	"github.com/younwookim/turnabout/internal/infrastructure/physics"
)

// simulation adapts the controller and the physics world to game.Ticker
type simulation struct {
	ctrl  *character.Controller
	world *physics.World
}

func (s simulation) Update(dt float64) {
	s.ctrl.Update(dt)
}

func (s simulation) FixedUpdate(dt float64) {
	s.ctrl.FixedUpdate(dt)
	s.world.Step(dt)
}

// tap passes input through and remembers what was read during the frame,
// which is exactly what a replay has to reproduce
type tap struct {
	src     character.InputSource
	axes    map[string]float64
	pressed []string
}

func newTap(src character.InputSource) *tap {
	return &tap{src: src, axes: make(map[string]float64)}
}

func (t *tap) Axis(name string) float64 {
	v := t.src.Axis(name)
	t.axes[name] = v
	return v
}

func (t *tap) JustPressed(binding string) bool {
	ok := t.src.JustPressed(binding)
	if ok && !slices.Contains(t.pressed, binding) {
		t.pressed = append(t.pressed, binding)
	}
	return ok
}

func (t *tap) reset() {
	clear(t.axes)
	t.pressed = t.pressed[:0]
}

// Snapshot is the observable character state after a frame
type Snapshot struct {
	Frame    uint64
	Steps    uint64
	State    state.GameState
	Position entity.Vec3
	Velocity entity.Vec3
	Facing   entity.Facing
	Yaw      float64
	Turning  bool
	Grounded bool
	Anim     animation.State
}

// LogValue implements slog.LogValuer
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", s.Frame),
		slog.Uint64("steps", s.Steps),
		slog.String("state", s.State.String()),
		slog.Float64("x", s.Position.X),
		slog.Float64("y", s.Position.Y),
		slog.Float64("vx", s.Velocity.X),
		slog.Float64("vy", s.Velocity.Y),
		slog.String("facing", s.Facing.String()),
		slog.Float64("yaw", s.Yaw),
		slog.Bool("turning", s.Turning),
		slog.Bool("grounded", s.Grounded),
		slog.String("anim", s.Anim.String()),
	)
}
