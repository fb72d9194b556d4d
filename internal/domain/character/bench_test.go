package character

import (
	"testing"

	"github.com/younwookim/turnabout/internal/domain/entity"
)

func BenchmarkController_Update(b *testing.B) {
	h := newHarness(createTestConfig(), 0)
	h.input.pressed = map[string]bool{"E": true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate direction so every few frames a turn restarts
		if i%8 < 4 {
			h.input.axis = 1
		} else {
			h.input.axis = -1
		}
		h.anim.calls = h.anim.calls[:0]
		h.ctrl.Update(1.0 / 60.0)
		h.ctrl.FixedUpdate(0.02)
	}
}

func BenchmarkTurn_Advance(b *testing.B) {
	var turn Turn
	for i := 0; i < b.N; i++ {
		if !turn.Active() {
			turn.Begin(entity.Identity, entity.FromYaw(180), 0.2, nil)
		}
		turn.Advance(1.0 / 60.0)
	}
}
