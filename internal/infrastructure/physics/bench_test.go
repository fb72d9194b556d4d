package physics

import (
	"testing"

	"github.com/younwookim/turnabout/internal/domain/entity"
)

func BenchmarkWorld_Step(b *testing.B) {
	w := NewWorld(createTestWorldConfig(), createTestStage())
	body := w.NewBody(24, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%50 == 0 {
			body.Teleport(24, 32)
			body.SetVelocity(entity.Vec3{X: 40})
		}
		w.Step(0.02)
	}
}

func BenchmarkWorld_Overlaps(b *testing.B) {
	w := NewWorld(createTestWorldConfig(), createTestStage())
	center := entity.Vec3{X: 24, Y: -32}
	half := entity.Vec3{X: 6, Y: 2, Z: 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Overlaps(center, half, "Ground")
	}
}
