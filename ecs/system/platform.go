package system

import (
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// PlatformSystem moves oscillating platforms linearly between their anchor
// bounds. Displacement from the anchor never exceeds the amplitude.
type PlatformSystem struct{}

func NewPlatformSystem() *PlatformSystem { return &PlatformSystem{} }

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		if !p.Moving || p.Amplitude <= 0 || dt <= 0 {
			return
		}
		if p.Dir == 0 {
			p.Dir = 1
		}

		t.X += p.Speed * p.Dir * dt
		if t.X > p.AnchorX+p.Amplitude {
			t.X = p.AnchorX + p.Amplitude
			p.Dir = -1
		} else if t.X < p.AnchorX-p.Amplitude {
			t.X = p.AnchorX - p.Amplitude
			p.Dir = 1
		}
	})
}
