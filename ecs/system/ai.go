package system

import (
	"math"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// DriftSystem sets the velocity of drifting enemies each step, before the
// kinematics system integrates it. Bosses are driven by the boss system
// instead.
type DriftSystem struct{}

func NewDriftSystem() *DriftSystem { return &DriftSystem{} }

func (s *DriftSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.DriftComponent.Kind(), component.KinematicBodyComponent.Kind(), func(_ ecs.Entity, d *component.Drift, body *component.KinematicBody) {
		body.Vel.X = -d.Speed
		body.FacingLeft = true

		if d.Bob {
			d.BobPhase += d.BobRate * dt
			body.Vel.Y = math.Sin(d.BobPhase) * d.BobAmplitude
		}
	})
}
