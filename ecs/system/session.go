package system

import (
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// SessionSystem runs the per-step countdowns: combo expiry, powerup boosts,
// invulnerability windows, and the segment clock.
type SessionSystem struct{}

func NewSessionSystem() *SessionSystem { return &SessionSystem{} }

func (s *SessionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.SessionComponent.Kind(), func(_ ecs.Entity, session *component.Session) {
		session.SegmentElapsed += dt
		session.ComboTimer = max(0, session.ComboTimer-dt)
		if session.ComboTimer == 0 {
			session.Combo = 0
		}
	})

	ecs.ForEach(w, component.HealthComponent.Kind(), func(_ ecs.Entity, h *component.Health) {
		h.Invulnerable = max(0, h.Invulnerable-dt)
	})

	ecs.ForEach(w, component.PowerupsComponent.Kind(), func(_ ecs.Entity, p *component.Powerups) {
		p.Speed = max(0, p.Speed-dt)
		p.Damage = max(0, p.Damage-dt)
	})
}
