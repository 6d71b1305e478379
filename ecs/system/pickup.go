package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// PickupSystem grants timed boosts when the player touches a pickup.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem { return &PickupSystem{} }

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, tok := ecs.Get(w, player, component.TransformComponent.Kind())
	body, bok := ecs.Get(w, player, component.KinematicBodyComponent.Kind())
	powerups, pok := ecs.Get(w, player, component.PowerupsComponent.Kind())
	if !tok || !bok || !pok {
		return
	}
	playerBB := body.BB(*pt)

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		bb := cp.BB{L: t.X, B: t.Y, R: t.X + pickup.Width, T: t.Y + pickup.Height}
		if !playerBB.Intersects(bb) {
			return
		}
		switch pickup.Kind {
		case component.PowerupSpeed:
			powerups.Speed = pickup.Duration
		case component.PowerupDamage:
			powerups.Damage = pickup.Duration
		}
		ecs.DestroyEntity(w, e)
	})
}
