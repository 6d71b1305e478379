package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/assets"
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

const (
	projectileSize   = 16.0
	projectileSprite = "projectile.png"
)

// BuildProjectile creates a boss shot centered on (x, y), flying with the
// given velocity until it hits the player or leaves the level.
func BuildProjectile(w *ecs.World, x, y, vx, vy float64, damage int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: x - projectileSize/2,
		Y: y - projectileSize/2,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Width:      projectileSize,
		Height:     projectileSize,
		Flying:     true,
		Vel:        cp.Vector{X: vx, Y: vy},
		FacingLeft: vx < 0,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Damage: damage,
	}); err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: assets.LoadImage(projectileSprite),
	})
}
