package entity

import (
	"fmt"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// BuildEnemy creates a drifting enemy from its prefab. speed is the already
// difficulty-scaled drift speed in px/s, fixed for the enemy's lifetime.
func BuildEnemy(w *ecs.World, spec *prefabs.EnemySpec, x, y, speed float64) (ecs.Entity, error) {
	kind, err := kindFromName(spec.Kind)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Flying:     spec.Flying,
		FacingLeft: true,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DriftComponent.Kind(), &component.Drift{
		Speed:        speed * spec.SpeedScale,
		Bob:          spec.Bob,
		BobAmplitude: spec.BobAmplitude,
		BobRate:      spec.BobRate,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Kind:          kind,
		ContactDamage: spec.ContactDamage,
		BlockedDamage: spec.BlockedDamage,
		HitPoints:     spec.HitPoints,
		KillBonus:     spec.KillBonus,
		InvulnWindow:  spec.InvulnWindow,
	}); err != nil {
		return 0, err
	}
	hurtboxes := buildHurtboxes(spec.Hurtboxes)
	if err := ecs.Add(w, e, component.HurtboxComponent.Kind(), &hurtboxes); err != nil {
		return 0, err
	}
	if err := addAnimation(w, e, spec.Animation); err != nil {
		return 0, err
	}
	return e, nil
}

func kindFromName(name string) (component.ActorKind, error) {
	switch name {
	case "ghost":
		return component.ActorGhost, nil
	case "crow":
		return component.ActorCrow, nil
	case "sword_ghost":
		return component.ActorSwordGhost, nil
	default:
		return 0, fmt.Errorf("entity: unknown enemy kind %q", name)
	}
}
