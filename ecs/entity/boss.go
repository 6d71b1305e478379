package entity

import (
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// BuildBoss creates the boss for a boss segment.
func BuildBoss(w *ecs.World, spec *prefabs.BossSpec, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Width:      spec.Width,
		Height:     spec.Height,
		MoveSpeed:  spec.MoveSpeed,
		Flying:     true,
		FacingLeft: true,
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
		Kind:          component.ActorBoss,
		ContactDamage: spec.ContactDamage,
		BlockedDamage: spec.BlockedDamage,
		HitPoints:     spec.HitPoints,
		KillBonus:     spec.KillBonus,
		InvulnWindow:  spec.InvulnWindow,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{
		Phase:            component.BossPhase1,
		Phase1Interval:   spec.Phase1Interval,
		Phase2Interval:   spec.Phase2Interval,
		Script:           spec.Script,
		HoverY:           spec.HoverY,
		SwoopSpeed:       spec.SwoopSpeed,
		ProjectileSpeed:  spec.ProjectileSpeed,
		ProjectileDamage: spec.ProjectileDamage,
		VolleySize:       spec.VolleySize,
		SummonCount:      spec.SummonCount,
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
