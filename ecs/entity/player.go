package entity

import (
	"github.com/milk9111/hamlets-descent/assets"
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// BuildPlayer creates the player entity at the spawn point from its prefab.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Width:        spec.Width,
		Height:       spec.Height,
		MoveSpeed:    spec.MoveSpeed,
		JumpStrength: spec.JumpStrength,
		CoyoteTime:   spec.CoyoteTime,
		JumpBuffer:   spec.JumpBufferTime,
		DashSpeed:    spec.DashSpeed,
		DashDuration: spec.DashDuration,
		DashCooldown: spec.DashCooldown,
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
		Kind:          component.ActorPlayer,
		BlockedDamage: spec.BlockedDamage,
		InvulnWindow:  spec.InvulnWindow,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PowerupsComponent.Kind(), &component.Powerups{}); err != nil {
		return 0, err
	}

	hitboxes := buildHitboxes(spec.Hitboxes)
	if err := ecs.Add(w, e, component.HitboxComponent.Kind(), &hitboxes); err != nil {
		return 0, err
	}
	hurtboxes := buildHurtboxes(spec.Hurtboxes)
	if err := ecs.Add(w, e, component.HurtboxComponent.Kind(), &hurtboxes); err != nil {
		return 0, err
	}

	if err := addAnimation(w, e, spec.Animation); err != nil {
		return 0, err
	}
	// draw the player above enemies and pickups
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Layer = 1
	}
	return e, nil
}

func buildHitboxes(specs []prefabs.HitboxSpec) []component.Hitbox {
	out := make([]component.Hitbox, 0, len(specs))
	for _, s := range specs {
		out = append(out, component.Hitbox{
			Width:   s.Width,
			Height:  s.Height,
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
			Damage:  s.Damage,
			Anim:    s.Anim,
			Frames:  append([]int(nil), s.Frames...),
		})
	}
	return out
}

func buildHurtboxes(specs []prefabs.HurtboxSpec) []component.Hurtbox {
	out := make([]component.Hurtbox, 0, len(specs))
	for _, s := range specs {
		out = append(out, component.Hurtbox{
			Width:   s.Width,
			Height:  s.Height,
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
		})
	}
	return out
}

func addAnimation(w *ecs.World, e ecs.Entity, spec prefabs.AnimationSpec) error {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for _, d := range spec.Defs {
		defs[d.Name] = component.AnimationDef{
			Name:       d.Name,
			Row:        d.Row,
			FrameCount: d.FrameCount,
			FrameW:     d.FrameW,
			FrameH:     d.FrameH,
			FrameTime:  d.FrameTime,
			Loop:       d.Loop,
		}
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:     assets.LoadImage(spec.Sheet),
		Defs:      defs,
		Current:   "idle",
		StageRows: spec.StageRows,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
}
