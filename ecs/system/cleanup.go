package system

import (
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// how far past the camera's left edge an enemy may drift before removal
const despawnMargin = 200.0

// CleanupSystem removes enemies that have scrolled out of play and
// projectiles that have left the level. Bosses are exempt; they only leave
// by dying.
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem { return &CleanupSystem{} }

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	leftEdge := 0.0
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, cok := ecs.Get(w, camEnt, component.CameraComponent.Kind()); cok {
			leftEdge = cam.OffsetX
		}
	}

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, t *component.Transform, body *component.KinematicBody) {
		if actor.Kind == component.ActorPlayer || actor.Kind == component.ActorBoss {
			return
		}
		if t.X+body.Width < leftEdge-despawnMargin {
			ecs.DestroyEntity(w, e)
		}
	})

	bounds := component.LevelBounds{Width: 1e9, FloorY: 1e9}
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if lb, lok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); lok {
			bounds = *lb
		}
	}
	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, _ *component.Projectile, t *component.Transform, body *component.KinematicBody) {
		if t.X+body.Width < -despawnMargin || t.X > bounds.Width+despawnMargin ||
			t.Y+body.Height < -despawnMargin || t.Y > bounds.FloorY+despawnMargin {
			ecs.DestroyEntity(w, e)
		}
	})
}
