package entity

import (
	"fmt"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// BuildLevel creates the static world for a level spec: bounds, platforms,
// placed pickups, the camera, and the session entity. It returns the session
// entity so the game can read counters at segment boundaries.
func BuildLevel(w *ecs.World, spec *prefabs.LevelSpec) (ecs.Entity, error) {
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  spec.Width,
		FloorY: spec.FloorY,
	}); err != nil {
		return 0, err
	}

	for _, p := range spec.Platforms {
		if err := BuildPlatform(w, p); err != nil {
			return 0, err
		}
	}
	for _, p := range spec.Pickups {
		if err := BuildPickup(w, p); err != nil {
			return 0, err
		}
	}

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		FixedScreenX: spec.FixedScreenX,
	}); err != nil {
		return 0, err
	}

	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{
		SpawnX:       spec.SpawnX,
		SpawnY:       spec.SpawnY,
		Achievements: make(map[string]bool),
	}); err != nil {
		return 0, err
	}
	return session, nil
}

// BuildPlatform creates one platform entity.
func BuildPlatform(w *ecs.World, spec prefabs.PlatformSpec) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{
		Width:     spec.Width,
		Height:    spec.Height,
		Moving:    spec.Moving,
		AnchorX:   spec.X,
		Amplitude: spec.Amplitude,
		Speed:     spec.Speed,
		Dir:       1,
	})
}

// BuildPickup creates one powerup pickup entity.
func BuildPickup(w *ecs.World, spec prefabs.PickupSpec) error {
	var kind component.PowerupKind
	switch spec.Kind {
	case "speed":
		kind = component.PowerupSpeed
	case "damage":
		kind = component.PowerupDamage
	default:
		return fmt.Errorf("entity: unknown pickup kind %q", spec.Kind)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:     kind,
		Width:    25,
		Height:   25,
		Duration: spec.Duration,
	})
}
