package main

import (
	"math/rand"
	"testing"

	"github.com/milk9111/hamlets-descent/difficulty"
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/ecs/entity"
	"github.com/milk9111/hamlets-descent/ecs/system"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// newSegmentTestGame builds a game around a handwritten level, skipping the
// window-facing pieces (renderer, pause UI, watcher).
func newSegmentTestGame(t *testing.T, levelSpec *prefabs.LevelSpec) *Game {
	t.Helper()

	bossSpec, err := prefabs.LoadBossSpec()
	if err != nil {
		t.Fatalf("load boss: %v", err)
	}

	w := ecs.NewWorld()
	session, err := entity.BuildLevel(w, levelSpec)
	if err != nil {
		t.Fatalf("build level: %v", err)
	}

	ctrl := difficulty.New()
	spawner := system.NewSpawnSystem(rand.New(rand.NewSource(1)), ctrl, nil, baseWidth)

	return &Game{
		world:      w,
		spawner:    spawner,
		difficulty: ctrl,
		levelSpec:  levelSpec,
		bossSpec:   bossSpec,
		session:    session,
	}
}

func TestBossFirstSegmentSpawnsBossAtStart(t *testing.T) {
	levelSpec := &prefabs.LevelSpec{
		Width:  1600,
		FloorY: 550,
		SpawnX: 100,
		SpawnY: 400,
		Segments: []prefabs.SegmentSpec{
			{Name: "arena", EndX: 800, Boss: true},
			{Name: "aftermath", EndX: 1600},
		},
	}
	g := newSegmentTestGame(t, levelSpec)

	g.enterSegment(levelSpec.SpawnX)

	if !g.bossAlive {
		t.Fatal("a level that opens on a boss arena must spawn its boss immediately")
	}
	if !ecs.IsAlive(g.world, g.boss) {
		t.Fatal("the boss entity must exist")
	}
	bt, ok := ecs.Get(g.world, g.boss, component.TransformComponent.Kind())
	if !ok || bt.X != levelSpec.SpawnX+baseWidth/2 {
		t.Fatalf("expected the boss half a screen past the spawn, got %+v", bt)
	}

	// killing the boss releases the arena
	ecs.DestroyEntity(g.world, g.boss)
	g.updateSegment()

	if g.bossAlive {
		t.Fatal("a dead boss must end the arena segment")
	}
	if g.segment != 1 || g.cleared {
		t.Fatalf("expected to advance to segment 1, got segment=%d cleared=%v", g.segment, g.cleared)
	}
}
