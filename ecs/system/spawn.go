package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/hamlets-descent/difficulty"
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/ecs/entity"
	"github.com/milk9111/hamlets-descent/prefabs"
)

// SpeedUnit converts the difficulty controller's speed knob to px/s of
// enemy drift.
const SpeedUnit = 60.0

// SpawnSystem rolls the spawn probability each step and creates enemies
// ahead of the player's view. The probability and drift speed are the
// difficulty controller's knobs, read at spawn time; an enemy keeps the
// speed it spawned with.
type SpawnSystem struct {
	rng        *rand.Rand
	difficulty *difficulty.Controller
	specs      []*prefabs.EnemySpec
	screenW    float64
	enabled    bool
}

func NewSpawnSystem(rng *rand.Rand, ctrl *difficulty.Controller, specs []*prefabs.EnemySpec, screenW float64) *SpawnSystem {
	return &SpawnSystem{
		rng:        rng,
		difficulty: ctrl,
		specs:      specs,
		screenW:    screenW,
		enabled:    true,
	}
}

// SetEnabled pauses spawning, e.g. during a boss segment.
func (s *SpawnSystem) SetEnabled(enabled bool) { s.enabled = enabled }

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || !s.enabled || len(s.specs) == 0 {
		return
	}
	if s.rng.Float64() >= s.difficulty.SpawnRate() {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	floorY := 550.0
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if lb, lok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); lok {
			floorY = lb.FloorY
		}
	}

	spec := s.specs[s.rng.Intn(len(s.specs))]
	x := pt.X + s.screenW
	y := floorY - spec.Height - s.rng.Float64()*200
	speed := s.difficulty.EnemySpeed() * SpeedUnit

	if _, err := entity.BuildEnemy(w, spec, x, y, speed); err != nil {
		log.Printf("spawn: build %s: %v", spec.Name, err)
	}
}
