package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hamlets-descent/difficulty"
	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
	"github.com/milk9111/hamlets-descent/ecs/entity"
	"github.com/milk9111/hamlets-descent/ecs/system"
	"github.com/milk9111/hamlets-descent/prefabs"
)

const (
	baseWidth  = 800
	baseHeight = 600

	tickSeconds = 1.0 / 60.0
)

var enemyPrefabFiles = []string{"ghost.yaml", "crow.yaml", "sword_ghost.yaml"}

type Game struct {
	world      *ecs.World
	renderer   *system.Renderer
	spawner    *system.SpawnSystem
	difficulty *difficulty.Controller

	levelSpec  *prefabs.LevelSpec
	bossSpec   *prefabs.BossSpec
	enemySpecs []*prefabs.EnemySpec

	player  ecs.Entity
	session ecs.Entity
	boss    ecs.Entity

	segment   int
	bossAlive bool
	cleared   bool
	paused    bool
	quit      bool
	debug     bool
	watcher   *prefabs.Watcher
	ui        *ebitenui.UI
}

func NewGame(levelName string, debug bool) (*Game, error) {
	if levelName == "" {
		levelName = "act1"
	}
	if !strings.HasSuffix(levelName, ".yaml") {
		levelName += ".yaml"
	}

	levelSpec, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: level: %w", err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("game: player: %w", err)
	}
	bossSpec, err := prefabs.LoadBossSpec()
	if err != nil {
		return nil, fmt.Errorf("game: boss: %w", err)
	}
	enemySpecs := make([]*prefabs.EnemySpec, 0, len(enemyPrefabFiles))
	for _, f := range enemyPrefabFiles {
		spec, err := prefabs.LoadEnemySpec(f)
		if err != nil {
			return nil, fmt.Errorf("game: enemy: %w", err)
		}
		enemySpecs = append(enemySpecs, spec)
	}

	w := ecs.NewWorld()
	session, err := entity.BuildLevel(w, levelSpec)
	if err != nil {
		return nil, fmt.Errorf("game: build level: %w", err)
	}
	player, err := entity.BuildPlayer(w, playerSpec, levelSpec.SpawnX, levelSpec.SpawnY)
	if err != nil {
		return nil, fmt.Errorf("game: build player: %w", err)
	}

	rng := rand.New(rand.NewSource(1))
	ctrl := difficulty.New()
	spawner := system.NewSpawnSystem(rng, ctrl, enemySpecs, baseWidth)

	minionSpec := enemySpecs[0]
	for _, spec := range enemySpecs {
		if spec.Kind == "ghost" {
			minionSpec = spec
			break
		}
	}
	spawnShot := func(w *ecs.World, x, y, vx, vy float64, damage int) {
		if _, err := entity.BuildProjectile(w, x, y, vx, vy, damage); err != nil {
			log.Printf("game: build projectile: %v", err)
		}
	}
	summon := func(w *ecs.World, x, y float64) {
		if _, err := entity.BuildEnemy(w, minionSpec, x, y, ctrl.EnemySpeed()*system.SpeedUnit); err != nil {
			log.Printf("game: summon %s: %v", minionSpec.Name, err)
		}
	}

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewDriftSystem())
	w.AddSystem(system.NewBossSystem(prefabs.LoadScript, spawnShot, summon))
	w.AddSystem(system.NewPlatformSystem())
	w.AddSystem(system.NewKinematicsSystem())
	w.AddSystem(system.NewActorStateSystem())
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(system.NewCombatSystem())
	w.AddSystem(system.NewPickupSystem())
	w.AddSystem(system.NewSessionSystem())
	w.AddSystem(spawner)
	w.AddSystem(system.NewCleanupSystem())
	w.AddSystem(system.NewCameraSystem(rng))

	g := &Game{
		world:      w,
		renderer:   system.NewRenderer(),
		spawner:    spawner,
		difficulty: ctrl,
		levelSpec:  levelSpec,
		bossSpec:   bossSpec,
		enemySpecs: enemySpecs,
		player:     player,
		session:    session,
		debug:      debug,
	}
	g.ui = NewPauseUI(g)
	g.enterSegment(levelSpec.SpawnX)

	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("game: prefab watcher disabled: %v", err)
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.world.Step(tickSeconds)
	g.updateSegment()
	return nil
}

// updateSegment owns segment transitions: spawning the boss, recalculating
// difficulty from the segment's counters, and moving the respawn point
// forward. The difficulty controller runs only here, never per frame.
func (g *Game) updateSegment() {
	if g.cleared || g.segment >= len(g.levelSpec.Segments) {
		return
	}
	seg := g.levelSpec.Segments[g.segment]

	if seg.Boss {
		if !g.bossAlive {
			return
		}
		if !ecs.IsAlive(g.world, g.boss) {
			g.bossAlive = false
			g.advanceSegment(seg.EndX)
		}
		return
	}

	pt, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok || pt.X < seg.EndX {
		return
	}
	g.advanceSegment(seg.EndX)
}

func (g *Game) advanceSegment(boundaryX float64) {
	session, _ := ecs.Get(g.world, g.session, component.SessionComponent.Kind())
	if session != nil {
		g.difficulty.Update(session.SegmentDeaths, session.SegmentElapsed)
		session.SegmentDeaths = 0
		session.SegmentElapsed = 0
		session.SpawnX = boundaryX
	}

	g.segment++
	g.enterSegment(boundaryX)
}

// enterSegment applies the current segment's mode. A boss segment spawns the
// boss and stops ambient spawning, whether it was reached by crossing a
// boundary or is the first segment of the level.
func (g *Game) enterSegment(boundaryX float64) {
	if g.segment >= len(g.levelSpec.Segments) {
		g.cleared = true
		g.spawner.SetEnabled(false)
		return
	}

	seg := g.levelSpec.Segments[g.segment]
	if !seg.Boss {
		g.spawner.SetEnabled(true)
		return
	}

	g.spawner.SetEnabled(false)
	boss, err := entity.BuildBoss(g.world, g.bossSpec, boundaryX+baseWidth/2, g.bossSpec.HoverY)
	if err != nil {
		log.Printf("game: build boss: %v", err)
		return
	}
	g.boss = boss
	g.bossAlive = true
}

// drainWatcher applies prefab edits to the running game. Enemy tuning
// refreshes in place so the next spawn uses it; boss scripts reload on
// their own since they are read per decision.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err := <-g.watcher.Errors:
			log.Printf("game: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	for i, f := range enemyPrefabFiles {
		if !strings.HasSuffix(name, f) {
			continue
		}
		spec, err := prefabs.LoadEnemySpec(f)
		if err != nil {
			log.Printf("game: reload %s: %v", f, err)
			return
		}
		*g.enemySpecs[i] = *spec
		log.Printf("game: reloaded %s", f)
		return
	}

	if strings.HasSuffix(name, "player.yaml") {
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("game: reload player.yaml: %v", err)
			return
		}
		if body, ok := ecs.Get(g.world, g.player, component.KinematicBodyComponent.Kind()); ok {
			body.MoveSpeed = spec.MoveSpeed
			body.JumpStrength = spec.JumpStrength
			body.CoyoteTime = spec.CoyoteTime
			body.JumpBuffer = spec.JumpBufferTime
			body.DashSpeed = spec.DashSpeed
			body.DashDuration = spec.DashDuration
			body.DashCooldown = spec.DashCooldown
		}
		log.Printf("game: reloaded player.yaml")
		return
	}

	if strings.HasSuffix(name, "boss.yaml") {
		spec, err := prefabs.LoadBossSpec()
		if err != nil {
			log.Printf("game: reload boss.yaml: %v", err)
			return
		}
		*g.bossSpec = *spec
		log.Printf("game: reloaded boss.yaml")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if session, ok := ecs.Get(g.world, g.session, component.SessionComponent.Kind()); ok {
		health := 0
		if h, hok := ecs.Get(g.world, g.player, component.HealthComponent.Kind()); hok {
			health = h.Current
		}
		hud := fmt.Sprintf("Score: %d   Health: %d", session.Score, health)
		if session.Combo > 0 {
			hud += fmt.Sprintf("   COMBO x%d", session.Combo)
		}
		if g.cleared {
			hud += "   CLEAR"
		}
		if g.debug {
			hud += fmt.Sprintf("\nFPS: %.1f   diff: %.2f   speed: %.2f   deaths: %d",
				ebiten.ActualFPS(), g.difficulty.Difficulty(), g.difficulty.EnemySpeed(), session.Deaths)
		}
		ebitenutil.DebugPrint(screen, hud)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
