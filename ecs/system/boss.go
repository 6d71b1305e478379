package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// Boss patterns a script may choose from. Hover, swoop and retreat are
// movement; shoot and summon act once when chosen, then hover.
const (
	PatternHover   = "hover"
	PatternSwoop   = "swoop"
	PatternRetreat = "retreat"
	PatternShoot   = "shoot"
	PatternSummon  = "summon"
)

const defaultVolleySize = 8

// ScriptLoader resolves a script name to its source. Wired to the prefabs
// package so scripts hot-reload with the rest of the tuning data.
type ScriptLoader func(name string) ([]byte, error)

// ProjectileSpawner creates one shot centered on (x, y) flying with the
// given velocity.
type ProjectileSpawner func(w *ecs.World, x, y, vx, vy float64, damage int)

// MinionSummoner creates one minion at (x, y).
type MinionSummoner func(w *ecs.World, x, y float64)

// BossSystem owns the boss phase machine and its attack-pattern timer. The
// phase transition is one-way: phase 1 until health drops below half, then
// phase 2 until death. Which pattern runs between timer expiries is decided
// by an embedded tengo script, so phases can be rebalanced without a
// rebuild.
type BossSystem struct {
	loadScript ScriptLoader
	spawnShot  ProjectileSpawner
	summon     MinionSummoner
}

func NewBossSystem(loadScript ScriptLoader, spawnShot ProjectileSpawner, summon MinionSummoner) *BossSystem {
	return &BossSystem{loadScript: loadScript, spawnShot: spawnShot, summon: summon}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	playerX, playerY, hasPlayer := playerPosition(w)

	ecs.ForEach4(w,
		component.BossComponent.Kind(),
		component.HealthComponent.Kind(),
		component.TransformComponent.Kind(),
		component.KinematicBodyComponent.Kind(),
		func(e ecs.Entity, boss *component.Boss, health *component.Health, t *component.Transform, body *component.KinematicBody) {
			if boss.Phase == 0 {
				boss.Phase = component.BossPhase1
			}
			// one-way transition, no return to phase 1
			if boss.Phase == component.BossPhase1 && health.Current*2 < health.Max {
				boss.Phase = component.BossPhase2
			}

			boss.PatternTimer -= dt
			if boss.PatternTimer <= 0 {
				boss.Pattern, boss.PatternTimer = s.choosePattern(boss, health, t, playerX, playerY)
				s.startPattern(w, boss, t, body)
			}

			if !hasPlayer {
				body.Vel.X = 0
				body.Vel.Y = 0
				return
			}
			applyPattern(boss, body, t, playerX, playerY)
			body.FacingLeft = playerX < t.X
		},
	)
}

// choosePattern asks the boss script for the next pattern and delay. Script
// failures degrade to a fixed rotation rather than stopping the fight.
func (s *BossSystem) choosePattern(boss *component.Boss, health *component.Health, t *component.Transform, playerX, playerY float64) (string, float64) {
	interval := boss.Phase1Interval
	if boss.Phase == component.BossPhase2 {
		interval = boss.Phase2Interval
	}

	pattern, scriptInterval, err := s.runScript(boss, health, t, playerX, playerY)
	if err != nil {
		log.Printf("boss: pattern script %q: %v", boss.Script, err)
		return fallbackPattern(boss), interval
	}
	if scriptInterval > 0 {
		interval = scriptInterval
	}
	return pattern, interval
}

func (s *BossSystem) runScript(boss *component.Boss, health *component.Health, t *component.Transform, playerX, playerY float64) (string, float64, error) {
	if s.loadScript == nil || boss.Script == "" {
		return "", 0, fmt.Errorf("no script configured")
	}
	src, err := s.loadScript(boss.Script)
	if err != nil {
		return "", 0, fmt.Errorf("load: %w", err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	_ = script.Add("phase", int(boss.Phase))
	_ = script.Add("health_frac", float64(health.Current)/float64(max(1, health.Max)))
	_ = script.Add("distance", math.Hypot(playerX-t.X, playerY-t.Y))

	compiled, err := script.Run()
	if err != nil {
		return "", 0, fmt.Errorf("run: %w", err)
	}

	result := compiled.Get("result").Map()
	pattern, _ := result["pattern"].(string)
	if pattern == "" {
		return "", 0, fmt.Errorf("script returned no pattern")
	}
	interval := 0.0
	switch v := result["interval"].(type) {
	case float64:
		interval = v
	case int64:
		interval = float64(v)
	}
	return pattern, interval, nil
}

// startPattern fires the one-shot half of a freshly chosen pattern. Shoot
// releases a circular volley around the boss center; summon drops minions
// beside it. Both run exactly once per decision while the boss keeps its
// hover movement.
func (s *BossSystem) startPattern(w *ecs.World, boss *component.Boss, t *component.Transform, body *component.KinematicBody) {
	cx := t.X + body.Width/2
	cy := t.Y + body.Height/2

	switch boss.Pattern {
	case PatternShoot:
		if s.spawnShot == nil {
			return
		}
		n := boss.VolleySize
		if n <= 0 {
			n = defaultVolleySize
		}
		speed := boss.ProjectileSpeed
		if speed <= 0 {
			speed = body.MoveSpeed * 2
		}
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			s.spawnShot(w, cx, cy, math.Cos(a)*speed, math.Sin(a)*speed, boss.ProjectileDamage)
		}
	case PatternSummon:
		if s.summon == nil {
			return
		}
		n := boss.SummonCount
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			s.summon(w, cx+float64(i-n/2)*80, t.Y)
		}
	}
}

func fallbackPattern(boss *component.Boss) string {
	if boss.Phase == component.BossPhase2 {
		return PatternSwoop
	}
	if boss.Pattern == PatternHover {
		return PatternSwoop
	}
	return PatternHover
}

// applyPattern turns the chosen pattern into a velocity for this step.
func applyPattern(boss *component.Boss, body *component.KinematicBody, t *component.Transform, playerX, playerY float64) {
	approach := body.MoveSpeed
	if boss.Phase == component.BossPhase2 {
		approach *= 1.5
	}

	switch boss.Pattern {
	case PatternSwoop:
		dx := playerX - t.X
		dy := playerY - t.Y
		d := math.Hypot(dx, dy)
		if d < 1 {
			d = 1
		}
		speed := boss.SwoopSpeed
		if speed <= 0 {
			speed = approach * 2
		}
		body.Vel.X = dx / d * speed
		body.Vel.Y = dy / d * speed
	case PatternRetreat:
		if playerX < t.X {
			body.Vel.X = approach
		} else {
			body.Vel.X = -approach
		}
		body.Vel.Y = (boss.HoverY - t.Y) * 2
	default: // hover
		if playerX < t.X {
			body.Vel.X = -approach
		} else {
			body.Vel.X = approach
		}
		body.Vel.Y = (boss.HoverY - t.Y) * 2
	}
}

func playerPosition(w *ecs.World) (float64, float64, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return t.X, t.Y, true
}
