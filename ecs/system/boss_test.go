package system

import (
	"fmt"
	"math"
	"testing"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

func scriptReturning(pattern string, interval float64) ScriptLoader {
	src := fmt.Sprintf(`result := {pattern: %q, interval: %v}`, pattern, interval)
	return func(name string) ([]byte, error) {
		return []byte(src), nil
	}
}

func failingLoader(name string) ([]byte, error) {
	return nil, fmt.Errorf("no such script")
}

func addBoss(t *testing.T, w *ecs.World, hp int) (ecs.Entity, *component.Boss, *component.Health, *component.KinematicBody) {
	t.Helper()
	e := ecs.CreateEntity(w)
	boss := &component.Boss{
		Phase1Interval: 2.0,
		Phase2Interval: 1.0,
		Script:         "boss.tengo",
		HoverY:         150,
		SwoopSpeed:     600,
	}
	health := &component.Health{Current: hp, Max: hp}
	body := &component.KinematicBody{Width: 80, Height: 80, MoveSpeed: 100, Flying: true}
	adds := []error{
		ecs.Add(w, e, component.BossComponent.Kind(), boss),
		ecs.Add(w, e, component.HealthComponent.Kind(), health),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 800, Y: 150}),
		ecs.Add(w, e, component.KinematicBodyComponent.Kind(), body),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatal(err)
		}
	}
	return e, boss, health, body
}

func TestBossPhaseTransitionIsOneWay(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, health, _ := addBoss(t, w, 50)
	w.AddSystem(NewBossSystem(scriptReturning(PatternHover, 2.0), nil, nil))

	w.Step(tick)
	if boss.Phase != component.BossPhase1 {
		t.Fatalf("expected phase 1 at full health, got %v", boss.Phase)
	}

	health.Current = 25 // exactly half is still phase 1
	w.Step(tick)
	if boss.Phase != component.BossPhase1 {
		t.Fatalf("expected phase 1 at exactly half health, got %v", boss.Phase)
	}

	health.Current = 24
	w.Step(tick)
	if boss.Phase != component.BossPhase2 {
		t.Fatalf("expected phase 2 below half health, got %v", boss.Phase)
	}

	// healing back does not revert the phase
	health.Current = 50
	w.Step(tick)
	if boss.Phase != component.BossPhase2 {
		t.Fatalf("phase transition must be one-way, got %v", boss.Phase)
	}
}

func TestBossScriptChoosesPattern(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, _, body := addBoss(t, w, 50)
	w.AddSystem(NewBossSystem(scriptReturning(PatternSwoop, 1.5), nil, nil))

	w.Step(tick)

	if boss.Pattern != PatternSwoop {
		t.Fatalf("expected the script's pattern, got %q", boss.Pattern)
	}
	if boss.PatternTimer != 1.5 {
		t.Fatalf("expected the script's interval, got %v", boss.PatternTimer)
	}

	// swoop dives straight at the player at swoop speed
	speed := math.Hypot(body.Vel.X, body.Vel.Y)
	if math.Abs(speed-boss.SwoopSpeed) > 1e-9 {
		t.Fatalf("expected swoop speed %v, got %v", boss.SwoopSpeed, speed)
	}
	if body.Vel.X >= 0 {
		t.Fatalf("boss right of the player must swoop left, got vx=%v", body.Vel.X)
	}
	if !body.FacingLeft {
		t.Fatal("boss must face the player")
	}
}

func TestBossScriptFailureFallsBack(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, _, _ := addBoss(t, w, 50)
	w.AddSystem(NewBossSystem(failingLoader, nil, nil))

	w.Step(tick)

	if boss.Pattern != PatternHover {
		t.Fatalf("expected fallback pattern hover, got %q", boss.Pattern)
	}
	if boss.PatternTimer != boss.Phase1Interval {
		t.Fatalf("expected phase 1 interval %v, got %v", boss.Phase1Interval, boss.PatternTimer)
	}
}

func TestBossRetreatMovesAwayTowardHover(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, _, _, body := addBoss(t, w, 50)
	bossEnt, _ := ecs.First(w, component.BossComponent.Kind())
	bt, _ := ecs.Get(w, bossEnt, component.TransformComponent.Kind())
	bt.Y = 300 // below the hover line

	w.AddSystem(NewBossSystem(scriptReturning(PatternRetreat, 2.0), nil, nil))
	w.Step(tick)

	if body.Vel.X <= 0 {
		t.Fatalf("boss right of the player must retreat right, got vx=%v", body.Vel.X)
	}
	if body.Vel.Y >= 0 {
		t.Fatalf("boss below its hover line must climb, got vy=%v", body.Vel.Y)
	}
}

func TestBossShootFiresVolleyOnce(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, _, _ := addBoss(t, w, 50)
	boss.VolleySize = 8
	boss.ProjectileSpeed = 320
	boss.ProjectileDamage = 8

	type shot struct {
		x, y, vx, vy float64
		damage       int
	}
	var shots []shot
	spawn := func(_ *ecs.World, x, y, vx, vy float64, damage int) {
		shots = append(shots, shot{x, y, vx, vy, damage})
	}
	w.AddSystem(NewBossSystem(scriptReturning(PatternShoot, 1.0), spawn, nil))

	w.Step(tick)

	if len(shots) != 8 {
		t.Fatalf("expected a full volley of 8, got %d", len(shots))
	}
	var sumX, sumY float64
	for i, s := range shots {
		if s.x != 840 || s.y != 190 {
			t.Fatalf("shot %d must start at the boss center (840,190), got (%v,%v)", i, s.x, s.y)
		}
		if speed := math.Hypot(s.vx, s.vy); math.Abs(speed-320) > 1e-9 {
			t.Fatalf("shot %d expected speed 320, got %v", i, speed)
		}
		if s.damage != 8 {
			t.Fatalf("shot %d expected damage 8, got %d", i, s.damage)
		}
		sumX += s.vx
		sumY += s.vy
	}
	// an evenly spread circular volley has no net direction
	if math.Abs(sumX) > 1e-6 || math.Abs(sumY) > 1e-6 {
		t.Fatalf("volley must spread evenly around the circle, net velocity (%v,%v)", sumX, sumY)
	}

	// the volley fires when the pattern is chosen, not every frame
	w.Step(tick)
	if len(shots) != 8 {
		t.Fatalf("volley must not repeat before the next decision, got %d shots", len(shots))
	}
}

func TestBossSummonCallsMinionBuilder(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, _, _ := addBoss(t, w, 50)
	boss.SummonCount = 2

	var spots [][2]float64
	summon := func(_ *ecs.World, x, y float64) {
		spots = append(spots, [2]float64{x, y})
	}
	w.AddSystem(NewBossSystem(scriptReturning(PatternSummon, 1.0), nil, summon))

	w.Step(tick)

	if len(spots) != 2 {
		t.Fatalf("expected 2 minions, got %d", len(spots))
	}
	for i, p := range spots {
		if p[1] != 150 {
			t.Fatalf("minion %d must appear at the boss height 150, got %v", i, p[1])
		}
		if math.Abs(p[0]-840) > 100 {
			t.Fatalf("minion %d must appear beside the boss center 840, got %v", i, p[0])
		}
	}

	w.Step(tick)
	if len(spots) != 2 {
		t.Fatalf("summon must not repeat before the next decision, got %d minions", len(spots))
	}
}

func TestBossPhase2UsesItsOwnInterval(t *testing.T) {
	w := ecs.NewWorld()
	addTrackedPlayer(t, w, 100)
	_, boss, health, _ := addBoss(t, w, 50)
	health.Current = 10
	w.AddSystem(NewBossSystem(failingLoader, nil, nil))

	w.Step(tick)

	if boss.Phase != component.BossPhase2 {
		t.Fatalf("expected phase 2, got %v", boss.Phase)
	}
	if boss.PatternTimer != boss.Phase2Interval {
		t.Fatalf("expected phase 2 interval %v, got %v", boss.Phase2Interval, boss.PatternTimer)
	}
	if boss.Pattern != PatternSwoop {
		t.Fatalf("phase 2 fallback must be aggressive, got %q", boss.Pattern)
	}
}
