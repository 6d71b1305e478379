package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

func TestWorldToScreen(t *testing.T) {
	box := cp.BB{L: 1000, B: 200, R: 1050, T: 250}

	cases := []struct {
		name         string
		playerX      float64
		fixedScreenX float64
		wantL        float64
	}{
		{"player_at_anchor", 400, 400, 1000},
		{"player_ahead", 900, 400, 500},
		{"player_behind_anchor", 100, 400, 1300},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorldToScreen(box, c.playerX, c.fixedScreenX)
			if got.L != c.wantL {
				t.Fatalf("expected L=%v, got %v", c.wantL, got.L)
			}
			if got.R-got.L != box.R-box.L || got.T != box.T || got.B != box.B {
				t.Fatalf("translation must preserve size and y, got %+v", got)
			}
		})
	}

	t.Run("linear_in_player_position", func(t *testing.T) {
		base := WorldToScreen(box, 400, 400)
		for _, d := range []float64{1, 33, 250, 1999} {
			moved := WorldToScreen(box, 400+d, 400)
			if moved.L != base.L-d {
				t.Fatalf("moving the player by %v must shift the box by -%v, got %v vs %v", d, d, moved.L, base.L)
			}
		}
	})
}

func addCamera(t *testing.T, w *ecs.World, fixedScreenX float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{FixedScreenX: fixedScreenX}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addTrackedPlayer(t *testing.T, w *ecs.World, x float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: 500}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	camEnt := addCamera(t, w, 400)
	player := addTrackedPlayer(t, w, 1200)
	w.AddSystem(NewCameraSystem(rand.New(rand.NewSource(1))))

	w.Step(tick)

	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	if cam.OffsetX != 800 {
		t.Fatalf("expected offset 800, got %v", cam.OffsetX)
	}

	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pt.X = 1300
	w.Step(tick)
	if cam.OffsetX != 900 {
		t.Fatalf("offset must track the player every step, got %v", cam.OffsetX)
	}
}

func TestCameraShake(t *testing.T) {
	w := ecs.NewWorld()
	camEnt := addCamera(t, w, 400)
	addTrackedPlayer(t, w, 400)
	w.AddSystem(NewCameraSystem(rand.New(rand.NewSource(1))))

	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Duration: 0.3, Magnitude: 8}); err != nil {
		t.Fatal(err)
	}

	w.Step(tick)

	if ecs.IsAlive(w, req) {
		t.Fatal("shake request must be consumed the step it is seen")
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	if cam.ShakeTimer <= 0 {
		t.Fatal("expected a running shake timer")
	}
	if math.Abs(cam.ShakeX) > 8 || math.Abs(cam.ShakeY) > 8 {
		t.Fatalf("jitter must stay within the magnitude, got (%v,%v)", cam.ShakeX, cam.ShakeY)
	}

	// strongest pending request wins
	req2 := ecs.CreateEntity(w)
	if err := ecs.Add(w, req2, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Duration: 0.5, Magnitude: 12}); err != nil {
		t.Fatal(err)
	}
	w.Step(tick)
	if cam.ShakeMagnitude != 12 {
		t.Fatalf("expected the stronger request to win, got magnitude %v", cam.ShakeMagnitude)
	}

	for i := 0; i < 60; i++ {
		w.Step(tick)
	}
	if cam.ShakeTimer != 0 || cam.ShakeX != 0 || cam.ShakeY != 0 || cam.ShakeMagnitude != 0 {
		t.Fatalf("expired shake must zero out, got %+v", cam)
	}
}
