package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// WorldToScreen translates a world-space box into screen space for a player
// anchored at fixedScreenX. Pure: linear in playerX, no state, no failure.
func WorldToScreen(world cp.BB, playerX, fixedScreenX float64) cp.BB {
	offset := playerX - fixedScreenX
	return cp.BB{L: world.L - offset, B: world.B, R: world.R - offset, T: world.T}
}

// CameraSystem recomputes the scroll offset from the player's position every
// step and runs the decaying shake jitter on top of it.
type CameraSystem struct {
	rng *rand.Rand
}

func NewCameraSystem(rng *rand.Rand) *CameraSystem {
	return &CameraSystem{rng: rng}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if player, pok := ecs.First(w, component.PlayerTagComponent.Kind()); pok {
		if t, tok := ecs.Get(w, player, component.TransformComponent.Kind()); tok {
			cam.OffsetX = t.X - cam.FixedScreenX
		}
	}

	// absorb shake requests; the strongest pending request wins
	ecs.ForEach(w, component.CameraShakeRequestComponent.Kind(), func(e ecs.Entity, req *component.CameraShakeRequest) {
		if req.Duration > cam.ShakeTimer {
			cam.ShakeTimer = req.Duration
		}
		if req.Magnitude > cam.ShakeMagnitude {
			cam.ShakeMagnitude = req.Magnitude
		}
		ecs.DestroyEntity(w, e)
	})

	if cam.ShakeTimer > 0 {
		cam.ShakeTimer = max(0, cam.ShakeTimer-w.Delta())
		m := cam.ShakeMagnitude
		cam.ShakeX = (s.rng.Float64()*2 - 1) * m
		cam.ShakeY = (s.rng.Float64()*2 - 1) * m
	}
	if cam.ShakeTimer == 0 {
		cam.ShakeX = 0
		cam.ShakeY = 0
		cam.ShakeMagnitude = 0
	}
}
