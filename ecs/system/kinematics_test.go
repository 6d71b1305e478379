package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

const tick = 1.0 / 60.0

var testBounds = component.LevelBounds{Width: 3200, FloorY: 550}

func groundedBody() (*component.Transform, *component.KinematicBody) {
	body := &component.KinematicBody{
		Width: 50, Height: 50,
		MoveSpeed:    300,
		JumpStrength: -720,
		CoyoteTime:   0.1,
		JumpBuffer:   0.1,
		DashSpeed:    900,
		DashDuration: 0.2,
		DashCooldown: 1.0,
		OnGround:     true,
	}
	pos := &component.Transform{X: 100, Y: testBounds.FloorY - body.Height}
	return pos, body
}

func TestAdvanceJump(t *testing.T) {
	t.Run("grounded_jump_sets_exact_velocity", func(t *testing.T) {
		pos, body := groundedBody()

		res := Advance(pos, body, component.Input{Jump: true}, 1.0, nil, testBounds, tick)

		if !res.Jumped {
			t.Fatal("expected jump to fire")
		}
		if body.Vel.Y != body.JumpStrength {
			t.Fatalf("expected vy == %v immediately after jump, got %v", body.JumpStrength, body.Vel.Y)
		}
		if body.CoyoteTimer != 0 || body.JumpBufferTimer != 0 {
			t.Fatalf("jump must consume both grace windows, got coyote=%v buffer=%v", body.CoyoteTimer, body.JumpBufferTimer)
		}
		if body.OnGround {
			t.Fatal("body should leave the ground on the jump frame")
		}
	})

	t.Run("coyote_window_allows_late_jump", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		body.CoyoteTimer = 0.05
		pos.Y -= 10

		res := Advance(pos, body, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
		if !res.Jumped {
			t.Fatal("expected jump inside the coyote window")
		}
	})

	t.Run("expired_coyote_window_refuses_jump", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		body.CoyoteTimer = 0
		pos.Y -= 200

		res := Advance(pos, body, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
		if res.Jumped {
			t.Fatal("airborne body with no coyote time must not jump")
		}
	})

	t.Run("buffered_press_fires_on_landing", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		pos.Y -= 5
		body.Vel.Y = 400

		// press while still falling: buffered, not consumed
		res := Advance(pos, body, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
		if res.Jumped {
			t.Fatal("jump must not fire while airborne with no coyote time")
		}
		if !body.OnGround {
			t.Fatal("expected body to land this frame")
		}

		// released by now, but the buffer carries the press across the landing
		res = Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		if !res.Jumped {
			t.Fatal("expected buffered jump to fire on the first grounded frame")
		}
	})

	t.Run("single_press_cannot_double_fire", func(t *testing.T) {
		pos, body := groundedBody()

		Advance(pos, body, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
		res := Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		if res.Jumped {
			t.Fatal("consumed press must not fire a second jump")
		}
	})
}

func TestAdvanceZeroDeltaChangesNothing(t *testing.T) {
	pos, body := groundedBody()
	beforePos := *pos
	beforeBody := *body

	in := component.Input{MoveX: 1, Jump: true, Dash: true}
	for _, dt := range []float64{0, -tick} {
		res := Advance(pos, body, in, 1.0, nil, testBounds, dt)
		if res.Jumped || res.DashStarted {
			t.Fatalf("dt=%v must not trigger anything, got %+v", dt, res)
		}
		if *pos != beforePos || *body != beforeBody {
			t.Fatalf("dt=%v must not mutate state", dt)
		}
	}
}

func TestAdvanceVariableJump(t *testing.T) {
	heldPos, held := groundedBody()
	releasedPos, released := groundedBody()

	Advance(heldPos, held, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
	Advance(releasedPos, released, component.Input{Jump: true}, 1.0, nil, testBounds, tick)

	// one more frame: one keeps holding, one lets go
	Advance(heldPos, held, component.Input{Jump: true}, 1.0, nil, testBounds, tick)
	Advance(releasedPos, released, component.Input{}, 1.0, nil, testBounds, tick)

	if released.Vel.Y <= held.Vel.Y {
		t.Fatalf("released jump must decelerate faster: held vy=%v released vy=%v", held.Vel.Y, released.Vel.Y)
	}
}

func TestAdvanceHorizontal(t *testing.T) {
	t.Run("velocity_from_held_input", func(t *testing.T) {
		pos, body := groundedBody()
		Advance(pos, body, component.Input{MoveX: -1}, 1.0, nil, testBounds, tick)
		if body.Vel.X != -body.MoveSpeed {
			t.Fatalf("expected vx %v, got %v", -body.MoveSpeed, body.Vel.X)
		}

		Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		if body.Vel.X != 0 {
			t.Fatalf("releasing input must stop the body, got vx %v", body.Vel.X)
		}
	})

	t.Run("speed_powerup_scales_velocity", func(t *testing.T) {
		pos, body := groundedBody()
		Advance(pos, body, component.Input{MoveX: 1}, 1.5, nil, testBounds, tick)
		if body.Vel.X != body.MoveSpeed*1.5 {
			t.Fatalf("expected vx %v, got %v", body.MoveSpeed*1.5, body.Vel.X)
		}
	})

	t.Run("clamped_to_level_bounds", func(t *testing.T) {
		pos, body := groundedBody()
		pos.X = 0
		Advance(pos, body, component.Input{MoveX: -1}, 1.0, nil, testBounds, tick)
		if pos.X != 0 {
			t.Fatalf("expected clamp at left edge, got x=%v", pos.X)
		}

		pos.X = testBounds.Width
		Advance(pos, body, component.Input{MoveX: 1}, 1.0, nil, testBounds, tick)
		if want := testBounds.Width - body.Width; pos.X != want {
			t.Fatalf("expected clamp at %v, got x=%v", want, pos.X)
		}
	})
}

func TestAdvanceDash(t *testing.T) {
	t.Run("dash_overrides_movement", func(t *testing.T) {
		pos, body := groundedBody()
		body.FacingLeft = true

		res := Advance(pos, body, component.Input{Dash: true, MoveX: 1}, 1.0, nil, testBounds, tick)
		if !res.DashStarted {
			t.Fatal("expected dash to start")
		}
		if body.Vel.X != -body.DashSpeed {
			t.Fatalf("dash must follow facing, expected vx %v, got %v", -body.DashSpeed, body.Vel.X)
		}
	})

	t.Run("dash_expires_then_cooldown_gates_restart", func(t *testing.T) {
		pos, body := groundedBody()

		Advance(pos, body, component.Input{Dash: true}, 1.0, nil, testBounds, tick)
		steps := int(math.Ceil(body.DashDuration / tick))
		for i := 0; i < steps; i++ {
			Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		}
		if body.Dashing {
			t.Fatal("dash should have expired")
		}

		res := Advance(pos, body, component.Input{Dash: true}, 1.0, nil, testBounds, tick)
		if res.DashStarted {
			t.Fatal("dash must not restart while the cooldown is running")
		}

		for body.DashCooldownT > 0 {
			Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		}
		res = Advance(pos, body, component.Input{Dash: true}, 1.0, nil, testBounds, tick)
		if !res.DashStarted {
			t.Fatal("expected dash to restart after the cooldown")
		}
	})
}

func TestIntegrateOneWayPlatforms(t *testing.T) {
	platform := Surface{BB: cp.BB{L: 80, B: 400, R: 280, T: 420}}

	t.Run("falling_body_lands_on_top", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		pos.Y = 400 - body.Height - 1
		body.Vel.Y = 300

		Advance(pos, body, component.Input{}, 1.0, []Surface{platform}, testBounds, tick)

		if pos.Y != 400-body.Height {
			t.Fatalf("expected body snapped to platform top, got y=%v", pos.Y)
		}
		if body.Vel.Y != 0 || !body.OnGround {
			t.Fatalf("landing must zero vy and ground the body, got vy=%v onGround=%v", body.Vel.Y, body.OnGround)
		}
	})

	t.Run("rising_body_passes_through", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		pos.Y = 400 + 5
		body.Vel.Y = -600

		Advance(pos, body, component.Input{}, 1.0, []Surface{platform}, testBounds, tick)

		if body.OnGround {
			t.Fatal("rising body must pass through a one-way platform")
		}
		if pos.Y >= 400+5 {
			t.Fatalf("body should keep rising, got y=%v", pos.Y)
		}
	})

	t.Run("miss_horizontally_keeps_falling", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		pos.X = 500 // right of the platform
		pos.Y = 400 - body.Height - 1
		body.Vel.Y = 300

		Advance(pos, body, component.Input{}, 1.0, []Surface{platform}, testBounds, tick)
		if body.OnGround {
			t.Fatal("body off the platform's horizontal span must not land on it")
		}
	})

	t.Run("floor_always_catches", func(t *testing.T) {
		pos, body := groundedBody()
		body.OnGround = false
		pos.Y = testBounds.FloorY - body.Height - 1
		body.Vel.Y = 1000

		Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
		if pos.Y != testBounds.FloorY-body.Height || !body.OnGround {
			t.Fatalf("expected floor landing, got y=%v onGround=%v", pos.Y, body.OnGround)
		}
	})
}

func TestAdvanceFlyingBodySkipsGravity(t *testing.T) {
	pos, body := groundedBody()
	body.Flying = true
	body.OnGround = false
	body.Vel.Y = 0
	pos.Y = 200

	Advance(pos, body, component.Input{}, 1.0, nil, testBounds, tick)
	if body.Vel.Y != 0 {
		t.Fatalf("flying body must not accelerate downward, got vy=%v", body.Vel.Y)
	}
	if pos.Y != 200 {
		t.Fatalf("flying body with zero vy must hold altitude, got y=%v", pos.Y)
	}
}

func TestProjectileFliesStraightPastLevelEdge(t *testing.T) {
	w := ecs.NewWorld()

	be := ecs.CreateEntity(w)
	if err := ecs.Add(w, be, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 3200, FloorY: 550}); err != nil {
		t.Fatal(err)
	}

	proj := addTestProjectile(t, w, 3190, 5)
	pt, _ := ecs.Get(w, proj, component.TransformComponent.Kind())
	pt.Y = 300
	body, _ := ecs.Get(w, proj, component.KinematicBodyComponent.Kind())
	body.Vel.X = 600

	w.AddSystem(NewKinematicsSystem())
	for i := 0; i < 60; i++ {
		w.Step(tick)
	}

	// one second at 600 px/s, through the right edge without clamping
	if math.Abs(pt.X-3790) > 1e-6 {
		t.Fatalf("expected x=3790 past the level edge, got %v", pt.X)
	}
	if body.Vel.Y != 0 || pt.Y != 300 {
		t.Fatalf("projectile must ignore gravity, got vy=%v y=%v", body.Vel.Y, pt.Y)
	}
}
