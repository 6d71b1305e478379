package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

const (
	// Gravity is in px/s^2; velocities are px/s.
	Gravity          = 1800.0
	VariableJumpMult = 0.5
)

// Surface is a one-way landing surface (a platform top or the world floor).
type Surface struct {
	BB cp.BB
}

// AdvanceResult reports the one-shot triggers of a kinematic step.
type AdvanceResult struct {
	Jumped      bool
	DashStarted bool
}

// Advance runs one kinematic step for an input-driven body. Pure numeric
// state transition: it never fails, only clamps. A zero (or negative) dt
// changes nothing.
func Advance(pos *component.Transform, body *component.KinematicBody, in component.Input, speedMult float64, surfaces []Surface, bounds component.LevelBounds, dt float64) AdvanceResult {
	var res AdvanceResult
	if dt <= 0 {
		return res
	}

	// dash
	body.DashCooldownT = max(0, body.DashCooldownT-dt)
	if in.Dash && body.DashCooldownT == 0 && !body.Dashing && body.DashSpeed > 0 {
		body.Dashing = true
		body.DashTimer = body.DashDuration
		body.DashCooldownT = body.DashCooldown
		res.DashStarted = true
	}
	if body.Dashing {
		body.DashTimer -= dt
		if body.DashTimer <= 0 {
			body.Dashing = false
			body.DashTimer = 0
		}
	}

	// horizontal velocity comes straight from held input, not accumulated
	if body.Dashing {
		dir := 1.0
		if body.FacingLeft {
			dir = -1.0
		}
		body.Vel.X = body.DashSpeed * dir
	} else {
		body.Vel.X = in.MoveX * body.MoveSpeed * speedMult
	}

	// grace windows
	if body.OnGround {
		body.CoyoteTimer = body.CoyoteTime
	} else {
		body.CoyoteTimer = max(0, body.CoyoteTimer-dt)
	}
	if in.Jump {
		body.JumpBufferTimer = body.JumpBuffer
	} else {
		body.JumpBufferTimer = max(0, body.JumpBufferTimer-dt)
	}

	if !body.Flying {
		body.Vel.Y += Gravity * dt
	}

	// jump fires only while both grace windows are open, and zeroes them so
	// a single press can't trigger twice
	if body.JumpBufferTimer > 0 && body.CoyoteTimer > 0 {
		body.Vel.Y = body.JumpStrength
		body.OnGround = false
		body.CoyoteTimer = 0
		body.JumpBufferTimer = 0
		res.Jumped = true
	}

	// releasing jump while rising shortens the arc
	if body.Vel.Y < 0 && !in.Jump && !body.Flying {
		body.Vel.Y += Gravity * VariableJumpMult * dt
	}

	integrate(pos, body, surfaces, bounds, dt)
	return res
}

// integrate moves the body and resolves one-way surface collisions. Landing
// is only resolved while falling; rising bodies pass through platform tops.
func integrate(pos *component.Transform, body *component.KinematicBody, surfaces []Surface, bounds component.LevelBounds, dt float64) {
	prevBottom := pos.Y + body.Height

	pos.X += body.Vel.X * dt
	pos.Y += body.Vel.Y * dt

	if body.Flying {
		clampX(pos, body, bounds)
		return
	}

	landed := false
	if body.Vel.Y > 0 {
		bottom := pos.Y + body.Height
		for _, s := range surfaces {
			top := s.BB.B
			if prevBottom <= top && bottom >= top &&
				pos.X < s.BB.R && pos.X+body.Width > s.BB.L {
				pos.Y = top - body.Height
				body.Vel.Y = 0
				landed = true
				break
			}
		}
	}

	if pos.Y+body.Height >= bounds.FloorY {
		pos.Y = bounds.FloorY - body.Height
		if body.Vel.Y > 0 {
			body.Vel.Y = 0
		}
		landed = true
	}

	body.OnGround = landed
	clampX(pos, body, bounds)
}

func clampX(pos *component.Transform, body *component.KinematicBody, bounds component.LevelBounds) {
	if pos.X < 0 {
		pos.X = 0
	}
	if maxX := bounds.Width - body.Width; pos.X > maxX {
		pos.X = maxX
	}
}

// KinematicsSystem advances every kinematic body. Input-driven bodies use
// the full Advance contract; AI-driven bodies keep whatever velocity their
// controller set and only integrate and collide.
type KinematicsSystem struct{}

func NewKinematicsSystem() *KinematicsSystem { return &KinematicsSystem{} }

func (s *KinematicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	bounds := component.LevelBounds{Width: 1e9, FloorY: 1e9}
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if lb, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			bounds = *lb
		}
	}

	var surfaces []Surface
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		surfaces = append(surfaces, Surface{BB: cp.BB{L: t.X, B: t.Y, R: t.X + p.Width, T: t.Y + p.Height}})
	})

	ecs.ForEach2(w, component.KinematicBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.KinematicBody, pos *component.Transform) {
		// projectiles fly straight and unclamped so they can leave the
		// level and be cleaned up
		if ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			if dt > 0 {
				pos.X += body.Vel.X * dt
				pos.Y += body.Vel.Y * dt
			}
			return
		}

		in, hasInput := ecs.Get(w, e, component.InputComponent.Kind())
		if !hasInput {
			if dt > 0 {
				if !body.Flying {
					body.Vel.Y += Gravity * dt
				}
				integrate(pos, body, surfaces, bounds, dt)
			}
			return
		}

		speedMult := 1.0
		if pw, ok := ecs.Get(w, e, component.PowerupsComponent.Kind()); ok {
			speedMult = pw.SpeedMultiplier()
		}

		res := Advance(pos, body, *in, speedMult, surfaces, bounds, dt)
		if res.DashStarted {
			// the dash itself is the invulnerability window
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
				h.Invulnerable = max(h.Invulnerable, body.DashDuration)
			}
		}
	})
}
