package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

const (
	// ComboTimeout is the decay window for chained hits.
	ComboTimeout = 2.0

	hitShakeDuration   = 0.3
	hitShakeMagnitude  = 8.0
	comboMasterAt      = 5
	comboMasterBadge   = "combo_master"
	respawnGraceWindow = 1.0
)

// CombatSystem resolves attack hitboxes against hurtboxes and enemy contact
// against the player. Damage, invulnerability windows, combo and score
// changes all happen here, and health is clamped at the point of mutation.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := findSession(w)

	s.resolveAttacks(w, session)
	s.resolveContact(w, session)
}

// resolveAttacks tests every live hitbox against every hurtbox. A hitbox is
// live while its owner's animation state matches; the whole attack state is
// a live window unless the prefab narrows it to specific frames.
func (s *CombatSystem) resolveAttacks(w *ecs.World, session *component.Session) {
	ecs.ForEach3(w, component.HitboxComponent.Kind(), component.TransformComponent.Kind(), component.AnimationComponent.Kind(), func(attacker ecs.Entity, hitboxes *[]component.Hitbox, at *component.Transform, anim *component.Animation) {
		damageMult := 1.0
		if pw, ok := ecs.Get(w, attacker, component.PowerupsComponent.Kind()); ok {
			damageMult = pw.DamageMultiplier()
		}
		attackerIsPlayer := ecs.Has(w, attacker, component.PlayerTagComponent.Kind())

		for _, hb := range *hitboxes {
			if hb.Anim == "" || hb.Anim != anim.Current {
				continue
			}
			if len(hb.Frames) > 0 && !frameActive(hb.Frames, anim.Frame) {
				continue
			}

			hbOff := hb
			if facing, ok := ecs.Get(w, attacker, component.KinematicBodyComponent.Kind()); ok && facing.FacingLeft {
				hbOff.OffsetX = facing.Width - hb.OffsetX - hb.Width
			}
			attack := cp.BB{
				L: at.X + hbOff.OffsetX,
				B: at.Y + hbOff.OffsetY,
				R: at.X + hbOff.OffsetX + hb.Width,
				T: at.Y + hbOff.OffsetY + hb.Height,
			}

			ecs.ForEach3(w, component.HurtboxComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(defender ecs.Entity, hurtboxes *[]component.Hurtbox, dt *component.Transform, health *component.Health) {
				if defender == attacker || health.Invulnerable > 0 || health.Current <= 0 {
					return
				}
				for _, hurt := range *hurtboxes {
					guard := cp.BB{
						L: dt.X + hurt.OffsetX,
						B: dt.Y + hurt.OffsetY,
						R: dt.X + hurt.OffsetX + hurt.Width,
						T: dt.Y + hurt.OffsetY + hurt.Height,
					}
					if !attack.Intersects(guard) {
						continue
					}

					damage := int(float64(hb.Damage) * damageMult)
					s.applyHit(w, defender, health, damage, attackerIsPlayer, session)
					return
				}
			})
		}
	})
}

// applyHit damages one defender, advances its damage stage, awards score to
// the session when the player dealt the hit, and destroys the defender on a
// lethal hit.
func (s *CombatSystem) applyHit(w *ecs.World, defender ecs.Entity, health *component.Health, damage int, fromPlayer bool, session *component.Session) {
	defActor, _ := ecs.Get(w, defender, component.ActorComponent.Kind())

	if blocking(w, defender) && defActor != nil {
		damage = min(damage, defActor.BlockedDamage)
	}

	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}
	if defActor != nil {
		health.Invulnerable = defActor.InvulnWindow
	}

	killed := health.Current == 0

	// non-lethal hits degrade the sprite row of staged enemies
	if !killed {
		health.Stage = min(health.Max-1, health.Max-health.Current)
	}

	if fromPlayer && session != nil && defActor != nil {
		points := defActor.HitPoints
		if killed {
			points = defActor.KillBonus
		}
		session.Score += points * session.ComboMultiplier()
		session.Combo++
		session.ComboTimer = ComboTimeout
		if session.Combo >= comboMasterAt && session.Achievements != nil {
			session.Achievements[comboMasterBadge] = true
		}
	}

	w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: defender})

	if killed {
		if ecs.Has(w, defender, component.PlayerTagComponent.Kind()) {
			s.respawnPlayer(w, defender, health, session)
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventKill, Data: defender})
		requestShake(w)
		ecs.DestroyEntity(w, defender)
	}
}

// resolveContact applies enemy touch and projectile damage to the player,
// gated by the player's invulnerability window. Blocking caps the damage at
// the player's own blocked amount, same as the attack path.
func (s *CombatSystem) resolveContact(w *ecs.World, session *component.Session) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, tok := ecs.Get(w, player, component.TransformComponent.Kind())
	body, bok := ecs.Get(w, player, component.KinematicBodyComponent.Kind())
	health, hok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !tok || !bok || !hok {
		return
	}
	playerBB := body.BB(*pt)
	pa, _ := ecs.Get(w, player, component.ActorComponent.Kind())

	hit := func(damage int) {
		if blocking(w, player) && pa != nil {
			damage = min(damage, pa.BlockedDamage)
		}
		health.Current -= damage
		if health.Current < 0 {
			health.Current = 0
		}
		if pa != nil {
			health.Invulnerable = pa.InvulnWindow
		}
		requestShake(w)
		w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: player})

		if health.Current == 0 {
			s.respawnPlayer(w, player, health, session)
		}
	}

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, et *component.Transform, ebody *component.KinematicBody) {
		if actor.Kind == component.ActorPlayer || actor.ContactDamage <= 0 {
			return
		}
		if health.Invulnerable > 0 || health.Current <= 0 {
			return
		}
		if !playerBB.Intersects(ebody.BB(*et)) {
			return
		}
		hit(actor.ContactDamage)
	})

	// projectiles are destroyed by the hit, even while the player blocks
	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, et *component.Transform, ebody *component.KinematicBody) {
		if health.Invulnerable > 0 || health.Current <= 0 {
			return
		}
		if !playerBB.Intersects(ebody.BB(*et)) {
			return
		}
		hit(proj.Damage)
		ecs.DestroyEntity(w, e)
	})
}

// respawnPlayer is a full respawn, not a game-over: deaths increment, health
// refills, combo resets, and the player teleports to the segment spawn.
func (s *CombatSystem) respawnPlayer(w *ecs.World, player ecs.Entity, health *component.Health, session *component.Session) {
	health.Current = health.Max
	health.Stage = 0
	health.Invulnerable = respawnGraceWindow

	if session != nil {
		session.Deaths++
		session.SegmentDeaths++
		session.Combo = 0
		session.ComboTimer = 0
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			t.X = session.SpawnX
			t.Y = session.SpawnY
		}
	}
	if body, ok := ecs.Get(w, player, component.KinematicBodyComponent.Kind()); ok {
		body.Vel = cp.Vector{}
		body.Dashing = false
	}

	requestShake(w)
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDeath, Data: player})
}

func blocking(w *ecs.World, e ecs.Entity) bool {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	return ok && anim.Current == StateBlock
}

func frameActive(frames []int, frame int) bool {
	for _, f := range frames {
		if f == frame {
			return true
		}
	}
	return false
}

func findSession(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	session, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return session
}

func requestShake(w *ecs.World) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{
		Duration:  hitShakeDuration,
		Magnitude: hitShakeMagnitude,
	})
}
