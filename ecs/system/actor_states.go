package system

import (
	"fmt"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// Animation state names. Which of these an actor actually has depends on its
// prefab's animation table; asking for a state the table lacks is a bug, not
// a fallback.
const (
	StateIdle   = "idle"
	StateRun    = "run"
	StateJump   = "jump"
	StateAttack = "attack"
	StateBlock  = "block"
	StateDash   = "dash"
)

// SelectState picks the animation state for one frame. Fixed priority,
// first match wins:
//
//	mid one-shot > attack > block > dash > airborne > running > idle
//
// Block is mutually exclusive with attack; on a frame where attack is
// pressed the block check is never reached. A running one-shot (attack,
// dash) holds its state until the animation system finishes it.
func SelectState(in component.Input, body *component.KinematicBody, anim *component.Animation) string {
	if def, ok := anim.Defs[anim.Current]; ok && !def.Loop {
		return anim.Current
	}
	switch {
	case in.Attack:
		return StateAttack
	case in.Block:
		return StateBlock
	case body.Dashing:
		return StateDash
	case !body.OnGround:
		return StateJump
	case body.Vel.X != 0:
		return StateRun
	default:
		return StateIdle
	}
}

// Transition switches the animation to state, resetting the frame cursor.
// Unknown states are a fatal precondition violation; silently defaulting
// here used to mask bugs.
func Transition(anim *component.Animation, state string) {
	if _, ok := anim.Defs[state]; !ok {
		panic(fmt.Sprintf("actor states: unknown animation state %q", state))
	}
	if anim.Current == state {
		return
	}
	anim.Current = state
	anim.Frame = 0
	anim.Elapsed = 0
}

// ActorStateSystem drives the player-facing state machine: it selects the
// animation state from the frame's input and kinematic state, and keeps the
// facing flag in sync with horizontal intent.
type ActorStateSystem struct{}

func NewActorStateSystem() *ActorStateSystem { return &ActorStateSystem{} }

func (s *ActorStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.InputComponent.Kind(), component.KinematicBodyComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, in *component.Input, body *component.KinematicBody, anim *component.Animation) {
		if in.MoveX > 0 {
			body.FacingLeft = false
		} else if in.MoveX < 0 {
			body.FacingLeft = true
		}

		Transition(anim, SelectState(*in, body, anim))

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = body.FacingLeft
		}
	})
}
