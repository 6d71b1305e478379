package system

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// AnimationSystem advances frame cursors and selects the sheet subimage.
// Looping states wrap; one-shot states (attack, dash) fall back to idle past
// their last frame. That fallback is the only way an attack ends.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem { return &AnimationSystem{} }

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		AdvanceFrames(anim, dt)

		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || anim.Sheet == nil {
			return
		}

		def := mustDef(anim, anim.Current)
		row := def.Row
		if anim.StageRows {
			if h, hok := ecs.Get(w, e, component.HealthComponent.Kind()); hok {
				row += h.Stage
			}
		}
		x := anim.Frame * def.FrameW
		y := row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}

// AdvanceFrames accumulates elapsed time and steps the frame index. The
// index is always a valid index into the current def's frames.
func AdvanceFrames(anim *component.Animation, dt float64) {
	def := mustDef(anim, anim.Current)
	if def.FrameCount <= 0 || def.FrameTime <= 0 {
		return
	}

	anim.Elapsed += dt
	for anim.Elapsed >= def.FrameTime {
		anim.Elapsed -= def.FrameTime
		anim.Frame++
		if anim.Frame < def.FrameCount {
			continue
		}
		if def.Loop {
			anim.Frame = 0
			continue
		}
		// one-shot finished
		Transition(anim, StateIdle)
		return
	}
}

func mustDef(anim *component.Animation, state string) component.AnimationDef {
	def, ok := anim.Defs[state]
	if !ok {
		panic(fmt.Sprintf("animation: unknown state %q", state))
	}
	return def
}
