package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// InputSystem samples the keyboard once per step and writes the snapshot to
// every input-carrying entity before the rest of the frame runs.
type InputSystem struct{}

func NewInputSystem() *InputSystem { return &InputSystem{} }

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	attack := ebiten.IsKeyPressed(ebiten.KeyJ)
	block := ebiten.IsKeyPressed(ebiten.KeyS)
	dash := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveX = moveX
		in.Jump = jump
		in.JumpPressed = jumpPressed
		in.Attack = attack
		in.Block = block
		in.Dash = dash
	})
}
