package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

// Renderer draws the world camera-relative. It is not part of the update
// order; the game calls Draw from ebiten's draw path.
type Renderer struct {
	flat *ebiten.Image // 1x1 white, scaled for platforms and pickups
}

func NewRenderer() *Renderer {
	flat := ebiten.NewImage(1, 1)
	flat.Fill(color.White)
	return &Renderer{flat: flat}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	var cam component.Camera
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if c, cok := ecs.Get(w, camEnt, component.CameraComponent.Kind()); cok {
			cam = *c
		}
	}

	playerX := cam.OffsetX + cam.FixedScreenX

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		rect := WorldToScreen(cp.BB{L: t.X, B: t.Y, R: t.X + p.Width, T: t.Y + p.Height}, playerX, cam.FixedScreenX)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Width, p.Height)
		op.GeoM.Translate(rect.L+cam.ShakeX, rect.B+cam.ShakeY)
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		screen.DrawImage(r.flat, op)
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
		rect := WorldToScreen(cp.BB{L: t.X, B: t.Y, R: t.X + p.Width, T: t.Y + p.Height}, playerX, cam.FixedScreenX)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Width, p.Height)
		op.GeoM.Translate(rect.L+cam.ShakeX, rect.B+cam.ShakeY)
		tint := color.NRGBA{R: 80, G: 200, B: 120, A: 255}
		if p.Kind == component.PowerupDamage {
			tint = color.NRGBA{R: 220, G: 80, B: 80, A: 255}
		}
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(r.flat, op)
	})

	type spriteDraw struct {
		sprite *component.Sprite
		pos    component.Transform
	}
	var draws []spriteDraw
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sprite *component.Sprite, t *component.Transform) {
		if sprite.Image == nil || blinking(w, e) {
			return
		}
		draws = append(draws, spriteDraw{sprite: sprite, pos: *t})
	})
	sort.SliceStable(draws, func(i, j int) bool { return draws[i].sprite.Layer < draws[j].sprite.Layer })

	for _, d := range draws {
		width := float64(d.sprite.Image.Bounds().Dx())
		height := float64(d.sprite.Image.Bounds().Dy())

		rect := WorldToScreen(cp.BB{L: d.pos.X, B: d.pos.Y, R: d.pos.X + width, T: d.pos.Y + height}, playerX, cam.FixedScreenX)

		op := &ebiten.DrawImageOptions{}
		if d.sprite.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(width, 0)
		}
		op.GeoM.Translate(rect.L+cam.ShakeX, rect.B+cam.ShakeY)
		screen.DrawImage(d.sprite.Image, op)
	}
}

// blinking hides the sprite on alternating slices of the invulnerability
// window, the classic post-hit flicker.
func blinking(w *ecs.World, e ecs.Entity) bool {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || h.Invulnerable <= 0 {
		return false
	}
	return int(math.Floor(h.Invulnerable*10))%2 == 1
}
