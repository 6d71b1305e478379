package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the drawable frame selected by the animation system. FlipX is a
// render-time mirror; there is no stored left-facing frame set.
type Sprite struct {
	Image *ebiten.Image
	FlipX bool
	Layer int
}

var SpriteComponent = NewComponent[Sprite]()
