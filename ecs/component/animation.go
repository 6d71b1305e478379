package component

import "github.com/hajimehoshi/ebiten/v2"

// AnimationDef describes one named animation row on a sprite sheet.
type AnimationDef struct {
	Name       string
	Row        int
	FrameCount int
	FrameW     int
	FrameH     int
	FrameTime  float64 // seconds each frame is held
	Loop       bool    // one-shot states fall back to idle when this is false
}

// Animation is the per-entity animation state read against the entity's
// animation table. Frame is always a valid index into the current def.
type Animation struct {
	Sheet   *ebiten.Image
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed float64 // seconds accumulated in the current frame

	// StageRows offsets the sheet row by the actor's damage stage, for
	// enemies whose appearance degrades as they take hits.
	StageRows bool
}

var AnimationComponent = NewComponent[Animation]()
