package component

// Drift is the simple enemy controller: scroll left at a fixed speed, with
// an optional vertical bob for flying kinds. The speed is fixed at spawn
// from the difficulty controller's enemy-speed knob.
type Drift struct {
	Speed float64 // px/s, moves toward the left edge

	Bob          bool
	BobPhase     float64
	BobAmplitude float64 // px/s peak vertical velocity
	BobRate      float64 // radians/s
}

var DriftComponent = NewComponent[Drift]()
