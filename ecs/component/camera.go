package component

// Camera is the single horizontal scroll offset, recomputed every step from
// the player's world position. Shake offsets are additive and transient.
type Camera struct {
	FixedScreenX float64 // player's anchored screen x
	OffsetX      float64 // derived: player.X - FixedScreenX

	ShakeTimer     float64
	ShakeMagnitude float64
	ShakeX         float64
	ShakeY         float64
}

var CameraComponent = NewComponent[Camera]()

// CameraShakeRequest asks the camera system for a short shake. Consumed and
// removed the step it is seen.
type CameraShakeRequest struct {
	Duration  float64
	Magnitude float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
