package component

import "github.com/jakecoffman/cp"

// KinematicBody carries per-actor movement tuning plus the mutable motion
// state integrated by the kinematics system every step.
//
// Timers are in seconds and never go below zero.
type KinematicBody struct {
	Vel    cp.Vector
	Width  float64
	Height float64

	// tuning
	MoveSpeed    float64 // px/s while the matching direction is held
	JumpStrength float64 // upward launch velocity, negative
	CoyoteTime   float64 // grace after leaving ground
	JumpBuffer   float64 // grace before landing
	Flying       bool    // skips gravity and floor/platform resolution

	DashSpeed    float64
	DashDuration float64
	DashCooldown float64

	// state
	OnGround        bool
	FacingLeft      bool
	CoyoteTimer     float64
	JumpBufferTimer float64
	Dashing         bool
	DashTimer       float64
	DashCooldownT   float64
}

// BB returns the body's axis-aligned bounding box at the given position.
func (b *KinematicBody) BB(pos Transform) cp.BB {
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X + b.Width, T: pos.Y + b.Height}
}

var KinematicBodyComponent = NewComponent[KinematicBody]()
