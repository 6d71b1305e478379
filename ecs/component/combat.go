package component

// Hitbox is an offensive AABB relative to the entity transform. It is live
// while the owning entity's animation state matches Anim; if Frames is
// non-empty, only on those frame indices.
type Hitbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Damage  int
	Anim    string
	Frames  []int
}

var HitboxComponent = NewComponent[[]Hitbox]()

// Hurtbox is a defensive AABB relative to the entity transform.
type Hurtbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var HurtboxComponent = NewComponent[[]Hurtbox]()
