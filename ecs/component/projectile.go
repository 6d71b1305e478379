package component

// Projectile is a boss-fired shot. It flies in a straight line, damages the
// player on contact, and is removed on hit or once it leaves the level.
type Projectile struct {
	Damage int
}

var ProjectileComponent = NewComponent[Projectile]()
