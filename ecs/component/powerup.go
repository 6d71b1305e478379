package component

// PowerupKind selects what a pickup grants.
type PowerupKind int

const (
	PowerupSpeed PowerupKind = iota
	PowerupDamage
)

// Powerups holds the player's active timed boosts, in seconds remaining.
type Powerups struct {
	Speed  float64
	Damage float64
}

const (
	SpeedBoostMultiplier  = 1.5
	DamageBoostMultiplier = 2.0
)

// SpeedMultiplier is applied to horizontal movement while the speed boost
// is running.
func (p *Powerups) SpeedMultiplier() float64 {
	if p != nil && p.Speed > 0 {
		return SpeedBoostMultiplier
	}
	return 1.0
}

// DamageMultiplier is applied to outgoing hit damage while the damage boost
// is running.
func (p *Powerups) DamageMultiplier() float64 {
	if p != nil && p.Damage > 0 {
		return DamageBoostMultiplier
	}
	return 1.0
}

var PowerupsComponent = NewComponent[Powerups]()

// Pickup is a collectible powerup in the world.
type Pickup struct {
	Kind     PowerupKind
	Width    float64
	Height   float64
	Duration float64
}

var PickupComponent = NewComponent[Pickup]()
