package component

// Health tracks hit points and the post-hit invulnerability window.
// Current never goes below zero; the combat system clamps at the point of
// mutation.
type Health struct {
	Current      int
	Max          int
	Invulnerable float64 // seconds remaining, 0 when vulnerable

	// Stage is the damage-stage index for multi-stage enemies. It advances
	// on every non-lethal hit and selects an alternate sheet row.
	Stage int
}

var HealthComponent = NewComponent[Health]()
