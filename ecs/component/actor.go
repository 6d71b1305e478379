package component

// ActorKind is the closed set of combat participants. Behavior differences
// between kinds are data on this component plus a switch in the systems that
// care; there is no kind hierarchy.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorGhost
	ActorCrow
	ActorSwordGhost
	ActorBoss
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorGhost:
		return "ghost"
	case ActorCrow:
		return "crow"
	case ActorSwordGhost:
		return "sword_ghost"
	case ActorBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Actor carries the combat parameterization shared by every kind.
type Actor struct {
	Kind          ActorKind
	ContactDamage int     // dealt to the player on touch
	BlockedDamage int     // damage taken instead while the receiver blocks
	HitPoints     int     // score for a non-lethal hit on this actor
	KillBonus     int     // score for destroying this actor
	InvulnWindow  float64 // post-hit immunity granted to this actor
}

var ActorComponent = NewComponent[Actor]()

// PlayerTag marks the single player entity.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
