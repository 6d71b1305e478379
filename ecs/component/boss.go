package component

// BossPhase is a one-way two-state machine: phase 1 until health drops
// below half of max, phase 2 after. There is no return to phase 1.
type BossPhase int

const (
	BossPhase1 BossPhase = 1
	BossPhase2 BossPhase = 2
)

// Boss drives the boss attack-pattern timer. The pattern for each decision
// is chosen by an embedded script so phase behavior can be tuned without a
// rebuild.
type Boss struct {
	Phase BossPhase

	PatternTimer   float64
	Phase1Interval float64
	Phase2Interval float64

	Script  string // prefab script name, e.g. "boss.tengo"
	Pattern string // last chosen pattern

	HoverY     float64 // anchor height for hover patterns
	SwoopSpeed float64

	// shoot and summon tuning
	ProjectileSpeed  float64
	ProjectileDamage int
	VolleySize       int // shots per circular volley
	SummonCount      int // minions per summon
}

var BossComponent = NewComponent[Boss]()
