// Package difficulty scales enemy pressure from end-of-segment performance.
// It runs at segment boundaries only, never per frame.
package difficulty

// Knob bounds. The controller clamps on every update, so the scalars can
// never leave these ranges regardless of the call sequence.
const (
	MinDifficulty = 0.5
	MaxDifficulty = 2.0
	MinEnemySpeed = 1.0
	MaxEnemySpeed = 5.0
	MinSpawnRate  = 0.005
	MaxSpawnRate  = 0.02

	easeFactor = 0.9
	rampFactor = 1.1

	hardDeathCount = 3  // more deaths than this eases the game
	fastClearTime  = 60 // seconds; a deathless clear under this ramps it
)

// Controller owns the difficulty scalars read by the spawner at segment
// start.
type Controller struct {
	difficulty float64
	enemySpeed float64
	spawnRate  float64
}

func New() *Controller {
	return &Controller{
		difficulty: 1.0,
		enemySpeed: 2.0,
		spawnRate:  0.01,
	}
}

// Update recalculates the knobs from one segment's performance counters.
func (c *Controller) Update(deaths int, elapsedSeconds float64) {
	switch {
	case deaths > hardDeathCount:
		c.difficulty *= easeFactor
		c.enemySpeed *= easeFactor
		c.spawnRate *= easeFactor
	case deaths == 0 && elapsedSeconds < fastClearTime:
		c.difficulty *= rampFactor
		c.enemySpeed *= rampFactor
		c.spawnRate *= rampFactor
	}
	c.clamp()
}

func (c *Controller) clamp() {
	c.difficulty = clampf(c.difficulty, MinDifficulty, MaxDifficulty)
	c.enemySpeed = clampf(c.enemySpeed, MinEnemySpeed, MaxEnemySpeed)
	c.spawnRate = clampf(c.spawnRate, MinSpawnRate, MaxSpawnRate)
}

func (c *Controller) Difficulty() float64 { return c.difficulty }
func (c *Controller) EnemySpeed() float64 { return c.enemySpeed }
func (c *Controller) SpawnRate() float64  { return c.spawnRate }

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
