package component

// Session is the run-scoped game state that older builds kept in globals:
// score, combo, deaths, and the segment spawn point. It lives on a single
// entity owned by the game and is passed through the world like any other
// component.
type Session struct {
	Score      int
	Combo      int
	ComboTimer float64

	Deaths         int
	SegmentDeaths  int
	SegmentElapsed float64

	SpawnX float64
	SpawnY float64

	Achievements map[string]bool
}

// ComboMultiplier is the score multiplier applied to the next hit.
func (s *Session) ComboMultiplier() int {
	return s.Combo + 1
}

var SessionComponent = NewComponent[Session]()
