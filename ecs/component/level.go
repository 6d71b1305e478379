package component

// LevelBounds is the playable extent of the current segment's world.
type LevelBounds struct {
	Width  float64
	FloorY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
