package component

// Platform is a one-way surface. Oscillating platforms bounce linearly
// between AnchorX±Amplitude; displacement from the anchor never exceeds the
// amplitude.
type Platform struct {
	Width  float64
	Height float64

	Moving    bool
	AnchorX   float64
	Amplitude float64
	Speed     float64 // px/s
	Dir       float64 // +1 or -1
}

var PlatformComponent = NewComponent[Platform]()
