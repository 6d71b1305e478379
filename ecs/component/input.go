package component

// Input stores the per-frame control snapshot for an entity. It is written
// once per step by the input system before anything else runs.
type Input struct {
	MoveX       float64 // -1, 0, or +1 from held left/right
	Jump        bool    // jump held
	JumpPressed bool    // jump edge this frame
	Attack      bool
	Block       bool
	Dash        bool
}

var InputComponent = NewComponent[Input]()
