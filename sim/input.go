package sim

// Input is everything the session reads from the player in one tick.
type Input struct {
	// Quit ends the process from any state.
	Quit bool
	// Start is edge-triggered and only read in the menu.
	Start bool

	Left    bool
	Right   bool
	Reverse bool
}

func (in Input) Thrusters() Thrusters {
	return Thrusters{Left: in.Left, Right: in.Right, Reverse: in.Reverse}
}
