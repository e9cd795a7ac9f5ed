package common

// Logical screen size. All bounds math is driven by these.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// TicksPerSecond is the fixed simulation rate. Physics constants are tuned
// against it, so it is not user-configurable.
const TicksPerSecond = 60
