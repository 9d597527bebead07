package tristrip

// Winding selects the direction in which vertices are emitted around
// the circle. It controls only the sign of the per-step rotation
// angle; both directions produce valid strip orderings of the same
// point set.
type Winding int

const (
	// Clockwise emits vertices clockwise (positive rotation angle).
	Clockwise Winding = iota

	// CounterClockwise emits vertices counter-clockwise (negative
	// rotation angle).
	CounterClockwise
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Unknown"
	}
}
