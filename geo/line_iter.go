package geo

// LineIterator walks one unit per step from a start position in a fixed
// direction, for a bounded number of steps. It does no bounds checking;
// compose with Area.Has or Area.FilterPositions for bounded traversal.
type LineIterator[T Number] struct {
	current   Pos[T]
	direction Direction
	distance  int
}

// Next returns the next position and true, or a zero position and false once
// the step count is used up.
func (it *LineIterator[T]) Next() (Pos[T], bool) {
	if it.distance <= 0 {
		return Pos[T]{}, false
	}

	p := it.current
	it.current = it.current.Destination(1, it.direction)
	it.distance--
	return p, true
}
