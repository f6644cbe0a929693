package geo

// AreaIterator walks every position of an Area in row-major order: all X of
// the lowest row first, then the row above, up to MaxY. Obtain one from
// Area.Iter; an exhausted iterator stays exhausted.
type AreaIterator[T Number] struct {
	area     Area[T]
	currentX T
	currentY T
}

// Next returns the next position and true, or a zero position and false once
// the area is exhausted.
func (it *AreaIterator[T]) Next() (Pos[T], bool) {
	if it.currentY > it.area.MaxY {
		return Pos[T]{}, false
	}

	p := Pos[T]{X: it.currentX, Y: it.currentY}
	if it.currentX >= it.area.MaxX {
		it.currentX = it.area.MinX
		it.currentY++
	} else {
		it.currentX++
	}
	return p, true
}
