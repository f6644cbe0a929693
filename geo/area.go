package geo

import (
	"errors"
	"fmt"
	"iter"
)

// ErrBounds is returned when an area's maximum bound is below its minimum
// on some axis.
var ErrBounds = errors.New("geo: area max bound below min bound")

// Area is an axis-aligned rectangle over positions, inclusive on all four
// bounds. The min <= max invariant is checked at construction only; owners
// replacing fields directly are on their own.
type Area[T Number] struct {
	MaxX T
	MaxY T
	MinX T
	MinY T
}

// NewArea returns a new Area.
func NewArea[T Number](maxX, maxY, minX, minY T) (Area[T], error) {
	if maxX < minX || maxY < minY {
		return Area[T]{}, fmt.Errorf("%w: max (%v, %v), min (%v, %v)", ErrBounds, maxX, maxY, minX, minY)
	}
	return Area[T]{MaxX: maxX, MaxY: maxY, MinX: minX, MinY: minY}, nil
}

// WithMax returns a new Area with the given max bounds and zero min bounds.
func WithMax[T Number](maxX, maxY T) (Area[T], error) {
	return NewArea(maxX, maxY, 0, 0)
}

// FromCorners returns the Area spanned by a top left and a bottom right
// position. Top means the numerically larger Y.
func FromCorners[T Number](topLeft, bottomRight Pos[T]) (Area[T], error) {
	if bottomRight.Y > topLeft.Y || bottomRight.X < topLeft.X {
		return Area[T]{}, fmt.Errorf("%w: top left %v, bottom right %v", ErrBounds, topLeft, bottomRight)
	}
	return Area[T]{MaxX: bottomRight.X, MinX: topLeft.X, MaxY: topLeft.Y, MinY: bottomRight.Y}, nil
}

// Has reports whether p is inside this area, bounds included.
func (a Area[T]) Has(p Pos[T]) bool {
	return p.X >= a.MinX && p.X <= a.MaxX && p.Y >= a.MinY && p.Y <= a.MaxY
}

// OnBoundary reports whether p lies on one of the four edge lines. A position
// outside the area on one axis still counts when it sits exactly on a
// boundary line of the other axis.
func (a Area[T]) OnBoundary(p Pos[T]) bool {
	return p.X == a.MaxX || p.X == a.MinX || p.Y == a.MaxY || p.Y == a.MinY
}

// FilterPositions returns a lazy sequence of the positions in the input that
// are inside this area, in input order.
func (a Area[T]) FilterPositions(positions iter.Seq[Pos[T]]) iter.Seq[Pos[T]] {
	return func(yield func(Pos[T]) bool) {
		for p := range positions {
			if a.Has(p) && !yield(p) {
				return
			}
		}
	}
}

// Rows returns the row count.
func (a Area[T]) Rows() T {
	return a.MaxY - a.MinY + 1
}

// Cols returns the column count.
func (a Area[T]) Cols() T {
	return a.MaxX - a.MinX + 1
}

// Size returns the number of positions in the area.
func (a Area[T]) Size() T {
	return a.Rows() * a.Cols()
}

// TopLeft returns the top left corner.
func (a Area[T]) TopLeft() Pos[T] {
	return Pos[T]{X: a.MinX, Y: a.MaxY}
}

// TopRight returns the top right corner.
func (a Area[T]) TopRight() Pos[T] {
	return Pos[T]{X: a.MaxX, Y: a.MaxY}
}

// BottomLeft returns the bottom left corner.
func (a Area[T]) BottomLeft() Pos[T] {
	return Pos[T]{X: a.MinX, Y: a.MinY}
}

// BottomRight returns the bottom right corner.
func (a Area[T]) BottomRight() Pos[T] {
	return Pos[T]{X: a.MaxX, Y: a.MinY}
}

// Iter returns an AreaIterator over every position in the area, row-major,
// starting at the bottom left corner.
func (a Area[T]) Iter() *AreaIterator[T] {
	return &AreaIterator[T]{area: a, currentX: a.MinX, currentY: a.MinY}
}

// Positions returns the area's positions as a range-over-func sequence.
// Each call starts a fresh traversal.
func (a Area[T]) Positions() iter.Seq[Pos[T]] {
	return func(yield func(Pos[T]) bool) {
		it := a.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
