// Package geo provides generic 2D coordinate primitives for grid-based
// computation: positions, directions, bounded areas and lazy traversal
// iterators over them. Everything is a plain copyable value; concurrent use
// is safe by giving each goroutine its own copies.
package geo

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for coordinate component types.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is the subset of Number that can represent negative values.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Pos is a position in a 2D space. Larger Y means further up.
type Pos[T Number] struct {
	X T
	Y T
}

// NewPos returns a new Pos.
func NewPos[T Number](x, y T) Pos[T] {
	return Pos[T]{X: x, Y: y}
}

// String renders the position as "(x, y)".
func (p Pos[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Add returns the component-wise sum of two positions.
func (p Pos[T]) Add(q Pos[T]) Pos[T] {
	return Pos[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Pos[T]) Sub(q Pos[T]) Pos[T] {
	return Pos[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the position scaled by s.
func (p Pos[T]) Mul(s T) Pos[T] {
	return Pos[T]{X: p.X * s, Y: p.Y * s}
}

// Div returns the position divided by s.
func (p Pos[T]) Div(s T) Pos[T] {
	return Pos[T]{X: p.X / s, Y: p.Y / s}
}

// Neg returns the position with both components negated.
func (p Pos[T]) Neg() Pos[T] {
	return Pos[T]{X: -p.X, Y: -p.Y}
}

// Up returns the position above this one (y + distance).
func (p Pos[T]) Up(distance T) Pos[T] {
	return Pos[T]{X: p.X, Y: p.Y + distance}
}

// Down returns the position below this one (y - distance).
func (p Pos[T]) Down(distance T) Pos[T] {
	return Pos[T]{X: p.X, Y: p.Y - distance}
}

// Left returns the position to the left of this one (x - distance).
func (p Pos[T]) Left(distance T) Pos[T] {
	return Pos[T]{X: p.X - distance, Y: p.Y}
}

// Right returns the position to the right of this one (x + distance).
func (p Pos[T]) Right(distance T) Pos[T] {
	return Pos[T]{X: p.X + distance, Y: p.Y}
}

// TopLeft returns the position to the top left of this one (x - distance, y + distance).
func (p Pos[T]) TopLeft(distance T) Pos[T] {
	return Pos[T]{X: p.X - distance, Y: p.Y + distance}
}

// TopRight returns the position to the top right of this one (x + distance, y + distance).
func (p Pos[T]) TopRight(distance T) Pos[T] {
	return Pos[T]{X: p.X + distance, Y: p.Y + distance}
}

// BottomLeft returns the position to the bottom left of this one (x - distance, y - distance).
func (p Pos[T]) BottomLeft(distance T) Pos[T] {
	return Pos[T]{X: p.X - distance, Y: p.Y - distance}
}

// BottomRight returns the position to the bottom right of this one (x + distance, y - distance).
func (p Pos[T]) BottomRight(distance T) Pos[T] {
	return Pos[T]{X: p.X + distance, Y: p.Y - distance}
}

// Neighbours returns the four cross-direction neighbours,
// in the order up, down, left, right.
func (p Pos[T]) Neighbours(distance T) [4]Pos[T] {
	return [4]Pos[T]{p.Up(distance), p.Down(distance), p.Left(distance), p.Right(distance)}
}

// NeighboursDiag returns the four diagonal neighbours,
// in the order top left, top right, bottom left, bottom right.
func (p Pos[T]) NeighboursDiag(distance T) [4]Pos[T] {
	return [4]Pos[T]{p.TopLeft(distance), p.TopRight(distance), p.BottomLeft(distance), p.BottomRight(distance)}
}

// Destination returns the position reached by moving distance in direction d.
func (p Pos[T]) Destination(distance T, d Direction) Pos[T] {
	switch d {
	case Up:
		return p.Up(distance)
	case Down:
		return p.Down(distance)
	case Left:
		return p.Left(distance)
	case Right:
		return p.Right(distance)
	case TopLeft:
		return p.TopLeft(distance)
	case TopRight:
		return p.TopRight(distance)
	case BottomLeft:
		return p.BottomLeft(distance)
	case BottomRight:
		return p.BottomRight(distance)
	}
	panic(fmt.Sprintf("geo: direction out of range: %d", uint8(d)))
}

// Swap returns the position with X and Y exchanged.
func (p Pos[T]) Swap() Pos[T] {
	return Pos[T]{X: p.Y, Y: p.X}
}

// LineIter returns a LineIterator walking from this position in direction d
// for distance steps.
func (p Pos[T]) LineIter(distance int, d Direction) *LineIterator[T] {
	return &LineIterator[T]{current: p, direction: d, distance: distance}
}

// Origin returns the position at (0, 0).
func Origin[T Number]() Pos[T] {
	return Pos[T]{}
}

// UnitX returns the position at (1, 0).
func UnitX[T Number]() Pos[T] {
	return Pos[T]{X: 1}
}

// UnitY returns the position at (0, 1).
func UnitY[T Number]() Pos[T] {
	return Pos[T]{Y: 1}
}

// Manhattan returns the Manhattan distance between two positions.
func Manhattan[T SignedNumber](p, q Pos[T]) T {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs[T SignedNumber](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
