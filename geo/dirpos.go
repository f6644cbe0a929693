package geo

import "fmt"

// DirPos is a position with a heading.
type DirPos[T Number] struct {
	Pos       Pos[T]
	Direction Direction
}

// NewDirPos returns a new DirPos.
func NewDirPos[T Number](p Pos[T], d Direction) DirPos[T] {
	return DirPos[T]{Pos: p, Direction: d}
}

// String renders the pair as "(x, y): direction".
func (dp DirPos[T]) String() string {
	return fmt.Sprintf("%v: %v", dp.Pos, dp.Direction)
}

// Next returns the DirPos moved distance along its heading.
func (dp DirPos[T]) Next(distance T) DirPos[T] {
	return DirPos[T]{Pos: dp.NextPos(distance), Direction: dp.Direction}
}

// NextPos returns the position distance along this DirPos's heading.
func (dp DirPos[T]) NextPos(distance T) Pos[T] {
	return dp.Pos.Destination(distance, dp.Direction)
}

// WithDirection returns the DirPos with a new heading at the same position.
func (dp DirPos[T]) WithDirection(d Direction) DirPos[T] {
	return DirPos[T]{Pos: dp.Pos, Direction: d}
}
