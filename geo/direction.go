package geo

import "fmt"

// Direction is one of the eight directions in a 2D grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var directionNames = [...]string{
	Up:          "up (north)",
	Down:        "down (south)",
	Left:        "left (west)",
	Right:       "right (east)",
	TopLeft:     "top left (north west)",
	TopRight:    "top right (north east)",
	BottomLeft:  "bottom left (south west)",
	BottomRight: "bottom right (south east)",
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// All returns every direction, in a fixed order.
func All() []Direction {
	return []Direction{Up, Down, Left, Right, TopLeft, TopRight, BottomLeft, BottomRight}
}

// Cross returns the four cardinal directions, in a fixed order.
func Cross() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Diagonal returns the four diagonal directions, in a fixed order.
func Diagonal() []Direction {
	return []Direction{TopLeft, TopRight, BottomLeft, BottomRight}
}

// TurnBack returns the direction rotated by 180°.
func (d Direction) TurnBack() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	}
	panic(fmt.Sprintf("geo: direction out of range: %d", uint8(d)))
}

// TurnLeft returns the direction rotated by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Down:
		return Right
	case Left:
		return Down
	case Right:
		return Up
	case TopLeft:
		return BottomLeft
	case TopRight:
		return TopLeft
	case BottomLeft:
		return BottomRight
	case BottomRight:
		return TopRight
	}
	panic(fmt.Sprintf("geo: direction out of range: %d", uint8(d)))
}

// TurnRight returns the direction rotated by 90° clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Down:
		return Left
	case Left:
		return Up
	case Right:
		return Down
	case TopLeft:
		return TopRight
	case TopRight:
		return BottomRight
	case BottomLeft:
		return TopLeft
	case BottomRight:
		return BottomLeft
	}
	panic(fmt.Sprintf("geo: direction out of range: %d", uint8(d)))
}
