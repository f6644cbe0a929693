package geo

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrRange is returned when a component does not fit the destination type of
// a signed/unsigned conversion.
var ErrRange = errors.New("geo: component out of range")

// ToUnsigned converts a signed position to an unsigned representation.
// It fails if either component is negative or does not fit in U.
func ToUnsigned[U constraints.Unsigned, T constraints.Signed](p Pos[T]) (Pos[U], error) {
	x, err := unsignedValue[U](p.X)
	if err != nil {
		return Pos[U]{}, fmt.Errorf("x: %w", err)
	}
	y, err := unsignedValue[U](p.Y)
	if err != nil {
		return Pos[U]{}, fmt.Errorf("y: %w", err)
	}
	return Pos[U]{X: x, Y: y}, nil
}

// ToSigned converts an unsigned position to a signed representation.
// It fails if either component does not fit in S.
func ToSigned[S constraints.Signed, T constraints.Unsigned](p Pos[T]) (Pos[S], error) {
	x, err := signedValue[S](p.X)
	if err != nil {
		return Pos[S]{}, fmt.Errorf("x: %w", err)
	}
	y, err := signedValue[S](p.Y)
	if err != nil {
		return Pos[S]{}, fmt.Errorf("y: %w", err)
	}
	return Pos[S]{X: x, Y: y}, nil
}

func unsignedValue[U constraints.Unsigned, T constraints.Signed](v T) (U, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %v is negative", ErrRange, v)
	}
	u := U(v)
	if T(u) != v {
		return 0, fmt.Errorf("%w: %v", ErrRange, v)
	}
	return u, nil
}

func signedValue[S constraints.Signed, T constraints.Unsigned](v T) (S, error) {
	s := S(v)
	if s < 0 || T(s) != v {
		return 0, fmt.Errorf("%w: %v", ErrRange, v)
	}
	return s, nil
}
