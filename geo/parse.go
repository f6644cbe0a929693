package geo

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrParse is returned when a string does not match the "(x, y)" notation.
var ErrParse = errors.New("geo: malformed position")

// posNotation is the "(x, y)" grammar. Signs are separate tokens to the
// lexer, so each component captures an optional sign plus a numeric token.
type posNotation struct {
	X string `parser:"'(' @('-' | '+')? @(Int | Float)"`
	Y string `parser:"',' @('-' | '+')? @(Int | Float) ')'"`
}

var posParser = participle.MustBuild[posNotation]()

// ParsePos parses the "(x, y)" notation produced by Pos.String: optional
// surrounding whitespace, a literal '(', the x component, a comma, the y
// component, a literal ')'. Anything else fails with an error wrapping
// ErrParse.
func ParsePos[T Number](s string) (Pos[T], error) {
	node, err := posParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return Pos[T]{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	x, err := parseScalar[T](node.X)
	if err != nil {
		return Pos[T]{}, fmt.Errorf("%w: x component %q", ErrParse, node.X)
	}
	y, err := parseScalar[T](node.Y)
	if err != nil {
		return Pos[T]{}, fmt.Errorf("%w: y component %q", ErrParse, node.Y)
	}
	return Pos[T]{X: x, Y: y}, nil
}

// parseScalar decodes a decimal component as T, using T's own kind and bit
// width so narrow types reject out-of-range text instead of truncating.
func parseScalar[T Number](s string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(i), nil
	}
}
