package geo

import (
	"errors"
	"testing"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		in   string
		want Pos[int]
	}{
		{"(1, -2)", NewPos(1, -2)},
		{"(0, 0)", NewPos(0, 0)},
		{"(-3,4)", NewPos(-3, 4)},
		{"  (1, -2)  ", NewPos(1, -2)},
		{"(+7, 9)", NewPos(7, 9)},
	}
	for _, tt := range tests {
		got, err := ParsePos[int](tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("parse %q: want %v got %v", tt.in, tt.want, got)
		}
	}
}

func TestParsePosErrors(t *testing.T) {
	tests := []string{
		"",
		"1, 2",
		"(1 2)",
		"(1, x)",
		"(1, 2",
		"1, 2)",
		"(1, 2) tail",
		"(1, 2, 3)",
	}
	for _, in := range tests {
		if _, err := ParsePos[int](in); !errors.Is(err, ErrParse) {
			t.Fatalf("parse %q: want ErrParse got %v", in, err)
		}
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	tests := []Pos[int]{
		NewPos(0, 0),
		NewPos(1, -2),
		NewPos(-100, 42),
	}
	for _, p := range tests {
		got, err := ParsePos[int](p.String())
		if err != nil {
			t.Fatalf("round trip %v: %v", p, err)
		}
		if got != p {
			t.Fatalf("round trip %v: got %v", p, got)
		}
	}
}

func TestParsePosUnsigned(t *testing.T) {
	got, err := ParsePos[uint]("(3, 4)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != NewPos[uint](3, 4) {
		t.Fatalf("want (3, 4) got %v", got)
	}

	if _, err := ParsePos[uint]("(-1, 4)"); !errors.Is(err, ErrParse) {
		t.Fatalf("negative into uint: want ErrParse got %v", err)
	}
}

func TestParsePosNarrow(t *testing.T) {
	// Components must fit the concrete type, not just parse as a number.
	if _, err := ParsePos[int8]("(300, 0)"); !errors.Is(err, ErrParse) {
		t.Fatalf("overflowing int8: want ErrParse got %v", err)
	}
	got, err := ParsePos[int8]("(-128, 127)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != NewPos[int8](-128, 127) {
		t.Fatalf("want (-128, 127) got %v", got)
	}
}

func TestParsePosFloat(t *testing.T) {
	got, err := ParsePos[float64]("(1.5, -2.25)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != NewPos(1.5, -2.25) {
		t.Fatalf("want (1.5, -2.25) got %v", got)
	}
}
