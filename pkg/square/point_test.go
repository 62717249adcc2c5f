package square

import (
	"testing"

	"github.com/jacksonloper/p3loops/pkg/errors"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Side
		wantErr bool
	}{
		{name: "full lowercase", input: "north", want: North},
		{name: "abbreviation", input: "e", want: East},
		{name: "uppercase", input: "SOUTH", want: South},
		{name: "mixed case", input: "West", want: West},
		{name: "abbreviation uppercase", input: "N", want: North},
		{name: "surrounding whitespace", input: "  south  ", want: South},
		{name: "unknown word", input: "northeast", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSide(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSide(%q) error = nil, want error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidSide) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSide)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{North, "north"},
		{East, "east"},
		{South, "south"},
		{West, "west"},
		{Side(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.side.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", int(tt.side), got, tt.want)
		}
	}
}

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		wantErr  bool
	}{
		{name: "interior", position: 50},
		{name: "lower boundary", position: 0},
		{name: "upper boundary", position: 100},
		{name: "below range", position: -1, wantErr: true},
		{name: "above range", position: 101, wantErr: true},
		{name: "far below", position: -1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(North, tt.position)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPoint(North, %v) error = nil, want error", tt.position)
				}
				if !errors.Is(err, errors.ErrCodeInvalidPosition) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPosition)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPoint(North, %v) error = %v", tt.position, err)
			}
			if p.Side != North || p.Position != tt.position {
				t.Errorf("NewPoint(North, %v) = %v", tt.position, p)
			}
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		want     Point
		wantCode errors.Code
	}{
		{name: "full name", spec: "south@10", want: Point{South, 10}},
		{name: "abbreviation", spec: "E@37.5", want: Point{East, 37.5}},
		{name: "whitespace around position", spec: "north@ 25", want: Point{North, 25}},
		{name: "missing separator", spec: "south10", wantCode: errors.ErrCodeInvalidEdge},
		{name: "non-numeric position", spec: "south@ten", wantCode: errors.ErrCodeInvalidEdge},
		{name: "bad side", spec: "up@10", wantCode: errors.ErrCodeInvalidSide},
		{name: "out of range", spec: "south@150", wantCode: errors.ErrCodeInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndpoint(tt.spec)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("ParseEndpoint(%q) error = nil, want code %v", tt.spec, tt.wantCode)
				}
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEndpoint(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseEndpoint(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{name: "north maps to east", in: Point{North, 30}, want: Point{East, 30}},
		{name: "south maps to west", in: Point{South, 30}, want: Point{West, 30}},
		{name: "east is fixed", in: Point{East, 30}, want: Point{East, 30}},
		{name: "west is fixed", in: Point{West, 30}, want: Point{West, 30}},
		{name: "position preserved at boundary", in: Point{North, 0}, want: Point{East, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Canonicalize()
			if got != tt.want {
				t.Errorf("Canonicalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			// Idempotence: canonicalizing twice equals canonicalizing once.
			if again := got.Canonicalize(); again != got {
				t.Errorf("Canonicalize not idempotent: %v -> %v -> %v", tt.in, got, again)
			}
		})
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{name: "north equals east at same position", a: Point{North, 30}, b: Point{East, 30}, want: true},
		{name: "south equals west at same position", a: Point{South, 10}, b: Point{West, 10}, want: true},
		{name: "same side different position", a: Point{North, 30}, b: Point{North, 50}, want: false},
		{name: "identified sides different position", a: Point{North, 30}, b: Point{East, 50}, want: false},
		{name: "opposite gluings never meet", a: Point{North, 30}, b: Point{South, 30}, want: false},
		{name: "identical points", a: Point{West, 75}, b: Point{West, 75}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equivalent(tt.b); got != tt.want {
				t.Errorf("%v.Equivalent(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Symmetry holds for every pair.
			if got := tt.b.Equivalent(tt.a); got != tt.want {
				t.Errorf("%v.Equivalent(%v) = %v, want %v (asymmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEquivalentReflexive(t *testing.T) {
	for _, side := range []Side{North, East, South, West} {
		for _, pos := range []float64{0, 12.5, 50, 100} {
			p := Point{Side: side, Position: pos}
			if !p.Equivalent(p) {
				t.Errorf("%v not equivalent to itself", p)
			}
		}
	}
}

func TestPointString(t *testing.T) {
	p := Point{South, 12.5}
	if got, want := p.String(), "south@12.5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
