package square

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonloper/p3loops/pkg/errors"
)

// Point is a position on the boundary of the square: a side together with a
// percentage in [0, 100] measured along that side's own directed
// orientation. Points are immutable values; construct them with [NewPoint],
// [ParsePoint], or [ParseEndpoint] so the position range is enforced.
type Point struct {
	Side     Side    // Which side of the square the point lies on
	Position float64 // Percentage along the side, in [0, 100]
}

// NewPoint creates a Point on the given side. Returns an error with code
// ErrCodeInvalidPosition when position lies outside [0, 100]; the boundary
// values 0 and 100 are both valid.
func NewPoint(side Side, position float64) (Point, error) {
	if position < 0 || position > 100 {
		return Point{}, errors.New(errors.ErrCodeInvalidPosition,
			"position must be between 0 and 100, got %v", position)
	}
	return Point{Side: side, Position: position}, nil
}

// ParsePoint creates a Point from a side name and a position. The side name
// is parsed with [ParseSide]; construction errors from either step are
// propagated.
func ParsePoint(side string, position float64) (Point, error) {
	s, err := ParseSide(side)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(s, position)
}

// ParseEndpoint parses the compact "side@position" spelling used by edge
// manifests and CLI arguments, e.g. "south@10" or "E@37.5". Returns an
// error with code ErrCodeInvalidEdge when the separator is missing or the
// position is not numeric, and propagates side and range errors otherwise.
func ParseEndpoint(spec string) (Point, error) {
	side, pos, ok := strings.Cut(spec, "@")
	if !ok {
		return Point{}, errors.New(errors.ErrCodeInvalidEdge,
			"endpoint %q must have the form side@position", spec)
	}
	position, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return Point{}, errors.New(errors.ErrCodeInvalidEdge,
			"endpoint %q has a non-numeric position", spec)
	}
	return ParsePoint(side, position)
}

// Canonicalize returns the canonical form of the point under the side
// identification: North maps to East and South maps to West, position
// preserved; East and West map to themselves. Canonicalizing twice equals
// canonicalizing once.
func (p Point) Canonicalize() Point {
	switch p.Side {
	case North:
		return Point{Side: East, Position: p.Position}
	case South:
		return Point{Side: West, Position: p.Position}
	}
	return p
}

// Equivalent reports whether two points coincide under the identification,
// i.e. whether their canonical forms are equal. Positions compare exactly.
func (p Point) Equivalent(other Point) bool {
	return p.Canonicalize() == other.Canonicalize()
}

// String returns the compact "side@position" spelling, e.g. "north@10".
func (p Point) String() string {
	return fmt.Sprintf("%s@%v", p.Side, p.Position)
}
