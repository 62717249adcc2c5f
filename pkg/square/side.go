package square

import (
	"strings"

	"github.com/jacksonloper/p3loops/pkg/errors"
)

// Side identifies one of the four sides of the square. The set is closed:
// the four named constants are the only valid values.
type Side int

// The four sides of the square, in clockwise boundary order starting at
// the north-west corner.
const (
	North Side = iota
	East
	South
	West
)

// String returns the lowercase side name ("north", "east", "south", "west"),
// or "invalid" for values outside the four constants.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "invalid"
}

// ParseSide converts a side name into a Side. It accepts the full names and
// single-letter abbreviations ("n", "north", "e", "east", "s", "south", "w",
// "west") in any letter case, with surrounding whitespace ignored.
// Returns an error with code ErrCodeInvalidSide for any other input.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSide, "unknown side: %q", s)
}
