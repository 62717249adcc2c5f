package square

import "math"

// circumference of the unrolled boundary circle: four sides of 100 units.
const circumference = 400

// boundaryCoordinate maps a point onto a single coordinate on the 400-unit
// boundary circle: the square's perimeter traversed clockwise from the
// north-west corner. West position 0 maps to 400, which pointInArc treats
// as 0.
// Sides whose own directed orientation runs against the clockwise traversal
// (East and West) are reflected.
//
// The mapping deliberately ignores the side identification: North and East
// land in disjoint ranges even when the points are equivalent. The gluing
// matters for connectivity, not for the geometric embedding.
func boundaryCoordinate(p Point) float64 {
	switch p.Side {
	case North:
		// North runs west → east, matching clockwise travel from NW.
		return p.Position
	case East:
		// East runs south → north; clockwise travel goes north → south.
		return 100 + (100 - p.Position)
	case South:
		// South runs east → west, matching clockwise travel from SE.
		return 200 + p.Position
	default: // West
		// West runs north → south; clockwise travel goes south → north.
		// Position 0 lands at 400, which is 0 mod 400.
		return 300 + (100 - p.Position)
	}
}

// pointInArc reports whether x lies strictly inside the arc from start to
// end, all coordinates reduced mod 400. A degenerate arc (start == end)
// has empty interior. When the arc wraps through 0 the two half-open
// pieces are checked separately.
func pointInArc(x, start, end float64) bool {
	x = math.Mod(x, circumference)
	start = math.Mod(start, circumference)
	end = math.Mod(end, circumference)

	if start == end {
		return false
	}
	if start < end {
		return start < x && x < end
	}
	return x > start || x < end
}

// arcsCross reports whether the chords under the arcs (a1,a2) and (b1,b2)
// properly cross: each arc must separate the other's endpoints. For
// non-degenerate arcs the two conjuncts are equivalent by the alternation
// property of circle chords; checking both guards the degenerate inputs.
func arcsCross(a1, a2, b1, b2 float64) bool {
	b1InA := pointInArc(b1, a1, a2)
	b2InA := pointInArc(b2, a1, a2)
	a1InB := pointInArc(a1, b1, b2)
	a2InB := pointInArc(a2, b1, b2)
	return (b1InA != b2InA) && (a1InB != a2InB)
}
