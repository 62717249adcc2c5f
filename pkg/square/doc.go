// Package square models the boundary of a unit square whose four sides are
// identified in pairs: North is glued to East and South is glued to West,
// both gluings preserving the percentage coordinate along the side.
//
// # Overview
//
// Each side of the square carries its own directed percentage coordinate:
//
//   - North runs west → east
//   - East runs south → north
//   - South runs east → west
//   - West runs north → south
//
// A [Point] is a (side, position) pair with position in [0, 100]. An [Edge]
// is a directed pair of boundary points. The package answers two questions
// about an ordered sequence of edges: does it chain into a valid path under
// the side identification ([IsValidPath]), and do any two edges cross when
// drawn as chords of the square's boundary circle ([IsNoncrossing],
// [EdgesCross]). [IsNoncrossingPath] combines both.
//
// # Identification
//
// The gluing is realized as a canonicalization: North points map to East
// and South points map to West, position preserved ([Point.Canonicalize]).
// Two points are equivalent when their canonical forms are equal
// ([Point.Equivalent]). The identification is consulted only for
// connectivity and for the shared-endpoint exclusion in the crossing test;
// the geometric embedding keeps North and East visibly distinct.
//
// # Crossing Detection
//
// For crossing purposes the perimeter is unrolled onto a single circle of
// circumference 400, traversed clockwise from the north-west corner. Each
// edge becomes an arc between its endpoints' circle coordinates, and two
// edges cross exactly when each arc separates the other's endpoints. Edges
// that share an endpoint (directly or via identification) never cross, and
// a degenerate arc with empty interior never crosses anything.
//
// # Errors
//
// Only construction and parsing can fail: [NewPoint] rejects positions
// outside [0, 100] and [ParseSide] rejects unknown side names, both with
// machine-readable codes from the errors package. Every predicate is a
// total function over well-formed values and returns a plain boolean.
//
// # Concurrency
//
// All values are immutable and every function is pure. Sharing points,
// edges, or edge slices read-only across goroutines requires no
// synchronization.
package square
