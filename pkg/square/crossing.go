package square

// EdgesCross reports whether two edges cross when drawn as chords of the
// boundary circle. Edges that share an endpoint, directly or via the side
// identification, are defined never to cross; otherwise the edges' arcs
// are compared on the unrolled boundary.
//
// An edge whose endpoints map to the same circle coordinate spans a
// degenerate arc and never registers as crossing anything, even where the
// chords would geometrically touch.
func EdgesCross(e1, e2 Edge) bool {
	if e1.Start.Equivalent(e2.Start) ||
		e1.Start.Equivalent(e2.End) ||
		e1.End.Equivalent(e2.Start) ||
		e1.End.Equivalent(e2.End) {
		return false
	}

	a1 := boundaryCoordinate(e1.Start)
	a2 := boundaryCoordinate(e1.End)
	b1 := boundaryCoordinate(e2.Start)
	b2 := boundaryCoordinate(e2.End)

	return arcsCross(a1, a2, b1, b2)
}

// IsNoncrossing reports whether no two edges in the sequence cross. All
// C(n,2) unordered pairs are examined, short-circuiting on the first
// crossing found. The edges need not form a path.
func IsNoncrossing(edges []Edge) bool {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if EdgesCross(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}

// CrossingPairs returns the index pairs (i, j) with i < j whose edges
// cross, in lexicographic order. Unlike [IsNoncrossing] it examines every
// pair, which makes it useful for reporting. Returns nil when nothing
// crosses.
func CrossingPairs(edges []Edge) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if EdgesCross(edges[i], edges[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// IsNoncrossingPath reports whether the edges form a valid path none of
// whose edges cross. Path validity and noncrossing-ness are independent
// properties; both must hold.
func IsNoncrossingPath(edges []Edge) bool {
	return IsValidPath(edges) && IsNoncrossing(edges)
}
