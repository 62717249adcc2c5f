package square

// IsValidPath reports whether the edges chain into a path: each edge's
// endpoint must be equivalent (under the side identification) to the next
// edge's start point. The empty sequence and any single edge are valid.
//
// The check is purely local to consecutive pairs, evaluated left to right
// with a short-circuit on the first break. It does not require closure
// (the last edge connecting back to the first) and does not reject
// repeated vertices.
func IsValidPath(edges []Edge) bool {
	for i := 0; i < len(edges)-1; i++ {
		if !edges[i].ConnectsTo(edges[i+1]) {
			return false
		}
	}
	return true
}
