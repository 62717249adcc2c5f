package square

import "fmt"

// Edge is a directed edge between two points on the boundary of the square.
// Nothing constrains the endpoints relative to each other: zero-length and
// same-side edges are legal.
type Edge struct {
	Start Point // Where the edge begins
	End   Point // Where the edge ends
}

// NewEdge creates an Edge from two boundary points.
func NewEdge(start, end Point) Edge {
	return Edge{Start: start, End: end}
}

// ParseEdge creates an Edge from side names and positions, propagating any
// construction error from the endpoints.
func ParseEdge(startSide string, startPos float64, endSide string, endPos float64) (Edge, error) {
	start, err := ParsePoint(startSide, startPos)
	if err != nil {
		return Edge{}, err
	}
	end, err := ParsePoint(endSide, endPos)
	if err != nil {
		return Edge{}, err
	}
	return Edge{Start: start, End: end}, nil
}

// ConnectsTo reports whether this edge's endpoint can chain into the other
// edge's start point, i.e. whether the two are equivalent under the side
// identification.
func (e Edge) ConnectsTo(other Edge) bool {
	return e.End.Equivalent(other.Start)
}

// String returns a readable "start -> end" form, e.g. "south@10 -> east@30".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Start, e.End)
}
