package cli

import (
	"github.com/spf13/cobra"

	"github.com/jacksonloper/p3loops/pkg/square"
)

// demoCommand creates the demo command, which walks through four worked
// examples illustrating the side identification and the crossing test.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print worked examples of path and crossing checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo()
			return nil
		},
	}
}

// demoEdge builds an edge from known-good literals. Only called with
// positions inside [0, 100], so the construction error is impossible.
func demoEdge(startSide string, startPos float64, endSide string, endPos float64) square.Edge {
	e, err := square.ParseEdge(startSide, startPos, endSide, endPos)
	if err != nil {
		panic(err)
	}
	return e
}

func runDemo() {
	printTitle("Example 1: a path that chains via the identification")
	edges := []square.Edge{
		demoEdge("south", 10, "east", 30),
		demoEdge("north", 30, "west", 10), // north ≡ east, so this connects
	}
	for _, e := range edges {
		printDetail("%s", e)
	}
	printVerdict("valid path", square.IsValidPath(edges))
	printVerdict("noncrossing", square.IsNoncrossing(edges))
	printVerdict("noncrossing path", square.IsNoncrossingPath(edges))

	printTitle("Example 2: edges that do not chain")
	edges = []square.Edge{
		demoEdge("south", 10, "east", 30),
		demoEdge("north", 50, "west", 10), // 50 != 30, no connection
	}
	for _, e := range edges {
		printDetail("%s", e)
	}
	printVerdict("valid path", square.IsValidPath(edges))
	printVerdict("noncrossing path", square.IsNoncrossingPath(edges))

	printTitle("Example 3: crossing chords")
	edges = []square.Edge{
		demoEdge("north", 10, "south", 10), // vertical chord near the west side
		demoEdge("east", 50, "west", 50),   // horizontal chord through the middle
	}
	for _, e := range edges {
		printDetail("%s", e)
	}
	printVerdict("noncrossing", square.IsNoncrossing(edges))

	printTitle("Example 4: disjoint arcs do not cross")
	edges = []square.Edge{
		demoEdge("north", 20, "north", 40),
		demoEdge("south", 60, "south", 80),
	}
	for _, e := range edges {
		printDetail("%s", e)
	}
	printVerdict("noncrossing", square.IsNoncrossing(edges))
}
