package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksonloper/p3loops/pkg/errors"
	"github.com/jacksonloper/p3loops/pkg/manifest"
	"github.com/jacksonloper/p3loops/pkg/square"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	pairs bool // list the index pairs of crossing edges
}

// checkCommand creates the check command. Edges come either from a single
// TOML manifest path or from inline edge arguments; the two forms are
// auto-detected by the .toml extension.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <manifest.toml | edge ...>",
		Short: "Check whether edges chain into a valid noncrossing path",
		Long: `Check whether a sequence of directed boundary edges chains into a valid
path under the side identification, and whether any two of them cross as
chords of the boundary circle.

Edges come from a TOML manifest file or inline arguments. An inline edge has
the form start:end where each endpoint is side@position; sides may be
abbreviated to one letter.

Examples:
  p3loops check edges.toml
  p3loops check south@10:east@30 north@30:west@10
  p3loops check n@10:s@10 e@50:w@50 --pairs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.pairs, "pairs", false, "list the index pairs of crossing edges")

	return cmd
}

// runCheck resolves the arguments into edges and prints the verdicts.
// Malformed input is an error; a false predicate is an ordinary result.
func (c *CLI) runCheck(ctx context.Context, opts checkOpts, args []string) error {
	edges, name, err := collectEdges(args)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("checking %d edges", len(edges))

	if name != "" {
		printTitle("%s", name)
	}
	printInfo("checking %d edges", len(edges))
	for _, e := range edges {
		printDetail("%s", e)
	}

	printVerdict("valid path", square.IsValidPath(edges))
	printVerdict("noncrossing", square.IsNoncrossing(edges))
	printVerdict("noncrossing path", square.IsNoncrossingPath(edges))

	if opts.pairs {
		for _, p := range square.CrossingPairs(edges) {
			printDetail("edges %d and %d cross: %s × %s", p[0], p[1], edges[p[0]], edges[p[1]])
		}
	}
	return nil
}

// collectEdges resolves command arguments into an edge list. A single
// argument with a manifest extension is loaded from disk; anything else is
// parsed as inline edge specs. Returns the manifest's display name when one
// was loaded.
func collectEdges(args []string) ([]square.Edge, string, error) {
	if len(args) == 1 && manifest.Supports(args[0]) {
		doc, err := manifest.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		return doc.Edges, doc.Name, nil
	}

	edges := make([]square.Edge, 0, len(args))
	for _, arg := range args {
		e, err := parseEdgeArg(arg)
		if err != nil {
			return nil, "", err
		}
		edges = append(edges, e)
	}
	return edges, "", nil
}

// parseEdgeArg parses an inline "start:end" edge spec, e.g.
// "south@10:east@30".
func parseEdgeArg(arg string) (square.Edge, error) {
	startSpec, endSpec, ok := strings.Cut(arg, ":")
	if !ok {
		return square.Edge{}, errors.New(errors.ErrCodeInvalidEdge,
			"edge %q must have the form start:end", arg)
	}
	start, err := square.ParseEndpoint(startSpec)
	if err != nil {
		return square.Edge{}, err
	}
	end, err := square.ParseEndpoint(endSpec)
	if err != nil {
		return square.Edge{}, err
	}
	return square.NewEdge(start, end), nil
}
