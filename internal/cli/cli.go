// Package cli implements the p3loops command-line interface.
//
// This package provides commands for checking edge sequences on the glued
// square: whether they chain into a valid path and whether any two edges
// cross as chords of the boundary circle. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - check: Evaluate the path and crossing predicates over an edge list
//     given inline or as a TOML manifest
//   - demo: Print worked examples illustrating the side identification
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Predicate
// results go to stdout; log lines go to stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jacksonloper/p3loops/pkg/buildinfo"
)

// appName is the application name used for display and completion scripts.
const appName = "p3loops"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "p3loops checks noncrossing paths on a square with identified sides",
		Long:         `p3loops models the boundary of a unit square whose North side is glued to East and South to West (positions preserved), and checks whether sequences of directed boundary edges chain into valid paths and whether any of them cross.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Attach the logger to the command context so RunE bodies can fetch it
	// with loggerFromContext.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}
