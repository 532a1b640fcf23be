package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "trapmap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	demo := c.demoCommand()

	root := &cobra.Command{
		Use:          appName,
		Short:        "trapmap builds a trapezoidal map over non-crossing segments and answers point-location queries",
		Long:         "trapmap builds a randomized incremental trapezoidal map and search structure over a set of non-crossing, non-vertical segments, then answers which trapezoid of the refined subdivision contains a query point.",
		SilenceUsage: true,
		// No subcommand and no input file: fall back to the built-in demo,
		// mirroring the teacher's own demo-by-default main().
		RunE: demo.RunE,
	}

	root.AddCommand(c.buildCommand())
	root.AddCommand(demo)

	return root
}
