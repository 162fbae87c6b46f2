// Package cli implements the mazetower command-line interface.
//
// This package provides commands for generating mazes, solving them and
// rendering the result in several formats. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Carve a maze and render it as ASCII, SVG, PNG, PDF or DOT
//   - algorithms: List the registered generation algorithms
//   - completion: Generate shell completion scripts
//
// # Example
//
//	import "github.com/matzehuels/mazetower/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/buildinfo"
	"github.com/matzehuels/mazetower/pkg/pipeline"
)

// appName is the application name used for display and file defaults.
const appName = "mazetower"

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

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazetower generates, solves and renders mazes",
		Long:         `Mazetower is a CLI tool for generating mazes on rectangular and polar grids, braiding and solving them, and rendering the result as ASCII art, vector graphics or node-link diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
