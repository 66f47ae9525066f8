// Package cli implements the keygrid command-line interface.
//
// keygrid is a single command:
//
//	keygrid layout.csv layout.png
//	keygrid layout.csv split.png --shape 5x3+5x3
//
// Without --shape the whole CSV grid is drawn as one block of keys. With
// --shape the grid is split into the listed ColsxRows blocks, which are drawn
// left to right with a half-key gap.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log at info level; --verbose (-v)
// enables debug output. The logger travels in the command context and is
// retrieved with loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keygrid/pkg/buildinfo"
	"github.com/matzehuels/keygrid/pkg/observability"
)

// appName is the application name used for display.
const appName = "keygrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the keygrid command.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	opts := renderOpts{}

	root := &cobra.Command{
		Use:   appName + " <input.csv> <output.png>",
		Short: "keygrid renders keyboard layout diagrams",
		Long: `keygrid draws a keyboard layout from a CSV file of key labels. Each key is
drawn as a labeled rectangle. Use --shape to split the grid into blocks, for
example --shape 5x3+5x3 for a split keyboard.`,
		Version:       buildinfo.Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetPipelineHooks(logHooks{})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input, opts.output = args[0], args[1]
			return runRender(cmd, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&opts.shape, "shape", "", "block shape, e.g. 5x3+5x3 (columns x rows per block)")
	root.Flags().StringVar(&opts.configPath, "config", "", "TOML file overriding key size, margin and font")
	root.Flags().StringVar(&opts.font, "font", "", "preferred font file name (default arial.ttf)")
	root.Flags().BoolVar(&opts.preview, "preview", false, "print the layout as terminal tables")

	return root
}
