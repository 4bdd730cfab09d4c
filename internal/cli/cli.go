// Package cli implements the dashlayout command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/pkg/buildinfo"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help text and default file names.
const appName = "dashlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer
}

// New creates a new CLI instance logging to w and printing to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dashlayout drags, resizes and snaps dashboard widgets",
		Long: `Dashlayout is a layout engine for dashboards. Widgets are dragged and
resized inside containers, snap to the visible edges of their siblings and
stay within bounds. Scenes are described in TOML files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.edgesCommand())
	root.AddCommand(c.occlusionCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scene Helpers
// =============================================================================

// buildScene loads a scene file and instantiates it on a fresh engine. With
// replay set, the scene's gestures are run before returning.
func (c *CLI) buildScene(path string, replay bool) (*scene.Layout, []scene.Step, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	l, err := sc.Build(layout.New(layout.Options{Logger: c.Logger}))
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("scene loaded", "path", path, "containers", len(sc.Containers), "gestures", len(sc.Gestures))
	if !replay {
		return l, nil, nil
	}
	steps, err := l.Replay()
	if err != nil {
		return nil, nil, err
	}
	return l, steps, nil
}
