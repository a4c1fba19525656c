// Package cli implements the basecanvas command-line interface.
//
// This package provides commands for creating drawings, outlining and moving
// bases, inspecting saved documents and rendering their SVG. The CLI is built
// using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - new: Create a drawing document from base specs
//   - outline: Outline bases of an existing document
//   - move: Move a base; its label and outlines follow
//   - inspect: List bases and saved outline references
//   - render: Write the SVG tree of a document
//   - defaults: Print the effective outline defaults
//
// # Configuration
//
// Outline defaults and the log level are read from
// $XDG_CONFIG_HOME/basecanvas/config.toml (or ~/.config/basecanvas/config.toml),
// or from the file given with --config. A missing file means built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/basecanvas/pkg/buildinfo"
	"github.com/matzehuels/basecanvas/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "basecanvas"

	// configFile is the default config file name inside the config directory.
	configFile = "config.toml"
)

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

	out        io.Writer
	configPath string
	strict     bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		cfg:    &config.Config{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs) to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Basecanvas draws and restores outlines around bases",
		Long:         `Basecanvas is a CLI tool for drawing bases with movable circular outlines, saving them to JSON documents and restoring them, including documents written by older versions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/basecanvas/config.toml)")
	root.PersistentFlags().BoolVar(&c.strict, "strict", false, "fail when a saved outline cannot be restored")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.defaultsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its log level.
// An explicit --config path must exist; the default one may be missing.
func (c *CLI) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		path, pathErr := configPath()
		if pathErr != nil {
			c.cfg = &config.Config{}
			return nil
		}
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		c.SetLogLevel(level)
	}
	return nil
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the default config file path using the XDG standard
// (~/.config/basecanvas/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}
