// Package cli implements the cargo-brief command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargo-brief/internal/config"
	"github.com/matzehuels/cargo-brief/pkg/buildinfo"
	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/deps/rust"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ProviderFactory builds the dependency graph provider for a run.
type ProviderFactory func(cargo string, logger *log.Logger) deps.Provider

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// NewProvider defaults to the cargo metadata provider.
	NewProvider ProviderFactory

	config  *config.Config
	cfgFile string
	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		NewProvider: func(cargo string, logger *log.Logger) deps.Provider {
			return rust.NewProvider(cargo, logger)
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Cargo runs external
// subcommands as `cargo-brief brief <args>`, so the tree mirrors
// `cargo brief`.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "cargo",
		Short:             "Cargo extension commands",
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cargo-brief/config.toml)")

	root.AddCommand(c.briefCommand())

	return root
}

// setup loads configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, path, err := config.Load(ctx, config.LoadOptions{ConfigFilePath: c.cfgFile})
	if err != nil {
		return err
	}
	c.config = cfg

	level := LogInfo
	if c.verbose || (cfg.Verbose && !cmd.Flags().Changed("verbose")) {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}

	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// settings returns the loaded config, or defaults when setup did not run.
func (c *CLI) settings() *config.Config {
	if c.config == nil {
		return config.DefaultConfig()
	}
	return c.config
}
