package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargo-brief/pkg/brief"
)

// briefOpts holds the command-line flags for the brief command.
type briefOpts struct {
	manifestPath string // forwarded to cargo metadata
	noDev        bool   // drop dev-only dependencies
	recursive    bool   // list every workspace member
	color        string // auto, always or never
}

// briefCommand creates `cargo brief [PACKAGE]`.
func (c *CLI) briefCommand() *cobra.Command {
	opts := briefOpts{manifestPath: brief.DefaultManifestPath}

	cmd := &cobra.Command{
		Use:   "brief [PACKAGE]",
		Short: "Print a brief summary of dependencies",
		Long: StyleTitle.Render("cargo brief") + StyleDim.Render(" - summarize the direct dependencies of a crate") + `

PACKAGE is a name pattern where '*' matches any run of characters and '?'
matches one character. Several matches are listed as a table; a single
match is shown in detail.

` + StyleTitle.Render("Examples:") + `
  cargo brief                   List every direct dependency
  cargo brief serde             Show details for serde
  cargo brief 'tokio*'          List tokio and its companion crates
  cargo brief --no-dev          Skip dev-only dependencies
  cargo brief -r                List dependencies of every workspace member`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := brief.DefaultPattern
			if len(args) == 1 {
				pattern = args[0]
			}
			return c.runBrief(cmd, opts, pattern)
		},
	}

	cmd.Flags().StringVar(&opts.manifestPath, "manifest-path", opts.manifestPath, "path to Cargo.toml")
	cmd.Flags().BoolVar(&opts.noDev, "no-dev", false, "exclude dependencies used only for development")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "list dependencies of every workspace member")
	cmd.Flags().StringVar(&opts.color, "color", "", "colorize labels: auto, always or never")

	return cmd
}

// runBrief merges flags over config and runs the pipeline, writing to the
// command's output.
func (c *CLI) runBrief(cmd *cobra.Command, opts briefOpts, pattern string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := c.settings()

	noDev := opts.noDev
	if !cmd.Flags().Changed("no-dev") {
		noDev = cfg.NoDev
	}
	color := opts.color
	if !cmd.Flags().Changed("color") {
		color = cfg.Color
	}
	mode, err := brief.ParseColorMode(color)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runner := brief.NewRunner(c.NewProvider(cfg.Cargo, logger), brief.NewRenderer(out, mode), out, logger)

	prog := newProgress(logger)
	res, err := runner.Run(ctx, brief.Options{
		Pattern:      pattern,
		ManifestPath: opts.manifestPath,
		NoDev:        noDev,
		Recursive:    opts.recursive,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Matched %d packages in %d scopes", res.Total, len(res.Scopes)))
	return nil
}
