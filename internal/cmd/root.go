package cmd

import (
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for catalog.
// Running it without a subcommand regenerates the catalog.
func NewRootCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Regenerate module and listing files for a design pattern catalog",
		Long: strings.TrimSpace(dedent.Dedent(`
			Catalog scans a tree of design pattern examples laid out as
			<root>/<category>/<example>/ and regenerates the files derived from it:

			  - one module file per category declaring its examples
			  - one listing file (README.md) linking every example

			Configuration is read from .catalog.yaml in the current directory or
			the nearest parent directory; flags override the file.

			Running catalog without a subcommand is the same as "catalog generate".`)),
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addConfigFlags(cmd)
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Only print errors and warnings")

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
