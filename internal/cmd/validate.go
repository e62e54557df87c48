package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and the example tree",
		Long: `Load the configuration, scan the root and check for:
  - unreadable or missing directories
  - duplicate examples within a category
  - module file templates that collide or render empty names

Nothing is written.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := newGenerator(cmd, cfg).Plan(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32m✓\x1b[0m %d examples in %d categories, %d files to generate\n",
				result.Catalog.Len(), len(result.Catalog.Categories()), len(result.Plan.Artifacts))
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
