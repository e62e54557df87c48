package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/catalog/internal/display"
)

// NewListCommand creates and returns the list subcommand
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the discovered categories and examples as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c, _, err := newGenerator(cmd, cfg).Load(cmd.Context())
			if err != nil {
				return err
			}

			return display.RenderTree(cmd.OutOrStdout(), cfg.Root, c)
		},
		SilenceUsage: true,
	}

	return cmd
}
