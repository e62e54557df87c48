package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/catalog/internal/display"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report generated files that are out of date",
		Long: `Render the catalog in memory and compare it with the files on disk.
Also parses the existing listing file to show examples it is missing
and examples it links to that no longer exist.

Nothing is written.

Exit code: 0 if every generated file is current, 1 otherwise`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
		SilenceUsage: true,
	}

	return cmd
}

func runCheck(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	drift, err := newGenerator(cmd, cfg).Check(cmd.Context())
	if err != nil {
		return err
	}

	report := display.DriftReport{}
	for _, f := range drift.Files {
		report.Files = append(report.Files, display.DriftEntry{Path: f.Path, State: string(f.State)})
	}
	for _, e := range drift.Undocumented {
		report.Undocumented = append(report.Undocumented, e.Key())
	}
	for _, e := range drift.Unknown {
		report.Unknown = append(report.Unknown, e.Key())
	}
	report.Display(cmd.OutOrStdout())

	if !drift.Clean() {
		return fmt.Errorf("catalog is out of date; run \"catalog generate\"")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32m✓\x1b[0m Catalog is up to date\n")
	return nil
}
