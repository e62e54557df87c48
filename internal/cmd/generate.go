package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/catalog/internal/display"
)

type generateOptions struct {
	quiet bool
}

// NewGenerateCommand creates and returns the generate subcommand
func NewGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate every module file and the listing file",
		Long: `Scan the root directory and rewrite, in one pass:
  - <output-dir>/<category>.rs for every category with examples
  - the listing file with one section per category

All files are rendered and staged before any of them is replaced, so a
failure leaves the existing files untouched.

Exit code: 0 on success, 1 on any scan, render or write error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Only print errors and warnings")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := newGenerator(cmd, cfg).Run(cmd.Context())
	if err != nil {
		return err
	}

	if len(result.EmptyCategories) > 0 {
		display.WarnEmptyCategories(cfg.Root, result.EmptyCategories).Display(cmd.ErrOrStderr())
	}
	if opts.quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	paths := result.Plan.Paths()
	progress := display.NewProgressIndicator(out, len(paths))

	if result.DryRun {
		progress.Start("Would write")
		for _, p := range paths {
			progress.Step(p)
		}
		progress.Complete("Dry run: nothing written")
		return nil
	}

	progress.Start("Wrote")
	for _, p := range result.Written {
		progress.Step(p)
	}
	progress.Complete(fmt.Sprintf("Catalog regenerated: %d examples in %d categories",
		result.Catalog.Len(), len(result.Catalog.Categories())))
	return nil
}
