package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/catalog/internal/catalog"
	"github.com/harrison/catalog/internal/config"
	"github.com/harrison/catalog/internal/logger"
)

// addConfigFlags registers the flags shared by every command
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: nearest .catalog.yaml)")
	flags.String("root", "", "Directory holding <category>/<example>/ directories")
	flags.String("output-dir", "", "Directory for per-category module files")
	flags.String("listing", "", "Path of the generated listing file")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("lock-file", "", "Lock this file while writing generated files")
	flags.Bool("dry-run", false, "Render everything but write nothing")
}

// loadConfig resolves the configuration file, applies changed flags and validates the result
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	var (
		cfg  *config.Config
		base string
		err  error
	)

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, fmt.Errorf("failed to access config file: %w", statErr)
		}
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		base = filepath.Dir(configPath)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		dir, err := config.FindProjectDir(cwd)
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadConfigFromDir(dir)
		if err != nil {
			return nil, err
		}
		if rel, relErr := filepath.Rel(cwd, dir); relErr == nil {
			base = rel
		} else {
			base = dir
		}
	}

	// Paths in the config file are relative to the file; flags are relative to cwd
	cfg.ResolveRelative(base)
	cfg.MergeWithFlags(changedFlags(cmd))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// changedFlags returns only the flags the user set explicitly
func changedFlags(cmd *cobra.Command) config.Flags {
	flags := cmd.Flags()
	var out config.Flags

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	out.Root = str("root")
	out.OutputDir = str("output-dir")
	out.ListingPath = str("listing")
	out.LogLevel = str("log-level")
	out.LockFile = str("lock-file")
	if flags.Changed("dry-run") {
		v, _ := flags.GetBool("dry-run")
		out.DryRun = &v
	}
	return out
}

// newGenerator wires a generator with a console logger on the command's stderr
func newGenerator(cmd *cobra.Command, cfg *config.Config) *catalog.Generator {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return catalog.NewGenerator(cfg, log)
}
