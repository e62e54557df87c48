package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
const DefaultConfigFile = ".catalog.yaml"

// Version is one entry of the listing's "Versions" section
type Version struct {
	// Name is the link text (e.g., "ver 1")
	Name string `yaml:"name"`

	// URL is the link target
	URL string `yaml:"url"`
}

// Config represents catalog generator configuration options
type Config struct {
	// Root is the scan root holding <category>/<example>/ directories
	Root string `yaml:"root"`

	// OutputDir is where per-category module files are written
	OutputDir string `yaml:"output_dir"`

	// ModuleFile is a template for the module file name, relative to OutputDir
	ModuleFile string `yaml:"module_file"`

	// Declaration is a template for one module declaration line
	Declaration string `yaml:"declaration"`

	// ListingPath is the path of the generated listing file
	ListingPath string `yaml:"listing_path"`

	// Title is the listing's level-1 heading
	Title string `yaml:"title"`

	// Versions are rendered as links under the listing's "Versions" heading
	Versions []Version `yaml:"versions"`

	// SkipHidden ignores directories starting with "."
	SkipHidden bool `yaml:"skip_hidden"`

	// Exclude lists directory names ignored at both scan levels
	Exclude []string `yaml:"exclude"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// DryRun renders everything but writes nothing
	DryRun bool `yaml:"dry_run"`

	// LockFile, when set, is locked while generated files are committed
	LockFile string `yaml:"lock_file"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Root:        "src",
		OutputDir:   "src",
		ModuleFile:  "{{.Category}}.rs",
		Declaration: "pub mod {{.Name}};",
		ListingPath: "README.md",
		Title:       "Design Pattern Catalog",
		Versions:    nil,
		SkipHidden:  true,
		Exclude:     nil,
		LogLevel:    "info",
		DryRun:      false,
		LockFile:    "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.ModuleFile != "" {
		cfg.ModuleFile = fileCfg.ModuleFile
	}
	if fileCfg.Declaration != "" {
		cfg.Declaration = fileCfg.Declaration
	}
	if fileCfg.ListingPath != "" {
		cfg.ListingPath = fileCfg.ListingPath
	}
	if fileCfg.Title != "" {
		cfg.Title = fileCfg.Title
	}
	if len(fileCfg.Versions) > 0 {
		cfg.Versions = fileCfg.Versions
	}
	if len(fileCfg.Exclude) > 0 {
		cfg.Exclude = fileCfg.Exclude
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.DryRun {
		cfg.DryRun = fileCfg.DryRun
	}
	if fileCfg.LockFile != "" {
		cfg.LockFile = fileCfg.LockFile
	}

	// skip_hidden defaults to true, so only an explicit key can turn it off
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["skip_hidden"]; exists {
			cfg.SkipHidden = fileCfg.SkipHidden
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .catalog.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// Flags holds CLI overrides; nil fields leave the configuration untouched
type Flags struct {
	Root        *string
	OutputDir   *string
	ListingPath *string
	LogLevel    *string
	DryRun      *bool
	LockFile    *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(flags Flags) {
	if flags.Root != nil {
		c.Root = *flags.Root
	}
	if flags.OutputDir != nil {
		c.OutputDir = *flags.OutputDir
	}
	if flags.ListingPath != nil {
		c.ListingPath = *flags.ListingPath
	}
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
	if flags.DryRun != nil {
		c.DryRun = *flags.DryRun
	}
	if flags.LockFile != nil {
		c.LockFile = *flags.LockFile
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if strings.TrimSpace(c.ListingPath) == "" {
		return fmt.Errorf("listing_path cannot be empty")
	}

	if _, err := template.New("module_file").Option("missingkey=error").Parse(c.ModuleFile); err != nil {
		return fmt.Errorf("invalid module_file template: %w", err)
	}
	if !strings.Contains(c.ModuleFile, "{{") {
		return fmt.Errorf("module_file %q must reference the category, e.g. {{.Category}}.rs", c.ModuleFile)
	}
	if _, err := template.New("declaration").Option("missingkey=error").Parse(c.Declaration); err != nil {
		return fmt.Errorf("invalid declaration template: %w", err)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for i, v := range c.Versions {
		if v.Name == "" || v.URL == "" {
			return fmt.Errorf("versions[%d] needs both name and url", i)
		}
	}

	return nil
}
