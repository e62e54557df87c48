package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/catalog/internal/config"
	"github.com/harrison/catalog/internal/filelock"
	"github.com/harrison/catalog/internal/models"
)

// Logger receives generation progress. *logger.ConsoleLogger implements it.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogRunStart(runID, root string)
	LogScanComplete(categories, examples int)
	LogArtifact(path, status string, size int)
	LogRunComplete(written int, dryRun bool, duration time.Duration)
}

// Generator runs the scan, build, render and write pipeline for one configuration
type Generator struct {
	config *config.Config
	logger Logger
	runID  string
}

// Result summarizes a generation run
type Result struct {
	RunID           string
	Catalog         *models.Catalog
	Plan            *Plan
	EmptyCategories []string
	DryRun          bool
	Written         []string // empty on dry runs
}

// NewGenerator creates a Generator. A nil logger discards all messages.
func NewGenerator(cfg *config.Config, logger Logger) *Generator {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Generator{
		config: cfg,
		logger: logger,
		runID:  uuid.New().String(),
	}
}

// RunID returns the identifier of this generator's run
func (g *Generator) RunID() string {
	return g.runID
}

// Load scans the configured root, builds the catalog and validates it
func (g *Generator) Load(ctx context.Context) (*models.Catalog, *ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	scan, err := Scan(g.config.Root, ScanOptions{
		SkipHidden: g.config.SkipHidden,
		Exclude:    g.config.Exclude,
	})
	if err != nil {
		return nil, nil, err
	}

	c := Build(scan.Examples)
	g.logger.LogScanComplete(len(c.Categories()), c.Len())
	if c.IsEmpty() {
		g.logger.LogWarn(fmt.Sprintf("no examples under %s; the listing will only have its header", g.config.Root))
	}
	for _, category := range scan.EmptyCategories {
		g.logger.LogWarn(fmt.Sprintf("category %s has no examples and gets no module file", category))
	}

	if err := Validate(c); err != nil {
		return nil, nil, err
	}

	return c, scan, nil
}

// Plan loads the catalog and renders every artifact without touching disk
func (g *Generator) Plan(ctx context.Context) (*Result, error) {
	c, scan, err := g.Load(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(g.config)
	if err != nil {
		return nil, err
	}
	plan, err := renderer.Plan(c)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:           g.runID,
		Catalog:         c,
		Plan:            plan,
		EmptyCategories: scan.EmptyCategories,
		DryRun:          g.config.DryRun,
	}, nil
}

// Run regenerates every artifact. Failures in any stage are returned; on a
// staging failure no target file is modified.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	g.logger.LogRunStart(g.runID, g.config.Root)

	result, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	if result.DryRun {
		for _, a := range result.Plan.Artifacts {
			g.logger.LogArtifact(a.Path, "would write", len(a.Content))
		}
		g.logger.LogRunComplete(len(result.Plan.Artifacts), true, time.Since(start))
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	write := func() error {
		return g.write(result)
	}
	if g.config.LockFile != "" {
		g.logger.LogDebug(fmt.Sprintf("acquiring lock %s", g.config.LockFile))
		err = filelock.WithLock(g.config.LockFile, write)
	} else {
		err = write()
	}
	if err != nil {
		return nil, err
	}

	g.logger.LogRunComplete(len(result.Written), false, time.Since(start))
	return result, nil
}

// write stages all artifacts, then commits them
func (g *Generator) write(result *Result) error {
	files := make([]filelock.File, 0, len(result.Plan.Artifacts))
	for _, a := range result.Plan.Artifacts {
		files = append(files, filelock.File{Path: a.Path, Data: a.Content})
	}

	batch, err := filelock.Stage(files, g.runID)
	if err != nil {
		return err
	}
	if err := batch.Commit(); err != nil {
		return err
	}

	for _, a := range result.Plan.Artifacts {
		g.logger.LogArtifact(a.Path, "wrote", len(a.Content))
		result.Written = append(result.Written, a.Path)
	}
	return nil
}

// FileState describes how a generated file on disk compares to its rendering
type FileState string

const (
	StateCurrent FileState = "current"
	StateStale   FileState = "stale"
	StateMissing FileState = "missing"
)

// FileStatus is the comparison result for one artifact
type FileStatus struct {
	Path  string
	State FileState
}

// Compare reads each planned artifact's target and reports whether it is
// current, stale or missing
func Compare(plan *Plan) ([]FileStatus, error) {
	statuses := make([]FileStatus, 0, len(plan.Artifacts))
	for _, a := range plan.Artifacts {
		data, err := os.ReadFile(a.Path)
		switch {
		case os.IsNotExist(err):
			statuses = append(statuses, FileStatus{Path: a.Path, State: StateMissing})
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", a.Path, err)
		case bytes.Equal(data, a.Content):
			statuses = append(statuses, FileStatus{Path: a.Path, State: StateCurrent})
		default:
			statuses = append(statuses, FileStatus{Path: a.Path, State: StateStale})
		}
	}
	return statuses, nil
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string) {}
func (nopLogger) LogWarn(string) {}
func (nopLogger) LogRunStart(string, string) {}
func (nopLogger) LogScanComplete(int, int) {}
func (nopLogger) LogArtifact(string, string, int) {}
func (nopLogger) LogRunComplete(int, bool, time.Duration) {}
