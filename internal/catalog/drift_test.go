package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/catalog/internal/models"
)

func TestCheckCleanAfterGenerate(t *testing.T) {
	_, cfg := testProject(t, "behavioral/command/", "behavioral/strategy/", "creational/factory_method/")

	_, err := NewGenerator(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	drift, err := NewGenerator(cfg, nil).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, drift.Clean(), "drift: %+v", drift)
	assert.Len(t, drift.Files, 3)
}

func TestCheckBeforeGenerate(t *testing.T) {
	_, cfg := testProject(t, "behavioral/command/")

	drift, err := NewGenerator(cfg, nil).Check(context.Background())
	require.NoError(t, err)

	assert.False(t, drift.Clean())
	for _, f := range drift.Files {
		assert.Equal(t, StateMissing, f.State)
	}
	assert.Equal(t, []string{"behavioral/command"}, names(drift.Undocumented))
}

func TestCheckDetectsNewAndRemovedExamples(t *testing.T) {
	dir, cfg := testProject(t, "behavioral/command/", "behavioral/strategy/")
	log := &recordingLogger{}

	_, err := NewGenerator(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	// Tree changes after generation
	require.NoError(t, os.RemoveAll(filepath.Join(dir, "src", "behavioral", "strategy")))
	makeTree(t, filepath.Join(dir, "src"), "behavioral/template/")

	drift, err := NewGenerator(cfg, log).Check(context.Background())
	require.NoError(t, err)

	assert.False(t, drift.Clean())
	assert.Equal(t, []string{"behavioral/template"}, names(drift.Undocumented))
	assert.Equal(t, []string{"behavioral/strategy"}, names(drift.Unknown))

	states := map[string]FileState{}
	for _, f := range drift.Files {
		states[filepath.Base(f.Path)] = f.State
	}
	assert.Equal(t, StateStale, states["behavioral.rs"])
	assert.Equal(t, StateStale, states["README.md"])
	assert.NotEmpty(t, log.warnings)
}

func TestCheckCleanAfterGenerateWithMarkdownNames(t *testing.T) {
	tests := []string{
		"template method",
		"__init__",
		"a<b>",
		"x)y",
		"f(x)",
		"[tag]",
		"*star*",
		"a&amp;b",
		"back`tick",
		"bang!",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, cfg := testProject(t, "behavioral/"+name+"/", "_private/command/")

			_, err := NewGenerator(cfg, nil).Run(context.Background())
			require.NoError(t, err)

			drift, err := NewGenerator(cfg, nil).Check(context.Background())
			require.NoError(t, err)
			assert.True(t, drift.Clean(), "undocumented=%v unknown=%v", names(drift.Undocumented), names(drift.Unknown))
		})
	}
}

func TestCheckCleanWithListingInsideRoot(t *testing.T) {
	dir, cfg := testProject(t, "behavioral/command/", "creational/factory_method/")
	cfg.ListingPath = filepath.Join(dir, "src", "README.md")

	_, err := NewGenerator(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, readFile(t, cfg.ListingPath), "- [command](behavioral/command)\n")

	drift, err := NewGenerator(cfg, nil).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, drift.Clean(), "drift: %+v", drift)
}

func TestCheckDoesNotWrite(t *testing.T) {
	dir, cfg := testProject(t, "behavioral/command/")

	_, err := NewGenerator(cfg, nil).Check(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "README.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiffExamples(t *testing.T) {
	onDisk := []models.Example{
		models.NewExample("src", "a", "one"),
		models.NewExample("src", "a", "two"),
	}
	listed := []models.Example{
		{Path: "src/a/two", Category: "a", Name: "two"},
		{Path: "src/b/three", Category: "b", Name: "three"},
	}

	undocumented, unknown := diffExamples(onDisk, listed)
	assert.Equal(t, []string{"a/one"}, names(undocumented))
	assert.Equal(t, []string{"b/three"}, names(unknown))
}
