package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/catalog/internal/models"
)

func TestBuildGroupsByCategory(t *testing.T) {
	examples := []models.Example{
		models.NewExample("src", "behavioral", "command"),
		models.NewExample("src", "behavioral", "strategy"),
		models.NewExample("src", "creational", "factory_method"),
	}

	c := Build(examples)

	assert.Equal(t, []string{"behavioral", "creational"}, c.Categories())
	assert.Equal(t, []string{"behavioral/command", "behavioral/strategy"}, names(c.Examples("behavioral")))
	assert.Equal(t, []string{"creational/factory_method"}, names(c.Examples("creational")))
	assert.NoError(t, Validate(c))
}

func TestBuildPreservesInputOrder(t *testing.T) {
	// Not sorted on purpose: Build must not reorder within a category
	examples := []models.Example{
		models.NewExample("src", "b", "zeta"),
		models.NewExample("src", "a", "one"),
		models.NewExample("src", "b", "alpha"),
	}

	c := Build(examples)
	assert.Equal(t, []string{"b/zeta", "b/alpha"}, names(c.Examples("b")))
}

func TestBuildEmpty(t *testing.T) {
	c := Build(nil)
	assert.True(t, c.IsEmpty())
	assert.NoError(t, Validate(c))
}

func TestBuildKeepsDuplicatesAndValidateRejectsThem(t *testing.T) {
	examples := []models.Example{
		models.NewExample("src", "behavioral", "command"),
		models.NewExample("vendor", "behavioral", "command"),
	}

	c := Build(examples)
	assert.Equal(t, 2, c.Len())

	err := Validate(c)
	var dupErr *models.DuplicateError
	require.True(t, errors.As(err, &dupErr))
	require.Len(t, dupErr.Duplicates, 1)
	assert.Equal(t, "vendor/behavioral/command", dupErr.Duplicates[0].Path)
}
