package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/catalog/internal/models"
)

const sampleListing = `# Rust Design Pattern ( ver 1 )
## Versions
- [ver 1](https://example.com/rust-design-pattern/tree/master)
## Implementations
### behavioral_patterns
- [command](src/behavioral_patterns/command)
- [strategy](src/behavioral_patterns/strategy)
- [template](src/behavioral_patterns/template)
### creational_patterns
- [factory_method](src/creational_patterns/factory_method)
`

func TestParseListing(t *testing.T) {
	listing, err := ParseListing(strings.NewReader(sampleListing))
	require.NoError(t, err)

	assert.Equal(t, "Rust Design Pattern ( ver 1 )", listing.Title)
	assert.Equal(t, []Link{{Text: "ver 1", URL: "https://example.com/rust-design-pattern/tree/master"}}, listing.Versions)
	assert.Equal(t, []string{"behavioral_patterns", "creational_patterns"}, listing.Categories)

	require.Len(t, listing.Entries["behavioral_patterns"], 3)
	assert.Equal(t, Link{Text: "strategy", URL: "src/behavioral_patterns/strategy"}, listing.Entries["behavioral_patterns"][1])
	assert.Equal(t, []Link{{Text: "factory_method", URL: "src/creational_patterns/factory_method"}}, listing.Entries["creational_patterns"])

	examples := listing.Examples()
	require.Len(t, examples, 4)
	assert.Equal(t, models.Example{
		Path:     "src/creational_patterns/factory_method",
		Category: "creational_patterns",
		Name:     "factory_method",
	}, examples[3])
}

func TestParseListingHeaderOnly(t *testing.T) {
	content := "# Catalog\n## Versions\n## Implementations\n"

	listing, err := ParseListing(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "Catalog", listing.Title)
	assert.Empty(t, listing.Versions)
	assert.Empty(t, listing.Categories)
	assert.Empty(t, listing.Examples())
}

func TestParseListingIgnoresOtherSections(t *testing.T) {
	content := `# Catalog

Some intro with a [link](https://example.com).

## Implementations

### behavioral
- [command](src/behavioral/command)

## Notes

### behavioral
- [not an example](https://example.com/notes)
`
	listing, err := ParseListing(strings.NewReader(content))
	require.NoError(t, err)

	assert.Empty(t, listing.Versions)
	assert.Equal(t, []string{"behavioral"}, listing.Categories)
	assert.Equal(t, []Link{{Text: "command", URL: "src/behavioral/command"}}, listing.Entries["behavioral"])
}

func TestParseListingEmphasisInLinkText(t *testing.T) {
	content := "## Implementations\n### behavioral\n- [*chain* of `responsibility`](src/behavioral/chain)\n"

	listing, err := ParseListing(strings.NewReader(content))
	require.NoError(t, err)

	require.Len(t, listing.Entries["behavioral"], 1)
	assert.Equal(t, "chain of responsibility", listing.Entries["behavioral"][0].Text)
}

func TestParseListingEmptyCategoryHeading(t *testing.T) {
	content := "## Implementations\n### structural\n### behavioral\n- [command](src/behavioral/command)\n"

	listing, err := ParseListing(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"structural", "behavioral"}, listing.Categories)
	assert.Empty(t, listing.Entries["structural"])
	assert.Len(t, listing.Examples(), 1)
}

func TestParseListingEscapedNames(t *testing.T) {
	content := "# Catalog\n" +
		"## Implementations\n" +
		"### \\_private\n" +
		"- [\\_\\_init\\_\\_](src/_private/__init__)\n" +
		"### behavioral\n" +
		"- [a\\<b\\>](<src/behavioral/a\\<b\\>>)\n" +
		"- [template method](<src/behavioral/template method>)\n" +
		"- [a\\&amp;b](<src/behavioral/a\\&amp;b>)\n"

	listing, err := ParseListing(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"_private", "behavioral"}, listing.Categories)
	assert.Equal(t, []Link{{Text: "__init__", URL: "src/_private/__init__"}}, listing.Entries["_private"])

	var keys []string
	for _, e := range listing.Examples() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{
		"_private/__init__",
		"behavioral/a<b>",
		"behavioral/template method",
		"behavioral/a&amp;b",
	}, keys)
}

func TestListingExamplesFallsBackToHeading(t *testing.T) {
	listing := &Listing{
		Categories: []string{"behavioral"},
		Entries:    map[string][]Link{"behavioral": {{Text: "command", URL: "command"}}},
	}

	assert.Equal(t, []models.Example{{Path: "command", Category: "behavioral", Name: "command"}}, listing.Examples())
}
