package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/harrison/catalog/internal/models"
)

// Section headings of a generated listing file
const (
	versionsHeading        = "Versions"
	implementationsHeading = "Implementations"
)

// Link is a markdown link found in the listing
type Link struct {
	Text string
	URL  string
}

// Listing is the structure recovered from a listing file
type Listing struct {
	Title      string
	Versions   []Link
	Categories []string          // in document order
	Entries    map[string][]Link // category -> example links, in document order
}

// Examples flattens the listing back into examples. Category and name come
// from the link target, which is relative to the listing file; a target
// too short to carry both falls back to the section heading and link text.
func (l *Listing) Examples() []models.Example {
	var examples []models.Example
	for _, category := range l.Categories {
		for _, link := range l.Entries[category] {
			e, err := models.ParseExample(link.URL)
			if err != nil {
				e = models.Example{Path: link.URL, Category: category, Name: link.Text}
			}
			examples = append(examples, e)
		}
	}
	return examples
}

// ListingParser reads listing files with goldmark
type ListingParser struct {
	markdown goldmark.Markdown
}

// NewListingParser creates a ListingParser
func NewListingParser() *ListingParser {
	return &ListingParser{
		markdown: goldmark.New(),
	}
}

// ParseListing parses a listing file with a default ListingParser
func ParseListing(r io.Reader) (*Listing, error) {
	return NewListingParser().Parse(r)
}

// Parse reads the title (level 1 heading), the links under "## Versions",
// and, under "## Implementations", every "### <category>" with its links.
// Content outside those sections is ignored.
func (p *ListingParser) Parse(r io.Reader) (*Listing, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(source))

	listing := &Listing{Entries: make(map[string][]Link)}
	var section, category string

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := strings.TrimSpace(extractText(node, source))
			switch node.Level {
			case 1:
				if listing.Title == "" {
					listing.Title = headingText
				}
			case 2:
				section = headingText
				category = ""
			case 3:
				if section != implementationsHeading {
					return ast.WalkSkipChildren, nil
				}
				category = headingText
				if _, exists := listing.Entries[category]; !exists {
					listing.Categories = append(listing.Categories, category)
					listing.Entries[category] = nil
				}
			}
			return ast.WalkSkipChildren, nil

		case *ast.Link:
			link := Link{
				Text: strings.TrimSpace(extractText(node, source)),
				URL:  string(util.UnescapePunctuations(node.Destination)),
			}
			switch {
			case section == versionsHeading:
				listing.Versions = append(listing.Versions, link)
			case section == implementationsHeading && category != "":
				listing.Entries[category] = append(listing.Entries[category], link)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk listing: %w", err)
	}

	return listing, nil
}

// extractText returns the text below n with backslash escapes resolved
func extractText(n ast.Node, source []byte) string {
	return string(util.UnescapePunctuations([]byte(rawText(n, source))))
}

// rawText concatenates the text segments below n as written in source
func rawText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			buf.Write(child.Segment.Value(source))
		case *ast.String:
			buf.Write(child.Value)
		default:
			buf.WriteString(rawText(c, source))
		}
	}
	return buf.String()
}
