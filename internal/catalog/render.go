package catalog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lithammer/dedent"

	"github.com/harrison/catalog/internal/config"
	"github.com/harrison/catalog/internal/models"
)

// listingHeader renders everything above the per-category sections.
var listingHeader = template.Must(template.New("listing").Parse(strings.TrimSpace(dedent.Dedent(`
	# {{.Title}}
	## Versions
	{{- range .Versions}}
	- [{{.Name}}]({{.URL}})
	{{- end}}
	## Implementations
`))))

// Output is an ordered list of text lines rendered for one file
type Output struct {
	lines []string
}

// Add appends one line
func (o *Output) Add(line string) {
	o.lines = append(o.lines, line)
}

// Bytes joins the lines with "\n" and terminates the text with a newline
func (o *Output) Bytes() []byte {
	return []byte(strings.Join(o.lines, "\n") + "\n")
}

// ArtifactKind tells module files and the listing file apart
type ArtifactKind string

const (
	// KindModule is a per-category module-declaration file
	KindModule ArtifactKind = "module"
	// KindListing is the global listing file
	KindListing ArtifactKind = "listing"
)

// Artifact is one rendered file bound to its target path
type Artifact struct {
	Kind     ArtifactKind
	Category string // empty for the listing
	Path     string
	Content  []byte
}

// Plan holds every artifact of a run: module files in category order, then the listing
type Plan struct {
	Artifacts []Artifact
}

// Paths returns the target paths in plan order
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Artifacts))
	for _, a := range p.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

// Renderer turns a catalog into module and listing files
type Renderer struct {
	outputDir   string
	listingPath string
	title       string
	versions    []config.Version
	moduleFile  *template.Template
	declaration *template.Template
}

// NewRenderer builds a Renderer from the configured templates and paths
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	moduleFile, err := template.New("module_file").Option("missingkey=error").Parse(cfg.ModuleFile)
	if err != nil {
		return nil, fmt.Errorf("invalid module_file template: %w", err)
	}
	declaration, err := template.New("declaration").Option("missingkey=error").Parse(cfg.Declaration)
	if err != nil {
		return nil, fmt.Errorf("invalid declaration template: %w", err)
	}

	return &Renderer{
		outputDir:   cfg.OutputDir,
		listingPath: cfg.ListingPath,
		title:       cfg.Title,
		versions:    cfg.Versions,
		moduleFile:  moduleFile,
		declaration: declaration,
	}, nil
}

// ModulePath returns the module file path of a category
func (r *Renderer) ModulePath(category string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Category string }{Category: category}
	if err := r.moduleFile.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("module file name for %s: %w", category, err)
	}

	name := strings.TrimSpace(buf.String())
	if name == "" {
		return "", fmt.Errorf("module file name for %s is empty", category)
	}
	return filepath.Join(r.outputDir, name), nil
}

// RenderModule emits one declaration line per example, in the given order
func (r *Renderer) RenderModule(examples []models.Example) (*Output, error) {
	out := &Output{}
	for _, e := range examples {
		var buf bytes.Buffer
		if err := r.declaration.Execute(&buf, e); err != nil {
			return nil, fmt.Errorf("declaration for %s: %w", e.Key(), err)
		}
		out.Add(buf.String())
	}
	return out, nil
}

// RenderListing emits the header, then one "### <category>" section per
// category (sorted) with one "- [<name>](<path>)" line per example.
// Link paths are relative to the listing file's directory when possible.
// Names and paths are escaped so the listing parses back to the same examples.
func (r *Renderer) RenderListing(c *models.Catalog) (*Output, error) {
	out := &Output{}

	var header bytes.Buffer
	data := struct {
		Title    string
		Versions []config.Version
	}{Title: r.title, Versions: r.versions}
	if err := listingHeader.Execute(&header, data); err != nil {
		return nil, fmt.Errorf("listing header: %w", err)
	}
	for _, line := range strings.Split(header.String(), "\n") {
		out.Add(line)
	}

	for _, category := range c.Categories() {
		out.Add(fmt.Sprintf("### %s", escapeText(category)))
		for _, e := range c.Examples(category) {
			out.Add(fmt.Sprintf("- [%s](%s)", escapeText(e.Name), linkDestination(r.linkPath(e))))
		}
	}

	return out, nil
}

// linkPath rebases an example path onto the listing file's directory
func (r *Renderer) linkPath(e models.Example) string {
	base := filepath.Dir(r.listingPath)
	rel, err := filepath.Rel(base, filepath.FromSlash(e.Path))
	if err != nil {
		return e.Path
	}
	return filepath.ToSlash(rel)
}

// escapeText backslash-escapes characters that would turn a name into
// markdown syntax. Underscores between two alphanumerics cannot start
// emphasis and stay as they are, so snake_case names render unchanged.
func escapeText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case strings.IndexByte("\\`*[]<>!&#", c) >= 0:
			b.WriteByte('\\')
		case c == '_' && !(i > 0 && isAlnum(s[i-1]) && i < len(s)-1 && isAlnum(s[i+1])):
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// linkDestination returns p unchanged when it is a plain bare destination,
// otherwise wrapped in <...> with markdown punctuation escaped
func linkDestination(p string) string {
	if !strings.ContainsAny(p, " \t()<>[]`\\&") {
		return p
	}
	var b strings.Builder
	b.WriteByte('<')
	for i := 0; i < len(p); i++ {
		if strings.IndexByte("\\<>[]`&", p[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(p[i])
	}
	b.WriteByte('>')
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Plan renders every artifact for the catalog. Two artifacts resolving to
// the same path are rejected.
func (r *Renderer) Plan(c *models.Catalog) (*Plan, error) {
	plan := &Plan{}
	seen := make(map[string]string)

	claim := func(path, owner string) error {
		key := filepath.Clean(path)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s both render to %s", prev, owner, path)
		}
		seen[key] = owner
		return nil
	}

	for _, category := range c.Categories() {
		path, err := r.ModulePath(category)
		if err != nil {
			return nil, err
		}
		if err := claim(path, "category "+category); err != nil {
			return nil, err
		}

		out, err := r.RenderModule(c.Examples(category))
		if err != nil {
			return nil, err
		}

		plan.Artifacts = append(plan.Artifacts, Artifact{
			Kind:     KindModule,
			Category: category,
			Path:     path,
			Content:  out.Bytes(),
		})
	}

	if err := claim(r.listingPath, "the listing"); err != nil {
		return nil, err
	}
	listing, err := r.RenderListing(c)
	if err != nil {
		return nil, err
	}
	plan.Artifacts = append(plan.Artifacts, Artifact{
		Kind:    KindListing,
		Path:    r.listingPath,
		Content: listing.Bytes(),
	})

	return plan, nil
}
