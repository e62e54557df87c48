package display

import (
	"fmt"
	"io"
	"strings"
)

// DriftEntry is one line of a drift report
type DriftEntry struct {
	Path  string
	State string // "current", "stale" or "missing"
}

// DriftReport summarizes how generated files differ from a fresh generation
type DriftReport struct {
	Files        []DriftEntry
	Undocumented []string // category/name on disk but not in the listing
	Unknown      []string // category/name in the listing but not on disk
}

// Display prints the report; stale and missing files are flagged in red,
// current files in green.
func (r DriftReport) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Generated files:\n")
	for _, f := range r.Files {
		switch f.State {
		case "current":
			b.WriteString(fmt.Sprintf("  \x1b[32m✓\x1b[0m %s\n", f.Path))
		default:
			b.WriteString(fmt.Sprintf("  \x1b[31m✗\x1b[0m %s (%s)\n", f.Path, f.State))
		}
	}

	if len(r.Undocumented) > 0 {
		b.WriteString("Examples missing from the listing:\n")
		for _, key := range r.Undocumented {
			b.WriteString(fmt.Sprintf("  + %s\n", key))
		}
	}
	if len(r.Unknown) > 0 {
		b.WriteString("Listed examples that no longer exist:\n")
		for _, key := range r.Unknown {
			b.WriteString(fmt.Sprintf("  - %s\n", key))
		}
	}

	fmt.Fprint(out, b.String())
}
