package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		total:   total,
		current: 0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(verb string) {
	fmt.Fprintf(p.writer, "%s %d files:\n", verb, p.total)
}

// Step displays progress for current item: [N/Total] path (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.total, path)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete(summary string) {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m %s\n", summary)
}
