package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressIndicator(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 3)

	p.Start("Writing")
	p.Step("src/behavioral.rs")
	p.Step("src/creational.rs")
	p.Step("README.md")
	p.Complete("Catalog regenerated")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"Writing 3 files:",
		"\x1b[36m  [1/3] src/behavioral.rs\x1b[0m",
		"\x1b[36m  [2/3] src/creational.rs\x1b[0m",
		"\x1b[36m  [3/3] README.md\x1b[0m",
		"\x1b[32m✓\x1b[0m Catalog regenerated",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestProgressIndicatorKeepsFullPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 1)
	p.Step("src/behavioral.rs")

	if !strings.Contains(buf.String(), "src/behavioral.rs") {
		t.Errorf("expected full path in output, got %q", buf.String())
	}
}
