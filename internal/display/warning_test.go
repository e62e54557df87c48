package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf)

	output := buf.String()

	if !strings.HasPrefix(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code at start of output")
	}
	if !strings.Contains(output, "⚠️  Warning: Configuration Missing\n") {
		t.Errorf("Expected title line in output, got %q", output)
	}
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at end of output")
	}
	if strings.Contains(output, "Suggestion") || strings.Contains(output, "Affected") {
		t.Errorf("Optional sections should be omitted, got %q", output)
	}
}

func TestDisplayWarning_AllSections(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Stale files",
		Message:    "The catalog changed",
		Paths:      []string{"src/behavioral.rs", "README.md"},
		Suggestion: "Run catalog generate",
	}.Display(&buf)

	output := buf.String()
	for _, want := range []string{
		"    The catalog changed\n",
		"    Affected paths:\n",
		"      1. src/behavioral.rs\n",
		"      2. README.md\n",
		"    Suggestion:\n    Run catalog generate\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got %q", want, output)
		}
	}
}

func TestDisplayWarning_SinglePath(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "t", Paths: []string{"src/x"}}.Display(&buf)

	if !strings.Contains(buf.String(), "Affected path:\n") {
		t.Errorf("Expected singular label, got %q", buf.String())
	}
}

func TestWarnEmptyCategories(t *testing.T) {
	w := WarnEmptyCategories("src", []string{"structural"})
	if w.Title != "Found 1 empty category directory" {
		t.Errorf("unexpected title %q", w.Title)
	}
	if len(w.Paths) != 1 || w.Paths[0] != "src/structural" {
		t.Errorf("unexpected paths %v", w.Paths)
	}

	w = WarnEmptyCategories("src", []string{"a", "b"})
	if w.Title != "Found 2 empty category directories" {
		t.Errorf("unexpected title %q", w.Title)
	}
}
