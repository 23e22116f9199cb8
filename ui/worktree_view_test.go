package ui

import (
	"strings"
	"testing"
)

func plainStyles() Styles {
	identity := func(s string) string { return s }
	return Styles{Header: identity, Normal: identity, Secondary: identity, Marker: identity}
}

func TestRenderWorktreeList_HeaderAndRows(t *testing.T) {
	rows := []WorktreeRow{
		{Path: "/repos/app", HeadLabel: "abc123de", BranchLabel: "main"},
		{Path: "/repos/app-feature-x", HeadLabel: "def456ab", BranchLabel: "feature-x", Marker: "prunable"},
	}
	out := RenderWorktreeList(rows, plainStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Path") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "main") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "prunable") {
		t.Fatalf("expected prunable marker at end of row, got %q", lines[2])
	}
}

func TestPadOrTrim(t *testing.T) {
	if got := PadOrTrim("abc", 5); got != "abc  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := PadOrTrim("abcdef", 4); got != "abc…" {
		t.Fatalf("expected ellipsis truncation, got %q", got)
	}
	if got := PadOrTrim("abc", 3); got != "abc" {
		t.Fatalf("expected exact fit, got %q", got)
	}
	if got := PadOrTrim("abc", 0); got != "" {
		t.Fatalf("expected empty for zero width, got %q", got)
	}
}
