package ui

import "strings"

// Styles carries the render functions the caller wants applied per row
// role, keeping this package free of any styling dependency.
type Styles struct {
	Header    func(string) string
	Normal    func(string) string
	Secondary func(string) string
	Marker    func(string) string
}

// WorktreeRow is one formatted line of `spawn --list`.
type WorktreeRow struct {
	Path        string
	HeadLabel   string
	BranchLabel string
	Marker      string
}

// RenderWorktreeList renders the worktree table with a header line.
func RenderWorktreeList(rows []WorktreeRow, styles Styles) string {
	const (
		pathWidth   = 48
		headWidth   = 10
		branchWidth = 32
	)
	var b strings.Builder
	b.WriteString(styles.Header(formatWorktreeLine("Path", "HEAD", "Branch", pathWidth, headWidth, branchWidth)))
	b.WriteString("\n")
	for _, row := range rows {
		line := formatWorktreeLine(row.Path, row.HeadLabel, row.BranchLabel, pathWidth, headWidth, branchWidth)
		b.WriteString(styles.Normal(line))
		if row.Marker != "" {
			b.WriteString(" " + styles.Marker(row.Marker))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatWorktreeLine(path string, head string, branch string, pathWidth int, headWidth int, branchWidth int) string {
	return PadOrTrim(path, pathWidth) + " " +
		PadOrTrim(head, headWidth) + " " +
		PadOrTrim(branch, branchWidth)
}

// PadOrTrim fits s into exactly width cells, truncating with an ellipsis
// when too long.
func PadOrTrim(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		if width == 1 {
			return "…"
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
