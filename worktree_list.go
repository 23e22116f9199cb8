package main

import "strings"

// WorktreeRecord is one entry from `git worktree list --porcelain`. Path is
// the unique key. Branch holds the full ref (refs/heads/...) and is empty
// for detached or bare entries.
type WorktreeRecord struct {
	Path     string
	Head     string
	Branch   string
	Bare     bool
	Detached bool
	Prunable bool
}

// parseWorktreeList turns porcelain output into records, one per stanza.
// A pending record is flushed when the next `worktree ` line starts, when a
// blank stanza separator arrives, and once more at end of input for output
// that lacks the trailing blank line. Unknown porcelain fields are skipped
// so newer git versions do not break the parse. Empty input yields an empty
// slice, never an error.
func parseWorktreeList(output string) []WorktreeRecord {
	records := make([]WorktreeRecord, 0, 4)
	var current WorktreeRecord

	flush := func() {
		if current.Path != "" {
			records = append(records, current)
		}
		current = WorktreeRecord{}
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = line[len("worktree "):]
		case strings.HasPrefix(line, "HEAD "):
			current.Head = line[len("HEAD "):]
		case strings.HasPrefix(line, "branch "):
			current.Branch = line[len("branch "):]
		case line == "bare":
			current.Bare = true
		case strings.HasPrefix(line, "detached"):
			current.Detached = true
		case line == "prunable":
			current.Prunable = true
		case strings.TrimSpace(line) == "":
			flush()
		}
	}
	flush()
	return records
}

// BranchShort returns the record's branch without the refs/heads/ prefix,
// or "" when the record has no branch.
func (r WorktreeRecord) BranchShort() string {
	return strings.TrimPrefix(r.Branch, "refs/heads/")
}

// listWorktrees asks git for the current worktrees of the repository at
// repoRoot. A failed command reads as an empty list.
func listWorktrees(repoRoot string, gitBin string) []WorktreeRecord {
	result := gitRawOutput(repoRoot, gitBin, "worktree", "list", "--porcelain")
	return parseWorktreeList(result.Text())
}
