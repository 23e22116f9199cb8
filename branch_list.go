package main

import "strings"

// normalizeBranchLines reduces raw `git branch -a` lines to plain branch
// names: the current-branch marker, the worktree-checkout markers some git
// versions print (+/-), and the remotes/origin/ prefix are stripped, the
// origin/HEAD symref line is dropped, and a local branch with a same-named
// remote-tracking ref collapses to a single entry. First occurrence wins,
// so output order is stable.
func normalizeBranchLines(lines []string) []string {
	branches := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, raw := range lines {
		// Symref lines like "remotes/origin/HEAD -> origin/main" are not
		// branches.
		if strings.Contains(raw, " -> ") {
			continue
		}
		name := raw
		if strings.HasPrefix(name, "*") {
			name = strings.TrimLeft(name[1:], " \t")
		}
		name = strings.TrimSpace(name)
		if strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
			name = strings.TrimLeft(name[1:], " \t")
		}
		name = strings.TrimPrefix(name, "remotes/origin/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		branches = append(branches, name)
	}
	return branches
}

// listBranches enumerates local and remote-tracking branches under their
// short names. A name returned here is not guaranteed to have a local ref.
func listBranches(repoRoot string, gitBin string) []string {
	result := gitOutput(repoRoot, gitBin, "branch", "-a")
	text := result.Text()
	if text == "" {
		return []string{}
	}
	return normalizeBranchLines(strings.Split(text, "\n"))
}

// localBranchExists reports whether the branch has a local ref.
func localBranchExists(repoRoot string, gitBin string, branch string) bool {
	result := gitOutput(repoRoot, gitBin, "rev-parse", "--verify", "refs/heads/"+branch)
	return result.Ok() && result.TrimmedText() != ""
}

// branchExists reports whether the branch is known at all, locally or as a
// remote-tracking ref, going through the same normalization the menus use.
func branchExists(repoRoot string, gitBin string, branch string) bool {
	for _, name := range listBranches(repoRoot, gitBin) {
		if name == branch {
			return true
		}
	}
	return false
}
