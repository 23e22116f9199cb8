package main

import (
	"path/filepath"
	"strings"
)

// flattenBranchName maps a branch name onto a single path segment, so
// hierarchical names like feature/login produce one worktree directory.
func flattenBranchName(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}

// worktreePathFor is the directory this tool creates worktrees in: a
// sibling of the repository named <repoBase>-<branch>.
func worktreePathFor(repoRoot string, branch string) string {
	return filepath.Join(filepath.Dir(repoRoot), filepath.Base(repoRoot)+"-"+flattenBranchName(branch))
}

// findWorktreeForBranch locates the worktree checked out on branch. A record
// matches either by ref equality (branch field minus refs/heads/) or by the
// <repoBase>-<branch> directory naming this tool uses when creating
// worktrees. Ref equality is checked across the whole sequence first, so a
// stale conventionally-named directory never shadows the real checkout;
// within each criterion the first match wins.
func findWorktreeForBranch(branch string, worktrees []WorktreeRecord, repoRoot string) (WorktreeRecord, bool) {
	for _, wt := range worktrees {
		if wt.Branch != "" && wt.BranchShort() == branch {
			return wt, true
		}
	}
	conventional := filepath.Base(repoRoot) + "-" + flattenBranchName(branch)
	for _, wt := range worktrees {
		if filepath.Base(wt.Path) == conventional {
			return wt, true
		}
	}
	return WorktreeRecord{}, false
}

// partitionByWorktree splits branches into those with a checked-out worktree
// and those without. main and master never land in the worktree-less half:
// the menus built from it offer worktree creation, and the primary
// integration branches stay in the main checkout.
func partitionByWorktree(branches []string, worktrees []WorktreeRecord) (withWorktree []string, withoutWorktree []string) {
	withWorktree = make([]string, 0, len(branches))
	withoutWorktree = make([]string, 0, len(branches))
	for _, branch := range branches {
		if branchHasWorktree(branch, worktrees) {
			withWorktree = append(withWorktree, branch)
			continue
		}
		if branch == "main" || branch == "master" {
			continue
		}
		withoutWorktree = append(withoutWorktree, branch)
	}
	return withWorktree, withoutWorktree
}

// removableBranches lists branches whose worktree can actually be removed:
// the with-worktree half of the partition minus the branch checked out in
// the main working tree, which git worktree remove always refuses.
func removableBranches(branches []string, worktrees []WorktreeRecord, repoRoot string) []string {
	withWorktree, _ := partitionByWorktree(branches, worktrees)
	removable := make([]string, 0, len(withWorktree))
	for _, branch := range withWorktree {
		if wt, ok := findWorktreeForBranch(branch, worktrees, repoRoot); ok && wt.Path == repoRoot {
			continue
		}
		removable = append(removable, branch)
	}
	return removable
}

func branchHasWorktree(branch string, worktrees []WorktreeRecord) bool {
	for _, wt := range worktrees {
		if wt.Branch == "refs/heads/"+branch {
			return true
		}
	}
	return false
}
