package main

import (
	"errors"
	"fmt"
	"strings"
)

// runRemove deletes the worktree checked out on branch, after confirmation,
// and then offers to delete the branch itself.
func runRemove(branch string) error {
	gitBin, repoRoot, err := requireGitContext("")
	if err != nil {
		return err
	}

	worktrees := listWorktrees(repoRoot, gitBin)
	branch = strings.TrimSpace(branch)
	if branch == "" {
		branches := listBranches(repoRoot, gitBin)
		removable := removableBranches(branches, worktrees, repoRoot)
		if len(removable) == 0 {
			return errors.New("no branches have worktrees to remove")
		}
		branch, err = selectBranchPrompt("Worktree to remove", removable)
		if err != nil {
			return err
		}
	}

	wt, ok := findWorktreeForBranch(branch, worktrees, repoRoot)
	if !ok {
		return fmt.Errorf("no worktree found for branch %q", branch)
	}

	confirmed, err := confirmPrompt(
		fmt.Sprintf("Remove worktree %s?", wt.Path),
		"The directory and its uncommitted changes will be deleted.",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return errAborted
	}

	result := runCommand(repoRoot, gitBin, "worktree", "remove", "--force", wt.Path)
	if !result.Ok() {
		return fmt.Errorf("could not remove worktree %s: %w", wt.Path, result.err)
	}
	fmt.Println(styled(successStyle, "Removed worktree ") + styled(branchStyle, wt.Path))

	if !localBranchExists(repoRoot, gitBin, branch) {
		return nil
	}
	deleteBranch, err := confirmPrompt(
		fmt.Sprintf("Also delete branch %s?", branch),
		"",
	)
	if err != nil {
		return err
	}
	if !deleteBranch {
		return nil
	}
	result = runCommand(repoRoot, gitBin, "branch", "-D", branch)
	if !result.Ok() {
		return fmt.Errorf("could not delete branch %q: %w", branch, result.err)
	}
	fmt.Println(styled(successStyle, "Deleted branch ") + styled(branchStyle, branch))
	return nil
}
