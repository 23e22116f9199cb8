package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mpetrun5/spawn/ui"
)

const newBranchChoice = "[ create a new branch ]"

// runSpawn creates or enters a worktree for branch. An empty branch name
// starts interactive selection; fromExisting restricts that selection to
// branches that already exist.
func runSpawn(branch string, fromExisting bool) error {
	gitBin, repoRoot, err := requireGitContext("")
	if err != nil {
		return err
	}
	cfg, err := loadConfigOrDefault()
	if err != nil {
		return err
	}

	branch = strings.TrimSpace(branch)
	if branch == "" {
		branch, err = chooseSpawnBranch(repoRoot, gitBin, fromExisting)
		if err != nil {
			return err
		}
	}
	if err := validateBranchName(branch); err != nil {
		return err
	}

	worktrees := listWorktrees(repoRoot, gitBin)
	if wt, ok := findWorktreeForBranch(branch, worktrees, repoRoot); ok {
		fmt.Println(styled(secondaryStyle, "Entering existing worktree ") + styled(branchStyle, wt.Path))
		recordRecentBranchBestEffort(repoRoot, branch)
		launchEditor(cfg, wt.Path)
		return nil
	}

	target := worktreePathFor(repoRoot, branch)
	if _, statErr := os.Stat(target); statErr == nil {
		overwrite, err := confirmPrompt(
			fmt.Sprintf("Directory %s already exists.", target),
			"Remove it and create the worktree there?",
		)
		if err != nil {
			return err
		}
		if !overwrite {
			return errAborted
		}
		if err := os.RemoveAll(target); err != nil {
			return err
		}
	}

	args := []string{"worktree", "add", target, branch}
	if !branchExists(repoRoot, gitBin, branch) {
		args = []string{"worktree", "add", "-b", branch, target}
	}
	var result commandResult
	if err := runWithSpinner("Creating worktree for "+branch, func() {
		result = runCommand(repoRoot, gitBin, args...)
	}); err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("could not create worktree for %q: %w", branch, result.err)
	}

	fmt.Println(styled(successStyle, "Created worktree ") + styled(branchStyle, target))
	recordRecentBranchBestEffort(repoRoot, branch)
	launchEditor(cfg, target)
	return nil
}

// chooseSpawnBranch builds the interactive menu from the worktree-less
// branch partition, recent selections first.
func chooseSpawnBranch(repoRoot string, gitBin string, fromExisting bool) (string, error) {
	branches := listBranches(repoRoot, gitBin)
	worktrees := listWorktrees(repoRoot, gitBin)
	_, withoutWorktree := partitionByWorktree(branches, worktrees)
	withoutWorktree = orderByRecentUse(repoRoot, withoutWorktree)

	if fromExisting {
		if len(withoutWorktree) == 0 {
			return "", errors.New("no existing branches without a worktree")
		}
		return selectBranchPrompt("Branch to spawn a worktree for", withoutWorktree)
	}

	options := append([]string{newBranchChoice}, withoutWorktree...)
	choice, err := selectBranchPrompt("Branch to spawn a worktree for", options)
	if err != nil {
		return "", err
	}
	if choice == newBranchChoice {
		return inputBranchPrompt("New branch name")
	}
	return choice, nil
}

// runList prints the worktree table.
func runList() error {
	gitBin, repoRoot, err := requireGitContext("")
	if err != nil {
		return err
	}
	worktrees := listWorktrees(repoRoot, gitBin)
	if len(worktrees) == 0 {
		fmt.Println(styled(secondaryStyle, "No worktrees."))
		return nil
	}

	rows := make([]ui.WorktreeRow, 0, len(worktrees))
	for _, wt := range worktrees {
		rows = append(rows, ui.WorktreeRow{
			Path:        wt.Path,
			HeadLabel:   shortHead(wt.Head),
			BranchLabel: branchLabel(wt),
			Marker:      worktreeMarker(wt),
		})
	}
	fmt.Print(ui.RenderWorktreeList(rows, listStyles()))
	return nil
}

func listStyles() ui.Styles {
	return ui.Styles{
		Header:    func(s string) string { return styled(headerStyle, s) },
		Normal:    func(s string) string { return s },
		Secondary: func(s string) string { return styled(secondaryStyle, s) },
		Marker:    func(s string) string { return styled(warnStyle, s) },
	}
}

func shortHead(head string) string {
	if len(head) > 8 {
		return head[:8]
	}
	return head
}

func branchLabel(wt WorktreeRecord) string {
	switch {
	case wt.Branch != "":
		return wt.BranchShort()
	case wt.Bare:
		return "(bare)"
	case wt.Detached:
		return "(detached)"
	default:
		return "(no branch)"
	}
}

func worktreeMarker(wt WorktreeRecord) string {
	if wt.Prunable {
		return "prunable"
	}
	return ""
}
