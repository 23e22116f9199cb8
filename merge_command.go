package main

import (
	"errors"
	"fmt"
	"strings"
)

// runMerge merges branch into the current branch. git is the merge oracle;
// spawn only builds the menu, shows a preview and classifies the outcome.
func runMerge(branch string) error {
	gitBin, repoRoot, err := requireGitContext("")
	if err != nil {
		return err
	}

	current := gitOutput(repoRoot, gitBin, "rev-parse", "--abbrev-ref", "HEAD").TrimmedText()
	if current == "" || current == "HEAD" {
		return errors.New("not on a branch; check out a branch before merging")
	}

	branch = strings.TrimSpace(branch)
	if branch == "" {
		branch, err = chooseMergeBranch(repoRoot, gitBin, current)
		if err != nil {
			return err
		}
	}
	if branch == current {
		return fmt.Errorf("branch %q is already checked out here", branch)
	}
	if !branchExists(repoRoot, gitBin, branch) {
		return fmt.Errorf("branch %q does not exist", branch)
	}

	previewBase := current
	if cfg, err := loadConfigOrDefault(); err == nil && cfg.MergeBaseRef != "" {
		previewBase = cfg.MergeBaseRef
	}
	printMergePreview(repoRoot, gitBin, previewBase, branch)

	confirmed, err := confirmPrompt(
		fmt.Sprintf("Merge %s into %s?", branch, current),
		"",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return errAborted
	}

	var result commandResult
	if err := runWithSpinner("Merging "+branch, func() {
		result = runCommand(repoRoot, gitBin, "merge", branch)
	}); err != nil {
		return err
	}
	if result.Ok() {
		fmt.Println(styled(successStyle, "Merged ") + styled(branchStyle, branch) + styled(successStyle, " into ") + styled(branchStyle, current))
		recordRecentBranchBestEffort(repoRoot, branch)
		return nil
	}

	if strings.Contains(result.err.Error(), "CONFLICT") {
		fmt.Println(styled(errorStyle, "Merge conflict."))
		fmt.Println(styled(secondaryStyle, "Resolve the conflicts, then run: git add <files> && git commit"))
		fmt.Println(styled(secondaryStyle, "Or abort with: git merge --abort"))
		return errAborted
	}
	return fmt.Errorf("merge failed: %w", result.err)
}

// chooseMergeBranch offers every branch except the one currently checked
// out, recent selections first.
func chooseMergeBranch(repoRoot string, gitBin string, current string) (string, error) {
	branches := listBranches(repoRoot, gitBin)
	candidates := make([]string, 0, len(branches))
	for _, b := range branches {
		if b != current {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return "", errors.New("no other branches to merge")
	}
	return selectBranchPrompt("Branch to merge into "+current, orderByRecentUse(repoRoot, candidates))
}

// printMergePreview shows the incoming commits and a diff stat. Both are
// best effort; a failed preview never blocks the merge.
func printMergePreview(repoRoot string, gitBin string, base string, branch string) {
	log := gitOutput(repoRoot, gitBin, "log", "--oneline", base+".."+branch)
	if text := log.TrimmedText(); text != "" {
		fmt.Println(styled(headerStyle, "Incoming commits:"))
		fmt.Println(text)
	}
	diff := gitOutput(repoRoot, gitBin, "diff", "--stat", base+"..."+branch)
	if text := diff.TrimmedText(); text != "" {
		fmt.Println(styled(headerStyle, "Changes:"))
		fmt.Println(text)
	}
}
