package main

import (
	"fmt"
	"strings"
)

// validateBranchName rejects names git's ref grammar would refuse, before
// any worktree-creation command is attempted. It is deliberately stricter
// than git in a few corners; slash-separated hierarchical names are fine.
// nil means the name is acceptable. Checks run in order, first match wins.
func validateBranchName(name string) error {
	if strings.ContainsAny(name, " \t\n~^:?*[\\") {
		return fmt.Errorf("branch name %q contains whitespace or one of ~ ^ : ? * [ \\", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "+") {
		return fmt.Errorf("branch name %q must not start with - or +", name)
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("branch name %q must not end with . or .lock", name)
	}
	if strings.Contains(name, "..") || strings.Contains(name, "@{") || strings.Contains(name, "\\") {
		return fmt.Errorf("branch name %q must not contain .., @{ or \\", name)
	}
	return nil
}
