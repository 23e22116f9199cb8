package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// gogitCommandOutput emulates a small set of read-only git queries
// in-process and renders git-compatible text, so results feed the same
// parsers as real command output. Anything it does not handle falls back to
// the git binary; worktree lifecycle commands always do, since go-git's
// linked-worktree support is incomplete.
func gogitCommandOutput(dir string, args ...string) (commandResult, bool) {
	if gogitFastPathDisabled() || len(args) == 0 {
		return commandResult{}, false
	}
	if isLinkedWorktreeDir(dir) {
		// go-git command emulation is unreliable inside linked worktrees.
		return commandResult{}, false
	}

	switch args[0] {
	case "rev-parse":
		return gogitRevParse(dir, args[1:])
	case "branch":
		return gogitBranchList(dir, args[1:])
	default:
		return commandResult{}, false
	}
}

func isLinkedWorktreeDir(dir string) bool {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return false
	}
	dotGit := filepath.Join(dir, ".git")
	info, err := os.Stat(dotGit)
	if err != nil || info.IsDir() {
		return false
	}
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), "gitdir:")
}

func openRepo(dir string) (*git.Repository, error) {
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}

func gogitRevParse(dir string, args []string) (commandResult, bool) {
	if len(args) == 1 && args[0] == "--show-toplevel" {
		root, err := repoRootForDir(dir)
		if err != nil {
			return commandResult{err: err}, true
		}
		return commandResult{output: root + "\n"}, true
	}
	if len(args) == 2 && args[0] == "--verify" {
		repo, err := openRepo(dir)
		if err != nil {
			return commandResult{err: err}, true
		}
		revision := strings.TrimSuffix(strings.TrimSpace(args[1]), "^{commit}")
		hash, err := repo.ResolveRevision(plumbing.Revision(revision))
		if err != nil {
			return commandResult{err: err}, true
		}
		return commandResult{output: hash.String() + "\n"}, true
	}
	return commandResult{}, false
}

// gogitBranchList renders `git branch -a` style lines: the current branch
// marked with `* `, everything else indented, remote-tracking refs under
// remotes/<remote>/.
func gogitBranchList(dir string, args []string) (commandResult, bool) {
	if len(args) != 1 || args[0] != "-a" {
		return commandResult{}, false
	}
	repo, err := openRepo(dir)
	if err != nil {
		return commandResult{err: err}, true
	}

	currentBranch := ""
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		currentBranch = head.Name().Short()
	}

	iter, err := repo.References()
	if err != nil {
		return commandResult{err: err}, true
	}
	defer iter.Close()

	var locals, remotes []string
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			locals = append(locals, name.Short())
		case name.IsRemote():
			remotes = append(remotes, "remotes/"+strings.TrimPrefix(name.String(), "refs/remotes/"))
		}
		return nil
	})
	sort.Strings(locals)
	sort.Strings(remotes)

	var b strings.Builder
	for _, name := range locals {
		if name == currentBranch {
			b.WriteString("* " + name + "\n")
			continue
		}
		b.WriteString("  " + name + "\n")
	}
	for _, name := range remotes {
		b.WriteString("  " + name + "\n")
	}
	return commandResult{output: b.String()}, true
}

// repoRootForDir walks up from dir looking for a .git entry, matching what
// `git rev-parse --show-toplevel` reports from a working tree.
func repoRootForDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errNotInGitRepository
		}
		dir = wd
	}
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errNotInGitRepository
	}
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", errNotInGitRepository
}
