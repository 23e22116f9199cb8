package main

import (
	"reflect"
	"testing"
)

func TestFindWorktreeForBranch_MatchesByRef(t *testing.T) {
	worktrees := []WorktreeRecord{
		{Path: "/repos/app", Branch: "refs/heads/main"},
		{Path: "/repos/app-feature-x", Branch: "refs/heads/feature-x"},
	}
	wt, ok := findWorktreeForBranch("feature-x", worktrees, "/repos/app")
	if !ok {
		t.Fatalf("expected a match")
	}
	if wt.Path != "/repos/app-feature-x" {
		t.Fatalf("expected /repos/app-feature-x, got %q", wt.Path)
	}
}

func TestFindWorktreeForBranch_MatchesByNamingConvention(t *testing.T) {
	// Detached worktree created by this tool: no branch ref, but the
	// directory follows the <repo>-<branch> scheme.
	worktrees := []WorktreeRecord{
		{Path: "/repos/app-fix-bug", Detached: true},
	}
	wt, ok := findWorktreeForBranch("fix-bug", worktrees, "/repos/app")
	if !ok {
		t.Fatalf("expected a naming-convention match")
	}
	if wt.Path != "/repos/app-fix-bug" {
		t.Fatalf("unexpected worktree %q", wt.Path)
	}
}

func TestFindWorktreeForBranch_FlattensSlashes(t *testing.T) {
	worktrees := []WorktreeRecord{
		{Path: "/repos/app-feature-login", Detached: true},
	}
	if _, ok := findWorktreeForBranch("feature/login", worktrees, "/repos/app"); !ok {
		t.Fatalf("expected hierarchical branch to match its flattened directory")
	}
}

func TestFindWorktreeForBranch_PrefersRefEquality(t *testing.T) {
	// An early record matches by naming convention only, a later one by
	// ref equality; the ref match wins.
	worktrees := []WorktreeRecord{
		{Path: "/repos/app-feature-x", Detached: true},
		{Path: "/elsewhere/x", Branch: "refs/heads/feature-x"},
	}
	wt, ok := findWorktreeForBranch("feature-x", worktrees, "/repos/app")
	if !ok {
		t.Fatalf("expected a match")
	}
	if wt.Path != "/elsewhere/x" {
		t.Fatalf("expected the ref-equality match to win, got %q", wt.Path)
	}
}

func TestFindWorktreeForBranch_FirstMatchWinsWithinCriterion(t *testing.T) {
	worktrees := []WorktreeRecord{
		{Path: "/one/x", Branch: "refs/heads/feature-x"},
		{Path: "/two/x", Branch: "refs/heads/feature-x"},
	}
	wt, ok := findWorktreeForBranch("feature-x", worktrees, "/repos/app")
	if !ok {
		t.Fatalf("expected a match")
	}
	if wt.Path != "/one/x" {
		t.Fatalf("expected the first ref match, got %q", wt.Path)
	}
}

func TestFindWorktreeForBranch_Absent(t *testing.T) {
	worktrees := []WorktreeRecord{
		{Path: "/repos/app", Branch: "refs/heads/main"},
	}
	if _, ok := findWorktreeForBranch("feature-x", worktrees, "/repos/app"); ok {
		t.Fatalf("expected no match")
	}
	if _, ok := findWorktreeForBranch("feature-x", nil, "/repos/app"); ok {
		t.Fatalf("expected no match on empty worktree list")
	}
}

func TestPartitionByWorktree_SplitsBranches(t *testing.T) {
	branches := []string{"feature-x", "feature-y", "feature-z"}
	worktrees := []WorktreeRecord{
		{Path: "/repos/app-feature-y", Branch: "refs/heads/feature-y"},
	}
	withWT, withoutWT := partitionByWorktree(branches, worktrees)
	if !reflect.DeepEqual(withWT, []string{"feature-y"}) {
		t.Fatalf("unexpected with-worktree partition: %v", withWT)
	}
	if !reflect.DeepEqual(withoutWT, []string{"feature-x", "feature-z"}) {
		t.Fatalf("unexpected worktree-less partition: %v", withoutWT)
	}
}

func TestPartitionByWorktree_NeverOffersPrimaryBranches(t *testing.T) {
	branches := []string{"main", "master", "feature-x"}
	withWT, withoutWT := partitionByWorktree(branches, nil)
	if len(withWT) != 0 {
		t.Fatalf("expected empty with-worktree partition, got %v", withWT)
	}
	if !reflect.DeepEqual(withoutWT, []string{"feature-x"}) {
		t.Fatalf("main/master leaked into the worktree-less partition: %v", withoutWT)
	}
}

func TestPartitionByWorktree_RequiresExactRefEquality(t *testing.T) {
	// A worktree path that merely resembles the branch does not count as
	// presence; only the branch ref does.
	branches := []string{"feature-x"}
	worktrees := []WorktreeRecord{
		{Path: "/repos/app-feature-x", Detached: true},
	}
	withWT, withoutWT := partitionByWorktree(branches, worktrees)
	if len(withWT) != 0 {
		t.Fatalf("detached worktree counted as branch presence: %v", withWT)
	}
	if !reflect.DeepEqual(withoutWT, []string{"feature-x"}) {
		t.Fatalf("unexpected worktree-less partition: %v", withoutWT)
	}
}

func TestRemovableBranches_ExcludesMainWorkingTree(t *testing.T) {
	// The branch checked out in the main working tree cannot be removed
	// with git worktree remove, so the menu must not offer it.
	branches := []string{"develop", "feature-x", "feature-y"}
	worktrees := []WorktreeRecord{
		{Path: "/repos/app", Branch: "refs/heads/develop"},
		{Path: "/repos/app-feature-x", Branch: "refs/heads/feature-x"},
	}
	got := removableBranches(branches, worktrees, "/repos/app")
	if !reflect.DeepEqual(got, []string{"feature-x"}) {
		t.Fatalf("unexpected removable branches: %v", got)
	}
}

func TestRemovableBranches_EmptyWhenOnlyMainCheckoutExists(t *testing.T) {
	branches := []string{"main"}
	worktrees := []WorktreeRecord{
		{Path: "/repos/app", Branch: "refs/heads/main"},
	}
	got := removableBranches(branches, worktrees, "/repos/app")
	if len(got) != 0 {
		t.Fatalf("main working tree offered for removal: %v", got)
	}
}

func TestWorktreePathFor_SiblingDirectory(t *testing.T) {
	if got := worktreePathFor("/repos/app", "feature-x"); got != "/repos/app-feature-x" {
		t.Fatalf("unexpected worktree path %q", got)
	}
	if got := worktreePathFor("/repos/app", "feature/login"); got != "/repos/app-feature-login" {
		t.Fatalf("unexpected flattened worktree path %q", got)
	}
}
