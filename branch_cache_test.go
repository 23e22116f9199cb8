package main

import (
	"reflect"
	"testing"
)

func TestRecordRecentBranch_MostRecentFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	repoRoot := "/repos/app"

	for _, b := range []string{"one", "two", "three", "two"} {
		if err := recordRecentBranch(repoRoot, b); err != nil {
			t.Fatalf("record %q: %v", b, err)
		}
	}
	got, err := readRecentBranches(repoRoot, recentBranchCacheLimit)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"two", "three", "one"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReadRecentBranches_MissingCacheIsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	got, err := readRecentBranches("/repos/app", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
}

func TestOrderByRecentUse_PromotesKnownBranches(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	repoRoot := "/repos/app"
	for _, b := range []string{"beta", "gamma"} {
		if err := recordRecentBranch(repoRoot, b); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got := orderByRecentUse(repoRoot, []string{"alpha", "beta", "gamma"})
	want := []string{"gamma", "beta", "alpha"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOrderByRecentUse_IgnoresStaleEntries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	repoRoot := "/repos/app"
	if err := recordRecentBranch(repoRoot, "deleted-branch"); err != nil {
		t.Fatalf("record: %v", err)
	}

	got := orderByRecentUse(repoRoot, []string{"alpha", "beta"})
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecentBranchCaches_ArePerRepository(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := recordRecentBranch("/repos/app", "feature-x"); err != nil {
		t.Fatalf("record: %v", err)
	}
	other, err := readRecentBranches("/repos/other", 10)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("history leaked across repositories: %v", other)
	}
}
