package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
)

const recentBranchCacheLimit = 40

// recentBranchCache stores the user's selection history per repository, so
// interactive menus list recently used branches first. It is not a cache of
// git state; git is re-queried on every run.
type recentBranchCache struct {
	Branches []string `json:"branches"`
}

func recentBranchCachePath(repoRoot string) (string, error) {
	repoRoot = strings.TrimSpace(repoRoot)
	if repoRoot == "" {
		return "", errors.New("repo root required")
	}
	home, err := spawnHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "cache", "recent_branches", hashString(repoRoot)+".json"), nil
}

func hashString(value string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(value))
	return fmt.Sprintf("%016x", h.Sum64())
}

func readRecentBranches(repoRoot string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	path, err := recentBranchCachePath(repoRoot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	var cache recentBranchCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	out := make([]string, 0, min(limit, len(cache.Branches)))
	seen := make(map[string]bool, len(cache.Branches))
	for _, raw := range cache.Branches {
		b := strings.TrimSpace(raw)
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func writeRecentBranches(repoRoot string, branches []string) error {
	path, err := recentBranchCachePath(repoRoot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := recentBranchCache{Branches: branches}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func recordRecentBranch(repoRoot string, branch string) error {
	repoRoot = strings.TrimSpace(repoRoot)
	branch = strings.TrimSpace(branch)
	if repoRoot == "" || branch == "" {
		return nil
	}
	recent, err := readRecentBranches(repoRoot, recentBranchCacheLimit)
	if err != nil {
		return err
	}
	merged := make([]string, 0, len(recent)+1)
	merged = append(merged, branch)
	for _, b := range recent {
		if b == branch {
			continue
		}
		merged = append(merged, b)
		if len(merged) >= recentBranchCacheLimit {
			break
		}
	}
	return writeRecentBranches(repoRoot, merged)
}

// orderByRecentUse moves recently used branches to the front, keeping the
// incoming order for everything else. Cache failures fall back to the
// incoming order.
func orderByRecentUse(repoRoot string, branches []string) []string {
	recent, err := readRecentBranches(repoRoot, recentBranchCacheLimit)
	if err != nil || len(recent) == 0 {
		return branches
	}
	present := make(map[string]bool, len(branches))
	for _, b := range branches {
		present[b] = true
	}
	ordered := make([]string, 0, len(branches))
	taken := make(map[string]bool, len(branches))
	for _, b := range recent {
		if present[b] && !taken[b] {
			taken[b] = true
			ordered = append(ordered, b)
		}
	}
	for _, b := range branches {
		if !taken[b] {
			ordered = append(ordered, b)
		}
	}
	return ordered
}

func recordRecentBranchBestEffort(repoRoot string, branch string) {
	if err := recordRecentBranch(repoRoot, branch); err != nil {
		warnf("failed to update recent branch cache: %v", err)
	}
}
