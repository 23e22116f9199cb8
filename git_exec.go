package main

import (
	"errors"
	"os/exec"
	"strings"
)

var errGitNotInstalled = errors.New("git not installed")
var errNotInGitRepository = errors.New("not in a git repository")

// execCommand is swapped out by tests to stub subprocess invocations.
var execCommand = exec.Command

// commandResult carries either the captured stdout of a finished command or
// the reason it produced nothing. A failed spawn and a non-zero exit both
// collapse into a result with err set; callers that only care about text
// read Text() and treat the empty string as absence.
type commandResult struct {
	output string
	err    error
}

func (r commandResult) Ok() bool {
	return r.err == nil
}

// Text returns the captured stdout, or "" when the command failed. An empty
// string from a successful command is indistinguishable here on purpose;
// callers that need the difference check Ok().
func (r commandResult) Text() string {
	if r.err != nil {
		return ""
	}
	return r.output
}

func (r commandResult) TrimmedText() string {
	return strings.TrimSpace(r.Text())
}

// runCommand executes a command synchronously in dir (empty dir means the
// process working directory) and captures stdout. Stderr is captured
// separately so failures can surface git's own message.
func runCommand(dir string, name string, args ...string) commandResult {
	cmd := execCommand(name, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// Keep stdout in the failure message too: git reports some
		// conditions (merge conflicts among them) on stdout.
		combined := strings.TrimSpace(string(out) + "\n" + stderr.String())
		return commandResult{err: commandErrorWithOutput(err, []byte(combined))}
	}
	return commandResult{output: string(out)}
}

// commandErrorWithOutput prefers the command's own captured output over the
// bare exit error, which is usually just "exit status 128".
func commandErrorWithOutput(fallback error, output []byte) error {
	message := strings.TrimSpace(string(output))
	if message == "" {
		return fallback
	}
	return errors.New(message)
}

func gitPath() (string, error) {
	return exec.LookPath("git")
}

func requireGitPath() (string, error) {
	path, err := gitPath()
	if err != nil {
		return "", errGitNotInstalled
	}
	return path, nil
}

// gitOutput runs git in dir and returns its trimmed stdout, with all failure
// collapsed into the result.
func gitOutput(dir string, gitBin string, args ...string) commandResult {
	result, handled := gogitCommandOutput(dir, args...)
	if !handled {
		result = runCommand(dir, gitBin, args...)
	}
	if result.err != nil {
		return result
	}
	return commandResult{output: strings.TrimSpace(result.output)}
}

// gitRawOutput is gitOutput without trimming, for porcelain formats where
// blank lines are structural.
func gitRawOutput(dir string, gitBin string, args ...string) commandResult {
	return runCommand(dir, gitBin, args...)
}

// requireGitContext resolves the git binary and the repository root for dir.
func requireGitContext(dir string) (string, string, error) {
	gitBin, err := requireGitPath()
	if err != nil {
		return "", "", err
	}
	result := gitOutput(dir, gitBin, "rev-parse", "--show-toplevel")
	root := result.TrimmedText()
	if !result.Ok() || root == "" {
		return "", "", errNotInGitRepository
	}
	return gitBin, root, nil
}
