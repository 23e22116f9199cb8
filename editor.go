package main

import (
	"os"
	"strings"
)

// launchEditor starts the configured editor with the worktree directory as
// its working directory. Launch failure is a warning, never a fatal error;
// the worktree operation it follows has already succeeded.
func launchEditor(cfg Config, worktreePath string) {
	if editorLaunchDisabled() {
		return
	}
	editor := strings.TrimSpace(cfg.EditorCommand)
	if editor == "" {
		editor = defaultEditorCommand
	}
	words := strings.Fields(editor)
	cmd := execCommand(words[0], append(words[1:], ".")...)
	cmd.Dir = worktreePath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// The editor owns its own lifetime; spawn does not wait on it.
	if err := cmd.Start(); err != nil {
		warnf("could not launch editor %q: %v", editor, err)
		return
	}
	_ = cmd.Process.Release()
}
