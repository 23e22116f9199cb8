package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// runConfig edits the config file through a form and saves it.
func runConfig() error {
	cfg, err := loadConfigOrDefault()
	if err != nil {
		return err
	}

	editor := cfg.EditorCommand
	mergeBase := cfg.MergeBaseRef

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Editor command").
			Description("Launched in a worktree after spawn; first word is the executable.").
			Inline(true).
			Value(&editor).
			Validate(func(value string) error {
				if strings.TrimSpace(value) == "" {
					return errors.New("editor command is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Merge base ref").
			Description("Optional; shown as the preview base for spawn merge.").
			Inline(true).
			Value(&mergeBase),
	)).
		WithTheme(spawnHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.EditorCommand = strings.TrimSpace(editor)
	cfg.MergeBaseRef = strings.TrimSpace(mergeBase)
	if err := SaveConfig(cfg); err != nil {
		return err
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	fmt.Println(styled(successStyle, "Saved ") + styled(secondaryStyle, path))
	return nil
}
