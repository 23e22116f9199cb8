package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errAborted marks a user-declined destructive confirmation; the process
// exits 1 without running the command that was confirmed against.
var errAborted = errors.New("aborted")

func spawnHuhTheme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("#7D56F4"))
	t.Focused.Next = t.Focused.FocusedButton
	return &t
}

func confirmPrompt(title string, description string) (bool, error) {
	var result bool
	confirm := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&result)
	form := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(spawnHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return result, nil
}

func selectBranchPrompt(title string, branches []string) (string, error) {
	if len(branches) == 0 {
		return "", errors.New("no branches to choose from")
	}
	var selected string
	options := make([]huh.Option[string], 0, len(branches))
	for _, b := range branches {
		options = append(options, huh.NewOption(b, b))
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&selected),
	)).
		WithTheme(spawnHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func inputBranchPrompt(title string) (string, error) {
	var name string
	input := huh.NewInput().
		Title(title).
		Inline(true).
		Value(&name).
		Validate(func(value string) error {
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("branch name is required")
			}
			return validateBranchName(value)
		})
	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(spawnHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
