package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// colorEnabled honors NO_COLOR and dumb terminals.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

func styled(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}
	return style.Render(text)
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styled(warnStyle, "spawn warning: "+fmt.Sprintf(format, args...)))
}
