package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	return s
}

type spinnerDoneMsg struct{}

// spinnerModel animates while fn runs in the background; git stays the
// synchronous oracle, the spinner only covers the wait.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	fn      func()
}

func (m spinnerModel) Init() tea.Cmd {
	work := func() tea.Msg {
		m.fn()
		return spinnerDoneMsg{}
	}
	return tea.Batch(m.spinner.Tick, work)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinnerDoneMsg:
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return m.spinner.View() + m.title
}

func runWithSpinner(title string, fn func()) error {
	m := spinnerModel{spinner: newSpinner(), title: title, fn: fn}
	_, err := tea.NewProgram(m).Run()
	return err
}
