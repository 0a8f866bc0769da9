// Package review provides the interactive checklist shown by the
// --interactive flag: the user picks which aggregated entries to submit
// before the confirmation step.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalableminds/toggl-export/internal/cli"
	"github.com/scalableminds/toggl-export/internal/export"
)

// KeyMap defines the key bindings for the review checklist
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle entry"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm selection"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// styles for the checklist, on top of the shared console styles.
type styles struct {
	title   lipgloss.Style
	cursor  lipgloss.Style
	checked lipgloss.Style
	help    lipgloss.Style
	entry   cli.Styles
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).MarginBottom(1),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		checked: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		entry:   cli.DefaultStyles(),
	}
}

// Model is the checklist TUI model
type Model struct {
	entries   []export.AggregatedEntry
	selected  []bool
	cursor    int
	confirmed bool
	keys      KeyMap
	styles    styles
}

// New creates a checklist over the given plan. Every entry starts
// selected; the user deselects what should not be submitted.
func New(entries []export.AggregatedEntry) Model {
	selected := make([]bool, len(entries))
	for i := range selected {
		selected[i] = true
	}
	return Model{
		entries:  entries,
		selected: selected,
		keys:     DefaultKeyMap(),
		styles:   defaultStyles(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.entries) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}

	case key.Matches(keyMsg, m.keys.ToggleAll):
		allSelected := true
		for _, s := range m.selected {
			if !s {
				allSelected = false
				break
			}
		}
		for i := range m.selected {
			m.selected[i] = !allSelected
		}

	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		m.confirmed = false
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Select entries to submit"))
	b.WriteString("\n")

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.cursor.Render("> ")
		}

		checkbox := "[ ]"
		if m.selected[i] {
			checkbox = m.styles.checked.Render("[x]")
		}

		line := fmt.Sprintf("%s %s  %s (%s)",
			m.styles.entry.Repository.Render(e.Repository),
			m.styles.entry.Issue.Render("#"+e.IssueNumber),
			e.Comment,
			m.styles.entry.Duration.Render(e.DurationLabel))

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, checkbox, cli.FormatDay(e.Day), line))
	}

	b.WriteString(m.styles.help.Render("space toggle · a toggle all · enter confirm · q cancel"))
	b.WriteString("\n")

	return b.String()
}

// Confirmed reports whether the user confirmed the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Selected returns the entries that remained selected, in plan order.
func (m Model) Selected() []export.AggregatedEntry {
	result := make([]export.AggregatedEntry, 0, len(m.entries))
	for i, e := range m.entries {
		if m.selected[i] {
			result = append(result, e)
		}
	}
	return result
}

// Run shows the checklist and blocks until the user confirms or
// cancels. The second return value is false when the user cancelled.
func Run(entries []export.AggregatedEntry) ([]export.AggregatedEntry, bool, error) {
	p := tea.NewProgram(New(entries))
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := final.(Model)
	if !ok || !m.Confirmed() {
		return nil, false, nil
	}
	return m.Selected(), true, nil
}
