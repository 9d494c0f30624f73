package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"haikommit/cmd/haikommit/ui"
	"haikommit/internal/haiku"
)

// choice is the outcome of the commit preview.
type choice int

const (
	choicePending choice = iota
	choiceAccept
	choiceRedo
	choiceCancel
)

// choiceItem adapts a choice to list.Item
type choiceItem struct {
	choice choice
	title  string
	desc   string
}

func (i choiceItem) Title() string       { return i.title }
func (i choiceItem) Description() string { return i.desc }
func (i choiceItem) FilterValue() string { return i.title }

func choiceItems() []list.Item {
	return []list.Item{
		choiceItem{choiceAccept, "Commit", "Use this haiku as the commit message (y)"},
		choiceItem{choiceRedo, "Another", "Write a different haiku for the same diff (r)"},
		choiceItem{choiceCancel, "Cancel", "Leave the staged changes uncommitted (n)"},
	}
}

// commitModel previews a haiku and asks whether to commit with it.
type commitModel struct {
	builder *haiku.Builder
	raw     string
	variant int
	result  haiku.Result

	list   list.Model
	styles ui.Styles
	status string

	choice choice
}

func newCommitModel(b *haiku.Builder, raw string, variant int) commitModel {
	l := list.New(choiceItems(), list.NewDefaultDelegate(), 48, 12)
	l.Title = "Commit with this haiku?"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)

	return commitModel{
		builder: b,
		raw:     raw,
		variant: variant,
		result:  b.Run(raw, variant),
		list:    l,
		styles:  ui.DefaultStyles(),
	}
}

// Init initializes the model.
func (m commitModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m commitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y":
			return m.choose(choiceAccept)
		case "r":
			return m.choose(choiceRedo)
		case "n", "q", "esc", "ctrl+c":
			return m.choose(choiceCancel)
		case "c":
			if err := clipboardWriteAll(m.result.Haiku.String()); err != nil {
				m.status = m.styles.Error.Render("Failed to copy haiku")
			} else {
				m.status = m.styles.Success.Render("Copied haiku to clipboard")
			}
			return m, nil
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				return m.choose(item.choice)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m commitModel) choose(c choice) (tea.Model, tea.Cmd) {
	switch c {
	case choiceRedo:
		m.variant++
		m.result = m.builder.Run(m.raw, m.variant)
		m.status = m.styles.Muted.Render(fmt.Sprintf("variant %d", m.variant))
		return m, nil
	case choiceAccept, choiceCancel:
		m.choice = c
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preview.
func (m commitModel) View() string {
	if m.choice != choicePending {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.RenderHaiku(m.result.Haiku, ui.RenderOptions{
		Intent: m.result.Decision.Intent.String(),
		Meter:  true,
	}))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("y commit • r another • c copy • n cancel"))
	b.WriteString("\n")
	return b.String()
}
