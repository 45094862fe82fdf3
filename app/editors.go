package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Editors is the pair of single-line editors: jq CLI flags and the filter
// (query). Exactly one is focused; Tab toggles between them.
type Editors struct {
	flags  textinput.Model
	filter textinput.Model
}

func NewEditors(flags, filter string) Editors {
	f := textinput.New()
	f.Prompt = "CLI-FLAGS> "
	f.SetValue(flags)

	q := textinput.New()
	q.Prompt = "FILTER> "
	q.SetValue(filter)
	q.CursorEnd()
	q.Focus()

	return Editors{flags: f, filter: q}
}

// Flags returns the flags editor content.
func (e Editors) Flags() string { return e.flags.Value() }

// Filter returns the filter editor content.
func (e Editors) Filter() string { return e.filter.Value() }

// FilterFocused reports which editor currently has focus.
func (e Editors) FilterFocused() bool { return e.filter.Focused() }

// Toggle moves focus to the other editor.
func (e *Editors) Toggle() tea.Cmd {
	if e.filter.Focused() {
		e.filter.Blur()
		return e.flags.Focus()
	}
	e.flags.Blur()
	return e.filter.Focus()
}

// SetWidth sizes both editors to the laid-out content width.
func (e *Editors) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	e.flags.Width = width
	e.filter.Width = width
}

// Update forwards msg to the focused editor. changed reports whether the
// edit altered either editor's content, meaning jq must be re-run.
func (e Editors) Update(msg tea.Msg) (Editors, tea.Cmd, bool) {
	before := e.flags.Value() + "\x00" + e.filter.Value()

	var cmd tea.Cmd
	if e.filter.Focused() {
		e.filter, cmd = e.filter.Update(msg)
	} else {
		e.flags, cmd = e.flags.Update(msg)
	}

	after := e.flags.Value() + "\x00" + e.filter.Value()
	return e, cmd, before != after
}

// FlagsView renders the flags editor line.
func (e Editors) FlagsView() string { return e.flags.View() }

// FilterView renders the filter editor line.
func (e Editors) FilterView() string { return e.filter.View() }
