package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(e Editors, s string) (Editors, bool) {
	changed := false
	for _, r := range s {
		var ch bool
		e, _, ch = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || ch
	}
	return e, changed
}

func TestNewEditors_FilterFocusedInitially(t *testing.T) {
	e := NewEditors("--compact-output", ".")
	if !e.FilterFocused() {
		t.Fatalf("filter editor must start focused")
	}
	if e.Flags() != "--compact-output" || e.Filter() != "." {
		t.Fatalf("seed values: flags=%q filter=%q", e.Flags(), e.Filter())
	}
}

func TestToggle_SwitchesTarget(t *testing.T) {
	e := NewEditors("", "")

	e2, changed := typeRunes(e, ".x")
	if !changed || e2.Filter() != ".x" || e2.Flags() != "" {
		t.Fatalf("typing went to wrong editor: flags=%q filter=%q changed=%v", e2.Flags(), e2.Filter(), changed)
	}

	e2.Toggle()
	if e2.FilterFocused() {
		t.Fatalf("focus must move to the flags editor")
	}
	e3, changed := typeRunes(e2, "-r")
	if !changed || e3.Flags() != "-r" || e3.Filter() != ".x" {
		t.Fatalf("typing after toggle: flags=%q filter=%q changed=%v", e3.Flags(), e3.Filter(), changed)
	}
}

func TestUpdate_ReportsUnchangedForPureMovement(t *testing.T) {
	e := NewEditors("", "abc")
	e, _, changed := e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if changed {
		t.Fatalf("cursor movement must not count as a content change")
	}
	if e.Filter() != "abc" {
		t.Fatalf("filter=%q, want unchanged", e.Filter())
	}
}

func TestUpdate_BackspaceIsAChange(t *testing.T) {
	e := NewEditors("", "ab")
	e, _, changed := e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if !changed || e.Filter() != "a" {
		t.Fatalf("backspace: filter=%q changed=%v", e.Filter(), changed)
	}
}
