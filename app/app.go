// Package app wires the interactive session: two scrollable panes over the
// input document and the reconciled jq output, two line editors, and the
// Bubble Tea update loop that owns all of it.
//
// All state is mutated on the update loop only; jq runs and input reads are
// background commands that report back as messages.
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mkxl/rq/input"
	"github.com/mkxl/rq/jq"
	"github.com/mkxl/rq/pane"
)

// graceInterval is how long a commit waits so the most recently spawned jq
// run has a chance to land before the final output is captured. A run that
// takes longer loses; the previously reconciled output is used instead.
const graceInterval = 50 * time.Millisecond

// ErrInterrupted is the session error after a forced quit.
var ErrInterrupted = errors.New("interrupted")

// Config seeds a session.
type Config struct {
	// Source feeds the INPUT pane. Defaults to the no-input source.
	Source *input.Source
	// Flags is the initial content of the CLI-FLAGS editor.
	Flags string
	// Filter is the initial content of the FILTER editor.
	Filter string
	// Program overrides the jq executable name.
	Program string
	// Log receives diagnostics. Nil disables logging.
	Log *zap.Logger
}

type commitMsg struct{}

// Model is the session state machine. The zero value is not usable; use New.
type Model struct {
	keys  KeyMap
	style Style
	log   *zap.Logger

	rects   Rects
	sized   bool
	inPane  pane.Pane
	outPane pane.Pane
	editors Editors

	src    *input.Source
	runner jq.Runner
	latest jq.Latest

	runFailed bool
	failedAt  time.Time

	committing bool
	final      *string
	err        error
}

func New(cfg Config) Model {
	if cfg.Source == nil {
		cfg.Source = input.None()
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	return Model{
		keys:    DefaultKeyMap(),
		style:   DefaultStyle(),
		log:     cfg.Log,
		inPane:  pane.New(),
		outPane: pane.New(),
		editors: NewEditors(cfg.Flags, cfg.Filter),
		src:     cfg.Source,
		runner:  jq.Runner{Program: cfg.Program, Log: cfg.Log},
	}
}

// Final returns the committed output, or nil when the session did not end
// with a commit.
func (m Model) Final() *string { return m.final }

// Err returns the fatal session error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	// Run jq once up front so the OUTPUT pane is populated before any edit.
	return tea.Batch(
		textinput.Blink,
		m.spawn(),
		m.src.ReadLines(),
	)
}

// spawn captures the current input and editor contents and launches one run.
func (m Model) spawn() tea.Cmd {
	return m.runner.Command(m.inPane.Content(), m.editors.Flags(), m.editors.Filter())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.updateSize(msg), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	case jq.ResultMsg:
		return m.updateResult(jq.Result(msg)), nil
	case input.BatchMsg:
		m.inPane.AppendLines(msg.Lines)
		return m, tea.Batch(m.spawn(), m.src.ReadLines())
	case input.DoneMsg:
		m.log.Info("input exhausted", zap.String("source", m.src.Name()))
		return m, nil
	case input.ErrorMsg:
		m.err = msg.Err
		return m, tea.Quit
	case commitMsg:
		out := m.latest.Current().Output
		m.final = &out
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateSize(msg tea.WindowSizeMsg) Model {
	m.rects = Layout(msg.Width, msg.Height)
	m.sized = true

	// Page sizes exclude the border and the title row.
	m.inPane.SetPageSize(m.rects.Input.Width-2, m.rects.Input.Height-3)
	m.outPane.SetPageSize(m.rects.Output.Width-2, m.rects.Output.Height-3)
	m.editors.SetWidth(m.rects.Flags.Width - 2)
	return m
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.err = ErrInterrupted
		return m, tea.Quit

	case key.Matches(msg, m.keys.Commit):
		if m.committing {
			return m, nil
		}
		// Let any recently spawned run land before capturing final output.
		m.committing = true
		return m, tea.Tick(graceInterval, func(time.Time) tea.Msg { return commitMsg{} })

	case key.Matches(msg, m.keys.ToggleFocus):
		return m, m.editors.Toggle()

	default:
		var cmd tea.Cmd
		var changed bool
		m.editors, cmd, changed = m.editors.Update(msg)
		if changed {
			return m, tea.Batch(cmd, m.spawn())
		}
		return m, cmd
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	switch {
	case m.rects.Input.Contains(msg.X, msg.Y):
		m.inPane.HandleMouse(msg)
	case m.rects.Output.Contains(msg.X, msg.Y):
		m.outPane.HandleMouse(msg)
	}
	return m
}

func (m Model) updateResult(res jq.Result) Model {
	if res.Err != nil {
		// A failure never clobbers the last good output; it only raises the
		// error border when it is newer than what is displayed.
		if res.StartedAt.After(m.latest.Current().StartedAt) {
			m.runFailed = true
			m.failedAt = res.StartedAt
		}
		return m
	}

	if m.latest.Apply(res) {
		// The output pane keeps its scroll offset across the swap.
		m.outPane.SetContent(res.Output)
		if res.StartedAt.After(m.failedAt) {
			m.runFailed = false
		}
	}
	return m
}

func (m Model) View() string {
	if !m.sized {
		return ""
	}

	outBorder := m.style.Pane
	if m.runFailed {
		outBorder = m.style.PaneError
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.style.box(m.style.Pane, "INPUT", m.inPane.View(), m.rects.Input),
		m.style.box(outBorder, "OUTPUT", m.outPane.View(), m.rects.Output),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		top,
		m.style.editorBox(m.style.Editor, m.editors.FlagsView(), m.rects.Flags),
		m.style.editorBox(m.style.Editor, m.editors.FilterView(), m.rects.Filter),
	)
}
