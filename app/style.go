package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls the session's rendering.
type Style struct {
	Pane      lipgloss.Style
	PaneError lipgloss.Style
	Editor    lipgloss.Style
	Title     lipgloss.Style
}

func DefaultStyle() Style {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	return Style{
		Pane:      border,
		PaneError: border.BorderForeground(lipgloss.Color("1")),
		Editor:    border,
		Title:     lipgloss.NewStyle().Bold(true),
	}
}

// box renders content inside a bordered rect with a title row, clipping the
// inner block to the rect's content area.
func (st Style) box(border lipgloss.Style, title, content string, r Rect) string {
	w := r.Width - 2
	h := r.Height - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	inner := st.Title.Render(title)
	if content != "" {
		inner += "\n" + content
	}
	inner = clipLines(inner, h)

	return border.Width(w).Height(h).MaxWidth(r.Width).MaxHeight(r.Height).Render(inner)
}

// editorBox renders a line editor inside its border without a title row; the
// editor's prompt labels it.
func (st Style) editorBox(border lipgloss.Style, view string, r Rect) string {
	w := r.Width - 2
	if w < 0 {
		w = 0
	}
	return border.Width(w).Height(1).MaxWidth(r.Width).MaxHeight(r.Height).Render(clipLines(view, 1))
}

func clipLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	parts := strings.Split(s, "\n")
	if len(parts) <= max {
		return s
	}
	return strings.Join(parts[:max], "\n")
}
