// Package pane renders a scrollable text pane: a lines.Index for content
// addressing, a scroll.State for the camera, and scrollbar decorations.
package pane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkxl/rq/internal/grapheme"
	"github.com/mkxl/rq/lines"
	"github.com/mkxl/rq/scroll"
)

// Pane owns the content index and scroll state for one viewport.
//
// Only the owning update loop mutates a Pane; background work communicates
// through messages.
type Pane struct {
	index lines.Index
	state scroll.State

	// Thumb styles scrollbar thumb cells. Defaults to reverse video.
	Thumb lipgloss.Style
}

func New() Pane {
	return Pane{Thumb: lipgloss.NewStyle().Reverse(true)}
}

// Content returns the backing text.
func (p Pane) Content() string { return p.index.Text() }

// SetContent replaces the content, rebuilding the line index. The scroll
// offset is preserved across the swap and reclamped at the next render.
func (p *Pane) SetContent(text string) {
	p.index = lines.Build(text)
}

// AppendLines extends the content with complete lines, as used by the
// streaming input pane.
func (p *Pane) AppendLines(batch []string) {
	for _, line := range batch {
		p.index = p.index.Append(line)
	}
}

// Offset returns the current scroll offset.
func (p Pane) Offset() scroll.Offset { return p.state.Offset() }

// SetOffset replaces the scroll offset.
func (p *Pane) SetOffset(o scroll.Offset) { p.state.SetOffset(o) }

// SetPageSize pushes the laid-out viewport extent into the scroll state.
func (p *Pane) SetPageSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p.state.SetPageSize(scroll.Size{Width: width, Height: height})
}

// HandleMouse applies wheel events to the scroll state. Ctrl selects the
// page quantum, Alt the large quantum; unmodified wheels scroll one cell.
func (p *Pane) HandleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	mode := scroll.Unit
	switch {
	case msg.Ctrl:
		mode = scroll.Page
	case msg.Alt:
		mode = scroll.Large
	}

	p.syncContentSize()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.state.Scroll(scroll.Vertical, -1, mode)
	case tea.MouseButtonWheelDown:
		p.state.Scroll(scroll.Vertical, 1, mode)
	case tea.MouseButtonWheelLeft:
		p.state.Scroll(scroll.Horizontal, -1, mode)
	case tea.MouseButtonWheelRight:
		p.state.Scroll(scroll.Horizontal, 1, mode)
	}
}

func (p *Pane) syncContentSize() {
	p.state.SetContentSize(scroll.Size{Width: p.index.MaxWidth(), Height: p.index.Len()})
}

// View renders the visible window plus scrollbar thumbs.
func (p *Pane) View() string {
	p.syncContentSize()
	p.state.Clamp()

	page := p.state.PageSize()
	off := p.state.Offset()
	rows := p.index.Window(off.Row, off.Col, page.Height, page.Width)

	vThumb, vOK := p.state.Scrollbar(scroll.Vertical)
	hThumb, hOK := p.state.Scrollbar(scroll.Horizontal)
	if !vOK && !hOK {
		return strings.Join(rows, "\n")
	}

	bottom := len(rows) - 1
	for i, row := range rows {
		cells := make(map[int]bool)
		if vOK && i >= vThumb.Start && i < vThumb.Start+vThumb.Length {
			cells[page.Width-1] = true
		}
		if hOK && i == bottom {
			for c := hThumb.Start; c < hThumb.Start+hThumb.Length; c++ {
				cells[c] = true
			}
		}
		if len(cells) > 0 {
			rows[i] = p.styleCells(row, page.Width, cells)
		}
	}
	return strings.Join(rows, "\n")
}

// styleCells pads row to width clusters and renders the marked columns with
// the thumb style, leaving the underlying characters visible.
func (p *Pane) styleCells(row string, width int, cells map[int]bool) string {
	if n := grapheme.Count(row); n < width {
		row += strings.Repeat(" ", width-n)
	}

	var sb strings.Builder
	for col, cluster := range grapheme.Split(row) {
		if cells[col] {
			sb.WriteString(p.Thumb.Render(cluster))
		} else {
			sb.WriteString(cluster)
		}
	}
	return sb.String()
}
