// Package scroll tracks a 2D viewport offset over scrollable content and
// computes clamped scroll deltas and scrollbar geometry.
package scroll

// Axis selects the scrolling direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Mode selects the scroll quantum: one cell, a full page along the axis, or
// a fixed large step between the two.
type Mode int

const (
	Unit Mode = iota
	Page
	Large
)

// largeStep is the Large quantum in cells.
const largeStep = 5

// Size is a viewport or content extent in cells.
type Size struct {
	Width  int
	Height int
}

func (s Size) along(axis Axis) int {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Offset addresses the top-left visible cell in content space.
type Offset struct {
	Col int
	Row int
}

// State tracks offset, content size, and page size for one pane.
//
// SetPageSize deliberately does not reclamp the offset; clamping happens on
// the next Scroll or via Clamp at render time, so a resize never jumps the
// view on its own.
type State struct {
	offset  Offset
	content Size
	page    Size
}

// Offset returns the current raw offset.
func (s State) Offset() Offset { return s.offset }

// SetOffset replaces the raw offset. Used to carry a scroll position across
// a content replacement; the value is clamped at the next render.
func (s *State) SetOffset(o Offset) { s.offset = o }

// PageSize returns the current viewport extent.
func (s State) PageSize() Size { return s.page }

// SetPageSize updates the viewport extent.
func (s *State) SetPageSize(p Size) { s.page = p }

// ContentSize returns the current content extent.
func (s State) ContentSize() Size { return s.content }

// SetContentSize updates the content extent.
func (s *State) SetContentSize(c Size) { s.content = c }

func (s State) maxOffset(axis Axis) int {
	m := s.content.along(axis) - s.page.along(axis)
	if m < 0 {
		return 0
	}
	return m
}

func (s State) quantum(axis Axis, mode Mode) int {
	switch mode {
	case Page:
		return s.page.along(axis)
	case Large:
		return largeStep
	default:
		return 1
	}
}

// Scroll moves the offset by delta quanta along axis, saturating at zero and
// at max(0, content-page). It never wraps or overshoots.
func (s *State) Scroll(axis Axis, delta int, mode Mode) {
	pos := s.offset.Col
	if axis == Vertical {
		pos = s.offset.Row
	}

	pos += delta * s.quantum(axis, mode)
	pos = clamp(pos, 0, s.maxOffset(axis))

	if axis == Vertical {
		s.offset.Row = pos
	} else {
		s.offset.Col = pos
	}
}

// Clamp pulls the offset back inside content bounds on both axes. Renderers
// call this before reading the offset so the long-term invariant holds even
// after resizes or content swaps.
func (s *State) Clamp() {
	s.offset.Col = clamp(s.offset.Col, 0, s.maxOffset(Horizontal))
	s.offset.Row = clamp(s.offset.Row, 0, s.maxOffset(Vertical))
}

// Thumb is scrollbar thumb geometry in page-local cells along one axis.
type Thumb struct {
	Start  int
	Length int
}

// Scrollbar computes the thumb for axis. ok is false when the content fits
// the page on that axis or the page extent is zero, meaning no scrollbar is
// drawn.
func (s State) Scrollbar(axis Axis) (Thumb, bool) {
	page := s.page.along(axis)
	content := s.content.along(axis)
	if page <= 0 || content <= page {
		return Thumb{}, false
	}

	length := page * page / content
	if length < 1 {
		length = 1
	}

	offset := s.offset.Col
	if axis == Vertical {
		offset = s.offset.Row
	}
	track := page - length
	start := clamp(offset*track/s.maxOffset(axis), 0, track)

	return Thumb{Start: start, Length: length}, true
}

func clamp(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
