package app

// Rect is a screen-space rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// editorHeight is one content row plus the surrounding border.
const editorHeight = 3

// Rects is the screen layout: the top half split between the INPUT and
// OUTPUT panes, then one line editor for jq flags and one for the filter.
type Rects struct {
	Input  Rect
	Output Rect
	Flags  Rect
	Filter Rect
}

// Layout splits a width x height screen into the four pane rectangles.
func Layout(width, height int) Rects {
	if width < 0 {
		width = 0
	}
	top := height - 2*editorHeight
	if top < 0 {
		top = 0
	}
	left := width / 2

	return Rects{
		Input:  Rect{X: 0, Y: 0, Width: left, Height: top},
		Output: Rect{X: left, Y: 0, Width: width - left, Height: top},
		Flags:  Rect{X: 0, Y: top, Width: width, Height: editorHeight},
		Filter: Rect{X: 0, Y: top + editorHeight, Width: width, Height: editorHeight},
	}
}
