// Package lines indexes a text buffer by line for viewport rendering.
//
// An Index records one half-open byte range per line of the backing text, so
// line extraction slices the original allocation instead of copying, plus the
// maximum line width measured in grapheme clusters.
package lines

import (
	"strings"

	"github.com/mkxl/rq/internal/grapheme"
)

// Span is the half-open byte range [Start, End) of one line within the
// backing text, excluding the trailing newline.
type Span struct {
	Start int
	End   int
}

// Index addresses a text buffer by line. The zero value indexes empty text.
//
// Indexes are immutable; Build and Append return fresh values.
type Index struct {
	text     string
	spans    []Span
	maxWidth int
}

// Build indexes text. Empty text yields zero lines, not one empty line.
func Build(text string) Index {
	ix := Index{text: text}
	if text == "" {
		return ix
	}

	start := 0
	for {
		rel := strings.IndexByte(text[start:], '\n')
		if rel < 0 {
			ix.addSpan(Span{Start: start, End: len(text)})
			return ix
		}
		ix.addSpan(Span{Start: start, End: start + rel})
		start += rel + 1
		if start == len(text) {
			// Trailing newline closes the final line.
			return ix
		}
	}
}

// Append extends the index with one more line and returns the new value.
// The previous index is left untouched.
func (ix Index) Append(line string) Index {
	text := ix.text
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	start := len(text)
	text += line + "\n"

	next := Index{
		text:     text,
		spans:    append(ix.spans[:len(ix.spans):len(ix.spans)], Span{Start: start, End: start + len(line)}),
		maxWidth: ix.maxWidth,
	}
	if w := grapheme.Count(line); w > next.maxWidth {
		next.maxWidth = w
	}
	return next
}

func (ix *Index) addSpan(s Span) {
	ix.spans = append(ix.spans, s)
	if w := grapheme.Count(ix.text[s.Start:s.End]); w > ix.maxWidth {
		ix.maxWidth = w
	}
}

// Text returns the backing text.
func (ix Index) Text() string { return ix.text }

// Len returns the number of lines.
func (ix Index) Len() int { return len(ix.spans) }

// MaxWidth returns the widest line's grapheme-cluster count.
func (ix Index) MaxWidth() int { return ix.maxWidth }

// Line returns the text of line row, or "" when row is out of range.
// The result aliases the backing text.
func (ix Index) Line(row int) string {
	if row < 0 || row >= len(ix.spans) {
		return ""
	}
	s := ix.spans[row]
	return ix.text[s.Start:s.End]
}

// Window returns the lines of rows [top, top+height) each clipped to the
// grapheme-cluster column range [left, left+width). Rows past the end are
// omitted; no padding is applied.
func (ix Index) Window(top, left, height, width int) []string {
	if height <= 0 || top >= len(ix.spans) {
		return nil
	}
	if top < 0 {
		top = 0
	}
	end := top + height
	if end > len(ix.spans) {
		end = len(ix.spans)
	}

	out := make([]string, 0, end-top)
	for row := top; row < end; row++ {
		out = append(out, grapheme.Slice(ix.Line(row), left, left+width))
	}
	return out
}
