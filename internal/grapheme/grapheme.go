package grapheme

import "github.com/rivo/uniseg"

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ByteRange maps the cluster column range [start, end) to the byte range it
// spans within text. ok is false when the selection is empty or entirely out
// of range; lo and hi always fall on cluster boundaries.
func ByteRange(text string, start, end int) (lo, hi int, ok bool) {
	if text == "" || end <= start {
		return 0, 0, false
	}
	if start < 0 {
		start = 0
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			from, to := g.Positions()
			if !ok {
				lo = from
				ok = true
			}
			hi = to
		}
		idx++
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Slice returns the grapheme-safe substring for the cluster range [start, end).
//
// The result aliases text; no copy is made.
func Slice(text string, start, end int) string {
	lo, hi, ok := ByteRange(text, start, end)
	if !ok {
		return ""
	}
	return text[lo:hi]
}
