package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if Split("") != nil {
		t.Fatalf("split of empty must be nil")
	}
}

func TestCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466" + "b"
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466" + "b"
	if got, want := Slice(text, 1, 3), "é\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got := Slice(text, 2, 2); got != "" {
		t.Fatalf("empty range=%q, want empty", got)
	}
	if got := Slice(text, -3, 1); got != "a" {
		t.Fatalf("negative start=%q, want %q", got, "a")
	}
}

func TestSlice_SplitAndConcatReproducesLine(t *testing.T) {
	line := "x" + "é" + "\U0001F1E9\U0001F1EA" + "ÿ" + "z"
	total := Count(line)
	for n := 0; n <= total; n++ {
		left := Slice(line, 0, n)
		right := Slice(line, n, total)
		if left+right != line {
			t.Fatalf("split at %d: %q + %q != %q", n, left, right, line)
		}
	}
}

func TestByteRange_AliasesOriginal(t *testing.T) {
	text := "abc" + "é" + "def"
	lo, hi, ok := ByteRange(text, 3, 4)
	if !ok {
		t.Fatalf("byte range not found")
	}
	if got, want := text[lo:hi], "é"; got != want {
		t.Fatalf("byte range=%q, want %q", got, want)
	}
	if _, _, ok := ByteRange("", 0, 1); ok {
		t.Fatalf("empty text must report no range")
	}
}
