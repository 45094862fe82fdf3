package app

import "testing"

func TestLayout_SplitsScreen(t *testing.T) {
	r := Layout(80, 24)

	if r.Input != (Rect{X: 0, Y: 0, Width: 40, Height: 18}) {
		t.Fatalf("input rect=%+v", r.Input)
	}
	if r.Output != (Rect{X: 40, Y: 0, Width: 40, Height: 18}) {
		t.Fatalf("output rect=%+v", r.Output)
	}
	if r.Flags != (Rect{X: 0, Y: 18, Width: 80, Height: 3}) {
		t.Fatalf("flags rect=%+v", r.Flags)
	}
	if r.Filter != (Rect{X: 0, Y: 21, Width: 80, Height: 3}) {
		t.Fatalf("filter rect=%+v", r.Filter)
	}
}

func TestLayout_OddWidthGivesRemainderToOutput(t *testing.T) {
	r := Layout(81, 24)
	if r.Input.Width != 40 || r.Output.Width != 41 {
		t.Fatalf("widths=%d/%d, want 40/41", r.Input.Width, r.Output.Width)
	}
	if r.Output.X != 40 {
		t.Fatalf("output x=%d, want 40", r.Output.X)
	}
}

func TestLayout_TinyScreenDoesNotGoNegative(t *testing.T) {
	r := Layout(4, 3)
	if r.Input.Height != 0 {
		t.Fatalf("input height=%d, want 0", r.Input.Height)
	}
	r = Layout(-1, -1)
	if r.Flags.Width != 0 {
		t.Fatalf("flags width=%d, want 0", r.Flags.Width)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 4, Height: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 6, true},
		{14, 5, false},
		{10, 7, false},
		{9, 5, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("contains(%d,%d)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
