package input

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sourceOf(text string) *Source {
	return &Source{name: "test", r: bufio.NewReader(strings.NewReader(text))}
}

func TestReadLines_BatchesBufferedCompleteLines(t *testing.T) {
	s := sourceOf("one\ntwo\r\nthree\n")

	msg, ok := s.ReadLines()().(BatchMsg)
	if !ok {
		t.Fatalf("message type=%T, want BatchMsg", msg)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, msg.Lines); diff != "" {
		t.Fatalf("batch mismatch (-want +got):\n%s", diff)
	}

	if _, ok := s.ReadLines()().(DoneMsg); !ok {
		t.Fatalf("exhausted source must report DoneMsg")
	}
}

func TestReadLines_FinalLineWithoutNewline(t *testing.T) {
	s := sourceOf("alpha\nomega")

	first := s.ReadLines()().(BatchMsg)
	if diff := cmp.Diff([]string{"alpha"}, first.Lines); diff != "" {
		t.Fatalf("first batch mismatch (-want +got):\n%s", diff)
	}

	// The unterminated tail arrives once the stream ends.
	second := s.ReadLines()().(BatchMsg)
	if diff := cmp.Diff([]string{"omega"}, second.Lines); diff != "" {
		t.Fatalf("second batch mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.ReadLines()().(DoneMsg); !ok {
		t.Fatalf("exhausted source must report DoneMsg")
	}
}

func TestReadLines_NoneSourceHasNoCommand(t *testing.T) {
	if cmd := None().ReadLines(); cmd != nil {
		t.Fatalf("no-input source must not produce a read command")
	}
	if None().Stdin() {
		t.Fatalf("no-input source is not stdin")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("{}\n[]\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := FromFile(path)
	if err != nil {
		t.Fatalf("from file: %v", err)
	}
	if s.Stdin() {
		t.Fatalf("file source must not claim stdin")
	}

	msg := s.ReadLines()().(BatchMsg)
	if diff := cmp.Diff([]string{"{}", "[]"}, msg.Lines); diff != "" {
		t.Fatalf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("missing file must error")
	}
}
