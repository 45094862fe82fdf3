// Package input reads the document fed to jq: a file, streaming stdin, or
// nothing at all.
//
// Lines are read on background commands and replayed into the INPUT pane as
// they arrive, so a slow producer on stdin never blocks the update loop.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BatchMsg carries freshly read complete lines.
type BatchMsg struct {
	Lines []string
}

// DoneMsg reports that the source is exhausted.
type DoneMsg struct{}

// ErrorMsg reports a fatal read failure.
type ErrorMsg struct {
	Err error
}

// Source is one input document stream. A nil reader means no input.
type Source struct {
	name string
	r    *bufio.Reader
}

// FromFile opens path for line-by-line reading.
func FromFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return &Source{name: path, r: bufio.NewReader(f)}, nil
}

// FromStdin streams the process's standard input.
func FromStdin() *Source {
	return &Source{name: "stdin", r: bufio.NewReader(os.Stdin)}
}

// None is the explicit no-input mode (jq --null-input style usage).
func None() *Source {
	return &Source{name: "none"}
}

// Name identifies the source for logging.
func (s *Source) Name() string { return s.name }

// Stdin reports whether the source consumes the process's standard input,
// in which case the TUI must take its key events from the terminal device
// instead.
func (s *Source) Stdin() bool { return s.name == "stdin" }

// ReadLines returns a command that blocks for the next line, then drains any
// further complete lines already buffered, and delivers the batch. It
// returns nil for the no-input source. The caller re-issues the command
// after each batch until DoneMsg arrives.
func (s *Source) ReadLines() tea.Cmd {
	if s.r == nil {
		return nil
	}
	return func() tea.Msg {
		line, err := s.r.ReadString('\n')
		switch {
		case err == io.EOF:
			if line == "" {
				return DoneMsg{}
			}
			return BatchMsg{Lines: []string{trimEOL(line)}}
		case err != nil:
			return ErrorMsg{Err: fmt.Errorf("read %s: %w", s.name, err)}
		}

		batch := []string{trimEOL(line)}
		for {
			// Only drain lines that are already complete in the buffer; a
			// partial line would make ReadString block on the producer.
			buffered, _ := s.r.Peek(s.r.Buffered())
			if !bytes.ContainsRune(buffered, '\n') {
				break
			}
			line, _ = s.r.ReadString('\n')
			batch = append(batch, trimEOL(line))
		}
		return BatchMsg{Lines: batch}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
