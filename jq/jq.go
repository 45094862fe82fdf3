// Package jq spawns the external jq program and reconciles its results.
//
// Every run is tagged with the monotonic time its input was captured, so the
// update loop can keep the newest intent even when processes finish out of
// order.
package jq

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	shellwords "github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// DefaultProgram is the executable run when Runner.Program is empty.
const DefaultProgram = "jq"

// Result is one completed run. StartedAt is captured before the process is
// launched; Err carries the diagnostic for failed runs, in which case Output
// is empty.
type Result struct {
	StartedAt time.Time
	Output    string
	Err       error
}

// ResultMsg delivers a Result to the update loop.
type ResultMsg Result

var (
	ErrTokenize = errors.New("flags do not tokenize as shell words")
	ErrNotUTF8  = errors.New("output is not valid UTF-8")
)

// Runner builds run commands for one external program.
type Runner struct {
	// Program is the executable name; DefaultProgram when empty.
	Program string
	// Log receives diagnostics for failed runs. Nil disables logging.
	Log *zap.Logger
}

// Command captures the current input, flags, and query, and returns a
// Bubble Tea command that runs the program in the background and reports a
// ResultMsg. The start timestamp is taken here, on the caller's synchronous
// path, so ordering reflects when the user's intent was captured rather than
// when the process happened to finish.
//
// Superseded runs are not cancelled; their results are discarded on arrival
// by Latest.Apply.
func (r Runner) Command(input, flags, query string) tea.Cmd {
	started := time.Now()
	return func() tea.Msg {
		res := r.run(started, input, flags, query)
		if res.Err != nil && r.Log != nil {
			r.Log.Warn("jq run failed", zap.Error(res.Err), zap.String("query", query))
		}
		return ResultMsg(res)
	}
}

func (r Runner) run(started time.Time, input, flags, query string) Result {
	res := Result{StartedAt: started}

	args, err := shellwords.Parse(flags)
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrTokenize, err)
		return res
	}
	args = append(args, query)

	program := r.Program
	if program == "" {
		program = DefaultProgram
	}

	cmd := exec.Command(program, args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			diag := strings.TrimSpace(stderr.String())
			if diag == "" {
				diag = exitErr.String()
			}
			res.Err = fmt.Errorf("%s exited: %s", program, diag)
		case errors.Is(err, exec.ErrNotFound):
			res.Err = fmt.Errorf("%s not found: %w", program, err)
		default:
			res.Err = fmt.Errorf("run %s: %w", program, err)
		}
		return res
	}

	out := stdout.String()
	if !utf8.ValidString(out) {
		res.Err = fmt.Errorf("%s: %w", program, ErrNotUTF8)
		return res
	}

	res.Output = out
	return res
}
