// Command rq is an interactive viewer for jq: edit the filter and flags live
// and watch the output update as you type.
//
// The TUI draws on stderr so the committed output can flow to stdout or the
// --out file untouched.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mkxl/rq/app"
	"github.com/mkxl/rq/input"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rq:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inPath    = flag.String("in", "", "input file path (default: stdin)")
		outPath   = flag.String("out", "", "write committed output here instead of stdout")
		logsPath  = flag.String("logs", "", "append JSON logs to this file")
		nullInput = flag.Bool("null-input", false, "run jq without an input document")
		program   = flag.String("jq", "", "jq executable to run (default: jq)")
		flags     = flag.String("flags", "--compact-output", "initial jq flags")
	)
	flag.Parse()

	filter := ""
	if flag.NArg() > 0 {
		filter = flag.Arg(0)
	}

	log, closeLog, err := newLogger(*logsPath)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := newSource(*inPath, *nullInput)
	if err != nil {
		return err
	}

	m := app.New(app.Config{
		Source:  src,
		Flags:   *flags,
		Filter:  filter,
		Program: *program,
		Log:     log,
	})

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	}
	// When the document streams in on stdin, key events must come from the
	// terminal device instead.
	if src.Stdin() {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("open tty: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	done := final.(app.Model)
	if err := done.Err(); err != nil {
		return err
	}
	out := done.Final()
	if out == nil {
		return nil
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(*out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.WriteString(*out)
	return err
}

func newSource(inPath string, nullInput bool) (*input.Source, error) {
	switch {
	case inPath != "":
		// With both a file and --null-input, jq itself decides what wins;
		// we still stream the file so the INPUT pane is populated.
		return input.FromFile(inPath)
	case nullInput:
		return input.None(), nil
	default:
		return input.FromStdin(), nil
	}
}

func newLogger(path string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zap.DebugLevel,
	)
	log := zap.New(core)
	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}
