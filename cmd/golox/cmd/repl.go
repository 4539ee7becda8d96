package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/run"
)

// prompt is the REPL's line prompt. The banner printed around it is an
// ambient convenience, colored for readability, never the diagnostic
// content itself.
const prompt = "> "

var bannerColor = color.New(color.FgCyan)

// runPrompt implements the REPL: one shared Interpreter persists
// variables and functions across lines, while the Reporter's hadError
// flag is cleared after every line so a mistake on one line doesn't
// block the next. hadRuntimeError is left alone and ignored here, since
// the REPL never exits on it.
func runPrompt(opts run.Options) error {
	bannerColor.Fprintln(os.Stderr, "golox, a tree-walking Lox interpreter. Ctrl-D to exit.")

	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("failed to start REPL: %w", err)
	}
	defer rl.Close()

	reporter := diag.NewReporter(os.Stderr)
	interpreter := newInterpreter(reporter)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt
			if err != io.EOF {
				continue
			}
			return nil
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		run.Source(line, interpreter, reporter, opts, os.Stderr)
		reporter.ResetError()
	}
}
