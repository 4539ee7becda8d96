// Package diag formats and accumulates the interpreter's four error
// kinds: scan, parse, resolve, and runtime. Diagnostics are written as
// plain "[line N] Error ...: message" text rather than a source-context
// or caret rendering, so they stay easy to match in scripts and tests.
package diag

import (
	"fmt"
	"io"
)

// Where locates a scan/parse/resolve diagnostic within a line: either
// nowhere in particular (pure scan errors), at the end-of-file token, or
// at a specific lexeme.
type Where struct {
	AtEnd  bool
	Lexeme string
	Has    bool // true once either AtEnd or Lexeme has been set
}

// AtToken builds a Where pointing at a named lexeme.
func AtToken(lexeme string, isEOF bool) Where {
	return Where{AtEnd: isEOF, Lexeme: lexeme, Has: true}
}

func (w Where) String() string {
	switch {
	case !w.Has:
		return ""
	case w.AtEnd:
		return " at end"
	default:
		return fmt.Sprintf(" at '%s'", w.Lexeme)
	}
}

// StaticError is a scan, parse, or resolve diagnostic. Formatted as
// "[line N] Error<WHERE>: <MESSAGE>".
type StaticError struct {
	Line    int
	Where   Where
	Message string
}

func (e *StaticError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// RuntimeError is a runtime type/arity/undefined-name failure. Formatted
// as "<MESSAGE>\n[line N]".
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Report writes the runtime wire format to w.
func (e *RuntimeError) Report(w io.Writer) {
	fmt.Fprintf(w, "%s\n[line %d]\n", e.Message, e.Line)
}

// Reporter accumulates diagnostics across a scan/parse/resolve pass and
// tracks two flags, hadError and hadRuntimeError, that callers use to
// decide whether later pipeline phases should run and what exit code to
// use. A REPL resets HadError between lines but a fresh Reporter is
// otherwise created per run.
type Reporter struct {
	Out             io.Writer
	errors          []*StaticError
	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates a Reporter that writes formatted diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Static records a scan/parse/resolve error and writes it immediately.
func (r *Reporter) Static(line int, where Where, format string, args ...any) {
	err := &StaticError{Line: line, Where: where, Message: fmt.Sprintf(format, args...)}
	r.errors = append(r.errors, err)
	r.hadError = true
	fmt.Fprintln(r.Out, err.Error())
}

// Runtime records and writes a runtime error.
func (r *Reporter) Runtime(err *RuntimeError) {
	r.hadRuntimeError = true
	err.Report(r.Out)
}

// HadError reports whether any scan/parse/resolve error was recorded.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error was recorded.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Errors returns every static diagnostic recorded so far.
func (r *Reporter) Errors() []*StaticError { return r.errors }

// ResetError clears hadError and the accumulated static diagnostics. The
// REPL calls this between lines; hadRuntimeError is left untouched.
func (r *Reporter) ResetError() {
	r.hadError = false
	r.errors = nil
}
