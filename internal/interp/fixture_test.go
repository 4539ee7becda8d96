package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runProgram drives one source string through the full scan, parse,
// resolve, interpret pipeline and returns captured stdout alongside the
// reporter that accumulated any diagnostics.
func runProgram(t *testing.T, source string) (string, *diag.Reporter) {
	t.Helper()
	var out, errs bytes.Buffer
	reporter := diag.NewReporter(&errs)

	tokens := lexer.New(source, reporter).ScanTokens()
	if reporter.HadError() {
		return out.String(), reporter
	}
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError() {
		return out.String(), reporter
	}
	locals := resolver.New(reporter).Resolve(statements)
	if reporter.HadError() {
		return out.String(), reporter
	}

	in := interp.New(&out, reporter)
	in.Interpret(statements, locals)
	return out.String(), reporter
}

// TestConcreteScenarios checks a handful of representative programs -
// arithmetic, string concatenation, scoping, closures, and classes -
// against their exact expected stdout.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		stdout string
	}{
		{"arithmetic", `print 1 + 2;`, "3\n"},
		{"string_concat", `print "ab" + "cd";`, "abcd\n"},
		{"block_shadowing", `var a = 1; { var a = 2; print a; } print a;`, "2\n1\n"},
		{"closure_over_mutable_local", `fun make() { var i = 0; fun next() { i = i + 1; return i; } return next; } var c = make(); print c(); print c();`, "1\n2\n"},
		{"method_call", `class A { greet() { print "hi"; } } A().greet();`, "hi\n"},
		{"inheritance_and_this", `class A { init(n) { this.n = n; } } class B < A { show() { print this.n; } } B(7).show();`, "7\n"},
		{"for_loop", `for (var i = 0; i < 3; i = i + 1) print i;`, "0\n1\n2\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stdout, reporter := runProgram(t, c.source)
			require.False(t, reporter.HadError())
			require.False(t, reporter.HadRuntimeError())
			assert.Equal(t, c.stdout, stdout)
		})
	}
}

func TestRuntimeErrorScenarios(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		contains string
	}{
		{"mismatched_plus_operands", `print 1 + "x";`, "two numbers or two strings"},
		{"undefined_variable", `print x;`, "Undefined variable 'x'."},
		{"division_by_zero", `print 1/0;`, "Cannot divide by zero."},
		{"call_non_callable", `"s"();`, "Can only call functions and classes."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var errs bytes.Buffer
			reporter := diag.NewReporter(&errs)
			tokens := lexer.New(c.source, reporter).ScanTokens()
			statements := parser.New(tokens, reporter).Parse()
			locals := resolver.New(reporter).Resolve(statements)
			require.False(t, reporter.HadError())

			var out bytes.Buffer
			in := interp.New(&out, reporter)
			in.Interpret(statements, locals)

			assert.True(t, reporter.HadRuntimeError())
			assert.Contains(t, errs.String(), c.contains)
		})
	}
}

func TestStaticErrorScenarios(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		contains string
	}{
		{"duplicate_local", `{ var a = 1; var a = 2; }`, "Already a variable with this name in this scope."},
		{"top_level_return", `return 1;`, "Can't return from top-level code."},
		{"self_inheritance", `class A < A {}`, ""},
		{"self_referencing_initializer", `{ var a = a; }`, "Can't read local variable in its own initializer."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var errs bytes.Buffer
			reporter := diag.NewReporter(&errs)
			tokens := lexer.New(c.source, reporter).ScanTokens()
			statements := parser.New(tokens, reporter).Parse()
			if !reporter.HadError() {
				resolver.New(reporter).Resolve(statements)
			}
			assert.True(t, reporter.HadError())
			if c.contains != "" {
				assert.Contains(t, errs.String(), c.contains)
			}
		})
	}
}

// TestFixtureScripts runs the larger example programs under
// testdata/fixtures and snapshots their stdout with go-snaps, so whole
// programs are checked for output drift without hand-asserting every
// line.
func TestFixtureScripts(t *testing.T) {
	fixtures, err := filepath.Glob("../../testdata/fixtures/*.lox")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, path := range fixtures {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			require.NoError(t, err)

			stdout, reporter := runProgram(t, string(source))
			require.False(t, reporter.HadError())
			require.False(t, reporter.HadRuntimeError())

			snaps.MatchSnapshot(t, stdout)
		})
	}
}
