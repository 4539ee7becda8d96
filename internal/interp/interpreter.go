package interp

import (
	"fmt"
	"io"
	"log"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/resolver"
)

// returnSignal carries a function's return value back up the call stack.
// Every exec* function returns one of these instead of panicking, and
// every block restores its previous environment before propagating the
// signal outward, so a return unwinds cleanly through nested blocks and
// loops without leaving stale scopes behind.
type returnSignal struct {
	value Value
}

// Interpreter walks a resolved statement list, evaluating expressions
// against a chain of Environments. globals never changes; environment
// moves as scopes are entered and left.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      resolver.Depths
	reporter    *diag.Reporter
	out         io.Writer
	trace       *log.Logger // nil unless tracing is enabled
}

// New creates an Interpreter that writes "print" output to out and
// reports runtime errors through r. The global environment is seeded
// with the native clock() function.
func New(out io.Writer, r *diag.Reporter) *Interpreter {
	globals := NewEnvironment()
	defineNatives(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		out:         out,
		reporter:    r,
	}
}

// SetTrace enables per-statement execution tracing to w.
func (in *Interpreter) SetTrace(w io.Writer) {
	in.trace = log.New(w, "trace: ", 0)
}

// Interpret runs statements against locals, the resolver's scope-depth
// table, catching any runtime error at this top-level entry point so it
// never escapes as a Go panic.
func (in *Interpreter) Interpret(statements []ast.Stmt, locals resolver.Depths) {
	in.locals = locals
	for _, stmt := range statements {
		_, rerr := in.execute(stmt)
		if rerr != nil {
			in.reporter.Runtime(rerr)
			return
		}
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) (*returnSignal, *diag.RuntimeError) {
	if in.trace != nil {
		in.trace.Printf("%T", stmt)
	}
	return in.execStmt(stmt)
}

// executeBlock runs statements in env, always restoring the previous
// current environment on the way out. Normal completion, an early return
// signal, and a runtime error all take the same deferred path.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) (*returnSignal, *diag.RuntimeError) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		ret, rerr := in.execute(stmt)
		if rerr != nil {
			return nil, rerr
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func (in *Interpreter) lookUpVariable(name string, expr ast.Expr) (Value, bool) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name), true
	}
	return in.globals.Get(name)
}

func (in *Interpreter) runtimeError(line int, format string, args ...any) *diag.RuntimeError {
	return &diag.RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
