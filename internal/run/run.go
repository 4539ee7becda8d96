// Package run wires the lexer, parser, resolver, and interpreter into
// the single pipeline both the file-mode and REPL entry points in
// cmd/golox drive.
package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/astprinter"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
)

// Options configures a single pipeline run.
type Options struct {
	DumpAST bool
	Trace   bool
}

// Source runs one program (a whole file, or one REPL line) through
// scan, parse, resolve, and interpret, skipping each later phase once an
// earlier one reports a static error.
func Source(source string, in *interp.Interpreter, r *diag.Reporter, opts Options, errOut io.Writer) {
	tokens := lexer.New(source, r).ScanTokens()
	if r.HadError() {
		return
	}

	statements := parser.New(tokens, r).Parse()
	if r.HadError() {
		return
	}

	if opts.DumpAST {
		fmt.Fprintln(errOut, dumpProgram(statements))
	}

	locals := resolver.New(r).Resolve(statements)
	if r.HadError() {
		return
	}

	if opts.Trace {
		in.SetTrace(errOut)
	}

	in.Interpret(statements, locals)
}

// dumpProgram renders each top-level statement for --dump-ast. Lox's
// statement forms have no textual grammar of their own, so this prints
// the statement kind and, where there is one, its astprinter expression
// form.
func dumpProgram(statements []ast.Stmt) string {
	var sb strings.Builder
	for i, stmt := range statements {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(dumpStmt(stmt))
	}
	return sb.String()
}

func dumpStmt(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.Expression:
		return astprinter.Print(s.Expr)
	case *ast.Print:
		return "(print " + astprinter.Print(s.Expr) + ")"
	case *ast.Var:
		if s.Initializer != nil {
			return "(var " + s.Name.Lexeme + " " + astprinter.Print(s.Initializer) + ")"
		}
		return "(var " + s.Name.Lexeme + ")"
	case *ast.Block:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, inner := range s.Statements {
			sb.WriteByte(' ')
			sb.WriteString(dumpStmt(inner))
		}
		sb.WriteByte(')')
		return sb.String()
	case *ast.If:
		return "(if " + astprinter.Print(s.Condition) + " " + dumpStmt(s.Then) + ")"
	case *ast.While:
		return "(while " + astprinter.Print(s.Condition) + " " + dumpStmt(s.Body) + ")"
	case *ast.Function:
		return "(fun " + s.Name.Lexeme + ")"
	case *ast.Return:
		if s.Value != nil {
			return "(return " + astprinter.Print(s.Value) + ")"
		}
		return "(return)"
	case *ast.Class:
		return "(class " + s.Name.Lexeme + ")"
	default:
		return fmt.Sprintf("<unknown %T>", stmt)
	}
}
