// Package astprinter renders an expression as a parenthesized,
// Lisp-like debug string, useful for eyeballing what the parser built
// without running the interpreter on it.
package astprinter

import (
	"fmt"
	"strings"

	"github.com/loxscript/golox/internal/ast"
)

// Print renders expr as a parenthesized debug string, e.g. "(+ 1 2)" or
// "(group (+ 1 2))".
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return literal(e.Value)
	case *ast.Grouping:
		return parenthesize("group", e.Expression)
	case *ast.Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *ast.Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *ast.Call:
		return parenthesize("call", append([]ast.Expr{e.Callee}, e.Arguments...)...)
	case *ast.Get:
		return parenthesize(". "+e.Name.Lexeme, e.Object)
	case *ast.Set:
		return parenthesize("= . "+e.Name.Lexeme, e.Object, e.Value)
	case *ast.This:
		return "this"
	case *ast.Super:
		return "(super " + e.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<unknown %T>", expr)
	}
}

func literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
