package resolver

import (
	"bytes"
	"testing"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, source string) ([]ast.Stmt, Depths, *diag.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diag.NewReporter(&buf)
	tokens := lexer.New(source, r).ScanTokens()
	statements := parser.New(tokens, r).Parse()
	require.False(t, r.HadError(), "parse errors: %s", buf.String())
	locals := New(r).Resolve(statements)
	return statements, locals, r
}

func TestResolveBlockLocalShadowsGlobalAtDepthZero(t *testing.T) {
	statements, locals, r := resolve(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
	`)
	require.False(t, r.HadError())

	block := statements[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	depth, ok := locals[variable]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolveGlobalReferenceIsUnresolved(t *testing.T) {
	statements, locals, r := resolve(t, `
		var a = 1;
		print a;
	`)
	require.False(t, r.HadError())

	printStmt := statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	_, ok := locals[variable]
	assert.False(t, ok, "global references are left out of the depth table")
}

func TestResolveSelfReferencingInitializerIsAnError(t *testing.T) {
	_, _, r := resolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, r.HadError())
}

func TestResolveDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, _, r := resolve(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, r.HadError())
}

func TestResolveTopLevelReturnIsAnError(t *testing.T) {
	_, _, r := resolve(t, `return 1;`)
	assert.True(t, r.HadError())
}

func TestResolveReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, r := resolve(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, r.HadError())
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, _, r := resolve(t, `print this;`)
	assert.True(t, r.HadError())
}

func TestResolveClassInheritingFromItselfIsAnError(t *testing.T) {
	_, _, r := resolve(t, `class Oops < Oops {}`)
	assert.True(t, r.HadError())
}

func TestResolveSuperOutsideClassIsAnError(t *testing.T) {
	_, _, r := resolve(t, `print super.method;`)
	assert.True(t, r.HadError())
}
