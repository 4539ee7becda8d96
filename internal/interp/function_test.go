package interp

import (
	"bytes"
	"testing"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/resolver"
	"github.com/loxscript/golox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter() (*Interpreter, *diag.Reporter, *bytes.Buffer) {
	var out bytes.Buffer
	reporter := diag.NewReporter(&bytes.Buffer{})
	return New(&out, reporter), reporter, &out
}

// TestInitAlwaysReturnsInstance exercises invariant #6 through the
// constructor: calling the class yields the new instance, even when its
// init body contains a bare "return;".
func TestInitAlwaysReturnsInstance(t *testing.T) {
	in, reporter, _ := newTestInterpreter()

	initDecl := &ast.Function{
		Name: token.New(token.Identifier, "init", nil, 1),
		Body: []ast.Stmt{&ast.Return{Keyword: token.New(token.Return, "return", nil, 1)}},
	}
	class := NewClass("Widget", nil, map[string]*Function{
		"init": NewFunction(initDecl, in.globals, true),
	})

	result, rerr := class.Call(in, nil)
	require.Nil(t, rerr)
	require.False(t, reporter.HadRuntimeError())

	instance, ok := result.(*Instance)
	require.True(t, ok)
	assert.Equal(t, "Widget", instance.class.Name)
}

func TestBindCreatesEnvironmentWithThis(t *testing.T) {
	in, _, _ := newTestInterpreter()

	thisExpr := &ast.This{Keyword: token.New(token.This, "this", nil, 1)}
	methodDecl := &ast.Function{
		Name: token.New(token.Identifier, "greet", nil, 1),
		Body: []ast.Stmt{&ast.Return{
			Keyword: token.New(token.Return, "return", nil, 1),
			Value:   thisExpr,
		}},
	}
	// As the resolver would record it: "this" sits one frame out, past the
	// call's parameter frame, in the frame Bind creates.
	in.locals = resolver.Depths{thisExpr: 1}
	fn := NewFunction(methodDecl, in.globals, false)
	class := NewClass("Widget", nil, map[string]*Function{"greet": fn})
	instance := NewInstance(class)

	bound := fn.Bind(instance)
	result, rerr := bound.Call(in, nil)
	require.Nil(t, rerr)
	assert.Same(t, instance, result)
}

func TestClassArityComesFromInit(t *testing.T) {
	initDecl := &ast.Function{
		Name: token.New(token.Identifier, "init", nil, 1),
		Params: []token.Token{
			token.New(token.Identifier, "a", nil, 1),
			token.New(token.Identifier, "b", nil, 1),
		},
	}
	class := NewClass("Pair", nil, map[string]*Function{
		"init": NewFunction(initDecl, NewEnvironment(), true),
	})
	assert.Equal(t, 2, class.Arity())
}
