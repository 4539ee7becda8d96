package interp

import (
	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
)

// Function is a user-defined Lox function or method: the AST node it was
// declared from, the environment it closed over, and whether it is a
// class's "init" method (which always returns "this" regardless of any
// explicit return).
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction constructs a Function capturing closure as its defining
// environment.
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (*Function) Type() string { return "FUNCTION" }

func (f *Function) String() string {
	return callableString("fn", f.declaration.Name.Lexeme)
}

// Arity is the declared parameter count.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Bind produces a bound method: a Function whose closure is a fresh
// child environment defining "this" to instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// Call runs the function body in a fresh environment enclosed by the
// closure, with parameters bound to arguments, the body executed as a
// block, and the initializer special case applied on the way out.
func (f *Function) Call(in *Interpreter, arguments []Value) (Value, *diag.RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	ret, rerr := in.executeBlock(f.declaration.Body, env)
	if rerr != nil {
		return nil, rerr
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return Nil, nil
}
