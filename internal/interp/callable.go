package interp

import "github.com/loxscript/golox/internal/diag"

// Callable is implemented by the three kinds of Value that can appear on
// the left of a Call expression: user-defined Function, Class (acting as
// its own constructor), and NativeFunction. Modeling this as a shared
// interface rather than an inheritance hierarchy keeps dispatch a single
// type switch away.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, arguments []Value) (Value, *diag.RuntimeError)
}
