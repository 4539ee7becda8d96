package interp

import (
	"time"

	"github.com/loxscript/golox/internal/diag"
)

// NativeFunction wraps a host-provided function as a Lox callable. The
// interpreter defines "clock" this way at startup.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, arguments []Value) (Value, *diag.RuntimeError)
}

func (*NativeFunction) Type() string { return "NATIVE_FUNCTION" }

func (n *NativeFunction) String() string {
	return callableString("native fn:", n.name)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, arguments []Value) (Value, *diag.RuntimeError) {
	return n.fn(in, arguments)
}

// defineNatives installs the Non-goals-scoped native surface: just
// clock(), returning wall-clock seconds as a float64.
func defineNatives(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, *diag.RuntimeError) {
			return NumberValue(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
}
