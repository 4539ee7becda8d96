package interp

import (
	"fmt"

	"github.com/loxscript/golox/internal/diag"
)

// Instance is a runtime object: its class plus a mutable field map.
// Property lookup checks fields first, then the class/superclass method
// chain (see Get); property assignment always writes a field (see Set).
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance constructs an Instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (*Instance) Type() string { return "INSTANCE" }

func (i *Instance) String() string {
	return i.class.Name + " instance"
}

// Get resolves a property read, binding methods to the instance on the
// way out. line is used for the "Undefined property" runtime error.
func (i *Instance) Get(name string, line int) (Value, *diag.RuntimeError) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, &diag.RuntimeError{Line: line, Message: fmt.Sprintf("Undefined property '%s'.", name)}
}

// Set always writes a field, even when name shadows a method.
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
