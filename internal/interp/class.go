package interp

import "github.com/loxscript/golox/internal/diag"

// Class is a Lox class value: its name, optional superclass, and its own
// (non-inherited) method table. Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass constructs a Class value.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (*Class) Type() string     { return "CLASS" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name in this class's own methods, then climbs the
// superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the constructor's arity: the arity of the "init" method found
// on the class or its superclass chain, or zero if there is none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class declares or inherits
// an "init" method, runs it bound to the new instance.
func (c *Class) Call(in *Interpreter, arguments []Value) (Value, *diag.RuntimeError) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, rerr := init.Bind(instance).Call(in, arguments); rerr != nil {
			return nil, rerr
		}
	}
	return instance, nil
}
