// Package interp executes a resolved Lox program: it evaluates
// expressions and statements against a chain of environments, dispatching
// on a small tagged Value interface rather than reflection.
package interp

import (
	"strconv"
	"strings"
)

// Value is implemented by every Lox runtime value: nil, bool, number,
// string, callable (function | class | native), and instance.
type Value interface {
	// Type returns the value's kind name, e.g. "NUMBER" or "INSTANCE".
	Type() string
	// String returns the value's stringification, as printed by "print".
	String() string
}

// Nil is the single Lox "nil" value.
var Nil = NilValue{}

// NilValue represents the absence of a value.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// BoolValue is a Lox boolean.
type BoolValue bool

func (BoolValue) Type() string { return "BOOLEAN" }
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is Lox's single numeric type: a 64-bit float.
type NumberValue float64

func (NumberValue) Type() string { return "NUMBER" }

// String renders integral values without a decimal point, and
// fractional values with one.
func (n NumberValue) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StringValue is a Lox string.
type StringValue string

func (StringValue) Type() string     { return "STRING" }
func (s StringValue) String() string { return string(s) }

// truthy applies Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func truthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(val)
	default:
		return true
	}
}

// equal applies Lox's equality rule: different runtime kinds are unequal;
// numbers, strings, bools, and nil compare by value; callables and
// instances compare by reference (Go interface identity already does
// this since they are backed by pointers).
func equal(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	default:
		return a == b
	}
}

// Class.String and Instance.String live alongside their types; this
// helper centralizes the "<fn NAME>" / "<native fn: NAME>" callable forms
// referenced from multiple Value implementations.
func callableString(kind, name string) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(kind)
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteByte('>')
	return sb.String()
}
