package interp

import (
	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, *diag.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		v, ok := in.lookUpVariable(e.Name.Lexeme, e)
		if !ok {
			return nil, in.runtimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		v, _ := in.lookUpVariable("this", e)
		return v, nil

	case *ast.Super:
		return in.evalSuper(e)
	}
	return Nil, nil
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(val)
	case float64:
		return NumberValue(val)
	case string:
		return StringValue(val)
	default:
		return Nil
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, *diag.RuntimeError) {
	right, rerr := in.evaluate(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, in.runtimeError(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return BoolValue(!truthy(right)), nil
	}
	return Nil, nil
}

// evalBinary evaluates left then right, strict left-to-right, then
// applies the operator. Comparisons and arithmetic require numbers
// (except "+", which also accepts two strings), and equality uses deep
// value equality for primitives and reference equality for callables and
// instances.
func (in *Interpreter) evalBinary(e *ast.Binary) (Value, *diag.RuntimeError) {
	left, rerr := in.evaluate(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	right, rerr := in.evaluate(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Operator.Kind {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, in.runtimeError(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Greater:
			return BoolValue(ln > rn), nil
		case token.GreaterEqual:
			return BoolValue(ln >= rn), nil
		case token.Less:
			return BoolValue(ln < rn), nil
		default:
			return BoolValue(ln <= rn), nil
		}

	case token.Minus:
		ln, rn, rerr := in.numberOperands(left, right, e.Operator.Line)
		if rerr != nil {
			return nil, rerr
		}
		return ln - rn, nil

	case token.Slash:
		ln, rn, rerr := in.numberOperands(left, right, e.Operator.Line)
		if rerr != nil {
			return nil, rerr
		}
		if rn == 0 {
			return nil, in.runtimeError(e.Operator.Line, "Cannot divide by zero.")
		}
		return ln / rn, nil

	case token.Star:
		ln, rn, rerr := in.numberOperands(left, right, e.Operator.Line)
		if rerr != nil {
			return nil, rerr
		}
		return ln * rn, nil

	case token.Plus:
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return ls + rs, nil
			}
		}
		return nil, in.runtimeError(e.Operator.Line, "Operands must be two numbers or two strings.")

	case token.BangEqual:
		return BoolValue(!equal(left, right)), nil

	case token.EqualEqual:
		return BoolValue(equal(left, right)), nil
	}

	return Nil, nil
}

func (in *Interpreter) numberOperands(left, right Value, line int) (NumberValue, NumberValue, *diag.RuntimeError) {
	ln, lok := left.(NumberValue)
	rn, rok := right.(NumberValue)
	if !lok || !rok {
		return 0, 0, in.runtimeError(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

// evalLogical short-circuits and returns the operand value itself, never
// a coerced bool.
func (in *Interpreter) evalLogical(e *ast.Logical) (Value, *diag.RuntimeError) {
	left, rerr := in.evaluate(e.Left)
	if rerr != nil {
		return nil, rerr
	}

	if e.Operator.Kind == token.Or {
		if truthy(left) {
			return left, nil
		}
	} else {
		if !truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, *diag.RuntimeError) {
	value, rerr := in.evaluate(e.Value)
	if rerr != nil {
		return nil, rerr
	}

	if distance, ok := in.locals[e]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := in.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, in.runtimeError(e.Name.Line, "%s", err)
	}
	return value, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, *diag.RuntimeError) {
	callee, rerr := in.evaluate(e.Callee)
	if rerr != nil {
		return nil, rerr
	}

	arguments := make([]Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		arg, rerr := in.evaluate(argExpr)
		if rerr != nil {
			return nil, rerr
		}
		arguments[i] = arg
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, in.runtimeError(e.Paren.Line, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return nil, in.runtimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}

	return callable.Call(in, arguments)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, *diag.RuntimeError) {
	object, rerr := in.evaluate(e.Object)
	if rerr != nil {
		return nil, rerr
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, in.runtimeError(e.Name.Line, "Only instances have properties.")
	}
	return instance.Get(e.Name.Lexeme, e.Name.Line)
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, *diag.RuntimeError) {
	object, rerr := in.evaluate(e.Object)
	if rerr != nil {
		return nil, rerr
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, in.runtimeError(e.Name.Line, "Only instances have fields.")
	}

	value, rerr := in.evaluate(e.Value)
	if rerr != nil {
		return nil, rerr
	}

	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, *diag.RuntimeError) {
	distance := in.locals[e]
	superclass, _ := in.environment.GetAt(distance, "super").(*Class)
	object, _ := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, in.runtimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(object), nil
}
