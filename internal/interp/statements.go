package interp

import (
	"fmt"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
)

func (in *Interpreter) execStmt(stmt ast.Stmt) (*returnSignal, *diag.RuntimeError) {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.Class:
		return in.execClass(s)

	case *ast.Expression:
		_, rerr := in.evaluate(s.Expr)
		return nil, rerr

	case *ast.Function:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil, nil

	case *ast.If:
		cond, rerr := in.evaluate(s.Condition)
		if rerr != nil {
			return nil, rerr
		}
		if truthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil, nil

	case *ast.Print:
		value, rerr := in.evaluate(s.Expr)
		if rerr != nil {
			return nil, rerr
		}
		fmt.Fprintln(in.out, value.String())
		return nil, nil

	case *ast.Return:
		var value Value = Nil
		if s.Value != nil {
			v, rerr := in.evaluate(s.Value)
			if rerr != nil {
				return nil, rerr
			}
			value = v
		}
		return &returnSignal{value: value}, nil

	case *ast.Var:
		value := Value(Nil)
		if s.Initializer != nil {
			v, rerr := in.evaluate(s.Initializer)
			if rerr != nil {
				return nil, rerr
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil, nil

	case *ast.While:
		for {
			cond, rerr := in.evaluate(s.Condition)
			if rerr != nil {
				return nil, rerr
			}
			if !truthy(cond) {
				return nil, nil
			}
			ret, rerr := in.execute(s.Body)
			if rerr != nil {
				return nil, rerr
			}
			if ret != nil {
				return ret, nil
			}
		}
	}
	return nil, nil
}

// execClass resolves an optional superclass, pushes a "super" environment
// while building methods, then pops it before binding the class name in
// the declaring scope.
func (in *Interpreter) execClass(s *ast.Class) (*returnSignal, *diag.RuntimeError) {
	var superclass *Class
	if s.Superclass != nil {
		v, rerr := in.evaluate(s.Superclass)
		if rerr != nil {
			return nil, rerr
		}
		sc, ok := v.(*Class)
		if !ok {
			return nil, in.runtimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, Nil)

	if s.Superclass != nil {
		in.environment = NewEnclosedEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewFunction(method, in.environment, isInitializer)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = in.environment.enclosing
	}

	if err := in.environment.Assign(s.Name.Lexeme, class); err != nil {
		return nil, in.runtimeError(s.Name.Line, "%s", err)
	}
	return nil, nil
}
