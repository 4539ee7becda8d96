package astprinter

import (
	"testing"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintBinaryExpression(t *testing.T) {
	expr := &ast.Binary{
		Left:     &ast.Unary{Operator: token.New(token.Minus, "-", nil, 1), Right: &ast.Literal{Value: 123.0}},
		Operator: token.New(token.Star, "*", nil, 1),
		Right:    &ast.Grouping{Expression: &ast.Literal{Value: 45.67}},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", Print(expr))
}

func TestPrintVariableAndAssign(t *testing.T) {
	name := token.New(token.Identifier, "a", nil, 1)
	assign := &ast.Assign{Name: name, Value: &ast.Literal{Value: 1.0}}
	assert.Equal(t, "(= a 1)", Print(assign))
}

func TestPrintNilLiteral(t *testing.T) {
	assert.Equal(t, "nil", Print(&ast.Literal{Value: nil}))
}
