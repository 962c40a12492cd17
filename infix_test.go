package parco

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intTerm() Parser {
	return Translate(OneOrMore(Digit()), func(v Value) (Value, error) {
		return strconv.Atoi(JoinText(v))
	})
}

func TestInfixExprSingleTerm(t *testing.T) {
	p := InfixExpr(intTerm(), []Operator{
		Op("+", func(a, b Value) Value { return a.(int) + b.(int) }),
	})
	v, err := Parse(p, "42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestInfixExprLeftAssociative(t *testing.T) {
	p := InfixExpr(intTerm(), []Operator{
		Op("-", func(a, b Value) Value { return a.(int) - b.(int) }),
	})

	v, err := Parse(p, "10-3-2")
	require.NoError(t, err)
	assert.Equal(t, 5, v, "(10-3)-2, not 10-(3-2)")
}

func TestInfixExprChainsReduceInOrder(t *testing.T) {
	p := InfixExpr(intTerm(), []Operator{
		Op("+", func(a, b Value) Value { return a.(int) + b.(int) }),
		Op("-", func(a, b Value) Value { return a.(int) - b.(int) }),
	})

	tests := []struct {
		input    string
		expected int
	}{
		{input: "1+2", expected: 3},
		{input: "1+2+3", expected: 6},
		{input: "1+2+3+4", expected: 10},
		{input: "10-3+2", expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(p, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestInfixExprOperatorRequiresOperand(t *testing.T) {
	p := InfixExpr(intTerm(), []Operator{
		Op("+", func(a, b Value) Value { return a.(int) + b.(int) }),
	})

	_, err := Parse(p, "1+")
	require.Error(t, err, "a matched operator commits to an operand")

	var d *Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, 2, d.Offset)
	assert.Contains(t, d.Expected, "digit")
}

func TestInfixExprNoTermFails(t *testing.T) {
	p := InfixExpr(intTerm(), []Operator{
		Op("+", func(a, b Value) Value { return a.(int) + b.(int) }),
	})
	_, err := Parse(p, "x")
	assert.Error(t, err)
}

func TestInfixExprPrecedenceByNesting(t *testing.T) {
	// The inner layer resolves * before the outer layer ever sees
	// its + operator.
	inner := InfixExpr(intTerm(), []Operator{
		Op("*", func(a, b Value) Value { return a.(int) * b.(int) }),
	})
	outer := InfixExpr(inner, []Operator{
		Op("+", func(a, b Value) Value { return a.(int) + b.(int) }),
	})

	v, err := Parse(outer, "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, 14, v)
}

func TestInfixExprNeedsOperators(t *testing.T) {
	assert.Panics(t, func() { InfixExpr(intTerm(), nil) })
}
