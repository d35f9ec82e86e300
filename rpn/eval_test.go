package rpn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/rpn"
)

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		name    string
		postfix string
		vars    rpn.Variables
		want    float64
	}{
		{name: "subtraction order", postfix: "92-", want: 7},
		{name: "division order", postfix: "92/", want: 4.5},
		{name: "power", postfix: "23^", want: 8},
		{name: "addition", postfix: "12+", want: 3},
		{name: "whitespace ignored", postfix: "9 2 -", want: 7},
		{
			name:    "bound variables",
			postfix: "ab*",
			vars:    rpn.Variables{'a': 6, 'b': 7},
			want:    42,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rpn.EvalPostfix(tc.postfix, tc.vars)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEvalPostfix_TwoGroups(t *testing.T) {
	vars := rpn.Variables{'A': 1, 'B': 2, 'C': 3, 'D': 4}

	got, err := rpn.EvalPostfix("AB+CD+/", vars)
	require.NoError(t, err)
	require.InDelta(t, 3.0/7.0, got, 1e-12)
}

func TestEvalPostfix_Errors(t *testing.T) {
	cases := []struct {
		name    string
		postfix string
		vars    rpn.Variables
		want    error
	}{
		{name: "unbound variable", postfix: "x", want: rpn.ErrUnboundVariable},
		{name: "unknown symbol", postfix: "1$+", want: rpn.ErrUnknownSymbol},
		{name: "operand underflow", postfix: "1+", want: rpn.ErrMalformedExpression},
		{name: "leftover operands", postfix: "12+3", want: rpn.ErrMalformedExpression},
		{name: "empty", postfix: "", want: rpn.ErrEmptyExpression},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rpn.EvalPostfix(tc.postfix, tc.vars)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEvalPostfix_DivisionByZero(t *testing.T) {
	got, err := rpn.EvalPostfix("10/", nil)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

func TestEvalPostfix_VariablesAreCaseSensitive(t *testing.T) {
	vars := rpn.Variables{'a': 1}

	_, err := rpn.EvalPostfix("A", vars)
	require.ErrorIs(t, err, rpn.ErrUnboundVariable)
}

func TestEval(t *testing.T) {
	got, err := rpn.Eval("(1+2)*3", nil)
	require.NoError(t, err)
	require.Equal(t, 9.0, got)

	// Left associativity end to end: (5-3)+1, not 5-(3+1).
	got, err = rpn.Eval("a-b+c", rpn.Variables{'a': 5, 'b': 3, 'c': 1})
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

func TestEval_PropagatesBothStages(t *testing.T) {
	_, err := rpn.Eval("(a", rpn.Variables{'a': 1})
	require.ErrorIs(t, err, rpn.ErrUnbalancedParens)

	_, err = rpn.Eval("x+1", nil)
	require.ErrorIs(t, err, rpn.ErrUnboundVariable)
}
