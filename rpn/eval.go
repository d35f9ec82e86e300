// Package rpn implements postfix evaluation.
package rpn

import (
	"fmt"
	"math"
	"unicode"
)

// operators dispatches each operator rune to its reduction.
var operators = map[rune]func(lhs, rhs float64) float64{
	'+': func(lhs, rhs float64) float64 { return lhs + rhs },
	'-': func(lhs, rhs float64) float64 { return lhs - rhs },
	'*': func(lhs, rhs float64) float64 { return lhs * rhs },
	'/': func(lhs, rhs float64) float64 { return lhs / rhs },
	'^': math.Pow,
}

// EvalPostfix evaluates a postfix expression against vars.
//
//  1. Digits push their literal value; letters push their bound value.
//  2. An operator pops the right then the left operand and pushes the
//     reduction.
//  3. Exactly one value must remain when the input is exhausted.
//
// Returns ErrUnboundVariable for a letter missing from vars,
// ErrUnknownSymbol for a rune outside the token alphabet,
// ErrMalformedExpression on operand underflow or leftovers, and
// ErrEmptyExpression when no tokens were seen.
//
// Complexity: O(n) over the expression length.
func EvalPostfix(postfix string, vars Variables) (float64, error) {
	var operands stack[float64]

	for _, r := range postfix {
		if unicode.IsSpace(r) {
			continue
		}

		if reduce, ok := operators[r]; ok {
			rhs, okRHS := operands.pop()
			lhs, okLHS := operands.pop()
			if !okRHS || !okLHS {
				return 0, fmt.Errorf("%w: operator %q wants two operands", ErrMalformedExpression, r)
			}
			operands.push(reduce(lhs, rhs))
			continue
		}

		switch {
		case isDigit(r):
			operands.push(float64(r - '0'))
		case isLetter(r):
			v, bound := vars[r]
			if !bound {
				return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, r)
			}
			operands.push(v)
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
		}
	}

	result, ok := operands.pop()
	if !ok {
		return 0, ErrEmptyExpression
	}
	if !operands.empty() {
		return 0, fmt.Errorf("%w: %d operands left over", ErrMalformedExpression, operands.len()+1)
	}

	return result, nil
}

// Eval converts an infix expression to postfix and evaluates it.
// It surfaces the errors of both InfixToPostfix and EvalPostfix.
func Eval(expr string, vars Variables) (float64, error) {
	postfix, err := InfixToPostfix(expr)
	if err != nil {
		return 0, err
	}

	return EvalPostfix(postfix, vars)
}
