// Package rpn defines the calculator types and sentinel errors.
package rpn

import "errors"

// Variables maps single-rune variable names to their values.
type Variables map[rune]float64

// Sentinel errors for conversion and evaluation.
var (
	// ErrEmptyExpression is returned when the input holds no tokens.
	ErrEmptyExpression = errors.New("rpn: empty expression")

	// ErrUnbalancedParens is returned on a stray ')' or an unclosed '('.
	ErrUnbalancedParens = errors.New("rpn: unbalanced parentheses")

	// ErrUnknownSymbol is returned on a rune outside the token alphabet.
	ErrUnknownSymbol = errors.New("rpn: unknown symbol")

	// ErrUnboundVariable is returned when a variable has no value.
	ErrUnboundVariable = errors.New("rpn: unbound variable")

	// ErrMalformedExpression is returned when operands and operators
	// do not reduce to a single value.
	ErrMalformedExpression = errors.New("rpn: malformed expression")
)

// isDigit reports whether r is a decimal digit literal.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter reports whether r is an ASCII letter, the variable alphabet.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
