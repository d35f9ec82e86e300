// Package rpn implements the infix to postfix conversion.
package rpn

import (
	"fmt"
	"strings"
	"unicode"
)

// precedence ranks the binary operators; higher binds tighter.
var precedence = map[rune]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'^': 3,
}

// rightAssoc marks the operators that associate right to left.
var rightAssoc = map[rune]bool{
	'^': true,
}

// InfixToPostfix converts an infix expression to postfix notation with
// the shunting-yard algorithm.
//
//  1. Operands go straight to the output.
//  2. An operator first flushes stacked operators that bind at least as
//     tightly (equal precedence flushes only left-associative operators),
//     then is stacked itself.
//  3. '(' is stacked; ')' flushes down to the matching '('.
//  4. At the end the stack drains to the output; a surviving '(' means
//     the parentheses never balanced.
//
// Returns ErrUnbalancedParens on a stray ')' or an unclosed '(',
// ErrUnknownSymbol on a rune outside the token alphabet, and
// ErrEmptyExpression when no tokens were seen.
//
// Complexity: O(n) over the expression length.
func InfixToPostfix(expr string) (string, error) {
	var out strings.Builder
	var ops stack[rune]

	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
			continue

		case isDigit(r) || isLetter(r):
			out.WriteRune(r)

		case r == '(':
			ops.push(r)

		case r == ')':
			for {
				top, ok := ops.pop()
				if !ok {
					return "", fmt.Errorf("%w: unexpected ')'", ErrUnbalancedParens)
				}
				if top == '(' {
					break
				}
				out.WriteRune(top)
			}

		default:
			prec, known := precedence[r]
			if !known {
				return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
			}
			for {
				top, ok := ops.top()
				if !ok || top == '(' {
					break
				}
				if precedence[top] < prec || (precedence[top] == prec && rightAssoc[r]) {
					break
				}
				ops.pop()
				out.WriteRune(top)
			}
			ops.push(r)
		}
	}

	for !ops.empty() {
		top, _ := ops.pop()
		if top == '(' {
			return "", fmt.Errorf("%w: unclosed '('", ErrUnbalancedParens)
		}
		out.WriteRune(top)
	}

	if out.Len() == 0 {
		return "", ErrEmptyExpression
	}

	return out.String(), nil
}
