// Package rpn converts infix expressions to postfix notation and
// evaluates the result.
//
// What:
//
//   - Tokens are single runes: digits 0..9 are literals, ASCII letters
//     are variables resolved through a Variables map, "+ - * / ^" are
//     the operators, and parentheses group. Whitespace separates tokens.
//   - InfixToPostfix runs the shunting-yard conversion with standard
//     precedence: ^ binds tightest and associates right, then * and /,
//     then + and -, all left associative.
//   - EvalPostfix walks the postfix string with an operand stack and an
//     operator dispatch table. Eval chains both steps.
//
// Why:
//
//   - The classic two-stack calculator exercise: one pass to reorder the
//     expression, one pass to reduce it.
//
// Complexity:
//
//   - InfixToPostfix / EvalPostfix: O(n) over the expression length.
//
// Errors:
//
//   - ErrEmptyExpression: no tokens to convert or evaluate.
//   - ErrUnbalancedParens: a stray ')' or an unclosed '('.
//   - ErrUnknownSymbol: a rune outside the token alphabet.
//   - ErrUnboundVariable: a variable missing from the Variables map.
//   - ErrMalformedExpression: operand underflow, or leftovers after
//     the final reduction.
//
// Division by zero is not trapped; it follows IEEE 754 and yields
// an infinity or NaN.
//
// See: docs/RPN.md for the exercise notes.
package rpn
