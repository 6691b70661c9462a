// Package arith implements a small floating-point expression calculator.
//
// An expression combines numeric literals, unary signs, the binary
// operators + - * / mod **, parenthesized subexpressions, and calls to
// the functions abs, sin, cos, and pow. Parse turns a string into a
// syntax tree and Eval walks the tree to a float64.
//
// Precedence is fixed by the grammar: ** binds tightest, then * / mod,
// then + -, with unary signs tighter than all of them. Every binary
// level, including **, groups left to right, so "2**3**2" is
// "(2**3)**2". The mod operator truncates both of its operands toward
// zero before taking the remainder; the remainder's sign follows the
// dividend.
package arith
