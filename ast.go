package arith

import (
	"strconv"
	"strings"
)

// Expr is a node in the syntax tree of a parsed expression. The
// implementations are exactly Number, Unary, Binary, and Call; the set
// is closed. Trees are built bottom-up during parsing and never mutated
// afterward, so an Expr is safe to share and to evaluate concurrently.
type Expr interface {
	// String renders the node with explicit grouping.
	String() string

	fmt(b *strings.Builder)
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Unary applies a sign operator to a subexpression.
type Unary struct {
	Op  UnaryOp
	Arg Expr
}

// BinaryTerm is one (operator, operand) step in a Binary node's fold.
type BinaryTerm struct {
	Op      BinaryOp
	Operand Expr
}

// Binary is a left-to-right fold of operands at a single precedence
// level: First, then each term's operator applied to the accumulated
// value and the term's operand, in source order. Ops may be empty, in
// which case the node is equivalent to First alone.
type Binary struct {
	First Expr
	Ops   []BinaryTerm
}

// Call is a named function application. The grammar guarantees Args has
// at least one element. The name is not validated during parsing; an
// unknown name fails only at evaluation.
type Call struct {
	Name string
	Args []Expr
}

func (n *Number) String() string { return exprString(n) }
func (n *Unary) String() string  { return exprString(n) }
func (n *Binary) String() string { return exprString(n) }
func (n *Call) String() string   { return exprString(n) }

func exprString(e Expr) string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (n *Number) fmt(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.String())
	n.Arg.fmt(b)
	b.WriteByte(')')
}

func (n *Binary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	n.First.fmt(b)
	for _, t := range n.Ops {
		b.WriteByte(' ')
		b.WriteString(t.Op.String())
		b.WriteByte(' ')
		t.Operand.fmt(b)
	}
	b.WriteByte(')')
}

func (n *Call) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.fmt(b)
	}
	b.WriteByte(')')
}
