package arith

import "strconv"

// ParseOption is an option for a single call to Parse.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// maxDepth bounds the nesting depth of the parsed expression.
	maxDepth int
}

type depthopt int

// defaultMaxDepth is the nesting-depth bound applied when no MaxDepth
// option is given.
const defaultMaxDepth = 512

// MaxDepth bounds the nesting depth of a parse. Parenthesized
// subexpressions, unary operators, and call arguments each count one
// level; input nested deeper fails with a ParseError rather than
// risking stack exhaustion. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("arith: nonpositive depth bound " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}
