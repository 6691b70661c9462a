package arith

import "strconv"

// UnaryOp is a unary sign operator.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// BinaryOp is a binary arithmetic operator.
type BinaryOp int

const (
	OpPlus BinaryOp = iota
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpPow
)

func (op BinaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "mod"
	case OpPow:
		return "**"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// unaryOps maps unary operator spellings to their tags. Built once,
// never mutated.
var unaryOps = map[string]UnaryOp{
	"+": UnaryPlus,
	"-": UnaryMinus,
}

// binaryOps maps binary operator spellings to their tags, one table per
// precedence level. Level 1 binds loosest. Built once, never mutated.
var binaryOps = [...]map[string]BinaryOp{
	1: {"+": OpPlus, "-": OpMinus},
	2: {"*": OpMul, "/": OpDiv, "mod": OpMod},
	3: {"**": OpPow},
}

// binaryOp looks up tok in the operator table for a precedence level.
// The mod operator lexes as an identifier, so both operator and
// identifier tokens are eligible.
func binaryOp(level int, tok token) (BinaryOp, bool) {
	if tok.kind != tokenOp && tok.kind != tokenIdent {
		return 0, false
	}
	op, ok := binaryOps[level][tok.text]
	return op, ok
}
