package arith

import "math"

// Eval evaluates a parsed expression to a float64. It is a pure
// recursion over the tree: it has no side effects, and an error aborts
// only this evaluation. Division by zero is not an error; it follows
// IEEE semantics and yields an infinity or NaN.
func Eval(e Expr) (float64, error) {
	switch e := e.(type) {
	case *Number:
		return e.Value, nil
	case *Unary:
		v, err := Eval(e.Arg)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case UnaryPlus:
			return v, nil
		case UnaryMinus:
			return -v, nil
		default:
			return 0, &EvalError{Name: e.Op.String(), Reason: "unknown operator"}
		}
	case *Binary:
		acc, err := Eval(e.First)
		if err != nil {
			return 0, err
		}
		for _, t := range e.Ops {
			v, err := Eval(t.Operand)
			if err != nil {
				return 0, err
			}
			acc, err = apply(t.Op, acc, v)
			if err != nil {
				return 0, err
			}
		}
		return acc, nil
	case *Call:
		return evalCall(e)
	default:
		panic("arith: invalid expression node")
	}
}

// apply dispatches a single binary operator application.
func apply(op BinaryOp, a, b float64) (float64, error) {
	switch op {
	case OpPlus:
		return a + b, nil
	case OpMinus:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		return a / b, nil
	case OpMod:
		// Both operands truncate toward zero before the remainder is
		// taken; the result's sign follows the dividend.
		return math.Mod(math.Trunc(a), math.Trunc(b)), nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, &EvalError{Name: op.String(), Reason: "unknown operator"}
	}
}

// EvalString parses and evaluates an expression in one step.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return Eval(e)
}
