package arith

import (
	"math"
	"strconv"
)

// fn describes one callable function: the number of leading arguments
// it reads and how to apply them.
type fn struct {
	arity int
	call  func(args []float64) float64
}

// funcs is the function table consulted when evaluating a Call. Built
// once, never mutated.
var funcs = map[string]fn{
	"abs": {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"sin": {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos": {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"pow": {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
}

// evalCall dispatches a Call node by exact name. Only the first arity
// arguments are evaluated; extras parse but are ignored. A call with
// fewer arguments than the function reads is an error, never a
// zero-fill.
func evalCall(e *Call) (float64, error) {
	f, ok := funcs[e.Name]
	if !ok {
		return 0, &EvalError{Name: e.Name, Reason: "unknown function"}
	}
	if len(e.Args) < f.arity {
		return 0, &EvalError{Name: e.Name, Reason: "missing argument " + strconv.Itoa(len(e.Args)+1)}
	}
	args := make([]float64, f.arity)
	for i := range args {
		v, err := Eval(e.Args[i])
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return f.call(args), nil
}
