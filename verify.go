package arith

// verifyCases is the fixed regression list: every entry is an input
// expression and the exact value evaluating it must produce. The order
// and contents are stable so that verification runs are reproducible.
var verifyCases = []struct {
	input string
	want  float64
}{
	{"0", 0},
	{"1", 1},
	{"9", 9},
	{"10", 10},
	{"+1", 1},
	{"-1", -1},
	{"(1)", 1},
	{"(-1)", -1},
	{"abs(-1)", 1},
	{"sin(0)", 0},
	{"cos(0)", 1},
	{"pow(2, 3)", 8},
	{"---1", -1},
	{"1+20", 21},
	{"1 + 20", 21},
	{"(1+20)", 21},
	{"-2*3", -6},
	{"2*-3", -6},
	{"1++2", 3},
	{"1+20+300", 321},
	{"1+20+300+4000", 4321},
	{"1+10*2", 21},
	{"10*2+1", 21},
	{"(1+20)*2", 42},
	{"2*(1+20)", 42},
	{"(1+2)*(3+4)", 21},
	{"2*3+4*5", 26},
	{"100+2*10+3", 123},
	{"2**3", 8},
	{"2**3*5+2", 42},
	{"5*2**3+2", 42},
	{"2+5*2**3", 42},
	{"1+2**3*10", 81},
	{"2**3+2*10", 28},
	{"5 * 4 + 3 * 2 + 1", 27},
}

// Verify runs every fixed case through Parse and Eval, comparing
// results by exact equality, and returns the number of failures. If
// report is non-nil it is invoked once per failing case with the wanted
// and computed values, or with the parse or evaluation error.
func Verify(report func(input string, want, got float64, err error)) int {
	failures := 0
	for _, c := range verifyCases {
		got, err := EvalString(c.input)
		if err == nil && got == c.want {
			continue
		}
		failures++
		if report != nil {
			report(c.input, c.want, got, err)
		}
	}
	return failures
}
