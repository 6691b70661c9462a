package arith

import "strconv"

// ParseError indicates input that the grammar could not consume in
// full: malformed syntax, an unterminated parenthesis or argument list,
// or leftover trailing characters. Parse never returns a partial tree
// alongside a ParseError.
type ParseError struct {
	// Offset is the byte offset in the input at which parsing failed.
	Offset int
	// Remaining is the unconsumed input from the failure point. It is
	// empty only when the input itself was empty.
	Remaining string
	// Msg describes the construct the parser expected.
	Msg string
}

func (err *ParseError) Error() string {
	s := "parse: offset " + strconv.Itoa(err.Offset) + ": " + err.Msg
	if err.Remaining != "" {
		s += " (remaining " + strconv.Quote(err.Remaining) + ")"
	}
	return s
}

// Pos returns the byte offset at which parsing failed.
func (err *ParseError) Pos() int {
	return err.Offset
}

// EvalError indicates an expression that parsed but cannot be
// evaluated: an unknown function name, an invalid operator tag, or a
// call missing a required argument. It aborts evaluation of that
// expression only.
type EvalError struct {
	// Name is the function name or operator spelling at fault.
	Name string
	// Reason describes the failure.
	Reason string
}

func (err *EvalError) Error() string {
	if err.Name == "" {
		return "eval: " + err.Reason
	}
	return "eval: " + strconv.Quote(err.Name) + ": " + err.Reason
}
