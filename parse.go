package arith

import "strconv"

// The grammar, lowest precedence first. Each binary level folds left to
// right, which makes every level left-associative, ** included.
//
//	expr     = binary1
//	binary1  = binary2 { ("+" | "-") binary2 }
//	binary2  = binary3 { ("*" | "/" | "mod") binary3 }
//	binary3  = simple { "**" simple }
//	simple   = number | "(" expr ")" | unary | call
//	unary    = ("+" | "-") simple
//	call     = identifier "(" expr { "," expr } ")"

// Parse parses an expression. It succeeds only when the entire input is
// consumed once surrounding whitespace is skipped; otherwise it returns
// a *ParseError naming the unconsumed remainder, and no tree.
func Parse(src string, opts ...ParseOption) (Expr, error) {
	ctx := parsectx{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	p := &parser{scan: lex(src), src: src, maxDepth: ctx.maxDepth}
	e, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, p.errorAt(tok, "unexpected trailing input")
	}
	return e, nil
}

type parser struct {
	scan     *lexer
	src      string
	maxDepth int
}

func (p *parser) expr(depth int) (Expr, error) {
	return p.binary(1, depth)
}

// binary parses one precedence level, folding every operator found at
// that level into a single Binary node in source order. The innermost
// level delegates to simple; levels below delegate to the next level
// up. A level that finds no operator of its own returns its first
// operand unwrapped.
func (p *parser) binary(level, depth int) (Expr, error) {
	operand := func() (Expr, error) {
		if level == len(binaryOps)-1 {
			return p.simple(depth)
		}
		return p.binary(level+1, depth)
	}
	first, err := operand()
	if err != nil {
		return nil, err
	}
	var ops []BinaryTerm
	for {
		off, pushed := p.scan.mark()
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		op, ok := binaryOp(level, tok)
		if !ok {
			p.scan.push(tok)
			break
		}
		rhs, err := operand()
		if err != nil {
			// The operator has no right operand. Give it back and let
			// the caller decide whether the leftover input is an error.
			p.scan.reset(off, pushed)
			break
		}
		ops = append(ops, BinaryTerm{Op: op, Operand: rhs})
	}
	if len(ops) == 0 {
		return first, nil
	}
	return &Binary{First: first, Ops: ops}, nil
}

// simple parses an atom: a number, a parenthesized expression, a unary
// operator applied to another simple, or a function call. Number is
// tried first so that a literal is never read as anything else.
func (p *parser) simple(depth int) (Expr, error) {
	if depth >= p.maxDepth {
		off := p.scan.pos()
		return nil, &ParseError{Offset: off, Remaining: p.src[off:], Msg: "expression nested too deeply"}
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, p.errorAt(tok, "malformed number "+strconv.Quote(tok.text))
		}
		return &Number{Value: v}, nil
	case tokenOpen:
		e, err := p.expr(depth + 1)
		if err != nil {
			return nil, p.anchored(err, tok)
		}
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenClose:
			return e, nil
		case tokenEOF:
			return nil, p.errorAt(tok, "unterminated parenthesis")
		default:
			return nil, p.errorAt(end, "expected )")
		}
	case tokenOp:
		op, ok := unaryOps[tok.text]
		if !ok {
			return nil, p.errorAt(tok, "unexpected operator "+strconv.Quote(tok.text))
		}
		arg, err := p.simple(depth + 1)
		if err != nil {
			return nil, p.anchored(err, tok)
		}
		return &Unary{Op: op, Arg: arg}, nil
	case tokenIdent:
		return p.call(tok, depth)
	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}

// call parses the argument list of a function call whose name has
// already been scanned. The list must hold at least one expression; the
// name itself is checked only at evaluation.
func (p *parser) call(name token, depth int) (Expr, error) {
	open, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if open.kind != tokenOpen {
		return nil, p.errorAt(name, "expected ( after "+strconv.Quote(name.text))
	}
	var args []Expr
	for {
		arg, err := p.expr(depth + 1)
		if err != nil {
			return nil, p.anchored(err, name)
		}
		args = append(args, arg)
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenSep:
			// Next argument.
		case tokenClose:
			return &Call{Name: name.text, Args: args}, nil
		case tokenEOF:
			return nil, p.errorAt(name, "unterminated argument list")
		default:
			return nil, p.errorAt(end, "expected , or ) in argument list")
		}
	}
}

func (p *parser) errorAt(tok token, msg string) error {
	return &ParseError{Offset: tok.pos, Remaining: p.src[tok.pos:], Msg: msg}
}

// anchored moves a ParseError that points past the end of the input
// back to the token that opened the failing construct, so that the
// error always names a non-empty remainder.
func (p *parser) anchored(err error, tok token) error {
	pe, ok := err.(*ParseError)
	if !ok || pe.Remaining != "" {
		return err
	}
	return &ParseError{Offset: tok.pos, Remaining: p.src[tok.pos:], Msg: pe.Msg}
}
