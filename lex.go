package arith

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, never including a sign.
	tokenNum
	// tokenIdent is a function name or the mod operator.
	tokenIdent
	// tokenOp is an operator symbol.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the argument separator, a comma.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer scans tokens from an input string. pos fields and off are byte
// offsets into src.
type lexer struct {
	src string
	off int
	p   token
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok token) {
	if l.p.kind != tokenNone {
		panic("arith: double push")
	}
	l.p = tok
}

// mark captures the lexer position so that a failed parse can be backed
// out with reset.
func (l *lexer) mark() (int, token) {
	return l.off, l.p
}

func (l *lexer) reset(off int, p token) {
	l.off, l.p = off, p
}

// pos reports the offset of the next token to be scanned.
func (l *lexer) pos() int {
	if l.p.kind != tokenNone {
		return l.p.pos
	}
	return l.off
}

// next scans the next token, skipping any leading whitespace. At the
// end of the input it returns an EOF token positioned one past the last
// byte.
func (l *lexer) next() (token, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = token{}
		return tok, nil
	}
	l.skipSpace()
	if l.off >= len(l.src) {
		return token{kind: tokenEOF, pos: len(l.src)}, nil
	}
	tok := token{pos: l.off}
	switch c := l.src[l.off]; {
	case isDigit(c), c == '.':
		text, err := l.scanNum()
		if err != nil {
			return tok, err
		}
		tok.text, tok.kind = text, tokenNum
	case c == '_', isAlpha(c):
		tok.text, tok.kind = l.scanIdent(), tokenIdent
	case c == '(':
		l.off++
		tok.text, tok.kind = "(", tokenOpen
	case c == ')':
		l.off++
		tok.text, tok.kind = ")", tokenClose
	case c == ',':
		l.off++
		tok.text, tok.kind = ",", tokenSep
	case c == '*':
		l.off++
		if l.off < len(l.src) && l.src[l.off] == '*' {
			l.off++
			tok.text = "**"
		} else {
			tok.text = "*"
		}
		tok.kind = tokenOp
	case c == '+', c == '-', c == '/':
		l.off++
		tok.text, tok.kind = l.src[tok.pos:l.off], tokenOp
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.off:])
		return tok, &ParseError{
			Offset:    l.off,
			Remaining: l.src[l.off:],
			Msg:       "unexpected character " + strconv.QuoteRune(r),
		}
	}
	return tok, nil
}

func (l *lexer) skipSpace() {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			return
		}
		l.off += sz
	}
}

// scanNum scans a numeric literal: digits with an optional fractional
// part and an optional exponent. An e with no exponent digits after it
// is not part of the number; it starts the next token instead.
func (l *lexer) scanNum() (string, error) {
	start := l.off
	i, dig := l.off, false
	for i < len(l.src) && isDigit(l.src[i]) {
		i, dig = i+1, true
	}
	if i < len(l.src) && l.src[i] == '.' {
		i++
		for i < len(l.src) && isDigit(l.src[i]) {
			i, dig = i+1, true
		}
	}
	if !dig {
		return "", &ParseError{Offset: start, Remaining: l.src[start:], Msg: "malformed number"}
	}
	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		j := i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		if j < len(l.src) && isDigit(l.src[j]) {
			for j < len(l.src) && isDigit(l.src[j]) {
				j++
			}
			i = j
		}
	}
	l.off = i
	return l.src[start:i], nil
}

// scanIdent scans an identifier, one or more ASCII letters or
// underscores.
func (l *lexer) scanIdent() string {
	start := l.off
	for l.off < len(l.src) && (l.src[l.off] == '_' || isAlpha(l.src[l.off])) {
		l.off++
	}
	return l.src[start:l.off]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
