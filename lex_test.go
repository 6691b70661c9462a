package arith

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
		err    bool
	}{
		// spaces
		{"", nil, false},
		{" \t \r\n ", nil, false},
		// numbers
		{"0", []token{{text: "0", kind: tokenNum, pos: 0}}, false},
		{"9876543210", []token{{text: "9876543210", kind: tokenNum, pos: 0}}, false},
		{"1 0", []token{{text: "1", kind: tokenNum, pos: 0}, {text: "0", kind: tokenNum, pos: 2}}, false},
		{"1.0", []token{{text: "1.0", kind: tokenNum, pos: 0}}, false},
		{".5", []token{{text: ".5", kind: tokenNum, pos: 0}}, false},
		{"1.", []token{{text: "1.", kind: tokenNum, pos: 0}}, false},
		{"1e1", []token{{text: "1e1", kind: tokenNum, pos: 0}}, false},
		{"1e+3", []token{{text: "1e+3", kind: tokenNum, pos: 0}}, false},
		{"1.25e-3", []token{{text: "1.25e-3", kind: tokenNum, pos: 0}}, false},
		// an e with no exponent digits is not part of the number
		{"1e", []token{{text: "1", kind: tokenNum, pos: 0}, {text: "e", kind: tokenIdent, pos: 1}}, false},
		{".", nil, true},
		// a sign is always an operator, never part of a number
		{"-1", []token{{text: "-", kind: tokenOp, pos: 0}, {text: "1", kind: tokenNum, pos: 1}}, false},
		// identifiers
		{"abs", []token{{text: "abs", kind: tokenIdent, pos: 0}}, false},
		{"_a_b_", []token{{text: "_a_b_", kind: tokenIdent, pos: 0}}, false},
		{"a1", []token{{text: "a", kind: tokenIdent, pos: 0}, {text: "1", kind: tokenNum, pos: 1}}, false},
		// operators
		{"2*3", []token{{text: "2", kind: tokenNum, pos: 0}, {text: "*", kind: tokenOp, pos: 1}, {text: "3", kind: tokenNum, pos: 2}}, false},
		{"2**3", []token{{text: "2", kind: tokenNum, pos: 0}, {text: "**", kind: tokenOp, pos: 1}, {text: "3", kind: tokenNum, pos: 3}}, false},
		{"7 mod 2", []token{{text: "7", kind: tokenNum, pos: 0}, {text: "mod", kind: tokenIdent, pos: 2}, {text: "2", kind: tokenNum, pos: 6}}, false},
		{"7mod2", []token{{text: "7", kind: tokenNum, pos: 0}, {text: "mod", kind: tokenIdent, pos: 1}, {text: "2", kind: tokenNum, pos: 4}}, false},
		{"1++2", []token{{text: "1", kind: tokenNum, pos: 0}, {text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, false},
		// brackets and separators
		{"(1)", []token{{text: "(", kind: tokenOpen, pos: 0}, {text: "1", kind: tokenNum, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, false},
		{"pow(2, 3)", []token{
			{text: "pow", kind: tokenIdent, pos: 0},
			{text: "(", kind: tokenOpen, pos: 3},
			{text: "2", kind: tokenNum, pos: 4},
			{text: ",", kind: tokenSep, pos: 5},
			{text: "3", kind: tokenNum, pos: 7},
			{text: ")", kind: tokenClose, pos: 8},
		}, false},
		// erroneous characters
		{"$", nil, true},
		{"1$", []token{{text: "1", kind: tokenNum, pos: 0}}, true},
	}

	for _, c := range cases {
		scan := lex(c.src)
		var got []token
		var err error
		for {
			var tok token
			tok, err = scan.next()
			if err != nil || tok.kind == tokenEOF {
				break
			}
			got = append(got, tok)
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q: want tokens %v, got %v", c.src, c.tokens, got)
		}
		if (err != nil) != c.err {
			t.Errorf("scanning %q: want error %v, got %v", c.src, c.err, err)
		}
		if err != nil {
			if pe, ok := err.(*ParseError); !ok {
				t.Errorf("scanning %q: error %v is not a *ParseError", c.src, err)
			} else if pe.Remaining == "" {
				t.Errorf("scanning %q: error %v has empty remainder", c.src, err)
			}
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex("1+2")
	tok, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	again, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	if again != tok {
		t.Errorf("pushed %v but scanned %v", tok, again)
	}
	if next, _ := scan.next(); next.text != "+" {
		t.Errorf("lost position after push: scanned %v", next)
	}
}

func TestLexEOF(t *testing.T) {
	scan := lex(" 1 ")
	if tok, err := scan.next(); err != nil || tok.kind != tokenNum {
		t.Fatalf("want number, got %v, %v", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := scan.next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.kind != tokenEOF {
			t.Errorf("want EOF, got %v", tok)
		}
		if tok.pos != 3 {
			t.Errorf("EOF position: want 3, got %d", tok.pos)
		}
	}
}
