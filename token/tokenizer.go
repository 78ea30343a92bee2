package token

import (
	"github.com/arnodel/jsonflat/internal/debug"
	"github.com/arnodel/jsonflat/internal/scanner"
	"go4.org/mem"
)

// A Tokenizer splits JSON text into tokens, dropping white space between
// them.  It never fails: a sequence of bytes that cannot start a string, a
// number or a keyword is returned one byte at a time as Punct tokens, so that
// a parser can reject it.
//
// The lexical rules are lenient on purpose:
//   - a backslash in a string can escape any non-control character;
//   - numbers may have an empty fraction or exponent ("1." and "1e+" are
//     accepted).
type Tokenizer struct {
	scanr *scanner.Scanner
}

// NewTokenizer returns a Tokenizer reading from src.  The text of the
// tokens it produces shares memory with src.
func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{scanr: scanner.NewScanner(src)}
}

// Tokenize returns all the tokens in src, not including the final EOF.
func Tokenize(src []byte) []Token {
	var toks []Token
	t := NewTokenizer(src)
	for {
		tok := t.Next()
		if tok.Kind == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token.  At the end of the input it returns an EOF
// token, and will keep doing so on subsequent calls.
func (t *Tokenizer) Next() Token {
	s := t.scanr
	s.SkipSpace()
	pos := s.StartToken()
	kind := t.scanToken()
	tok := Token{Kind: kind, Text: s.EndToken(), Pos: pos}
	if debug.On {
		debug.Printf("token %s at L%d,C%d", tok, pos.Line+1, pos.Col+1)
	}
	return tok
}

// scanToken advances past the longest token at the current position and
// returns its kind.
func (t *Tokenizer) scanToken() Kind {
	s := t.scanr
	b, ok := s.Peek()
	switch {
	case !ok:
		return EOF
	case b == '"':
		if t.scanString() {
			return String
		}
	case b == '-' || scanner.IsDigit(b):
		if t.scanNumber() {
			return Number
		}
	default:
		for _, kw := range keywords {
			if mem.HasPrefix(mem.B(s.Rest()), kw) {
				s.Skip(kw.Len())
				return Keyword
			}
		}
	}
	s.Rewind()
	s.Read()
	return Punct
}

// scanString reads a string including its quotes.  It returns false if the
// string is not terminated properly, in which case the position of the
// scanner is undefined.
func (t *Tokenizer) scanString() bool {
	s := t.scanr
	s.Read()
	for {
		b, ok := s.Read()
		switch {
		case !ok:
			return false
		case b == '"':
			return true
		case b == '\\':
			x, ok := s.Read()
			if !ok || scanner.IsCtrl(x) {
				return false
			}
			if x == 'u' {
				for i := 0; i < 4; i++ {
					h, ok := s.Read()
					if !ok || !scanner.IsHex(h) {
						return false
					}
				}
			}
		case scanner.IsCtrl(b):
			return false
		}
	}
}

// scanNumber reads a number literal.  It returns false if there is no
// digit after the optional minus sign.
func (t *Tokenizer) scanNumber() bool {
	s := t.scanr
	b, _ := s.Peek()

	// Sign part
	if b == '-' {
		s.Read()
	}

	// Integer part
	b, ok := s.Read()
	switch {
	case ok && b == '0':
	case ok && scanner.IsNonZeroDigit(b):
		t.skipDigits()
	default:
		return false
	}

	// Fraction part
	if b, _ := s.Peek(); b == '.' {
		s.Read()
		t.skipDigits()
	}

	// Exponent part
	if b, _ := s.Peek(); b == 'e' || b == 'E' {
		s.Read()
		if b, _ := s.Peek(); b == '-' || b == '+' {
			s.Read()
		}
		t.skipDigits()
	}
	return true
}

func (t *Tokenizer) skipDigits() {
	for {
		b, ok := t.scanr.Peek()
		if !ok || !scanner.IsDigit(b) {
			return
		}
		t.scanr.Read()
	}
}

var keywords = []mem.RO{
	mem.S("null"),
	mem.S("false"),
	mem.S("true"),
}
