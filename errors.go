package jsonflat

import (
	"fmt"

	"github.com/arnodel/jsonflat/token"
)

// A SyntaxError is returned when the input is not valid JSON.  Expected
// describes what the parser was looking for and Got is the text of the token
// it found instead, unless AtEOF is true.
type SyntaxError struct {
	Pos      token.Pos
	Expected string
	Got      string
	AtEOF    bool
}

func (e *SyntaxError) Error() string {
	got := "<EOF>"
	if !e.AtEOF {
		got = fmt.Sprintf("%q", e.Got)
	}
	return fmt.Sprintf("syntax error at L%d,C%d: expected %s, got %s", e.Pos.Line+1, e.Pos.Col+1, e.Expected, got)
}

func unexpectedToken(tok token.Token, expected string) *SyntaxError {
	return &SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Got:      string(tok.Text),
		AtEOF:    tok.Kind == token.EOF,
	}
}
