package token

import (
	"fmt"

	"github.com/arnodel/jsonflat/internal/scanner"
)

// A Token is a lexeme of the input.  For example, the JSON text
//
//	{"id": 123, "tags": [true, "new"]}
//
// is split into the following tokens (in pseudocode for clarity):
//
//	{        -> Punct({)
//	"id"     -> String("id")
//	:        -> Punct(:)
//	123      -> Number(123)
//	,        -> Punct(,)
//	"tags"   -> String("tags")
//	:        -> Punct(:)
//	[        -> Punct([)
//	true     -> Keyword(true)
//	,        -> Punct(,)
//	"new"    -> String("new")
//	]        -> Punct(])
//	}        -> Punct(})
//
// The Text of a token is exactly as found in the input, so strings keep their
// quotes and their escape sequences.  Tokens should not be modified once
// produced.
type Token struct {
	Kind Kind
	Text []byte
	Pos  Pos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Is returns true if t is the punctuation token c.
func (t Token) Is(c byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == c
}

// IsScalar returns true for strings, numbers and keywords.
func (t Token) IsScalar() bool {
	switch t.Kind {
	case String, Number, Keyword:
		return true
	default:
		return false
	}
}

// Pos is the position of a token in the input.  Line and Col start at 0.
type Pos = scanner.Pos

// Kind classifies tokens.
type Kind uint8

const (
	EOF     Kind = iota // end of input, the token text is empty
	String              // a double quoted string
	Number              // a number literal
	Keyword             // null, false or true
	Punct               // any other single character
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case String:
		return "String"
	case Number:
		return "Number"
	case Keyword:
		return "Keyword"
	case Punct:
		return "Punct"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
