package token

// A Source produces tokens one at a time.  Once the input is exhausted, Next
// returns EOF tokens.
type Source interface {
	Next() Token
}

var _ Source = &Tokenizer{}

// SliceSource is a Source that reads tokens from a slice.
type SliceSource struct {
	toks []Token
	eof  Token
}

var _ Source = &SliceSource{}

// NewSliceSource returns a Source producing toks, then EOF tokens.
func NewSliceSource(toks []Token) *SliceSource {
	src := &SliceSource{toks: toks, eof: Token{Kind: EOF}}
	if n := len(toks); n > 0 {
		src.eof.Pos = toks[n-1].Pos
		src.eof.Pos.Col += len(toks[n-1].Text)
	}
	return src
}

func (r *SliceSource) Next() (tok Token) {
	if len(r.toks) == 0 {
		return r.eof
	}
	tok = r.toks[0]
	r.toks = r.toks[1:]
	return
}
