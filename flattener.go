package jsonflat

import (
	"bytes"
	"io"
	"strconv"

	"github.com/arnodel/jsonflat/internal/debug"
	"github.com/arnodel/jsonflat/token"
	"go4.org/mem"
)

// A Flattener parses a stream of tokens encoding a single JSON value and
// sends a line to its Sink for each node of the value, as allowed by its
// Options.
//
// Parsing is recursive descent and there is no limit on the nesting depth of
// the input other than the size of the stack.
type Flattener struct {
	src  token.Source
	sink Sink
	opts Options

	tok token.Token // current token
}

// NewFlattener returns a Flattener reading tokens from src.
func NewFlattener(src token.Source, sink Sink, opts Options) *Flattener {
	return &Flattener{src: src, sink: sink, opts: opts}
}

// Flatten reads all the input from r and writes the flattened lines to w.
func Flatten(r io.Reader, w io.Writer, opts Options) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return FlattenBytes(src, w, opts)
}

// FlattenBytes writes the flattened lines of src to w.
func FlattenBytes(src []byte, w io.Writer, opts Options) error {
	f := NewFlattener(token.NewTokenizer(src), &LinePrinter{Writer: w}, opts)
	return f.Flatten()
}

// Flatten consumes the whole token stream, which must contain exactly one
// JSON value.  It returns a *SyntaxError if the stream is not valid, or a
// *PrinterError if the sink could not write some output.  In both cases,
// lines may already have been sent to the sink.
func (f *Flattener) Flatten() (err error) {
	defer CatchPrinterError(&err)
	f.advance()
	if _, err := f.parseValue("", ""); err != nil {
		return err
	}
	if f.tok.Kind != token.EOF {
		return unexpectedToken(f.tok, "EOF")
	}
	return nil
}

func (f *Flattener) advance() {
	f.tok = f.src.Next()
}

// parseValue parses the value at the current token, emits its line and
// returns its text with quotes stripped.
func (f *Flattener) parseValue(parentPath, key string) ([]byte, error) {
	path := key
	if parentPath != "" {
		path = parentPath + "." + key
	}

	var (
		value   []byte
		kind    ValueKind
		isLeaf  bool
		isEmpty bool
		err     error
	)
	switch tok := f.tok; {
	case tok.Is('{'):
		kind = ContainerValue
		value, err = f.parseObject(path)
	case tok.Is('['):
		kind = ContainerValue
		value, err = f.parseArray(path)
	case tok.IsScalar():
		kind = scalarValueKind(tok)
		value = tok.Text
		if f.opts.NormalizeSolidus {
			value = bytes.ReplaceAll(value, escapedSolidus, solidus)
		}
		isLeaf = true
		isEmpty = bytes.Equal(value, emptyString)
		f.advance()
	default:
		return nil, unexpectedToken(tok, "value")
	}
	if err != nil {
		return nil, err
	}

	value = stripQuotes(value)
	if len(value) == 0 {
		return value, nil
	}
	if f.opts.NoHead && path == "" {
		return value, nil
	}
	if f.opts.shouldPrint(isLeaf, isEmpty) {
		if debug.On {
			debug.Printf("emit %q", path)
		}
		f.sink.Emit(path, value, kind)
	}
	return value, nil
}

// parseArray parses an array starting at the current token and returns
// its text.
func (f *Flattener) parseArray(path string) ([]byte, error) {
	buf := []byte{'['}
	f.advance()
	if f.tok.Is(']') {
		f.advance()
		return append(buf, ']'), nil
	}
	for index := 0; ; index++ {
		value, err := f.parseValue(path, strconv.Itoa(index))
		if err != nil {
			return nil, err
		}
		buf = append(buf, value...)
		switch {
		case f.tok.Is(','):
			buf = append(buf, ',')
			f.advance()
		case f.tok.Is(']'):
			f.advance()
			return append(buf, ']'), nil
		default:
			return nil, unexpectedToken(f.tok, ", or ]")
		}
	}
}

// parseObject parses an object starting at the current token and returns
// its text.  Keys are kept with their quotes in the text.
func (f *Flattener) parseObject(path string) ([]byte, error) {
	buf := []byte{'{'}
	f.advance()
	if f.tok.Is('}') {
		f.advance()
		return append(buf, '}'), nil
	}
	for {
		if f.tok.Kind != token.String {
			return nil, unexpectedToken(f.tok, "string")
		}
		key := f.tok.Text
		f.advance()
		if !f.tok.Is(':') {
			return nil, unexpectedToken(f.tok, ":")
		}
		f.advance()
		value, err := f.parseValue(path, keySegment(key))
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
		switch {
		case f.tok.Is(','):
			buf = append(buf, ',')
			f.advance()
		case f.tok.Is('}'):
			f.advance()
			return append(buf, '}'), nil
		default:
			return nil, unexpectedToken(f.tok, ", or }")
		}
	}
}

// keySegment returns the path segment for a key token, i.e. the key without
// its quotes.  Escape sequences are left as they are.
func keySegment(key []byte) string {
	return mem.TrimSuffix(mem.TrimPrefix(mem.B(key), quote), quote).StringCopy()
}

// stripQuotes removes one leading and one trailing quote character if
// present.
func stripQuotes(value []byte) []byte {
	value = bytes.TrimPrefix(value, quoteBytes)
	return bytes.TrimSuffix(value, quoteBytes)
}

func scalarValueKind(tok token.Token) ValueKind {
	switch {
	case tok.Kind == token.String:
		return StringValue
	case tok.Kind == token.Number:
		return NumberValue
	case bytes.Equal(tok.Text, nullBytes):
		return NullValue
	default:
		return BooleanValue
	}
}

var (
	quote          = mem.S(`"`)
	quoteBytes     = []byte(`"`)
	emptyString    = []byte(`""`)
	escapedSolidus = []byte(`\/`)
	solidus        = []byte(`/`)
	nullBytes      = []byte("null")
)
