package jsonflat

import (
	"fmt"
	"io"
)

// ValueKind tells what kind of node a value comes from.
type ValueKind uint8

const (
	NullValue      ValueKind = iota // null
	BooleanValue                    // true or false
	NumberValue                     // a number literal
	StringValue                     // a string, without its quotes
	ContainerValue                  // an array or object rebuilt from its children
)

// A Sink receives the lines produced by a Flattener.
//
// The methods do not return an error because for this program it's assumed
// to be an exceptional case that outputting results in an error and the only
// sensible outcome is to stop the program.
// Instead, implementations are expected to panic with a *PrinterError when
// they encounter and error.  A user of the Sink interface can use
//
//	func printingFunction(s Sink) (err error) {
//	    defer CatchPrinterError(&err)
//	    return doSomePrinting(s)
//	}
//
// to capture such errors.
type Sink interface {
	Emit(path string, value []byte, kind ValueKind)
}

// CatchPrinterError can be used to capture panics caused by a Sink because
// of an error encountered while attempting to send output.  See the Sink
// interface documentation for details.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while a Sink implementation
// was sending some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// A Flusher can flush buffered output.  *bufio.Writer implements it.
type Flusher interface {
	Flush() error
}

// LinePrinter implements a Sink which uses an io.Writer to send output, one
// line per call to Emit:
//
//	<path><Separator><value>\n
//
// If Separator is empty, DefaultSeparator is used.  If Colorizer is not nil,
// the path and the value are surrounded with its color codes.  If Flusher is
// not nil, it is flushed after each line.
type LinePrinter struct {
	io.Writer
	Separator string
	Colorizer *Colorizer
	Flusher   Flusher
}

var _ Sink = &LinePrinter{}

// DefaultSeparator goes between the path and the value.
const DefaultSeparator = "\t: "

// Emit outputs one line.
func (p *LinePrinter) Emit(path string, value []byte, kind ValueKind) {
	p.Colorizer.printPath(p, path)
	if p.Separator == "" {
		p.printString(DefaultSeparator)
	} else {
		p.printString(p.Separator)
	}
	p.Colorizer.printValue(p, value, kind)
	p.printBytes(newLine)
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			panic(wrapError(err))
		}
	}
}

func (p *LinePrinter) printBytes(b []byte) {
	_, err := p.Write(b)
	if err != nil {
		panic(wrapError(err))
	}
}

func (p *LinePrinter) printString(s string) {
	_, err := io.WriteString(p.Writer, s)
	if err != nil {
		panic(wrapError(err))
	}
}

func wrapError(err error) *PrinterError {
	return &PrinterError{Err: err}
}

var newLine = []byte{'\n'}
