package jsonflat

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/creachadair/mds/mtest"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type countingFlusher struct {
	count int
}

func (f *countingFlusher) Flush() error {
	f.count++
	return nil
}

func TestLinePrinter(t *testing.T) {
	tests := []struct {
		name      string
		separator string
		colorizer *Colorizer
		want      string
	}{
		{
			name: "default separator",
			want: "a.0\t: x\n",
		},
		{
			name:      "custom separator",
			separator: " = ",
			want:      "a.0 = x\n",
		},
		{
			name: "colors",
			colorizer: &Colorizer{
				PathColorCode:   []byte("<p>"),
				ValueColorCodes: [5][]byte{StringValue: []byte("<s>")},
				ResetCode:       []byte("</>"),
			},
			want: "<p>a.0</>\t: <s>x</>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &LinePrinter{Writer: &out, Separator: tt.separator, Colorizer: tt.colorizer}
			p.Emit("a.0", []byte("x"), StringValue)
			if out.String() != tt.want {
				t.Errorf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestLinePrinterFlush(t *testing.T) {
	var out bytes.Buffer
	flusher := &countingFlusher{}
	sink := &LinePrinter{Writer: &out, Flusher: flusher}
	err := NewFlattener(tokenizerFor(`[1,[2]]`), sink, Options{}).Flatten()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if flusher.count != 4 {
		t.Errorf("expected 4 flushes, got %d", flusher.count)
	}
}

func TestLinePrinterPanics(t *testing.T) {
	p := &LinePrinter{Writer: failingWriter{err: syscall.EPIPE}}
	v := mtest.MustPanic(t, func() { p.Emit("", []byte("1"), NumberValue) })
	perr, ok := v.(*PrinterError)
	if !ok {
		t.Fatalf("expected *PrinterError, got %#v", v)
	}
	if !errors.Is(perr, syscall.EPIPE) {
		t.Errorf("expected EPIPE, got %s", perr.Err)
	}
}

func TestFlattenWriteError(t *testing.T) {
	err := FlattenBytes([]byte(`[1, 2]`), failingWriter{err: syscall.EPIPE}, Options{})
	var perr *PrinterError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PrinterError, got %v", err)
	}
	if !errors.Is(err, syscall.EPIPE) {
		t.Errorf("expected EPIPE, got %s", err)
	}
}

func TestCatchPrinterErrorRepanics(t *testing.T) {
	v := mtest.MustPanic(t, func() {
		var err error
		defer CatchPrinterError(&err)
		panic("boom")
	})
	if v != "boom" {
		t.Errorf("unexpected panic value %#v", v)
	}
}
