package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/arnodel/jsonflat"
	"github.com/arnodel/jsonflat/internal/config"
	"github.com/arnodel/jsonflat/token"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling in run).
	signal.Ignore(syscall.SIGPIPE)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usage = `Usage: jsonflat [-b] [-l] [-p] [-n] [-s] [-jwcc] [-color MODE] [-config FILE] < input.json

Read a JSON document on stdin and print one line per node:

	<path>	: <value>

Paths are made of keys and array indices joined with '.'.  Children are
printed before their parent.  The root has an empty path.

Options:
`

// run executes the command and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonflat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		leafOnly         bool
		prune            bool
		brief            bool
		noHead           bool
		normalizeSolidus bool
		jwcc             bool
		colorMode        string
		configPath       string
	)
	fs.BoolVar(&leafOnly, "l", false, "only print leaf values")
	fs.BoolVar(&prune, "p", false, "prune empty values")
	fs.BoolVar(&brief, "b", false, "brief output, combines -l and -p")
	fs.BoolVar(&noHead, "n", false, "do not print the root of the document")
	fs.BoolVar(&normalizeSolidus, "s", false, `replace "\/" with "/" in values`)
	fs.BoolVar(&jwcc, "jwcc", false, "accept comments and trailing commas in the input")
	fs.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	fs.StringVar(&configPath, "config", "", "YAML file with default settings (default $"+config.EnvVar+")")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "jsonflat: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fatalError(stderr, "%s", err)
	}

	// Flags given explicitly override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.LeafOnly = leafOnly
		case "p":
			cfg.Prune = prune
		case "b":
			cfg.Brief = brief
		case "n":
			cfg.NoHead = noHead
		case "s":
			cfg.NormalizeSolidus = normalizeSolidus
		case "jwcc":
			cfg.JWCC = jwcc
		case "color":
			cfg.Color = colorMode
		}
	})

	// Set up stdout for handling colors
	var colorizer *jsonflat.Colorizer
	isTerminal := false
	if f, ok := stdout.(*os.File); ok {
		isTerminal = isatty.IsTerminal(f.Fd())
	}
	switch cfg.Color {
	case "always":
		colorizer = &defaultColorizer
	case "never":
	case "auto", "":
		if isTerminal {
			colorizer = &defaultColorizer
		}
	default:
		return fatalError(stderr, "invalid -color value: %q (use auto, always, or never)", cfg.Color)
	}
	if f, ok := stdout.(*os.File); ok && colorizer != nil {
		stdout = colorable.NewColorable(f)
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return fatalError(stderr, "unable to read input: %s", err)
	}
	if cfg.JWCC {
		input, err = hujson.Standardize(input)
		if err != nil {
			return fatalError(stderr, "%s", err)
		}
	}

	out := bufio.NewWriter(stdout)
	printer := &jsonflat.LinePrinter{
		Writer:    out,
		Colorizer: colorizer,
	}

	// If we are writing to a terminal, flush after each line so user gets feedback early.
	if isTerminal {
		printer.Flusher = out
	}

	flattener := jsonflat.NewFlattener(token.NewTokenizer(input), printer, cfg.Options())
	err = flattener.Flatten()
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = flushErr
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return 0
		}
		return fatalError(stderr, "%s", err)
	}
	return 0
}

func fatalError(stderr io.Writer, msg string, args ...interface{}) int {
	fmt.Fprintf(stderr, "jsonflat: "+msg+"\n", args...)
	return 1
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow   = []byte("\033[33m")
	White    = []byte("\033[37m")
	Green    = []byte("\033[32m")
	Cyan     = []byte("\033[36m")
	DimWhite = []byte("\033[37;2m")

	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = jsonflat.Colorizer{
	PathColorCode: BrightBlue,
	ValueColorCodes: [5][]byte{
		jsonflat.NullValue:      DimWhite,
		jsonflat.BooleanValue:   Yellow,
		jsonflat.NumberValue:    White,
		jsonflat.StringValue:    Green,
		jsonflat.ContainerValue: Cyan,
	},
	ResetCode: Reset,
}
