package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/tebeka/atexit"

	"github.com/zephyrtronium/stepcalc"
	"github.com/zephyrtronium/stepcalc/render"
)

// LevelTrace logs each computation step when -v is given.
const LevelTrace slog.Level = slog.LevelInfo + 1

type options struct {
	tab bool
	// dump receives a dump of each result when non-nil.
	dump io.Writer
}

func main() {
	var (
		inname, mode, xs string
		nl, verbose, dmp bool
		opts             options
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&mode, "mode", "", `"poly" or "arith" (default: ask; required with -in or arguments)`)
	flag.StringVar(&xs, "x", "", "point at which to evaluate polynomials")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate inputs")
	flag.BoolVar(&opts.tab, "table", false, "print traces as tables")
	flag.BoolVar(&dmp, "dump", false, "dump parsed results to stderr")
	flag.BoolVar(&verbose, "v", false, "log each computation step")
	flag.Parse()
	if dmp {
		opts.dump = os.Stderr
	}

	level := slog.LevelWarn
	if verbose {
		level = LevelTrace
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	if err := checkMode(mode, inname, flag.Args()); err != nil {
		fatal(err.Error())
	}
	if mode == "" {
		atexit.Exit(interactive(bufio.NewReader(os.Stdin), out, opts))
	}

	var x float64
	switch mode {
	case "poly", "1":
		if xs == "" {
			fatal("-x is required to evaluate polynomials")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			fatal("invalid value for -x", "x", xs, "err", err)
		}
		x = v
	case "arith", "2":
	default:
		fatal("unknown mode", "mode", mode)
	}

	ins, err := inputs(inname, flag.Args(), nl)
	if err != nil {
		fatal("reading input", "err", err)
	}
	code := 0
	for _, src := range ins {
		if mode == "poly" || mode == "1" {
			err = poly(out, src, x, opts)
		} else {
			err = arith(out, src, opts)
		}
		if err != nil {
			report(out, err)
			code = 1
		}
	}
	atexit.Exit(code)
}

// arith compiles an arithmetic expression and prints its instructions and
// trace.
func arith(w io.Writer, src string, opts options) error {
	p, err := stepcalc.Compile(src)
	dump(opts.dump, p, err)
	if err != nil {
		if len(p.Instrs) > 0 {
			slog.Log(context.Background(), LevelTrace, "partial program discarded", "instructions", len(p.Instrs))
		}
		return err
	}
	trace(p.Trace())
	return render.Program(w, p, opts.tab)
}

// poly evaluates a polynomial at x and prints its trace.
func poly(w io.Writer, src string, x float64, opts options) error {
	ev, err := stepcalc.EvalPolynomial(src, x)
	dump(opts.dump, ev, err)
	if err != nil {
		return err
	}
	trace(ev.Steps)
	return render.Evaluation(w, ev, opts.tab)
}

// dump writes v to w, followed by err if compilation or evaluation failed.
// It does nothing if w is nil.
func dump(w io.Writer, v any, err error) {
	if w == nil {
		return
	}
	if err != nil {
		spew.Fdump(w, v, err)
		return
	}
	spew.Fdump(w, v)
}

func trace(steps []stepcalc.Step) {
	for _, s := range steps {
		slog.Log(context.Background(), LevelTrace, "step",
			"op", s.Op.String(), "arg1", s.Arg1, "arg2", s.Arg2, "result", s.Result, "value", s.Value)
	}
}

// report prints an input error for the user.
func report(w io.Writer, err error) {
	var ie stepcalc.InputError
	if errors.As(err, &ie) {
		fmt.Fprintf(w, "Error (%v): %v\n", ie.Class(), err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// checkMode rejects file or argument inputs without a mode. Only the
// interactive menu can ask for one.
func checkMode(mode, inname string, args []string) error {
	if mode == "" && (inname != "" || len(args) > 0) {
		return errors.New("-mode is required with -in or arguments")
	}
	return nil
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	atexit.Exit(2)
}

// inputs collects the sources to process: the input file if given, then the
// arguments. With no file and no arguments, it reads stdin. If nl is true,
// each line of a file is a separate input.
func inputs(inname string, args []string, nl bool) ([]string, error) {
	var r []string
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if f != nil {
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		if nl {
			for _, line := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(line) != "" {
					r = append(r, line)
				}
			}
		} else {
			r = append(r, string(b))
		}
	}
	return append(r, args...), nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
