// Package render formats stepcalc results for people: one trace line per
// step with a fixed tag vocabulary, or a table.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/zephyrtronium/stepcalc"
)

// Rule separates a polynomial trace from the surrounding output.
var Rule = strings.Repeat("-", 17)

// Line formats one trace step. The tag is the step's op in brackets:
//
//	[LOAD] 2 -> temp0
//	[POW] x^2 = 4 -> temp0
//	[MUL] 3 * temp0 = 12 -> temp1
//	[ADD] temp0 + temp3 = 14 -> temp4
func Line(s stepcalc.Step) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(s.Op.String())
	b.WriteString("] ")
	switch s.Op {
	case stepcalc.OpLoad:
		b.WriteString(s.Arg1)
	case stepcalc.OpPow:
		b.WriteString(s.Arg1)
		b.WriteByte('^')
		b.WriteString(s.Arg2)
		b.WriteString(" = ")
		b.WriteString(stepcalc.FormatNumber(s.Value))
	default:
		b.WriteString(s.Arg1)
		b.WriteByte(' ')
		b.WriteString(s.Op.Symbol())
		b.WriteByte(' ')
		b.WriteString(s.Arg2)
		b.WriteString(" = ")
		b.WriteString(stepcalc.FormatNumber(s.Value))
	}
	b.WriteString(" -> ")
	b.WriteString(s.Result)
	return b.String()
}

// Lines writes one line per step.
func Lines(w io.Writer, steps []stepcalc.Step) error {
	var b strings.Builder
	lines(&b, steps)
	_, err := io.WriteString(w, b.String())
	return err
}

func lines(b *strings.Builder, steps []stepcalc.Step) {
	for _, s := range steps {
		b.WriteString(Line(s))
		b.WriteByte('\n')
	}
}

// Table lays steps out as a table with one row per step.
func Table(title string, steps []stepcalc.Step) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"#", "Op", "Arg1", "Arg2", "Result", "Value"})
	for i, s := range steps {
		t.AppendRow(table.Row{i, s.Op.String(), s.Arg1, s.Arg2, s.Result, stepcalc.FormatNumber(s.Value)})
	}
	return t
}

// Program writes the instruction listing, trace, and result of a compiled
// arithmetic expression. If tab is true, the trace is a table.
func Program(w io.Writer, p *stepcalc.Program, tab bool) error {
	var b strings.Builder
	b.WriteString("Generated Instructions:\n")
	for _, in := range p.Instrs {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	b.WriteString("\nComputation Steps:\n")
	if tab {
		b.WriteString(Table("", p.Trace()).Render())
		b.WriteByte('\n')
	} else {
		lines(&b, p.Trace())
	}
	fmt.Fprintf(&b, "Result: %s = %s\n", p.Result, stepcalc.FormatNumber(p.Value()))
	_, err := io.WriteString(w, b.String())
	return err
}

// Evaluation writes the canonical form, trace, and final value of a
// polynomial evaluation. If tab is true, the trace is a table.
func Evaluation(w io.Writer, ev *stepcalc.Evaluation, tab bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Polynomial: %s\n", ev.Canonical)
	b.WriteString("\nComputation Steps:\n")
	if tab {
		b.WriteString(Table("x = "+stepcalc.FormatNumber(ev.X), ev.Steps).Render())
		b.WriteByte('\n')
	} else {
		b.WriteString(Rule + "\n")
		lines(&b, ev.Steps)
		b.WriteString(Rule + "\n")
	}
	fmt.Fprintf(&b, "Final result: %s\n", stepcalc.FormatNumber(ev.Value))
	_, err := io.WriteString(w, b.String())
	return err
}
