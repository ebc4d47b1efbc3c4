package render_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zephyrtronium/stepcalc"
	"github.com/zephyrtronium/stepcalc/render"
)

var _ = Describe("Line", func() {
	DescribeTable("formats each tag",
		func(s stepcalc.Step, want string) {
			Expect(render.Line(s)).To(Equal(want))
		},
		Entry("load",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpLoad, Arg1: "2", Result: "temp0"}, Value: 2},
			"[LOAD] 2 -> temp0"),
		Entry("add",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpAdd, Arg1: "temp0", Arg2: "temp3", Result: "temp4"}, Value: 14},
			"[ADD] temp0 + temp3 = 14 -> temp4"),
		Entry("sub",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpSub, Arg1: "temp0", Arg2: "temp1", Result: "temp2"}, Value: -1.5},
			"[SUB] temp0 - temp1 = -1.5 -> temp2"),
		Entry("div",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpDiv, Arg1: "temp0", Arg2: "temp1", Result: "temp2"}, Value: 0.25},
			"[DIV] temp0 / temp1 = 0.25 -> temp2"),
		Entry("pow",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpPow, Arg1: "x", Arg2: "2", Result: "temp0"}, Value: 4},
			"[POW] x^2 = 4 -> temp0"),
		Entry("mul by coefficient",
			stepcalc.Step{Instruction: stepcalc.Instruction{Op: stepcalc.OpMul, Arg1: "3", Arg2: "temp0", Result: "temp1"}, Value: 12},
			"[MUL] 3 * temp0 = 12 -> temp1"),
	)
})

var _ = Describe("Program", func() {
	It("lists instructions, then the trace, then the result", func() {
		p, err := stepcalc.Compile("2+3*4")
		Expect(err).NotTo(HaveOccurred())

		var b bytes.Buffer
		Expect(render.Program(&b, p, false)).To(Succeed())
		Expect(b.String()).To(Equal(strings.Join([]string{
			"Generated Instructions:",
			"LOAD 2 -> temp0",
			"LOAD 3 -> temp1",
			"LOAD 4 -> temp2",
			"MUL temp1 temp2 -> temp3",
			"ADD temp0 temp3 -> temp4",
			"",
			"Computation Steps:",
			"[LOAD] 2 -> temp0",
			"[LOAD] 3 -> temp1",
			"[LOAD] 4 -> temp2",
			"[MUL] temp1 * temp2 = 12 -> temp3",
			"[ADD] temp0 + temp3 = 14 -> temp4",
			"Result: temp4 = 14",
			"",
		}, "\n")))
	})

	It("renders a table with one row per instruction", func() {
		p, err := stepcalc.Compile("(1 + 2) / 4")
		Expect(err).NotTo(HaveOccurred())

		var b bytes.Buffer
		Expect(render.Program(&b, p, true)).To(Succeed())
		out := b.String()
		Expect(out).To(ContainSubstring("DIV"))
		Expect(out).To(ContainSubstring("0.75"))
		Expect(out).To(HaveSuffix("Result: temp4 = 0.75\n"))
	})
})

var _ = Describe("Evaluation", func() {
	It("prints the canonical form and the trace between rules", func() {
		ev, err := stepcalc.EvalPolynomial("3x^2 + 2x + 1", 2)
		Expect(err).NotTo(HaveOccurred())

		var b bytes.Buffer
		Expect(render.Evaluation(&b, ev, false)).To(Succeed())
		Expect(b.String()).To(Equal(strings.Join([]string{
			"Polynomial: 3x^2 + 2x + 1",
			"",
			"Computation Steps:",
			render.Rule,
			"[POW] x^2 = 4 -> temp0",
			"[MUL] 3 * temp0 = 12 -> temp1",
			"[POW] x^1 = 2 -> temp2",
			"[MUL] 2 * temp2 = 4 -> temp3",
			"[LOAD] 1 -> temp4",
			render.Rule,
			"Final result: 17",
			"",
		}, "\n")))
	})

	It("never emits an ADD step", func() {
		ev, err := stepcalc.EvalPolynomial("x^3 - x + 7", -1)
		Expect(err).NotTo(HaveOccurred())

		var b bytes.Buffer
		Expect(render.Lines(&b, ev.Steps)).To(Succeed())
		Expect(b.String()).NotTo(ContainSubstring("[ADD]"))
		Expect(strings.Count(b.String(), "\n")).To(Equal(5))
	})

	It("titles the table with the evaluation point", func() {
		ev, err := stepcalc.EvalPolynomial("x", 0.5)
		Expect(err).NotTo(HaveOccurred())

		out := render.Table("x = 0.5", ev.Steps).Render()
		Expect(out).To(ContainSubstring("x = 0.5"))
		Expect(out).To(ContainSubstring("POW"))
	})
})

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

var errClosed = errors.New("closed")

var _ = Describe("write errors", func() {
	It("are returned by every writer", func() {
		p, err := stepcalc.Compile("1+2")
		Expect(err).NotTo(HaveOccurred())
		ev, err := stepcalc.EvalPolynomial("x^2", 3)
		Expect(err).NotTo(HaveOccurred())

		Expect(render.Lines(failWriter{}, p.Trace())).To(MatchError(errClosed))
		Expect(render.Program(failWriter{}, p, false)).To(MatchError(errClosed))
		Expect(render.Evaluation(failWriter{}, ev, false)).To(MatchError(errClosed))
	})

	It("writes lines with the same numbers as the core", func() {
		ev, err := stepcalc.EvalPolynomial("0.1x^2", 3)
		Expect(err).NotTo(HaveOccurred())

		c := 0.1
		var b bytes.Buffer
		Expect(render.Lines(&b, ev.Steps)).To(Succeed())
		Expect(b.String()).To(Equal("[POW] x^2 = 9 -> temp0\n[MUL] 0.1 * temp0 = " +
			stepcalc.FormatNumber(c*9) + " -> temp1\n"))
	})
})
