package stepcalc

import (
	"strconv"
	"strings"
)

// Op is a primitive operation in a compiled program or evaluation trace. Its
// String method returns the instruction tag, e.g. "LOAD".
type Op int8

// The line comments are the instruction tags.
const (
	OpNone Op = iota // NONE

	// result = arg1, a literal
	OpLoad // LOAD
	// result = arg1 + arg2
	OpAdd // ADD
	// result = arg1 - arg2
	OpSub // SUB
	// result = arg1 * arg2
	OpMul // MUL
	// result = arg1 / arg2
	OpDiv // DIV
	// result = arg1 ^ arg2; polynomial traces only
	OpPow // POW
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -linecomment

// Symbol returns the infix operator for a binary op, or the empty string.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return ""
	}
}

// binop gets the op for an arithmetic operator rune, or OpNone.
func binop(r rune) Op {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		return OpNone
	}
}

// Instruction is one compiled operation. Arg1 and Arg2 are temp names or
// literals; Arg2 is empty for LOAD.
type Instruction struct {
	Op     Op
	Arg1   string
	Arg2   string
	Result string
}

// String formats the instruction as e.g. "MUL temp1 temp2 -> temp3".
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	b.WriteByte(' ')
	b.WriteString(in.Arg1)
	if in.Arg2 != "" {
		b.WriteByte(' ')
		b.WriteString(in.Arg2)
	}
	b.WriteString(" -> ")
	b.WriteString(in.Result)
	return b.String()
}

// Step is one line of a computation trace: an instruction and the value it
// bound to its result.
type Step struct {
	Instruction
	Value float64
}

// Env maps temp names to their values. Each name is bound exactly once.
type Env map[string]float64

// tempname returns the name of the k-th temp.
func tempname(k int) string {
	return "temp" + strconv.Itoa(k)
}

// FormatNumber formats a value in the shortest form that parses back to it.
// It is the form used for coefficients in traces and canonical polynomials.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
