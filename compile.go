package stepcalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// expression := term (('+' | '-') term)*
// term       := factor (('*' | '/') factor)*
// factor     := '(' expression ')' | number
// number     := digit+ ('.' digit+)?

// Program is an arithmetic expression compiled to a list of instructions.
// Compilation also evaluates each instruction as it is emitted, so Env holds
// the value of every temp by the time Compile returns.
type Program struct {
	// Src is the source text as given to Compile.
	Src string
	// Instrs is the instruction list in emission order. Every operand is
	// bound by an earlier instruction.
	Instrs []Instruction
	// Env holds the value bound to each temp.
	Env Env
	// Result is the temp holding the value of the whole expression. It is
	// empty if compilation failed.
	Result string
}

// Value returns the value of the compiled expression, or 0 if compilation
// failed.
func (p *Program) Value() float64 {
	return p.Env[p.Result]
}

// Trace pairs each instruction with the value it bound.
func (p *Program) Trace() []Step {
	s := make([]Step, len(p.Instrs))
	for i, in := range p.Instrs {
		s[i] = Step{Instruction: in, Value: p.Env[in.Result]}
	}
	return s
}

// Compile compiles an arithmetic expression over numeric literals using + - *
// / and parentheses. There is no unary minus.
//
// On error, the returned Program holds the instructions emitted before the
// error was found. They are useful for debugging but are not a result.
func Compile(src string) (*Program, error) {
	p := &Program{Src: src, Env: make(Env)}
	text := strings.TrimLeftFunc(src, unicode.IsSpace)
	lead := utf8.RuneCountInString(src) - utf8.RuneCountInString(text)
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return p, &EmptyExpressionError{Col: lead + 1}
	}
	c := compiler{
		cur:  &cursor{src: text, col: lead + 1},
		prog: p,
	}
	r, err := c.expression()
	if err != nil {
		return p, err
	}
	c.cur.skipSpace()
	if c.cur.peek() != eof {
		return p, &TrailingError{Col: c.cur.col, Text: c.cur.rest()}
	}
	p.Result = r
	return p, nil
}

// compiler holds the state of one call to Compile.
type compiler struct {
	cur  *cursor
	prog *Program
}

// emit appends an instruction binding v to a fresh temp and returns the
// temp's name.
func (c *compiler) emit(op Op, a, b string, v float64) string {
	r := tempname(len(c.prog.Instrs))
	c.prog.Instrs = append(c.prog.Instrs, Instruction{Op: op, Arg1: a, Arg2: b, Result: r})
	c.prog.Env[r] = v
	return r
}

// binary emits a binary instruction over two bound temps.
func (c *compiler) binary(op Op, a, b string) string {
	x, y := c.prog.Env[a], c.prog.Env[b]
	var v float64
	switch op {
	case OpAdd:
		v = x + y
	case OpSub:
		v = x - y
	case OpMul:
		v = x * y
	case OpDiv:
		v = x / y
	default:
		panic("stepcalc: invalid binary op " + op.String())
	}
	return c.emit(op, a, b, v)
}

func (c *compiler) expression() (string, error) {
	left, err := c.term()
	if err != nil {
		return "", err
	}
	for {
		c.cur.skipSpace()
		op := binop(c.cur.peek())
		if op != OpAdd && op != OpSub {
			return left, nil
		}
		c.cur.advance()
		right, err := c.term()
		if err != nil {
			return "", err
		}
		left = c.binary(op, left, right)
	}
}

func (c *compiler) term() (string, error) {
	left, err := c.factor()
	if err != nil {
		return "", err
	}
	for {
		c.cur.skipSpace()
		op := binop(c.cur.peek())
		if op != OpMul && op != OpDiv {
			return left, nil
		}
		col := c.cur.col
		c.cur.advance()
		c.cur.skipSpace()
		start := c.cur.off
		right, err := c.factor()
		if err != nil {
			return "", err
		}
		// The divisor is already evaluated, so this catches 1/(2-2) as
		// well as 1/0.
		if op == OpDiv && c.prog.Env[right] == 0 {
			return "", &DivisionError{Col: col, Divisor: c.cur.src[start:c.cur.off]}
		}
		left = c.binary(op, left, right)
	}
}

func (c *compiler) factor() (string, error) {
	c.cur.skipSpace()
	switch r := c.cur.peek(); {
	case r == '(':
		c.cur.advance()
		n, err := c.expression()
		if err != nil {
			return "", err
		}
		c.cur.skipSpace()
		switch r := c.cur.peek(); r {
		case ')':
			c.cur.advance()
			return n, nil
		case eof:
			return "", &BracketError{Col: c.cur.col}
		default:
			return "", &BracketError{Col: c.cur.col, Found: string(r)}
		}
	case isdigit(r), r == '.':
		return c.number()
	default:
		return "", &CharError{Col: c.cur.col, Char: r}
	}
}

// number scans a literal and emits a LOAD for it.
func (c *compiler) number() (string, error) {
	start, col := c.cur.off, c.cur.col
	dig := c.digits()
	if c.cur.peek() == '.' {
		c.cur.advance()
		frac := c.digits()
		dig = dig && frac
	}
	text := c.cur.src[start:c.cur.off]
	if !dig {
		return "", &NumberError{Col: col, Text: text, Kind: "number"}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Only possible for literals too large for a float64.
		return "", &NumberError{Col: col, Text: text, Kind: "number"}
	}
	return c.emit(OpLoad, text, "", v), nil
}

// digits advances past a run of decimal digits and reports whether there
// were any.
func (c *compiler) digits() bool {
	ok := false
	for isdigit(c.cur.peek()) {
		c.cur.advance()
		ok = true
	}
	return ok
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}
