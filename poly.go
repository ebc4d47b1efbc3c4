package stepcalc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Polynomial is a single-variable polynomial in canonical form.
type Polynomial struct {
	// Src is the text the polynomial was parsed from. It is kept for display
	// only.
	Src string
	// Terms holds at most one term per exponent, none with a zero
	// coefficient, in strictly descending order of exponent.
	Terms []Term
}

// ParsePolynomial parses a polynomial in x, e.g. "3x^2 + 2x + 1", and puts it
// in canonical form.
func ParsePolynomial(src string) (*Polynomial, error) {
	text := strings.TrimLeftFunc(src, unicode.IsSpace)
	lead := utf8.RuneCountInString(src) - utf8.RuneCountInString(text)
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return nil, &EmptyExpressionError{Col: lead + 1}
	}
	var terms []Term
	for _, p := range split(text, lead+1) {
		t, ok, err := parseTerm(p.text, p.col)
		if err != nil {
			return nil, err
		}
		if ok {
			terms = append(terms, t)
		}
	}
	terms = Combine(terms)
	for _, t := range terms {
		if math.IsInf(t.Coef, 0) || math.IsNaN(t.Coef) {
			// Like terms overflowed when summed.
			return nil, &NumberError{Col: lead + 1, Text: text, Kind: "coefficient"}
		}
	}
	return &Polynomial{Src: src, Terms: terms}, nil
}

// Combine sums the coefficients of terms with equal exponents, drops terms
// whose sum is zero, and sorts the rest by descending exponent. The input is
// not modified. Combining an already combined list returns an equal list.
func Combine(terms []Term) []Term {
	sums := make(map[int]float64, len(terms))
	for _, t := range terms {
		sums[t.Exp] += t.Coef
	}
	r := make([]Term, 0, len(sums))
	for e, c := range sums {
		if c != 0 {
			r = append(r, Term{Coef: c, Exp: e})
		}
	}
	sortterms(r)
	return r
}

// sortterms sorts terms by descending exponent. Exponents are unique.
func sortterms(terms []Term) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && terms[j].Exp > terms[j-1].Exp; j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
}

// String renders the polynomial, e.g. "3x^2 - x + 1". A polynomial with no
// terms renders as "0". Parsing the result gives back the same terms.
func (p *Polynomial) String() string {
	if len(p.Terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.Terms {
		switch {
		case t.Coef < 0 && i == 0:
			b.WriteByte('-')
		case t.Coef < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		c := math.Abs(t.Coef)
		if c != 1 || t.Exp == 0 {
			b.WriteString(FormatNumber(c))
		}
		if t.Exp == 0 {
			continue
		}
		b.WriteByte('x')
		if t.Exp != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(t.Exp))
		}
	}
	return b.String()
}

// Evaluation is the result of evaluating a polynomial at a point.
type Evaluation struct {
	// Poly is the evaluated polynomial.
	Poly *Polynomial
	// X is the evaluation point.
	X float64
	// Canonical is Poly rendered in canonical form.
	Canonical string
	// Steps is the computation trace. It holds only LOAD, POW, and MUL
	// steps; the term values are summed without ADD steps.
	Steps []Step
	// Value is the value of the polynomial at X.
	Value float64
}

// Eval evaluates the polynomial at x and records each step. A constant term
// is one LOAD step. Any other term is a POW step computing the power of x
// followed by a MUL step scaling it by the coefficient.
func (p *Polynomial) Eval(x float64) *Evaluation {
	ev := Evaluation{
		Poly:      p,
		X:         x,
		Canonical: p.String(),
		Steps:     make([]Step, 0, 2*len(p.Terms)),
	}
	k := 0
	for _, t := range p.Terms {
		if t.Exp == 0 {
			ev.Steps = append(ev.Steps, Step{
				Instruction: Instruction{Op: OpLoad, Arg1: FormatNumber(t.Coef), Result: tempname(k)},
				Value:       t.Coef,
			})
			ev.Value += t.Coef
			k++
			continue
		}
		pw := math.Pow(x, float64(t.Exp))
		v := t.Coef * pw
		ev.Steps = append(ev.Steps,
			Step{
				Instruction: Instruction{Op: OpPow, Arg1: "x", Arg2: strconv.Itoa(t.Exp), Result: tempname(k)},
				Value:       pw,
			},
			Step{
				Instruction: Instruction{Op: OpMul, Arg1: FormatNumber(t.Coef), Arg2: tempname(k), Result: tempname(k + 1)},
				Value:       v,
			},
		)
		ev.Value += v
		k += 2
	}
	return &ev
}

// EvalPolynomial is a shortcut to parse a polynomial and evaluate it at x.
func EvalPolynomial(src string, x float64) (*Evaluation, error) {
	p, err := ParsePolynomial(src)
	if err != nil {
		return nil, err
	}
	return p.Eval(x), nil
}
