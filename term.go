package stepcalc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Term is a monomial Coef·x^Exp. Exp is never negative.
type Term struct {
	Coef float64
	Exp  int
}

// piece is a term's text and the column where it starts.
type piece struct {
	text string
	col  int
}

// SplitTerms splits a polynomial into signed term strings, e.g. "-3x^2+5x-2"
// into "-3x^2", "+5x", and "-2". A + or - starts a new term unless it
// immediately follows ^ or the exponent marker of a number in scientific
// notation. Blank terms are dropped. SplitTerms does not validate the terms.
func SplitTerms(src string) []string {
	pieces := split(src, 1)
	r := make([]string, len(pieces))
	for i, p := range pieces {
		r[i] = p.text
	}
	return r
}

// split does the work of SplitTerms, recording where each piece starts. col
// is the column of the first rune of src.
func split(src string, col int) []piece {
	var (
		pieces []piece
		b      strings.Builder
		blank  = true
		start  = col
		prev   rune
	)
	flush := func() {
		if !blank {
			pieces = append(pieces, piece{text: strings.TrimSpace(b.String()), col: start})
		}
		b.Reset()
		blank = true
	}
	for _, r := range src {
		if (r == '+' || r == '-') && !blank && !strings.ContainsRune("^eE", prev) {
			flush()
		}
		if blank && !unicode.IsSpace(r) {
			blank = false
			start = col
		}
		b.WriteRune(r)
		prev = r
		col++
	}
	flush()
	return pieces
}

// ParseTerm parses one term as produced by SplitTerms. The result ok is false
// if the term is empty or has a zero coefficient, in which case it contributes
// nothing to a polynomial.
func ParseTerm(s string) (t Term, ok bool, err error) {
	return parseTerm(s, 1)
}

func parseTerm(s string, col int) (Term, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Term{}, false, nil
	}
	if s[0] == '+' || s[0] == '-' {
		// "+ 2x" from "1 + 2x"
		s = s[:1] + strings.TrimLeftFunc(s[1:], unicode.IsSpace)
	}
	if s == "x" {
		return Term{Coef: 1, Exp: 1}, true, nil
	}
	k := strings.IndexByte(s, 'x')
	if k < 0 {
		v, ok := parsefloat(s)
		if !ok {
			return Term{}, false, &NumberError{Col: col, Text: s, Kind: "constant"}
		}
		return Term{Coef: v}, v != 0, nil
	}
	t := Term{Exp: 1}
	switch coef := strings.TrimSpace(s[:k]); coef {
	case "", "+":
		t.Coef = 1
	case "-":
		t.Coef = -1
	default:
		v, ok := parsefloat(coef)
		if !ok {
			return Term{}, false, &NumberError{Col: col, Text: coef, Kind: "coefficient"}
		}
		t.Coef = v
	}
	if rest := strings.TrimSpace(s[k+1:]); rest != "" {
		if rest[0] != '^' {
			return Term{}, false, &ExponentError{Col: col, Term: s}
		}
		e := strings.TrimSpace(rest[1:])
		n, err := strconv.Atoi(e)
		if err != nil || n < 0 {
			return Term{}, false, &NumberError{Col: col, Text: e, Kind: "exponent"}
		}
		t.Exp = n
	}
	return t, t.Coef != 0, nil
}

// parsefloat parses a finite float64.
func parsefloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
