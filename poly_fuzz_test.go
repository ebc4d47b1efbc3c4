//go:build go1.18
// +build go1.18

package stepcalc_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/stepcalc"
)

func FuzzParsePolynomial(f *testing.F) {
	f.Add("3x^2 + 2x + 1")
	f.Add("-3x^2+5x-2")
	f.Add("x - x")
	f.Add("1e-3x^4 - 2E+2")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := stepcalc.ParsePolynomial(s)
		if err != nil {
			return
		}
		checkCanonical(t, p.Terms)
		if c := stepcalc.Combine(p.Terms); !reflect.DeepEqual(c, p.Terms) {
			t.Fatalf("%q: Combine not idempotent: %v -> %v", s, p.Terms, c)
		}
		q, err := stepcalc.ParsePolynomial(p.String())
		if err != nil {
			t.Fatalf("%q: rendered %q does not parse: %v", s, p.String(), err)
		}
		if !reflect.DeepEqual(q.Terms, p.Terms) {
			t.Fatalf("%q: round trip through %q: want %v, got %v", s, p.String(), p.Terms, q.Terms)
		}
	})
}
