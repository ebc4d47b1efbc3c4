package stepcalc

import (
	"errors"
	"strconv"
)

// ErrorClass groups input errors by the stage that rejects them.
type ErrorClass int8

const (
	// Syntax errors are input that does not match the grammar.
	Syntax ErrorClass = iota + 1
	// Semantic errors are well-formed input that cannot be given a value.
	Semantic
)

func (c ErrorClass) String() string {
	switch c {
	case Syntax:
		return "syntax error"
	case Semantic:
		return "semantic error"
	default:
		return "ErrorClass(" + strconv.Itoa(int(c)) + ")"
	}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
	// Class reports whether the error is a syntax or semantic error.
	Class() ErrorClass
}

// CharError is an error indicating a character that cannot start a factor.
// It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character, or -1 if the input ended where a
	// factor was required.
	Char rune
}

func (err *CharError) Error() string {
	if err.Char == eof {
		return errpos(err.Col, "unexpected end of input")
	}
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char)+" in input")
}

func (err *CharError) Pos() int          { return err.Col }
func (err *CharError) Class() ErrorClass { return Syntax }

// BracketError is an error indicating an open parenthesis with no close
// parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position where the close parenthesis was expected.
	Col int
	// Found is the text found instead, empty at the end of the input.
	Found string
}

func (err *BracketError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "missing closing parenthesis at end of input")
	}
	return errpos(err.Col, "missing closing parenthesis before "+strconv.Quote(err.Found))
}

func (err *BracketError) Pos() int          { return err.Col }
func (err *BracketError) Class() ErrorClass { return Syntax }

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unexpected character.
	Col int
	// Text is the unparsed remainder of the input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected characters at end of input: "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int          { return err.Col }
func (err *TrailingError) Class() ErrorClass { return Syntax }

// DivisionError is an error indicating division by a value that compiled to
// zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// Divisor is the source text of the divisor.
	Divisor string
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero: divisor "+strconv.Quote(err.Divisor)+" is 0")
}

func (err *DivisionError) Pos() int          { return err.Col }
func (err *DivisionError) Class() ErrorClass { return Semantic }

// NumberError is an error indicating a numeric literal that cannot be read.
// It implements InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal.
	Text string
	// Kind is what the literal was meant to be: "number" for arithmetic
	// literals, or "constant", "coefficient", or "exponent" for polynomial
	// terms.
	Kind string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

// Class is Syntax for malformed arithmetic literals and Semantic for
// polynomial literals.
func (err *NumberError) Class() ErrorClass {
	if err.Kind == "number" {
		return Syntax
	}
	return Semantic
}

// ExponentError is an error indicating text after the variable of a
// polynomial term that does not begin with the exponent marker ^. It
// implements InputError.
type ExponentError struct {
	// Col is the position of the start of the term.
	Col int
	// Term is the term text.
	Term string
}

func (err *ExponentError) Error() string {
	return errpos(err.Col, "missing ^ before exponent in term "+strconv.Quote(err.Term))
}

func (err *ExponentError) Pos() int          { return err.Col }
func (err *ExponentError) Class() ErrorClass { return Syntax }

// EmptyExpressionError is an error indicating empty input.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int          { return err.Col }
func (err *EmptyExpressionError) Class() ErrorClass { return Semantic }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// IsSyntax reports whether err is or wraps a syntax InputError.
func IsSyntax(err error) bool {
	var ie InputError
	return errors.As(err, &ie) && ie.Class() == Syntax
}

// IsSemantic reports whether err is or wraps a semantic InputError.
func IsSemantic(err error) bool {
	var ie InputError
	return errors.As(err, &ie) && ie.Class() == Semantic
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ExponentError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
