// Package stepcalc compiles and evaluates two small expression languages and
// shows its work.
//
// Compile turns an arithmetic expression like "2 + 3*(4 - 1)" into a list of
// LOAD, ADD, SUB, MUL, and DIV instructions over temps named temp0, temp1,
// and so on. Each instruction is evaluated as it is emitted, so the compiled
// Program also holds the value of every temp. There is no unary minus: "-2"
// is a syntax error.
//
// ParsePolynomial reads a polynomial in x like "3x^2 + 2x + 1", combines like
// terms, and orders them by descending exponent. Evaluating it at a point
// records a trace of POW, MUL, and LOAD steps.
//
// Every error caused by bad input implements InputError, which gives the
// column of the problem and whether it is a syntax or semantic error.
//
package stepcalc
