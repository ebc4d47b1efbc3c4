package stepcalc

import "unicode/utf8"

// eof is the rune a cursor reports once its input is exhausted.
const eof rune = -1

// cursor scans a string one rune at a time. The zero value scans nothing.
type cursor struct {
	src string
	// off is the byte offset of the current rune.
	off int
	// col is the 1-based rune column of the current rune.
	col int
}

// peek returns the current rune, or eof at the end of the input. Invalid
// UTF-8 is reported as utf8.RuneError.
func (c *cursor) peek() rune {
	if c.off >= len(c.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// advance moves past the current rune. It does nothing at the end of the
// input.
func (c *cursor) advance() {
	if c.off >= len(c.src) {
		return
	}
	_, sz := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += sz
	c.col++
}

// skipSpace advances past spaces and tabs.
func (c *cursor) skipSpace() {
	for r := c.peek(); r == ' ' || r == '\t'; r = c.peek() {
		c.advance()
	}
}

// rest returns the unscanned input.
func (c *cursor) rest() string {
	return c.src[c.off:]
}
