package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// charCursor walks a UTF-8 buffer one rune at a time. pos is a byte offset
// and always sits on a rune boundary.
type charCursor struct {
	input string
	pos   int
}

func newCharCursor(input string) *charCursor {
	return &charCursor{input: input}
}

func (c *charCursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

func (c *charCursor) advance() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// lookBack returns the rune n positions before the cursor, counting decoded
// runes rather than bytes. lookBack(1) is the rune most recently advanced over.
func (c *charCursor) lookBack(n int) (rune, bool) {
	if n <= 0 {
		return 0, false
	}
	end := c.pos
	var r rune
	for i := 0; i < n; i++ {
		if end <= 0 {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeLastRuneInString(c.input[:end])
		end -= size
	}
	return r, true
}

// consumeRun reads a free-text run that began with the rune just advanced
// over. The run stops before whitespace, a newline or '*', which is left for
// the caller to read next. A run may not start on a separator.
func (c *charCursor) consumeRun() string {
	first, ok := c.lookBack(1)
	if !ok {
		return ""
	}
	if isSeparator(first) {
		return ""
	}

	var sb strings.Builder
	sb.WriteRune(first)
	for {
		r, ok := c.advance()
		if !ok {
			break
		}
		if isSeparator(r) || r == '*' {
			c.pos -= utf8.RuneLen(r)
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '\n' || unicode.IsSpace(r)
}
