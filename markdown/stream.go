package markdown

// TokenCursor is an indexable cursor over a fully materialised token slice.
// It supports lookahead, single-step backtracking and in-place replacement
// of the token under the cursor.
type TokenCursor struct {
	tokens []Token
	index  int
}

// NewTokenCursor returns a cursor on the first token. The cursor writes
// through to tokens on Overwrite.
func NewTokenCursor(tokens []Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Index is the position of the token under the cursor.
func (c *TokenCursor) Index() int {
	return c.index
}

func (c *TokenCursor) get(ix int) (Token, bool) {
	if ix < 0 || ix >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[ix], true
}

// Current returns the token under the cursor without moving.
func (c *TokenCursor) Current() (Token, bool) {
	return c.get(c.index)
}

// Take returns the token under the cursor and advances past it. At the end of
// the slice it reports false and does not move.
func (c *TokenCursor) Take() (Token, bool) {
	tok, ok := c.get(c.index)
	if ok {
		c.index++
	}
	return tok, ok
}

// Previous returns the token immediately before the cursor.
func (c *TokenCursor) Previous() (Token, bool) {
	return c.get(c.index - 1)
}

// Retreat moves the cursor one token back. Retreating from the first token is
// a programming error.
func (c *TokenCursor) Retreat() {
	if c.index == 0 {
		panic("markdown: TokenCursor.Retreat at start of input")
	}
	c.index--
}

// Overwrite replaces the token under the cursor.
func (c *TokenCursor) Overwrite(tok Token) {
	if c.index >= len(c.tokens) {
		panic("markdown: TokenCursor.Overwrite past end of input")
	}
	c.tokens[c.index] = tok
}

// PeekListDepth counts the Whitespace tokens starting at the cursor. If they
// are followed by an UnorderedList marker the count is the nesting depth of
// that marker; otherwise ok is false.
func (c *TokenCursor) PeekListDepth() (depth int, ok bool) {
	for ix := c.index; ix < len(c.tokens); ix++ {
		switch c.tokens[ix].Kind {
		case TokenWhitespace:
			depth++
		case TokenUnorderedList:
			return depth, true
		default:
			return 0, false
		}
	}
	return 0, false
}
