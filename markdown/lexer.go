package markdown

import "unicode"

// Tokenize splits text into line-numbered tokens. It never fails.
//
// The token values do not reproduce the input byte for byte: the space after
// a "- " list marker is absorbed into the marker, and tabs or carriage
// returns that do not sit inside a text run are dropped. Input is read as
// UTF-8; each invalid byte becomes U+FFFD in the text it belongs to.
func Tokenize(text string) []Token {
	l := &lexer{
		cursor: newCharCursor(text),
		line:   1,
	}
	l.run()
	return l.tokens
}

type lexer struct {
	cursor *charCursor
	tokens []Token
	line   int
}

func (l *lexer) emit(kind TokenKind, value string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Line: l.line})
}

func (l *lexer) run() {
	for {
		ch, ok := l.cursor.advance()
		if !ok {
			return
		}

		switch ch {
		case '\n':
			l.emit(TokenEOL, "\n")
			l.line++
		case ' ':
			l.emit(TokenWhitespace, " ")
		case '-':
			l.scanDash()
		case '*':
			l.scanStar()
		default:
			if kind, ok := LookupPunctuation(ch); ok {
				l.emit(kind, string(ch))
				continue
			}
			l.scanText()
		}
	}
}

func (l *lexer) scanDash() {
	if next, ok := l.cursor.peek(); ok && unicode.IsSpace(next) {
		l.cursor.advance()
		l.emit(TokenUnorderedList, "- ")
		return
	}
	l.scanText()
}

// scanStar collapses "**" into a single Bold token by rewriting the Italic
// emitted for the first star. Pairing is local, so "***" yields Bold then
// Italic, and "****" yields two Bold tokens.
func (l *lexer) scanStar() {
	if prev, ok := l.cursor.lookBack(2); ok && prev == '*' {
		last := len(l.tokens) - 1
		if last >= 0 && l.tokens[last].Kind == TokenItalic {
			l.tokens[last] = Token{Kind: TokenBold, Value: "**", Line: l.line}
			return
		}
	}
	l.emit(TokenItalic, "*")
}

func (l *lexer) scanText() {
	text := l.cursor.consumeRun()
	if text == "" {
		return
	}
	l.emit(TokenText, text)
}
