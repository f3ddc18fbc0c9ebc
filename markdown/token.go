package markdown

type TokenKind int

const (
	TokenHeader TokenKind = iota
	TokenText
	TokenWhitespace
	TokenEOL
	TokenUnorderedList
	TokenBlockQuote
	TokenInlineCode
	TokenBold
	TokenItalic
	TokenCurlyBracketOpen
	TokenCurlyBracketClose
	TokenColon
	TokenSemicolon
	TokenSquareBracketOpen
	TokenSquareBracketClose
	TokenParenthesisOpen
	TokenParenthesisClose
	TokenExclamation

	// Reserved. Tokenize never produces these and the builder reads them as
	// free text.
	TokenCodeBlock
	TokenAnnotation
	TokenHorizontalRule
	TokenAlertStart
	TokenAlertEnd
	TokenUnknown
)

var tokenKindNames = map[TokenKind]string{
	TokenHeader:             "Header",
	TokenText:               "Text",
	TokenWhitespace:         "Whitespace",
	TokenEOL:                "EndOfLine",
	TokenUnorderedList:      "UnorderedList",
	TokenBlockQuote:         "BlockQuote",
	TokenInlineCode:         "InlineCode",
	TokenBold:               "Bold",
	TokenItalic:             "Italic",
	TokenCurlyBracketOpen:   "{",
	TokenCurlyBracketClose:  "}",
	TokenColon:              ":",
	TokenSemicolon:          ";",
	TokenSquareBracketOpen:  "[",
	TokenSquareBracketClose: "]",
	TokenParenthesisOpen:    "(",
	TokenParenthesisClose:   ")",
	TokenExclamation:        "!",
	TokenCodeBlock:          "CodeBlock",
	TokenAnnotation:         "Annotation",
	TokenHorizontalRule:     "HorizontalRule",
	TokenAlertStart:         "AlertStart",
	TokenAlertEnd:           "AlertEnd",
	TokenUnknown:            "Unknown",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a classified lexical unit. Line is the 1-based source line the
// token starts on.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

// punctuation maps the single-character markers to their kinds.
var punctuation = map[rune]TokenKind{
	'#': TokenHeader,
	'>': TokenBlockQuote,
	'`': TokenInlineCode,
	'!': TokenExclamation,
	'{': TokenCurlyBracketOpen,
	'}': TokenCurlyBracketClose,
	'[': TokenSquareBracketOpen,
	']': TokenSquareBracketClose,
	'(': TokenParenthesisOpen,
	')': TokenParenthesisClose,
	';': TokenSemicolon,
	':': TokenColon,
}

// LookupPunctuation returns the kind of a single-character marker.
func LookupPunctuation(ch rune) (TokenKind, bool) {
	kind, ok := punctuation[ch]
	return kind, ok
}
