package markdown

import (
	"slices"
	"strings"

	"github.com/tliron/commonlog"
)

// MaxHeaderLevel is the deepest header a run of '#' markers can open.
const MaxHeaderLevel = 6

// Option configures a Parser.
type Option func(*Parser)

// WithFile names the source in log output.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithLogger sets the logger that receives recovery messages at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser builds a document tree from a token slice by recursive descent.
// A Parser is single use and not safe for concurrent use.
type Parser struct {
	file       string
	log        commonlog.Logger
	cursor     *TokenCursor
	recoveries []Recovery
}

// NewParser returns a parser over a private copy of tokens. The copy may be
// rewritten while parsing; tokens itself is left untouched.
func NewParser(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		file:   "<input>",
		log:    commonlog.GetLogger("mdtree.markdown"),
		cursor: NewTokenCursor(slices.Clone(tokens)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build parses tokens into root-level nodes.
func Build(tokens []Token, opts ...Option) []Node {
	return NewParser(tokens, opts...).Parse()
}

// Parse tokenizes text and builds its tree.
func Parse(text string, opts ...Option) []Node {
	return Build(Tokenize(text), opts...)
}

// Recoveries lists the malformed constructs that were degraded to text
// during Parse, in source order.
func (p *Parser) Recoveries() []Recovery {
	return p.recoveries
}

func (p *Parser) record(kind RecoveryKind, line int, literal string) {
	r := Recovery{Kind: kind, Line: line, Literal: literal}
	p.recoveries = append(p.recoveries, r)
	p.log.Debugf("%s:%d: %s", p.file, line, r.Message())
}

// Parse consumes the remaining tokens and returns the root-level nodes.
func (p *Parser) Parse() []Node {
	var nodes []Node
	for {
		tok, ok := p.cursor.Current()
		if !ok {
			return nodes
		}
		switch tok.Kind {
		case TokenHeader:
			nodes = append(nodes, p.parseHeader())
		case TokenUnorderedList:
			nodes = append(nodes, p.parseUnorderedList(0))
		case TokenEOL:
			nodes = append(nodes, EndOfLine{Span: lineSpan(tok.Line)})
			p.cursor.Take()
		default:
			nodes = append(nodes, p.parseParagraph())
		}
	}
}

func (p *Parser) parseHeader() Node {
	level, line := 0, 0
	for {
		tok, ok := p.cursor.Current()
		if !ok || tok.Kind != TokenHeader {
			break
		}
		if level == 0 {
			line = tok.Line
		}
		level++
		p.cursor.Take()
	}

	marker := strings.Repeat("#", level)
	next, ok := p.cursor.Current()
	switch {
	case ok && next.Kind == TokenWhitespace && level <= MaxHeaderLevel:
		p.cursor.Take()
		body := p.parseParagraph()
		return Header{
			Level: level,
			Nodes: []Node{body},
			Span:  lineSpan(next.Line),
		}
	case ok && next.Kind == TokenText:
		// "#Header" stays one word.
		p.cursor.Overwrite(Token{Kind: TokenText, Value: marker + next.Value, Line: line})
		p.record(RecoveryHeaderFused, line, marker)
	default:
		kind := RecoveryHeaderNoSpace
		if ok && next.Kind == TokenWhitespace {
			kind = RecoveryHeaderTooDeep
		}
		p.cursor.Retreat()
		p.cursor.Overwrite(Token{Kind: TokenText, Value: marker, Line: line})
		p.record(kind, line, marker)
	}
	return p.parseParagraph()
}

// parseUnorderedList parses one list item and every item nested beneath it.
// An item on a following line is a child only when it is indented by more
// spaces than level; otherwise this frame ends and the caller decides.
func (p *Parser) parseUnorderedList(level int) UnorderedList {
	list := UnorderedList{Level: level}
	started := false

loop:
	for {
		tok, ok := p.cursor.Current()
		if !ok {
			break
		}
		switch tok.Kind {
		case TokenUnorderedList:
			if len(list.Nodes) > 0 || len(list.Children) > 0 {
				break loop
			}
			if !started {
				list.Span = lineSpan(tok.Line)
				started = true
			}
			p.cursor.Take()
		case TokenWhitespace:
			depth, isList := p.cursor.PeekListDepth()
			if !isList {
				if p.atLineStart() {
					break loop
				}
				list.Nodes = append(list.Nodes, Whitespace{Span: lineSpan(tok.Line)})
				list.Span.End = max(list.Span.End, tok.Line)
				p.cursor.Take()
				continue
			}
			if !p.nestList(&list, depth) {
				break loop
			}
		case TokenEOL:
			p.cursor.Take()
			next, ok := p.cursor.Current()
			if !ok || next.Kind != TokenWhitespace {
				break loop
			}
			depth, isList := p.cursor.PeekListDepth()
			if !isList || !p.nestList(&list, depth) {
				break loop
			}
		default:
			if p.atLineStart() {
				break loop
			}
			list.Nodes = append(list.Nodes, Text{Value: tok.Value, Span: lineSpan(tok.Line)})
			list.Span.End = max(list.Span.End, tok.Line)
			p.cursor.Take()
		}
	}
	return list
}

// nestList parses a child item indented by depth spaces, which the cursor is
// sitting on. It reports false without consuming anything when depth does not
// exceed the list's own level.
func (p *Parser) nestList(list *UnorderedList, depth int) bool {
	if depth <= list.Level {
		return false
	}
	for i := 0; i < depth; i++ {
		p.cursor.Take()
	}
	child := p.parseUnorderedList(depth)
	list.Children = append(list.Children, child)
	list.Span.End = max(list.Span.End, child.Span.End)
	return true
}

// atLineStart reports whether the cursor sits at the start of a line that a
// nested item has already inspected and declined.
func (p *Parser) atLineStart() bool {
	prev, ok := p.cursor.Previous()
	return ok && prev.Kind == TokenEOL
}

func (p *Parser) parseParagraph() Node {
	nodes := p.parseLine()
	if len(nodes) > 0 {
		return Paragraph{
			Nodes: nodes,
			Span: LineSpan{
				Start: nodes[0].Position().Start,
				End:   nodes[len(nodes)-1].Position().End,
			},
		}
	}
	// Empty header bodies land here; borrow the line of the token just read.
	line := 1
	if prev, ok := p.cursor.Previous(); ok {
		line = prev.Line
	}
	return Paragraph{Span: lineSpan(line)}
}

// parseLine converts tokens up to and including the next end of line.
func (p *Parser) parseLine() []Node {
	var nodes []Node
	for {
		tok, ok := p.cursor.Take()
		if !ok {
			return nodes
		}
		switch tok.Kind {
		case TokenEOL:
			return nodes
		case TokenItalic, TokenBold:
			nodes = append(nodes, p.parseEmphasis(tok)...)
		default:
			nodes = append(nodes, inlineNode(tok))
		}
	}
}

// parseEmphasis reads the content after an opening '*' or '**' up to its
// closing marker. Without a closing marker on the same line the opening
// marker is returned as literal text followed by the content.
func (p *Parser) parseEmphasis(open Token) []Node {
	var nodes []Node
	end := open.Line
	closed := false
	for !closed {
		tok, ok := p.cursor.Current()
		if !ok || tok.Kind == TokenEOL {
			break
		}
		p.cursor.Take()
		end = max(end, tok.Line)
		if tok.Kind == open.Kind {
			closed = true
			continue
		}
		nodes = append(nodes, inlineNode(tok))
	}

	if !closed {
		kind := RecoveryUnclosedItalic
		if open.Kind == TokenBold {
			kind = RecoveryUnclosedBold
		}
		p.record(kind, open.Line, open.Value)
		marker := Text{Value: open.Value, Span: lineSpan(open.Line)}
		return append([]Node{marker}, nodes...)
	}

	span := LineSpan{Start: open.Line, End: end}
	if open.Kind == TokenBold {
		return []Node{Bold{Nodes: nodes, Span: span}}
	}
	return []Node{Italic{Nodes: nodes, Span: span}}
}

func inlineNode(tok Token) Node {
	if tok.Kind == TokenWhitespace {
		return Whitespace{Span: lineSpan(tok.Line)}
	}
	return Text{Value: tok.Value, Span: lineSpan(tok.Line)}
}

func lineSpan(line int) LineSpan {
	return LineSpan{Start: line, End: line}
}
