package workspace

import (
	"strings"

	"github.com/dhamidi/mdtree/markdown"
)

type SymbolKind int

const (
	SymbolHeader SymbolKind = iota
	SymbolList
)

func (k SymbolKind) String() string {
	if k == SymbolList {
		return "list"
	}
	return "header"
}

// Symbol is one entry of a document outline. A header symbol's span covers
// its whole section: every node up to the next header of the same or a
// shallower level.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Level    int
	Span     markdown.LineSpan
	Children []*Symbol
}

// Outline arranges the headers of a document by level and attaches each list
// item to the section it appears in.
func Outline(nodes []markdown.Node) []*Symbol {
	var roots []*Symbol
	var open []*Symbol

	extend := func(end int) {
		for _, s := range open {
			s.Span.End = max(s.Span.End, end)
		}
	}
	attach := func(s *Symbol) {
		if len(open) == 0 {
			roots = append(roots, s)
			return
		}
		parent := open[len(open)-1]
		parent.Children = append(parent.Children, s)
		extend(s.Span.End)
	}

	for _, n := range nodes {
		switch n := n.(type) {
		case markdown.Header:
			for len(open) > 0 && open[len(open)-1].Level >= n.Level {
				open = open[:len(open)-1]
			}
			s := &Symbol{
				Name:  symbolName(markdown.PlainText(n.Nodes), strings.Repeat("#", n.Level)),
				Kind:  SymbolHeader,
				Level: n.Level,
				Span:  n.Span,
			}
			attach(s)
			open = append(open, s)
		case markdown.UnorderedList:
			attach(listSymbol(n))
		case markdown.Paragraph:
			extend(n.Span.End)
		}
	}
	return roots
}

func listSymbol(list markdown.UnorderedList) *Symbol {
	s := &Symbol{
		Name:  symbolName(markdown.PlainText(list.Nodes), "-"),
		Kind:  SymbolList,
		Level: list.Level,
		Span:  list.Span,
	}
	for _, child := range list.Children {
		if child, ok := child.(markdown.UnorderedList); ok {
			s.Children = append(s.Children, listSymbol(child))
		}
	}
	return s
}

func symbolName(text, fallback string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}

// FoldingRanges returns the span of every outline symbol that covers more
// than one line, parents before children.
func FoldingRanges(nodes []markdown.Node) []markdown.LineSpan {
	var spans []markdown.LineSpan
	var visit func([]*Symbol)
	visit = func(symbols []*Symbol) {
		for _, s := range symbols {
			if s.Span.End > s.Span.Start {
				spans = append(spans, s.Span)
			}
			visit(s.Children)
		}
	}
	visit(Outline(nodes))
	return spans
}
