package markdown

import "fmt"

// LineSpan is an inclusive, 1-based range of source lines.
type LineSpan struct {
	Start int
	End   int
}

func (s LineSpan) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Node is implemented by every element of the document tree. The set of
// implementations is closed; consumers switch on the concrete type.
type Node interface {
	Position() LineSpan
	node()
}

// Header is an ATX-style header. Nodes holds a single Paragraph with the
// header text.
type Header struct {
	Level int
	Nodes []Node
	Span  LineSpan
}

// Paragraph is the inline content of one source line.
type Paragraph struct {
	Nodes []Node
	Span  LineSpan
}

// UnorderedList is one list item. Nodes is the item's own inline content and
// Children holds the items nested beneath it. Level is 0 for a root item and
// otherwise the number of leading spaces before the item's marker.
type UnorderedList struct {
	Level    int
	Nodes    []Node
	Children []Node
	Span     LineSpan
}

type Text struct {
	Value string
	Span  LineSpan
}

type Italic struct {
	Nodes []Node
	Span  LineSpan
}

type Bold struct {
	Nodes []Node
	Span  LineSpan
}

type Whitespace struct {
	Span LineSpan
}

// EndOfLine marks a blank line between blocks.
type EndOfLine struct {
	Span LineSpan
}

func (n Header) Position() LineSpan        { return n.Span }
func (n Paragraph) Position() LineSpan     { return n.Span }
func (n UnorderedList) Position() LineSpan { return n.Span }
func (n Text) Position() LineSpan          { return n.Span }
func (n Italic) Position() LineSpan        { return n.Span }
func (n Bold) Position() LineSpan          { return n.Span }
func (n Whitespace) Position() LineSpan    { return n.Span }
func (n EndOfLine) Position() LineSpan     { return n.Span }

func (Header) node()        {}
func (Paragraph) node()     {}
func (UnorderedList) node() {}
func (Text) node()          {}
func (Italic) node()        {}
func (Bold) node()          {}
func (Whitespace) node()    {}
func (EndOfLine) node()     {}

// KindOf returns the variant name of n as used in serialised output.
func KindOf(n Node) string {
	switch n.(type) {
	case Header:
		return "Header"
	case Paragraph:
		return "Paragraph"
	case UnorderedList:
		return "UnorderedList"
	case Text:
		return "Text"
	case Italic:
		return "Italic"
	case Bold:
		return "Bold"
	case Whitespace:
		return "Whitespace"
	case EndOfLine:
		return "EndOfLine"
	default:
		return "Unknown"
	}
}

// Children returns every direct descendant of n. For an UnorderedList the
// inline content comes first, followed by the nested items.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Header:
		return n.Nodes
	case Paragraph:
		return n.Nodes
	case UnorderedList:
		if len(n.Children) == 0 {
			return n.Nodes
		}
		all := make([]Node, 0, len(n.Nodes)+len(n.Children))
		all = append(all, n.Nodes...)
		return append(all, n.Children...)
	case Italic:
		return n.Nodes
	case Bold:
		return n.Nodes
	default:
		return nil
	}
}

// WalkFunc is called for every node visited by Walk. depth is 0 for the
// nodes passed to Walk. Returning false skips the node's descendants.
type WalkFunc func(n Node, depth int) bool

// Walk visits nodes and their descendants depth-first, parents before
// children.
func Walk(nodes []Node, fn WalkFunc) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn WalkFunc) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(Children(n), depth+1, fn)
		}
	}
}

// PlainText concatenates the literal text beneath nodes, rendering each
// Whitespace node as a single space.
func PlainText(nodes []Node) string {
	var buf []byte
	Walk(nodes, func(n Node, _ int) bool {
		switch n := n.(type) {
		case Text:
			buf = append(buf, n.Value...)
		case Whitespace:
			buf = append(buf, ' ')
		case UnorderedList:
			buf = append(buf, PlainText(n.Nodes)...)
			return false
		}
		return true
	})
	return string(buf)
}
