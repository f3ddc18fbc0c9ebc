package markdown

import "encoding/json"

type jsonNode struct {
	Type     string      `json:"type"`
	Level    *int        `json:"level,omitempty"`
	Value    *string     `json:"value,omitempty"`
	Nodes    []*jsonNode `json:"nodes,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
	Position jsonSpan    `json:"position"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{Kind: t.Kind.String(), Value: t.Value, Line: t.Line})
}

func (n Header) MarshalJSON() ([]byte, error)        { return json.Marshal(toJSON(n)) }
func (n Paragraph) MarshalJSON() ([]byte, error)     { return json.Marshal(toJSON(n)) }
func (n UnorderedList) MarshalJSON() ([]byte, error) { return json.Marshal(toJSON(n)) }
func (n Text) MarshalJSON() ([]byte, error)          { return json.Marshal(toJSON(n)) }
func (n Italic) MarshalJSON() ([]byte, error)        { return json.Marshal(toJSON(n)) }
func (n Bold) MarshalJSON() ([]byte, error)          { return json.Marshal(toJSON(n)) }
func (n Whitespace) MarshalJSON() ([]byte, error)    { return json.Marshal(toJSON(n)) }
func (n EndOfLine) MarshalJSON() ([]byte, error)     { return json.Marshal(toJSON(n)) }

// MarshalNodes encodes a root-level node sequence as a JSON array.
func MarshalNodes(nodes []Node) ([]byte, error) {
	out := nodesToJSON(nodes)
	if out == nil {
		out = []*jsonNode{}
	}
	return json.Marshal(out)
}

func toJSON(n Node) *jsonNode {
	span := n.Position()
	jn := &jsonNode{
		Type:     KindOf(n),
		Position: jsonSpan{Start: span.Start, End: span.End},
	}

	switch n := n.(type) {
	case Header:
		jn.Level = intPtr(n.Level)
		jn.Nodes = nodesToJSON(n.Nodes)
	case UnorderedList:
		jn.Level = intPtr(n.Level)
		jn.Nodes = nodesToJSON(n.Nodes)
		jn.Children = nodesToJSON(n.Children)
	case Text:
		jn.Value = &n.Value
	default:
		jn.Nodes = nodesToJSON(Children(n))
	}

	return jn
}

func nodesToJSON(nodes []Node) []*jsonNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*jsonNode, len(nodes))
	for i, n := range nodes {
		out[i] = toJSON(n)
	}
	return out
}

func intPtr(i int) *int {
	return &i
}
