package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/mdtree/markdown"
)

// TreeEncoder prints one node per line, indented by depth.
//
//	Header level=1 [1]
//	  Paragraph [1]
//	    Text "Title" [1]
type TreeEncoder struct {
	w         io.Writer
	positions bool
}

func NewTreeEncoder(w io.Writer, positions bool) *TreeEncoder {
	return &TreeEncoder{w: w, positions: positions}
}

func (e *TreeEncoder) Encode(nodes []markdown.Node) error {
	text, err := e.MarshalText(nodes)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(nodes []markdown.Node) ([]byte, error) {
	var sb strings.Builder
	markdown.Walk(nodes, func(n markdown.Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(markdown.KindOf(n))
		switch n := n.(type) {
		case markdown.Header:
			fmt.Fprintf(&sb, " level=%d", n.Level)
		case markdown.UnorderedList:
			fmt.Fprintf(&sb, " level=%d", n.Level)
		case markdown.Text:
			fmt.Fprintf(&sb, " %q", n.Value)
		}
		if e.positions {
			sb.WriteString(" [" + n.Position().String() + "]")
		}
		sb.WriteByte('\n')
		return true
	})
	return []byte(sb.String()), nil
}
