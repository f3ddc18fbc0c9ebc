package format

import (
	"io"

	"github.com/dhamidi/mdtree/markdown"
	"github.com/k0kubun/pp"
)

// PPEncoder dumps the tree as Go values, which shows the exact variant and
// field layout a consumer of package markdown will see.
type PPEncoder struct {
	w     io.Writer
	color bool
}

func NewPPEncoder(w io.Writer, color bool) *PPEncoder {
	return &PPEncoder{w: w, color: color}
}

func (e *PPEncoder) Encode(nodes []markdown.Node) error {
	// pp only offers a package-level switch.
	pp.ColoringEnabled = e.color
	if _, err := pp.Fprint(e.w, nodes); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}
