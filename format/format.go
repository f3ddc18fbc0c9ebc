// Package format encodes markdown token streams and document trees for
// display and for consumption by other tools.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/mdtree/markdown"
)

// Encoder writes a document tree to an underlying writer.
type Encoder interface {
	Encode(nodes []markdown.Node) error
}

// New returns the tree encoder registered under name.
func New(name string, w io.Writer, opts ...Option) (Encoder, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	switch name {
	case "json":
		return NewASTJSONEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w, o.positions), nil
	case "pp":
		return NewPPEncoder(w, o.color), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected json, tree, or pp)", name)
	}
}

// Names lists the formats accepted by New.
func Names() []string {
	return []string{"json", "tree", "pp"}
}

type options struct {
	positions bool
	color     bool
}

type Option func(*options)

// WithPositions adds line spans to the tree format.
func WithPositions(on bool) Option {
	return func(o *options) {
		o.positions = on
	}
}

// WithColor enables ANSI colours in the pp format.
func WithColor(on bool) Option {
	return func(o *options) {
		o.color = on
	}
}
