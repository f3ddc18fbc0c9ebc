package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/mdtree/markdown"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(nodes []markdown.Node) error {
	text, err := e.MarshalText(nodes)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(nodes []markdown.Node) ([]byte, error) {
	compact, err := markdown.MarshalNodes(nodes)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
