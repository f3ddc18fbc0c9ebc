package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/mdtree/markdown"
)

// LineEncoder writes one token per line as line, kind and quoted value
// separated by tabs.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) EncodeTokens(tokens []markdown.Token) error {
	text, err := e.MarshalTokens(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalTokens(tokens []markdown.Token) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%d\t%s\t%s\n", tok.Line, tok.Kind, strconv.Quote(tok.Value))
	}
	return []byte(sb.String()), nil
}
