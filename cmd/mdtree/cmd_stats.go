package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/mdtree/markdown"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type docStats struct {
	Bytes      int
	Lines      int
	Tokens     int
	Headers    int
	Lists      int
	Paragraphs int
	Recoveries int
}

func collectStats(content []byte) docStats {
	tokens := markdown.Tokenize(string(content))
	p := markdown.NewParser(tokens)
	nodes := p.Parse()

	s := docStats{
		Bytes:      len(content),
		Tokens:     len(tokens),
		Recoveries: len(p.Recoveries()),
	}
	if len(content) > 0 {
		s.Lines = bytes.Count(content, []byte("\n"))
		if content[len(content)-1] != '\n' {
			s.Lines++
		}
	}
	markdown.Walk(nodes, func(n markdown.Node, _ int) bool {
		switch n.(type) {
		case markdown.Header:
			s.Headers++
		case markdown.UnorderedList:
			s.Lists++
		case markdown.Paragraph:
			s.Paragraphs++
		}
		return true
	})
	return s
}

func (s *docStats) add(o docStats) {
	s.Bytes += o.Bytes
	s.Lines += o.Lines
	s.Tokens += o.Tokens
	s.Headers += o.Headers
	s.Lists += o.Lists
	s.Paragraphs += o.Paragraphs
	s.Recoveries += o.Recoveries
}

func writeStats(w io.Writer, name string, s docStats) {
	fmt.Fprintf(w, "%s: %s, %s lines, %s tokens, %s headers, %s list items, %s paragraphs, %s recoveries\n",
		name,
		humanize.Bytes(uint64(s.Bytes)),
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Tokens)),
		humanize.Comma(int64(s.Headers)),
		humanize.Comma(int64(s.Lists)),
		humanize.Comma(int64(s.Paragraphs)),
		humanize.Comma(int64(s.Recoveries)),
	)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>...",
		Short: "Summarize the size and structure of Markdown files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var total docStats
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read markdown file: %w", err)
				}
				s := collectStats(data)
				writeStats(cmd.OutOrStdout(), filename, s)
				total.add(s)
			}
			if len(args) > 1 {
				writeStats(cmd.OutOrStdout(), "total", total)
			}
			return nil
		},
	}
}
