package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/mdtree/markdown"
	"github.com/dhamidi/mdtree/workspace"
	"github.com/spf13/cobra"
)

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the header and list outline of a Markdown file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			writeOutline(cmd.OutOrStdout(), workspace.Outline(markdown.Parse(string(data))), 0)
			return nil
		},
	}
}

func writeOutline(w io.Writer, symbols []*workspace.Symbol, depth int) {
	for _, s := range symbols {
		marker := "-"
		if s.Kind == workspace.SymbolHeader {
			marker = strings.Repeat("#", s.Level)
		}
		fmt.Fprintf(w, "%s%s %s [%s]\n", strings.Repeat("  ", depth), marker, s.Name, s.Span)
		writeOutline(w, s.Children, depth+1)
	}
}
