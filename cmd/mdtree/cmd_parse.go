package main

import (
	"fmt"
	"path/filepath"

	"github.com/dhamidi/mdtree/format"
	"github.com/dhamidi/mdtree/markdown"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var color bool
	var warnings bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Markdown file and dump its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			enc, err := format.New(outputFormat, cmd.OutOrStdout(),
				format.WithPositions(includePositions),
				format.WithColor(color))
			if err != nil {
				return err
			}

			p := markdown.NewParser(markdown.Tokenize(string(data)), markdown.WithFile(filepath.Base(name)))
			nodes := p.Parse()
			if err := enc.Encode(nodes); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}

			if warnings {
				for _, r := range p.Recoveries() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s\n", name, r.Line, r.Message())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree, pp)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include line spans in tree output")
	cmd.Flags().BoolVar(&color, "color", false, "colorize pp output")
	cmd.Flags().BoolVar(&warnings, "warnings", true, "report recovered syntax on stderr")

	return cmd
}
