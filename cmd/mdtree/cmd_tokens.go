package main

import (
	"encoding/json"
	"fmt"

	"github.com/dhamidi/mdtree/format"
	"github.com/dhamidi/mdtree/markdown"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a Markdown file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tokens := markdown.Tokenize(string(data))

			switch outputFormat {
			case "line":
				if err := format.NewLineEncoder(cmd.OutOrStdout()).EncodeTokens(tokens); err != nil {
					return fmt.Errorf("encode line: %w", err)
				}
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(tokens); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s (expected line or json)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
