package main

import (
	"github.com/dhamidi/mdtree/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Long: "Start the Language Server Protocol server on stdio.\n\n" +
			"The workspace root is taken from the client unless " + workspace.RootEnv + " is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}
