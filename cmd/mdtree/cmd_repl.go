package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/mdtree/format"
	"github.com/dhamidi/mdtree/markdown"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".mdtree_history"
	promptMain  = "md> "
	promptCont  = "... "
)

const replHelp = `Enter Markdown, then an empty line to parse it.
Commands:
  :format <json|tree|pp>  choose the output format
  :positions              toggle line spans in tree output
  :tokens                 toggle printing the token stream
  :help                   show this help
  :quit                   leave
`

func newReplCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse Markdown interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := format.New(outputFormat, io.Discard); err != nil {
				return err
			}
			s := &replSession{out: cmd.OutOrStdout(), format: outputFormat}
			return s.run()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree, pp)")

	return cmd
}

type replSession struct {
	out       io.Writer
	format    string
	positions bool
	tokens    bool
}

func (s *replSession) run() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprint(s.out, replHelp)
	for {
		src, ok := readDocument(ln)
		if !ok {
			fmt.Fprintln(s.out)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(src, ":") {
			if s.command(src) {
				break
			}
			continue
		}
		if err := s.eval(src); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// readDocument reads lines until an empty one. A command line is returned
// on its own. ok is false once input is exhausted.
func readDocument(ln *liner.State) (src string, ok bool) {
	var lines []string
	for {
		prompt := promptMain
		if len(lines) > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), true
			}
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending document.
			return "", true
		}
		if len(lines) == 0 && strings.HasPrefix(line, ":") {
			return line, true
		}
		if line == "" {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}
}

// command runs a ':' command and reports whether the session should end.
func (s *replSession) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":positions":
		s.positions = !s.positions
		fmt.Fprintf(s.out, "positions %s\n", onOff(s.positions))
	case ":tokens":
		s.tokens = !s.tokens
		fmt.Fprintf(s.out, "tokens %s\n", onOff(s.tokens))
	case ":format":
		if len(fields) != 2 {
			fmt.Fprintf(s.out, "usage: :format <%s>\n", strings.Join(format.Names(), "|"))
			return false
		}
		if _, err := format.New(fields[1], io.Discard); err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.format = fields[1]
		fmt.Fprintf(s.out, "format %s\n", s.format)
	default:
		fmt.Fprintf(s.out, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

func (s *replSession) eval(src string) error {
	tokens := markdown.Tokenize(src)
	if s.tokens {
		if err := format.NewLineEncoder(s.out).EncodeTokens(tokens); err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
	}

	enc, err := format.New(s.format, s.out, format.WithPositions(s.positions), format.WithColor(true))
	if err != nil {
		return err
	}
	p := markdown.NewParser(tokens, markdown.WithFile("<repl>"))
	if err := enc.Encode(p.Parse()); err != nil {
		return fmt.Errorf("encode %s: %w", s.format, err)
	}
	for _, r := range p.Recoveries() {
		fmt.Fprintf(s.out, "line %d: %s\n", r.Line, r.Message())
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
