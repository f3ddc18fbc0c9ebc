package workspace

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/mdtree/markdown"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "mdtree"

// RootEnv overrides the workspace root sent by the client.
const RootEnv = "MDTREE_ROOT"

type LSPServer struct {
	workspace *Workspace
	watcher   *FileWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentFoldingRange:   ls.textDocumentFoldingRange,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if env := os.Getenv(RootEnv); env != "" {
		rootDir = env
	} else if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.workspace.ScanAll(); err != nil {
		ls.workspace.log.Warningf("%s", err)
		return nil
	}
	ls.watcher = NewFileWatcher(ls.workspace, 0)
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Open(path)
	doc := ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.UpdateFile(path, []byte(textChange.Text))
			publishDiagnostics(ctx, params.TextDocument.URI, doc)
		}
	}
	return nil
}

// textDocumentDidClose falls back to the copy on disk, dropping the document
// if it was never saved.
func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Close(path)
	if err := ls.workspace.ScanFile(path); err != nil {
		ls.workspace.RemoveFile(path)
	}
	publishDiagnostics(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.workspace.ScanFile(path); err != nil {
		ls.workspace.log.Warningf("%s", err)
		return nil
	}
	publishDiagnostics(ctx, params.TextDocument.URI, ls.workspace.GetFile(path))
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := ls.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return documentSymbols(doc), nil
}

func (ls *LSPServer) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := ls.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return foldingRanges(doc), nil
}

func (ls *LSPServer) document(uri protocol.DocumentUri) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}
	return ls.workspace.GetFile(path)
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}

// diagnostics reports every recovery as a warning spanning its line. A nil
// document yields an empty list, which clears the client's markers.
func diagnostics(doc *Document) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if doc == nil {
		return diags
	}
	severity := protocol.DiagnosticSeverityWarning
	source := lsName
	for _, r := range doc.Recoveries {
		diags = append(diags, protocol.Diagnostic{
			Range:    spanRange(doc.Content, markdown.LineSpan{Start: r.Line, End: r.Line}),
			Severity: &severity,
			Source:   &source,
			Message:  r.Message(),
		})
	}
	return diags
}

func documentSymbols(doc *Document) []protocol.DocumentSymbol {
	return toDocumentSymbols(doc.Content, Outline(doc.Nodes))
}

func toDocumentSymbols(content []byte, symbols []*Symbol) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, s := range symbols {
		kind := protocol.SymbolKindString
		if s.Kind == SymbolList {
			kind = protocol.SymbolKindArray
		}
		rng := spanRange(content, s.Span)
		out = append(out, protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           kind,
			Range:          rng,
			SelectionRange: spanRange(content, markdown.LineSpan{Start: s.Span.Start, End: s.Span.Start}),
			Children:       toDocumentSymbols(content, s.Children),
		})
	}
	return out
}

func foldingRanges(doc *Document) []protocol.FoldingRange {
	var out []protocol.FoldingRange
	for _, span := range FoldingRanges(doc.Nodes) {
		out = append(out, protocol.FoldingRange{
			StartLine: protocol.UInteger(span.Start - 1),
			EndLine:   protocol.UInteger(span.End - 1),
		})
	}
	return out
}

// spanRange converts a 1-based line span into a protocol range running from
// the start of the first line to the end of the last, measured in UTF-16
// code units.
func spanRange(content []byte, span markdown.LineSpan) protocol.Range {
	lines := strings.Split(string(content), "\n")
	end := 0
	if span.End >= 1 && span.End <= len(lines) {
		end = len(utf16.Encode([]rune(lines[span.End-1])))
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(max(span.Start-1, 0))},
		End:   protocol.Position{Line: protocol.UInteger(max(span.End-1, 0)), Character: protocol.UInteger(end)},
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
