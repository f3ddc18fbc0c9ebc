package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/mdtree/markdown"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// Workspace holds the parsed state of every Markdown file under a root
// directory. It is safe for concurrent use.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	log     commonlog.Logger
	files   map[string]*Document
	// open holds paths whose content is owned by an editor buffer.
	open map[string]bool
}

// Document is one parsed file. Documents are replaced wholesale on update and
// must not be modified by callers.
type Document struct {
	Path       string
	Content    []byte
	Tokens     []markdown.Token
	Nodes      []markdown.Node
	Recoveries []markdown.Recovery
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		log:     commonlog.GetLogger("mdtree.workspace"),
		files:   make(map[string]*Document),
		open:    make(map[string]bool),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll parses every .md file below the root, skipping hidden directories
// and files open in an editor. Files that cannot be read are logged and
// skipped.
func (w *Workspace) ScanAll() error {
	if _, err := os.Stat(w.rootDir); err != nil {
		return errors.Wrap(err, "scan workspace")
	}
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && isHidden(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdown(path) {
			return nil
		}
		if _, err := w.Reload(path); err != nil {
			w.log.Warningf("%s", err)
		}
		return nil
	})
}

// Reload reparses path from disk unless it is open in an editor, in which
// case the buffer wins and Reload reports false.
func (w *Workspace) Reload(path string) (bool, error) {
	if w.IsOpen(path) {
		return false, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "read %s", path)
	}
	doc := parseDocument(path, content, w.log)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.open[path] {
		return false, nil
	}
	w.files[path] = doc
	return true, nil
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses content and stores it under path, replacing any
// previous version.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := parseDocument(path, content, w.log)

	w.mu.Lock()
	w.files[path] = doc
	w.mu.Unlock()

	w.log.Debugf("parsed %s: %d nodes, %d recoveries", path, len(doc.Nodes), len(doc.Recoveries))
	return doc
}

func parseDocument(path string, content []byte, log commonlog.Logger) *Document {
	tokens := markdown.Tokenize(string(content))
	p := markdown.NewParser(tokens, markdown.WithFile(filepath.Base(path)), markdown.WithLogger(log))
	nodes := p.Parse()
	return &Document{
		Path:       path,
		Content:    content,
		Tokens:     tokens,
		Nodes:      nodes,
		Recoveries: p.Recoveries(),
	}
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// Open marks path as owned by an editor buffer. Until Close, disk scans
// leave its document alone.
func (w *Workspace) Open(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open[path] = true
}

func (w *Workspace) Close(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.open, path)
}

func (w *Workspace) IsOpen(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.open[path]
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the stored paths in lexical order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// IsMarkdown reports whether path names a Markdown file.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
