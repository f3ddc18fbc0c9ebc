package workspace

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWatcher polls the workspace root and keeps the workspace in step with
// the Markdown files on disk. Files open in an editor are skipped.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(w *Workspace, interval time.Duration) *FileWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

// Stop ends polling. It may be called more than once.
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() {
		close(fw.stopCh)
	})
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

// scan returns the paths it reparsed and the paths it removed.
func (fw *FileWatcher) scan() (changed, removed []string) {
	root := fw.workspace.RootDir()
	current := make(map[string]bool)

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && isHidden(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdown(path) {
			return nil
		}

		current[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			reloaded, err := fw.workspace.Reload(path)
			if err != nil {
				fw.workspace.log.Warningf("%s", err)
				return nil
			}
			// An open buffer is left alone and its file is looked at
			// again on the next poll.
			if !reloaded {
				return nil
			}
			fw.modTimes[path] = info.ModTime()
			changed = append(changed, path)
		}
		return nil
	})

	for path := range fw.modTimes {
		if !current[path] {
			delete(fw.modTimes, path)
			if fw.workspace.IsOpen(path) {
				continue
			}
			fw.workspace.RemoveFile(path)
			removed = append(removed, path)
		}
	}
	return changed, removed
}
