// Package watch re-runs gitignore optimization whenever the watched
// file changes on disk. Events are debounced, and a content fingerprint
// skips runs when the bytes did not actually change (editors often fire
// several events per save, and gix's own writes must not retrigger it).
package watch

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	gixerrors "github.com/standardbeagle/gix/internal/errors"
	"github.com/standardbeagle/gix/internal/fileio"
)

// OnChange is invoked with the file's new contents after a debounced,
// deduplicated change.
type OnChange func(path, content string) error

// Watcher watches a single gitignore file.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange OnChange

	watcher *fsnotify.Watcher

	mu       sync.Mutex
	timer    *time.Timer
	lastHash uint64
}

// NewWatcher creates a watcher for path. The debounce duration is the
// quiet period after the last event before onChange fires.
func NewWatcher(path string, debounce time.Duration, onChange OnChange) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, gixerrors.NewFileError("watch", path, err)
	}

	w := &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		watcher:  fsw,
	}

	// Watch the directory, not the file: editors that save via rename
	// replace the inode, and a file-level watch would go stale.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, gixerrors.NewFileError("watch", path, err)
	}

	if content, err := fileio.Read(path); err == nil {
		w.lastHash = xxhash.Sum64String(content)
	}

	return w, nil
}

// Run processes events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

// fire runs after the debounce window; it re-reads the file and invokes
// the callback only when the content hash changed.
func (w *Watcher) fire() {
	content, err := fileio.Read(w.path)
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}

	hash := xxhash.Sum64String(content)

	w.mu.Lock()
	unchanged := hash == w.lastHash
	if !unchanged {
		w.lastHash = hash
	}
	w.mu.Unlock()

	if unchanged {
		return
	}

	if err := w.onChange(w.path, content); err != nil {
		log.Printf("watch: %v", err)
	}
}

// MarkWritten records a hash for content the caller wrote itself, so
// the watcher does not treat its own write as an external change.
func (w *Watcher) MarkWritten(content string) {
	w.mu.Lock()
	w.lastHash = xxhash.Sum64String(content)
	w.mu.Unlock()
}

// WriteThrough atomically writes content to the watched file and then
// records its hash, so the resulting event is not reported back. When
// the write fails nothing is recorded: a later external change to the
// same content still fires.
func (w *Watcher) WriteThrough(content string) error {
	if err := fileio.WriteAtomic(w.path, content); err != nil {
		return err
	}
	w.MarkWritten(content)
	return nil
}

func (w *Watcher) close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		log.Printf("error closing watcher: %v", err)
	}
}
