// Package watcher keeps the corpus in sync with the filesystem while the
// server runs. It watches the corpus root recursively and feeds debounced
// change events into the ingester.
package watcher

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"corpus/internal/ingest"
	"corpus/pkg/logger"
)

// Options configure the watcher.
type Options struct {
	// Root is the corpus root directory to watch.
	Root string
	// Debounce is how long a file must be quiet before it is re-ingested.
	// Editors tend to produce bursts of writes per save.
	Debounce time.Duration
}

// Watcher observes the corpus root and applies changes through the ingester.
type Watcher struct {
	options  Options
	ingester *ingest.Ingester

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher for the given corpus root.
func New(ingester *ingest.Ingester, options Options) *Watcher {
	return &Watcher{
		options:  options,
		ingester: ingester,
		timers:   make(map[string]*time.Timer),
	}
}

// Start begins watching and blocks until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err //nolint: wrapcheck
	}
	defer func() { _ = fsw.Close() }()

	if err := w.addRecursive(fsw, w.options.Root); err != nil {
		return err
	}

	logger.Info(ctx, "watching corpus", zap.String("root", w.options.Root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watch error", zap.Error(err))
		}
	}
}

// addRecursive registers dir and all its non-hidden subdirectories.
func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error { //nolint: wrapcheck
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		return fsw.Add(p)
	})
}

// handle routes one filesystem event. New directories are added to the watch
// set; Markdown writes are debounced into re-ingestion; removes and renames
// are applied immediately.
func (w *Watcher) handle(ctx context.Context, fsw *fsnotify.Watcher, event fsnotify.Event) {
	rel, err := filepath.Rel(w.options.Root, event.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	if event.Op.Has(fsnotify.Create) {
		// a new directory must be watched before files appear inside it
		if err := w.addRecursive(fsw, event.Name); err == nil {
			logger.Debug(ctx, "watch set extended", zap.String("path", rel))
		}
	}

	ext := strings.ToLower(filepath.Ext(rel))
	if ext != ".md" && ext != ".markdown" {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		w.cancelTimer(rel)
		if err := w.ingester.Remove(ctx, rel); err != nil {
			logger.Error(ctx, "could not remove document", zap.String("path", rel), zap.Error(err))
		}
	case event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create):
		w.debounce(ctx, rel)
	}
}

// debounce schedules re-ingestion of rel after the quiet period, replacing
// any previously scheduled run for the same path.
func (w *Watcher) debounce(ctx context.Context, rel string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[rel]; ok {
		t.Stop()
	}

	w.timers[rel] = time.AfterFunc(w.options.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, rel)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if _, err := w.ingester.SyncFile(ctx, rel); err != nil {
			logger.Error(ctx, "could not ingest document", zap.String("path", rel), zap.Error(err))
		}
	})
}

func (w *Watcher) cancelTimer(rel string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[rel]; ok {
		t.Stop()
		delete(w.timers, rel)
	}
}
