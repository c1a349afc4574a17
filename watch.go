// File: watch.go
// Title: CCL File Watching Implementation
// Description: Implements polling-based file watching for CCL documents to
//              support hot-reloading of configuration files. Re-parses the
//              file when its modification time changes and notifies
//              registered change handlers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation of file watching

package ccl

import (
	"os"
	"sync"
	"time"

	"github.com/msto63/ccl/ast"
	cclerror "github.com/msto63/ccl/core/error"
	ccllog "github.com/msto63/ccl/core/log"
	cclstringx "github.com/msto63/ccl/utils/stringx"
)

// DefaultWatchInterval is the default polling interval for file watching
const DefaultWatchInterval = 1 * time.Second

// ChangeHandler is called after a watched file was re-parsed successfully.
// Handlers run on their own goroutine and must not retain the documents
// beyond the call if they mutate them.
type ChangeHandler func(old, new *ast.Document)

// Watcher monitors a CCL file and re-parses it on modification.
// Watching is polling-based: the file's modification time is checked at a
// fixed interval. A file that fails to parse keeps the previous document
// and the watcher stays active.
type Watcher struct {
	engine   *Engine
	path     string
	interval time.Duration
	logger   *ccllog.Logger

	mu           sync.RWMutex
	watching     bool
	lastModified time.Time
	current      *ast.Document
	handlers     []ChangeHandler
	stop         chan struct{}
}

// NewWatcher creates a watcher for the given file. The file is parsed once
// immediately; a watcher is never created around an unparseable file.
// A non-positive interval selects DefaultWatchInterval.
func NewWatcher(engine *Engine, path string, interval time.Duration) (*Watcher, error) {
	if engine == nil {
		engine = defaultEngine
	}
	if cclstringx.IsBlank(path) {
		return nil, cclerror.New("file path required for watching").
			WithCode(cclerror.CodeInvalidInput).
			WithOperation("ccl.NewWatcher")
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	doc, err := engine.ParseFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, cclerror.Wrap(err, "failed to stat watched file").
			WithCode(cclerror.CodeIOError).
			WithOperation("ccl.NewWatcher").
			WithDetail("path", path)
	}

	return &Watcher{
		engine:       engine,
		path:         path,
		interval:     interval,
		logger:       engine.logger.WithField("component", "ccl-watcher"),
		lastModified: info.ModTime(),
		current:      doc,
	}, nil
}

// Watch creates and starts a watcher for the given file using the default
// engine. The returned watcher is already running; stop it with Stop.
func Watch(path string, interval time.Duration, handler ChangeHandler) (*Watcher, error) {
	w, err := NewWatcher(nil, path, interval)
	if err != nil {
		return nil, err
	}
	w.OnChange(handler)
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}

// OnChange registers a handler that is called after each successful reload
func (w *Watcher) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Document returns the most recently parsed document
func (w *Watcher) Document() *ast.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start begins watching the file in a background goroutine
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return cclerror.New("watcher already started").
			WithCode(cclerror.CodeWatchError).
			WithOperation("ccl.Watcher.Start").
			WithDetail("path", w.path)
	}
	w.watching = true
	w.stop = make(chan struct{})
	stop := w.stop
	w.mu.Unlock()

	go w.watchLoop(stop)

	w.logger.Info("watching started", ccllog.Fields{
		"path":     w.path,
		"interval": w.interval.String(),
	})

	return nil
}

// Stop stops file monitoring. It is safe to call Stop more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watching {
		return
	}
	w.watching = false
	close(w.stop)
}

// IsWatching returns whether file monitoring is active
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.watching
}

// watchLoop polls the file until the watcher is stopped
func (w *Watcher) watchLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			w.logger.Debug("watching stopped", ccllog.Fields{"path": w.path})
			return
		case <-ticker.C:
			w.checkFile()
		}
	}
}

// checkFile reloads the file if its modification time advanced
func (w *Watcher) checkFile() {
	info, err := os.Stat(w.path)
	if err != nil {
		// File may be mid-replace; keep the previous document.
		w.logger.Debug("stat failed during watch", ccllog.Fields{
			"path":  w.path,
			"error": err.Error(),
		})
		return
	}

	w.mu.RLock()
	lastModified := w.lastModified
	w.mu.RUnlock()

	if !info.ModTime().After(lastModified) {
		return
	}

	if err := w.reload(info.ModTime()); err != nil {
		w.logger.WarnWithErr("reload failed, keeping previous document", err, ccllog.Fields{
			"path": w.path,
		})
	}
}

// reload re-parses the file and notifies handlers
func (w *Watcher) reload(modTime time.Time) error {
	doc, err := w.engine.ParseFile(w.path)
	if err != nil {
		// Remember the mod time so a broken save is not re-parsed every tick.
		w.mu.Lock()
		w.lastModified = modTime
		w.mu.Unlock()
		return err
	}

	w.mu.Lock()
	old := w.current
	w.current = doc
	w.lastModified = modTime
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	w.logger.Info("document reloaded", ccllog.Fields{
		"path":           w.path,
		"root_variables": len(doc.RootVariables),
		"categories":     len(doc.Categories),
	})

	for _, handler := range handlers {
		go handler(old, doc)
	}

	return nil
}
