// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function with the reloaded [Document] whenever
// a document file changes. It is created with [Watch].
type Watcher struct {
	filename string
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

// Watch starts watching the given document file, calling fun in a
// separate goroutine with the result of [Open] every time the file is
// written or replaced. The directory of the file is watched, so that
// editors that save by renaming over the file are also seen.
// Call [Watcher.Close] to stop watching.
func Watch(filename string, fun func(doc *Document, err error)) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	if _, err := FormatOf(abs); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{filename: abs, watcher: fw}
	w.wg.Add(1)
	go w.watch(fun)
	return w, nil
}

func (w *Watcher) watch(fun func(doc *Document, err error)) {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fun(Open(w.filename))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("persist: file watcher error", "file", w.filename, "err", err)
		}
	}
}

// Filename returns the absolute name of the watched file.
func (w *Watcher) Filename() string { return w.filename }

// Close stops watching, and waits until any call of the
// watch function in progress has returned.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
