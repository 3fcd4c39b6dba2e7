// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file when it changes.
type Watcher struct {

	// Filename is the expanded, cleaned name of the watched file.
	Filename string

	// OnChange is called with each successfully reloaded configuration,
	// on the goroutine running [Watcher.Run].
	OnChange func(c *Config)

	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the given file. The directory is watched
// rather than the file itself, so that files replaced by editors keep
// being followed. Call [Watcher.Run] to process changes.
func NewWatcher(filename string, onChange func(c *Config)) (*Watcher, error) {
	fn, err := Expand(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	if _, err := FormatFor(fn); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(fn)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Filename: fn, OnChange: onChange, watcher: fw}, nil
}

// Run processes file changes until ctx is done, then closes the
// watcher. Files that fail to load are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.Filename || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Open(w.Filename)
			if err != nil {
				slog.Error("config reload failed", "file", w.Filename, "err", err)
				continue
			}
			if w.OnChange != nil {
				w.OnChange(c)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watch failed", "file", w.Filename, "err", err)
		}
	}
}

// Watch calls onChange with the reloaded configuration each time the
// given file changes, until ctx is done. The callback runs on the
// calling goroutine, so hosts with a UI thread must hand it over.
func Watch(ctx context.Context, filename string, onChange func(c *Config)) error {
	w, err := NewWatcher(filename, onChange)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
