// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionaries

import (
	"context"
	"log/slog"
	"os"

	"cogentcore.org/spellcheck/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the dictionary directory for dictionary files added by
// other programs and makes them available, until the context is done.
// It does nothing when multiple languages are not supported, since
// installed dictionaries are not used then. The optional added function
// is called with the name of each newly available dictionary.
func (m *Manager) Watch(ctx context.Context, added func(name string)) error {
	if !m.MultiLanguage() {
		<-ctx.Done()
		return nil
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(m.dir); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				m.watchUpdate(event.Name, added)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("spell: watching dictionaries", "dir", m.dir, "err", err)
		}
	}
}

// watchUpdate makes the dictionary of the given file available
// if it is a dictionary file that exists.
func (m *Manager) watchUpdate(path string, added func(name string)) {
	if !fsx.HasExt(path, Extensions...) {
		return
	}
	if ok, _ := fsx.FileExists(path); !ok {
		return
	}
	name := DictionaryName(path)
	if name == "" || !m.addAvailable(name) {
		return
	}
	slog.Info("spell: new dictionary available", "dictionary", name)
	if added != nil {
		added(name)
	}
}
