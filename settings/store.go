// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/system"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Memory is an in-memory [Store] that is not persisted.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns a new [Memory] store with the given initial values.
func NewMemory(values map[string]string) *Memory {
	m := &Memory{values: make(map[string]string, len(values))}
	maps.Copy(m.values, values)
	return m
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

// File is a [Store] saved as a TOML file. Every call to
// [File.Set] saves the file.
type File struct {

	// Filename is the full path of the TOML file.
	Filename string

	mu     sync.RWMutex
	values map[string]string
}

// OpenFile opens the settings stored in the given TOML file.
// It is okay for the file to not exist yet; it is created
// on the first [File.Set].
func OpenFile(filename string) (*File, error) {
	f := &File{Filename: filename, values: map[string]string{}}
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, err
	}
	if err := toml.Unmarshal(b, &f.values); err != nil {
		return f, errors.Errorf("settings.OpenFile: parsing %q: %w", filename, err)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.save()
}

// save must be called with the lock held.
func (f *File) save() error {
	b, err := toml.Marshal(f.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Filename), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.Filename, b, 0644)
}

// DataDir returns the directory in which the settings of the named
// app are stored on the given platform, inside the user's home directory.
func DataDir(p system.Platforms, appName string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	switch p {
	case system.MacOS:
		return filepath.Join(home, "Library", appName), nil
	case system.Windows:
		return filepath.Join(home, "AppData", "Roaming", appName), nil
	default:
		return filepath.Join(home, ".config", appName), nil
	}
}

// DefaultFilename returns the default settings file for the named app
// on the current platform.
func DefaultFilename(appName string) (string, error) {
	dir, err := DataDir(system.CurrentPlatform(), appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}
