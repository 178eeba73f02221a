// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dictionaries manages the spell checking dictionaries of an app:
// which are available and which are enabled, the fallback policy that
// chooses the initially enabled languages, and all queries of the
// spell checking engine.
package dictionaries

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/base/fsx"
	"cogentcore.org/spellcheck/base/slicesx"
	"cogentcore.org/spellcheck/settings"
	"cogentcore.org/spellcheck/spell"
	"cogentcore.org/spellcheck/system"
)

// Extensions are the file extensions of hunspell dictionary files.
var Extensions = []string{".aff", ".dic"}

// Config is the configuration of a [Manager].
type Config struct {

	// Dir is the directory in which dictionary files are installed.
	Dir string

	// Platform is the platform the app is running on. On [system.Windows]
	// only one dictionary can be enabled at a time.
	Platform system.Platforms

	// Locale is the locale reported by the runtime environment,
	// such as "en-US". It is normalized before use.
	Locale string

	// Store is where the user's preferences are read from and
	// the enabled dictionaries are saved to.
	Store settings.Store
}

// Manager owns the sets of available and enabled dictionaries,
// and is the only user of its [spell.Engine]. All of its methods
// are safe for concurrent use; every dictionary switch of the engine
// and the query that follows it happen under one lock.
type Manager struct {
	engine   spell.Engine
	store    settings.Store
	dir      string
	platform system.Platforms
	locale   string

	multiLanguage bool
	available     []string
	enabled       []string

	mu sync.Mutex
}

// New returns a new [Manager] for the given engine and configuration,
// with its available dictionaries loaded and its enabled dictionaries set.
func New(engine spell.Engine, cfg Config) *Manager {
	m := &Manager{
		engine:   engine,
		store:    cfg.Store,
		dir:      cfg.Dir,
		platform: cfg.Platform,
		locale:   system.NormalizeLanguage(cfg.Locale),
	}
	if m.store == nil {
		m.store = settings.NewMemory(nil)
	}
	m.LoadAvailableDictionaries()
	m.SetEnabledDictionaries()
	return m
}

// ResolveDir returns the dictionary directory of an app installed at
// the given path. When the app runs from a packed .asar archive, the
// directory is next to the archive instead of inside it.
func ResolveDir(appPath string) string {
	if strings.HasSuffix(appPath, ".asar") {
		return filepath.Join(appPath, "..", "dictionaries")
	}
	return filepath.Join(appPath, "dictionaries")
}

// DictionaryName returns the dictionary name for the given dictionary
// file name: the base name without its extension, normalized with
// [system.NormalizeLanguage].
func DictionaryName(fname string) string {
	base := filepath.Base(fname)
	return system.NormalizeLanguage(strings.TrimSuffix(base, filepath.Ext(base)))
}

// LoadAvailableDictionaries computes the available dictionaries from the
// dictionaries built into the engine and the dictionary files in the
// dictionary directory. Installed files are only used when multiple
// languages are supported, which requires built in dictionaries and
// a platform other than Windows.
func (m *Manager) LoadAvailableDictionaries() {
	embedded := m.engine.AvailableDictionaries()
	files, err := fsx.Filenames(m.dir, Extensions...)
	errors.Log(err)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.multiLanguage = len(embedded) > 0 && m.platform != system.Windows
	all := slices.Clone(embedded)
	if m.multiLanguage {
		for _, f := range files {
			all = append(all, DictionaryName(f))
		}
	}
	slices.Sort(all)
	m.available = slices.Compact(all)
	slog.Debug("spell: available dictionaries", "dictionaries", m.available, "multiLanguage", m.multiLanguage)
}

// SetEnabledDictionaries sets the enabled dictionaries from the first
// of the following that names an available dictionary:
//  1. the persisted dictionaries preference; an empty persisted list
//     means spell checking was disabled, and nothing is enabled
//  2. the user's interface language, then its primary language
//  3. the runtime locale, then its primary language
//  4. en_US
//  5. en
//
// If none is available, no dictionary is enabled, which is logged.
func (m *Manager) SetEnabledDictionaries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = nil

	if dicts, ok := settings.Dictionaries(m.store); ok {
		if len(dicts) == 0 {
			slog.Info("spell: spell checker disabled by user preference")
			return
		}
		if m.setEnabled(dicts...) {
			return
		}
	}
	var candidates []string
	for _, lang := range []string{settings.UserLanguage(m.store), m.locale} {
		if lang == "" {
			continue
		}
		candidates = append(candidates, lang)
		if pl := system.PrimaryLanguage(lang); pl != "" {
			candidates = append(candidates, pl)
		}
	}
	candidates = append(candidates, "en_US", "en")
	for _, c := range candidates {
		if m.setEnabled(c) {
			return
		}
	}
	slog.Info("spell: unable to set a language for the spell checker; spell checker is disabled")
}

// SetEnabled enables the given dictionaries that are available, in order,
// and returns whether any was enabled. When multiple languages are not
// supported, the first available one becomes the only enabled dictionary
// and the rest are not considered.
func (m *Manager) SetEnabled(names ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setEnabled(names...)
}

// setEnabled must be called with the lock held.
func (m *Manager) setEnabled(names ...string) bool {
	result := false
	for _, name := range names {
		if !slices.Contains(m.available, name) {
			continue
		}
		result = true
		if !m.multiLanguage {
			m.enabled = []string{name}
			if err := m.engine.SetDictionary(name, m.dir); err != nil {
				slog.Error("spell: setting dictionary", "dictionary", name, "err", err)
			}
			return true
		}
		if !slices.Contains(m.enabled, name) {
			m.enabled = append(m.enabled, name)
		}
	}
	return result
}

// Disable removes the given dictionary from the enabled dictionaries.
// It does nothing if the dictionary is not enabled.
func (m *Manager) Disable(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disable(name)
}

func (m *Manager) disable(name string) {
	if i := slices.Index(m.enabled, name); i >= 0 {
		m.enabled = slices.Delete(m.enabled, i, i+1)
	}
}

// Toggle enables or disables the given dictionary, as done by its
// checkbox in the context menu, and saves the enabled dictionaries.
// When multiple languages are not supported, all other dictionaries
// are disabled first.
func (m *Manager) Toggle(name string, checked bool) error {
	m.mu.Lock()
	if !m.multiLanguage {
		m.enabled = nil
	}
	if checked {
		m.setEnabled(name)
	} else {
		m.disable(name)
	}
	m.mu.Unlock()
	return m.SaveEnabledDictionaries()
}

// SaveEnabledDictionaries persists the enabled dictionaries in order.
func (m *Manager) SaveEnabledDictionaries() error {
	return settings.SetDictionaries(m.store, m.EnabledDictionaries())
}

// AvailableDictionaries returns a copy of the available dictionaries.
func (m *Manager) AvailableDictionaries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.available)
}

// EnabledDictionaries returns a copy of the enabled dictionaries, in order.
func (m *Manager) EnabledDictionaries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.enabled)
}

// MultiLanguage returns whether more than one dictionary can be enabled.
func (m *Manager) MultiLanguage() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.multiLanguage
}

// Dir returns the dictionary directory.
func (m *Manager) Dir() string {
	return m.dir
}

// addAvailable adds the given dictionary to the available dictionaries,
// keeping them sorted, and returns whether it was added.
func (m *Manager) addAvailable(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, found := slices.BinarySearch(m.available, name)
	if found {
		return false
	}
	m.available = slices.Insert(m.available, i, name)
	return true
}

// IsCorrect returns whether the given text is spelled correctly in any
// enabled dictionary. It is always true when no dictionary is enabled.
// Engine errors are logged and the text is treated as correct.
func (m *Manager) IsCorrect(text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.enabled) == 0 {
		return true
	}
	checked := false
	for _, name := range m.enabled {
		if err := m.engine.SetDictionary(name, m.dir); err != nil {
			slog.Error("spell: setting dictionary", "dictionary", name, "err", err)
			continue
		}
		bad, err := m.engine.IsMisspelled(text)
		if err != nil {
			slog.Error("spell: checking spelling", "dictionary", name, "err", err)
			return true
		}
		if !bad {
			return true
		}
		checked = true
	}
	return !checked
}

// Corrections returns the suggested corrections for the given text from
// all enabled dictionaries. The suggestions of the dictionaries that have
// any are interleaved (the first suggestion of each, then the second of
// each, and so on) with duplicates removed. The result is non-nil.
func (m *Manager) Corrections(text string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all [][]string
	for _, name := range m.enabled {
		if err := m.engine.SetDictionary(name, m.dir); err != nil {
			slog.Error("spell: setting dictionary", "dictionary", name, "err", err)
			continue
		}
		sugs, err := m.engine.Suggestions(text)
		if err != nil {
			slog.Error("spell: getting suggestions", "dictionary", name, "err", err)
			continue
		}
		all = append(all, sugs)
	}
	all = slicesx.Filter(all, func(s []string) bool { return len(s) > 0 })
	return slicesx.Unique(slicesx.Interleave(all...))
}
