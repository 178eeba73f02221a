// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the key-value preference storage used
// to persist the spell checking language preferences.
package settings

import (
	"encoding/json"
	"log/slog"

	"cogentcore.org/spellcheck/system"
)

// Preference keys.
const (
	// UserLanguageKey is the key of the user's interface language,
	// as a single locale string such as "en-US".
	UserLanguageKey = "userLanguage"

	// DictionariesKey is the key of the enabled spell checker dictionaries,
	// as a JSON array of dictionary names. An empty array means that
	// spell checking has been explicitly disabled.
	DictionariesKey = "spellcheckerDictionaries"
)

// Store is a string-valued key-value preference storage.
type Store interface {

	// Get returns the value for the given key and whether it is set.
	Get(key string) (string, bool)

	// Set sets the value for the given key, persisting it
	// if the store is persistent.
	Set(key, value string) error
}

// UserLanguage returns the user's configured interface language in
// normalized form (see [system.NormalizeLanguage]), or "" if it is not set.
func UserLanguage(st Store) string {
	lang, ok := st.Get(UserLanguageKey)
	if !ok {
		return ""
	}
	return system.NormalizeLanguage(lang)
}

// Dictionaries returns the persisted enabled dictionaries and whether
// a preference has been persisted at all. A persisted empty list returns
// a non-nil empty slice and true. A missing or malformed value is treated
// as no preference and returns nil and false.
func Dictionaries(st Store) ([]string, bool) {
	v, ok := st.Get(DictionariesKey)
	if !ok || v == "" {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal([]byte(v), &names); err != nil {
		slog.Warn("ignoring malformed dictionaries preference", "value", v, "err", err)
		return nil, false
	}
	if names == nil {
		return nil, false
	}
	return names, true
}

// SetDictionaries persists the given enabled dictionaries as a JSON array.
// A nil slice is saved as an empty array.
func SetDictionaries(st Store, names []string) error {
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return st.Set(DictionariesKey, string(b))
}
