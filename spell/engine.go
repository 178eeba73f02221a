// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell provides the interface to spell checking engines,
// and [Checker], a pure Go engine that uses hunspell-style
// word lists (.dic files).
package spell

// Engine is a spell checking engine. An engine has one active dictionary
// at a time, selected with [Engine.SetDictionary]; the other methods
// apply to the active dictionary. Engines are not safe for concurrent
// use: a dictionary switch and the queries that depend on it must not
// interleave with those of another goroutine.
type Engine interface {

	// AvailableDictionaries returns the names of the dictionaries
	// that are built into the engine.
	AvailableDictionaries() []string

	// SetDictionary makes the named dictionary the active one.
	// Dictionaries that are not built in are looked up in dir.
	SetDictionary(name, dir string) error

	// IsMisspelled returns whether the given text is misspelled
	// according to the active dictionary.
	IsMisspelled(text string) (bool, error)

	// Suggestions returns the corrections for the given misspelled text
	// according to the active dictionary, best first.
	Suggestions(text string) ([]string, error)
}
