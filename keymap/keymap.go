// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap provides the standard keyboard shortcuts
// for the edit functions offered in text input context menus.
package keymap

import "cogentcore.org/spellcheck/system"

// Functions are the edit functions that have standard
// keyboard shortcuts in a text input context menu.
type Functions int32

const (
	None Functions = iota
	Undo
	Redo
	Cut
	Copy
	Paste
	SelectAll
)

var functionNames = []string{"None", "Undo", "Redo", "Cut", "Copy", "Paste", "SelectAll"}

func (kf Functions) String() string {
	if kf < 0 || int(kf) >= len(functionNames) {
		return "None"
	}
	return functionNames[kf]
}

// standard is the chord for each function on all platforms,
// with platform exceptions in [ChordFor].
var standard = map[Functions]Chord{
	Undo:      "Command+Z",
	Redo:      "Shift+Command+Z",
	Cut:       "Command+X",
	Copy:      "Command+C",
	Paste:     "Command+V",
	SelectAll: "Command+A",
}

// ChordFor returns the key chord for the given function on the given
// platform, in the platform-independent "Command" form. Redo is
// Control+Y on Windows and Shift+Command+Z everywhere else.
func ChordFor(kf Functions, p system.Platforms) Chord {
	if kf == Redo && p == system.Windows {
		return "Control+Y"
	}
	return standard[kf]
}
