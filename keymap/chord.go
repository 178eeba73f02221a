// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"strings"

	"cogentcore.org/spellcheck/system"
)

// Chord represents the key chord of a keyboard shortcut, such as
// "Command+Shift+Z". Modifiers are specified in the order
// Shift, Control, Alt, Command. "Command" means the Command key on
// macOS and the Control key on all other platforms; use
// [Chord.OSShortcut] to resolve it for a given platform.
type Chord string

// OSShortcut returns the chord with "Command" replaced by "Control"
// on platforms other than macOS and iOS, and with modifiers
// in canonical order.
func (ch Chord) OSShortcut(p system.Platforms) Chord {
	if ch == "" {
		return ch
	}
	mods, k := ch.Decode()
	if !p.IsMac() {
		for i, m := range mods {
			if m == "Command" {
				mods[i] = "Control"
			}
		}
	}
	return Encode(mods, k)
}

// Decode splits the chord into its modifiers in canonical order
// and its key.
func (ch Chord) Decode() (mods []string, key string) {
	parts := strings.Split(string(ch), "+")
	key = parts[len(parts)-1]
	has := map[string]bool{}
	for _, p := range parts[:len(parts)-1] {
		has[p] = true
	}
	for _, m := range modifierOrder {
		if has[m] {
			mods = append(mods, m)
		}
	}
	return
}

// Encode returns a chord from the given modifiers and key,
// with duplicate modifiers removed and modifiers in canonical order.
func Encode(mods []string, key string) Chord {
	has := map[string]bool{}
	for _, m := range mods {
		has[m] = true
	}
	var b strings.Builder
	for _, m := range modifierOrder {
		if has[m] {
			b.WriteString(m)
			b.WriteByte('+')
		}
	}
	b.WriteString(key)
	return Chord(b.String())
}

// Label returns the chord formatted for display in a menu on the given platform,
// using the standard modifier symbols on macOS.
func (ch Chord) Label(p system.Platforms) string {
	ch = ch.OSShortcut(p)
	if !p.IsMac() {
		return string(ch)
	}
	mods, k := ch.Decode()
	var b strings.Builder
	for _, m := range mods {
		b.WriteString(macSymbols[m])
	}
	b.WriteString(k)
	return b.String()
}

var modifierOrder = []string{"Shift", "Control", "Alt", "Command"}

var macSymbols = map[string]string{
	"Shift":   "⇧",
	"Control": "⌃",
	"Alt":     "⌥",
	"Command": "⌘",
}
