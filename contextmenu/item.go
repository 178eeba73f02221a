// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contextmenu

import "cogentcore.org/spellcheck/keymap"

// Item is one item of a menu. It is one of [*Action], [*Submenu],
// [*Checkbox], or [Separator]. Items are built fresh for every menu
// and are not modified afterwards.
type Item interface {
	isItem()
}

// Action is a menu item that does something when clicked.
type Action struct {

	// Label is the translated text of the item. It may contain
	// an & before the mnemonic letter.
	Label string

	// Enabled is whether the item can be clicked.
	Enabled bool

	// Role is the standard edit function that the item performs,
	// which the host carries out itself. It is [keymap.None] for
	// items with an OnClick function.
	Role keymap.Functions

	// Accelerator is the keyboard shortcut shown for the item.
	Accelerator keymap.Chord

	// OnClick is called when the item is clicked.
	OnClick func()
}

// Submenu is a menu item that opens a nested menu.
type Submenu struct {

	// Label is the translated text of the item.
	Label string

	// Enabled is whether the submenu can be opened.
	Enabled bool

	// Items are the items of the nested menu.
	Items []Item
}

// Checkbox is a menu item with a check mark that toggles when clicked.
type Checkbox struct {

	// Label is the text of the item.
	Label string

	// Enabled is whether the item can be clicked.
	Enabled bool

	// Checked is whether the check mark is shown.
	Checked bool

	// OnClick is called with the new checked state when the item is clicked.
	OnClick func(checked bool)
}

// Separator is a line between groups of menu items.
type Separator struct{}

func (*Action) isItem()   {}
func (*Submenu) isItem()  {}
func (*Checkbox) isItem() {}
func (Separator) isItem() {}

// Click performs the action of the given item as if it was clicked,
// and returns whether it did anything. Clicking a checkbox toggles it.
// Disabled items, submenus, and separators do nothing, as do actions
// with a [Action.Role], which are performed by the host.
func Click(it Item) bool {
	switch it := it.(type) {
	case *Action:
		if !it.Enabled || it.OnClick == nil {
			return false
		}
		it.OnClick()
		return true
	case *Checkbox:
		if !it.Enabled || it.OnClick == nil {
			return false
		}
		it.OnClick(!it.Checked)
		return true
	}
	return false
}
