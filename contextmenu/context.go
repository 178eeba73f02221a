// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contextmenu

// EditFlags are the edit capabilities of the region that was
// right clicked. Absent flags are false.
type EditFlags struct {
	CanUndo      bool `yaml:"canUndo"`
	CanRedo      bool `yaml:"canRedo"`
	CanCut       bool `yaml:"canCut"`
	CanCopy      bool `yaml:"canCopy"`
	CanPaste     bool `yaml:"canPaste"`
	CanSelectAll bool `yaml:"canSelectAll"`
}

// Context is everything the context menu is built from.
type Context struct {

	// IsEditable is whether the right clicked region is editable.
	IsEditable bool

	// SelectionText is the currently selected text.
	SelectionText string

	// MediaType is the type of the right clicked media, such as "image".
	MediaType string

	// SrcURL is the source URL of the right clicked media.
	SrcURL string

	// LinkURL is the URL of the right clicked link, if any.
	LinkURL string

	// LinkText is the text of the right clicked link.
	LinkText string

	// EditFlags are the edit capabilities of the region.
	EditFlags EditFlags

	// AvailableDictionaries are the dictionaries that can be enabled.
	AvailableDictionaries []string

	// EnabledDictionaries are the enabled dictionaries.
	EnabledDictionaries []string

	// SpellingSuggestions are the corrections of the selected text.
	// A nil slice means that there are no suggestions to show at all
	// (the selection is correct or not checked), while an empty non-nil
	// slice means that the selection is misspelled without suggestions.
	SpellingSuggestions []string
}

// Actions are the functions called by the items of the context menu.
// Nil functions are ignored.
type Actions struct {

	// ApplySuggestion replaces the misspelled selection with the suggestion.
	ApplySuggestion func(suggestion string)

	// ToggleLanguage enables or disables a dictionary.
	ToggleLanguage func(name string, checked bool)

	// LoadDictionaries lets the user choose dictionary files to install.
	LoadDictionaries func()

	// DownloadURL downloads the given URL.
	DownloadURL func(url string)

	// OpenLink opens the given URL in the system browser.
	OpenLink func(url string)

	// CopyLinkText copies the link text to the clipboard.
	CopyLinkText func(text string)

	// CopyLinkAddress copies the link URL to the clipboard,
	// with the link text as bookmark title.
	CopyLinkAddress func(url, text string)
}
