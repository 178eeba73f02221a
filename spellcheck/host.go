// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spellcheck

import "cogentcore.org/spellcheck/contextmenu"

// Host is the UI toolkit that the spell checker is integrated into.
type Host interface {

	// SetSpellCheckProvider registers the function that the text
	// editing surface calls to check each word.
	SetSpellCheckProvider(check func(text string) bool)

	// ReplaceMisspelling replaces the misspelled word in the focused
	// text input with the given text.
	ReplaceMisspelling(text string)

	// DownloadURL starts downloading the given URL.
	DownloadURL(url string)

	// OpenExternal opens the given URL in the system browser.
	OpenExternal(url string) error

	// WriteClipboard writes the given text to the clipboard,
	// with the given bookmark title.
	WriteClipboard(text, bookmark string)

	// ShowOpenDialog shows a dialog for choosing files to open and
	// returns the chosen paths, which are empty if it was canceled.
	ShowOpenDialog(opts OpenDialogOptions) []string

	// ShowErrorBox shows a modal error message.
	ShowErrorBox(title, content string)

	// PopupMenu shows the given context menu.
	PopupMenu(items []contextmenu.Item)
}

// OpenDialogOptions are the options of [Host.ShowOpenDialog].
type OpenDialogOptions struct {

	// Title is the title of the dialog.
	Title string

	// DefaultPath is the directory that the dialog starts in.
	DefaultPath string

	// Filters restrict the files that can be chosen.
	Filters []FileFilter

	// MultiSelections is whether more than one file can be chosen.
	MultiSelections bool
}

// FileFilter is a named set of file extensions, without dots.
type FileFilter struct {
	Name       string
	Extensions []string
}

// Params are the parameters of a context menu event.
type Params struct {

	// IsEditable is whether the right clicked region is editable.
	IsEditable bool

	// SelectionText is the currently selected text.
	SelectionText string

	// MediaType is the type of the right clicked media, such as "image".
	MediaType string

	// SrcURL is the source URL of the right clicked media.
	SrcURL string

	// LinkURL is the URL of the right clicked link.
	LinkURL string

	// LinkText is the text of the right clicked link.
	LinkText string

	// EditFlags are the edit capabilities of the region.
	EditFlags contextmenu.EditFlags
}
