// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spellcheck integrates spell checking into the text inputs of
// a host UI: it registers the spell check provider and shows the
// context menu with spelling suggestions and languages.
package spellcheck

import (
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/contextmenu"
	"cogentcore.org/spellcheck/dictionaries"
	"cogentcore.org/spellcheck/i18n"
	"github.com/jinzhu/copier"
)

// SpellCheck connects a [dictionaries.Manager] to a [Host].
type SpellCheck struct {

	// Manager manages the dictionaries and answers spelling queries.
	Manager *dictionaries.Manager

	// Host is the UI that menus and dialogs are shown in.
	Host Host

	// Menu builds the context menus.
	Menu *contextmenu.Builder

	// installs tracks the reporting of pending installations.
	installs sync.WaitGroup
}

// New returns a new [SpellCheck].
func New(m *dictionaries.Manager, host Host, menu *contextmenu.Builder) *SpellCheck {
	return &SpellCheck{Manager: m, Host: host, Menu: menu}
}

// Enable registers the spell check provider with the host.
func (sc *SpellCheck) Enable() {
	sc.Host.SetSpellCheckProvider(sc.Manager.IsCorrect)
}

// HandleContextMenu builds the context menu for the given
// event parameters, shows it, and returns it.
func (sc *SpellCheck) HandleContextMenu(params *Params) []contextmenu.Item {
	items := sc.Menu.Build(sc.MenuContext(params), sc.Actions())
	sc.Host.PopupMenu(items)
	return items
}

// MenuContext returns the context of the menu for the given event
// parameters, with the dictionaries and spelling suggestions filled in.
func (sc *SpellCheck) MenuContext(params *Params) *contextmenu.Context {
	ctx := &contextmenu.Context{}
	if params != nil {
		errors.Log(copier.Copy(ctx, params))
	}
	ctx.AvailableDictionaries = sc.Manager.AvailableDictionaries()
	ctx.EnabledDictionaries = sc.Manager.EnabledDictionaries()
	ctx.SpellingSuggestions = sc.Suggestions(params)
	return ctx
}

// Suggestions returns the spelling suggestions for the selection of the
// given event parameters. It is nil unless the region is editable and
// the trimmed selection is misspelled.
func (sc *SpellCheck) Suggestions(params *Params) []string {
	if params == nil || !params.IsEditable {
		return nil
	}
	text := strings.TrimSpace(params.SelectionText)
	if text == "" || sc.Manager.IsCorrect(text) {
		return nil
	}
	return sc.Manager.Corrections(text)
}

// Actions returns the actions of the context menu items.
func (sc *SpellCheck) Actions() *contextmenu.Actions {
	return &contextmenu.Actions{
		ApplySuggestion:  sc.Host.ReplaceMisspelling,
		ToggleLanguage:   sc.ToggleLanguage,
		LoadDictionaries: func() { sc.LoadDictionaries() },
		DownloadURL:      sc.Host.DownloadURL,
		OpenLink: func(url string) {
			errors.Log(sc.Host.OpenExternal(url))
		},
		CopyLinkText: func(text string) {
			sc.Host.WriteClipboard(text, text)
		},
		CopyLinkAddress: func(url, text string) {
			sc.Host.WriteClipboard(url, text)
		},
	}
}

// ToggleLanguage enables or disables the given dictionary and
// saves the enabled dictionaries.
func (sc *SpellCheck) ToggleLanguage(name string, checked bool) {
	errors.Log(sc.Manager.Toggle(name, checked))
}

// LoadDictionaries asks the user for dictionary files and installs them.
// An error box naming the dictionary is shown for each file that could
// not be installed. Use [SpellCheck.Wait] to wait for the installations.
func (sc *SpellCheck) LoadDictionaries() []*dictionaries.Install {
	tr := sc.Menu.Tr
	exts := make([]string, len(dictionaries.Extensions))
	for i, ext := range dictionaries.Extensions {
		exts[i] = strings.TrimPrefix(ext, ".")
	}
	paths := sc.Host.ShowOpenDialog(OpenDialogOptions{
		Title:           tr.T(i18n.OpenLanguageDictionary),
		DefaultPath:     sc.Manager.Dir(),
		Filters:         []FileFilter{{Name: tr.T(i18n.Dictionaries), Extensions: exts}},
		MultiSelections: true,
	})
	if len(paths) == 0 {
		return nil
	}
	ins := sc.Manager.InstallDictionariesFromPaths(paths)
	for _, in := range ins {
		sc.installs.Add(1)
		go func() {
			defer sc.installs.Done()
			if err := in.Wait(); err != nil {
				slog.Error("spell: installing dictionary", "dictionary", in.Name, "err", err)
				sc.Host.ShowErrorBox(tr.T(i18n.Error), tr.T(i18n.ErrorCopyingDictionary)+": "+in.Name)
			}
		}()
	}
	return ins
}

// Wait waits for all dictionary installations started by
// [SpellCheck.LoadDictionaries] to complete and be reported.
func (sc *SpellCheck) Wait() {
	sc.installs.Wait()
}
