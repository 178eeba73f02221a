// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contextmenu builds the context menu of text inputs and
// other content as a tree of menu item descriptors, which the
// host displays.
package contextmenu

import (
	"slices"

	"cogentcore.org/spellcheck/i18n"
	"cogentcore.org/spellcheck/keymap"
	"cogentcore.org/spellcheck/system"
)

// MaxSuggestions is the number of spelling suggestions shown directly
// in the menu. Any remaining suggestions go in a submenu.
const MaxSuggestions = 6

// Builder builds context menus. It has no state beyond its
// configuration, so the same inputs always give the same menu.
type Builder struct {

	// Tr translates the menu labels.
	Tr *i18n.Translator

	// Platform determines the keyboard accelerators.
	Platform system.Platforms
}

// NewBuilder returns a new [Builder] with labels in the given
// language on the given platform.
func NewBuilder(lang string, p system.Platforms) *Builder {
	return &Builder{Tr: i18n.New(lang), Platform: p}
}

// Build returns the context menu for the given context, calling the
// given actions when items are clicked. Each block of items is
// followed by a separator.
func (b *Builder) Build(ctx *Context, act *Actions) []Item {
	if ctx == nil {
		ctx = &Context{}
	}
	if act == nil {
		act = &Actions{}
	}
	var items []Item
	items = b.suggestions(items, ctx, act)
	items = b.languages(items, ctx, act)
	items = b.media(items, ctx, act)
	items = b.link(items, ctx, act)
	items = b.edit(items, ctx)
	return items
}

func (b *Builder) suggestions(items []Item, ctx *Context, act *Actions) []Item {
	sugs := ctx.SpellingSuggestions
	if sugs == nil {
		return items
	}
	if len(sugs) == 0 {
		items = append(items, &Action{Label: b.Tr.T(i18n.NoSuggestions)})
		return append(items, Separator{})
	}
	n := min(len(sugs), MaxSuggestions)
	for _, s := range sugs[:n] {
		items = append(items, suggestionItem(s, act))
	}
	if len(sugs) > MaxSuggestions {
		more := &Submenu{Label: b.Tr.T(i18n.MoreSpellingSuggestions), Enabled: true}
		for _, s := range sugs[MaxSuggestions:] {
			more.Items = append(more.Items, suggestionItem(s, act))
		}
		items = append(items, more)
	}
	return append(items, Separator{})
}

func suggestionItem(s string, act *Actions) *Action {
	return &Action{Label: s, Enabled: true, OnClick: func() {
		if act.ApplySuggestion != nil {
			act.ApplySuggestion(s)
		}
	}}
}

func (b *Builder) languages(items []Item, ctx *Context, act *Actions) []Item {
	if !ctx.IsEditable || ctx.SelectionText != "" {
		return items
	}
	langs := &Submenu{Label: b.Tr.T(i18n.SpellingLanguages), Enabled: len(ctx.AvailableDictionaries) > 0}
	for _, name := range ctx.AvailableDictionaries {
		langs.Items = append(langs.Items, &Checkbox{
			Label:   name,
			Enabled: true,
			Checked: slices.Contains(ctx.EnabledDictionaries, name),
			OnClick: func(checked bool) {
				if act.ToggleLanguage != nil {
					act.ToggleLanguage(name, checked)
				}
			},
		})
	}
	browse := &Action{Label: b.Tr.T(i18n.BrowseForLanguage), Enabled: true, OnClick: func() {
		if act.LoadDictionaries != nil {
			act.LoadDictionaries()
		}
	}}
	return append(items, langs, browse, Separator{})
}

func (b *Builder) media(items []Item, ctx *Context, act *Actions) []Item {
	if ctx.MediaType != "image" {
		return items
	}
	src := ctx.SrcURL
	save := &Action{Label: b.Tr.T(i18n.SaveImageAs), Enabled: true, OnClick: func() {
		if act.DownloadURL != nil {
			act.DownloadURL(src)
		}
	}}
	return append(items, save, Separator{})
}

func (b *Builder) link(items []Item, ctx *Context, act *Actions) []Item {
	if ctx.LinkURL == "" {
		return items
	}
	url, text := ctx.LinkURL, ctx.LinkText
	open := &Action{Label: b.Tr.T(i18n.OpenLink), Enabled: true, OnClick: func() {
		if act.OpenLink != nil {
			act.OpenLink(url)
		}
	}}
	copyText := &Action{Label: b.Tr.T(i18n.CopyLinkText), Enabled: text != "", OnClick: func() {
		if act.CopyLinkText != nil {
			act.CopyLinkText(text)
		}
	}}
	copyAddress := &Action{Label: b.Tr.T(i18n.CopyLinkAddress), Enabled: true, OnClick: func() {
		if act.CopyLinkAddress != nil {
			act.CopyLinkAddress(url, text)
		}
	}}
	return append(items, open, copyText, copyAddress, Separator{})
}

func (b *Builder) edit(items []Item, ctx *Context) []Item {
	fl := ctx.EditFlags
	return append(items,
		b.editItem(keymap.Undo, i18n.Undo, fl.CanUndo),
		b.editItem(keymap.Redo, i18n.Redo, fl.CanRedo),
		Separator{},
		b.editItem(keymap.Cut, i18n.Cut, fl.CanCut),
		b.editItem(keymap.Copy, i18n.Copy, fl.CanCopy),
		b.editItem(keymap.Paste, i18n.Paste, fl.CanPaste),
		b.editItem(keymap.SelectAll, i18n.SelectAll, fl.CanSelectAll),
	)
}

func (b *Builder) editItem(kf keymap.Functions, label string, enabled bool) *Action {
	return &Action{
		Label:       b.Tr.T(label),
		Enabled:     enabled,
		Role:        kf,
		Accelerator: keymap.ChordFor(kf, b.Platform),
	}
}
