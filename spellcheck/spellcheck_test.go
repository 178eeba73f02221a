// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spellcheck

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cogentcore.org/spellcheck/contextmenu"
	"cogentcore.org/spellcheck/dictionaries"
	"cogentcore.org/spellcheck/keymap"
	"cogentcore.org/spellcheck/settings"
	"cogentcore.org/spellcheck/spell"
	"cogentcore.org/spellcheck/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHost is a [Host] that records what it is asked to do.
type testHost struct {
	provider  func(text string) bool
	replaced  []string
	downloads []string
	opened    []string
	clipboard [][2]string
	dialog    OpenDialogOptions
	chosen    []string
	errors    [][2]string
	menu      []contextmenu.Item
	mu        sync.Mutex
}

func (h *testHost) SetSpellCheckProvider(check func(text string) bool) { h.provider = check }
func (h *testHost) ReplaceMisspelling(text string)                    { h.replaced = append(h.replaced, text) }
func (h *testHost) DownloadURL(url string)                            { h.downloads = append(h.downloads, url) }
func (h *testHost) PopupMenu(items []contextmenu.Item)                { h.menu = items }

func (h *testHost) OpenExternal(url string) error {
	h.opened = append(h.opened, url)
	return nil
}

func (h *testHost) WriteClipboard(text, bookmark string) {
	h.clipboard = append(h.clipboard, [2]string{text, bookmark})
}

func (h *testHost) ShowOpenDialog(opts OpenDialogOptions) []string {
	h.dialog = opts
	return h.chosen
}

func (h *testHost) ShowErrorBox(title, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, [2]string{title, content})
}

func newTestSpellCheck(t *testing.T, store settings.Store) (*SpellCheck, *testHost) {
	m := dictionaries.New(spell.NewChecker(), dictionaries.Config{
		Dir:      t.TempDir(),
		Platform: system.Linux,
		Locale:   "en-US",
		Store:    store,
	})
	h := &testHost{}
	return New(m, h, contextmenu.NewBuilder("en", system.Linux)), h
}

func TestEnable(t *testing.T) {
	sc, h := newTestSpellCheck(t, nil)
	sc.Enable()
	require.NotNil(t, h.provider)
	assert.True(t, h.provider("world"))
	assert.False(t, h.provider("wrld"))
}

func TestContextMenuSuggestions(t *testing.T) {
	sc, h := newTestSpellCheck(t, nil)
	items := sc.HandleContextMenu(&Params{IsEditable: true, SelectionText: " wrld ", EditFlags: contextmenu.EditFlags{CanCut: true}})
	assert.Equal(t, items, h.menu)

	var labels []string
	for _, it := range items {
		if a, ok := it.(*contextmenu.Action); ok && a.Role == keymap.None {
			labels = append(labels, a.Label)
		}
		if _, ok := it.(contextmenu.Separator); ok {
			break
		}
	}
	assert.Contains(t, labels, "world")
	assert.LessOrEqual(t, len(labels), contextmenu.MaxSuggestions)

	first := items[0].(*contextmenu.Action)
	assert.True(t, contextmenu.Click(first))
	assert.Equal(t, []string{first.Label}, h.replaced)
}

func TestContextMenuNoSuggestions(t *testing.T) {
	sc, _ := newTestSpellCheck(t, nil)

	assert.Nil(t, sc.Suggestions(&Params{IsEditable: true, SelectionText: "hello world"}))
	assert.Nil(t, sc.Suggestions(&Params{IsEditable: false, SelectionText: "wrld"}))
	assert.Nil(t, sc.Suggestions(&Params{IsEditable: true, SelectionText: "   "}))
	assert.Nil(t, sc.Suggestions(nil))

	items := sc.HandleContextMenu(&Params{IsEditable: true, SelectionText: "hello"})
	assert.Equal(t, keymap.Undo, items[0].(*contextmenu.Action).Role)
}

func TestContextMenuContext(t *testing.T) {
	sc, _ := newTestSpellCheck(t, nil)
	ctx := sc.MenuContext(&Params{
		IsEditable: true,
		MediaType:  "image",
		SrcURL:     "https://example.com/a.png",
		LinkURL:    "https://example.com",
		LinkText:   "Example",
		EditFlags:  contextmenu.EditFlags{CanPaste: true},
	})
	assert.True(t, ctx.IsEditable)
	assert.Equal(t, "image", ctx.MediaType)
	assert.Equal(t, "https://example.com/a.png", ctx.SrcURL)
	assert.Equal(t, "https://example.com", ctx.LinkURL)
	assert.Equal(t, "Example", ctx.LinkText)
	assert.True(t, ctx.EditFlags.CanPaste)
	assert.Equal(t, []string{"en_US"}, ctx.AvailableDictionaries)
	assert.Equal(t, []string{"en_US"}, ctx.EnabledDictionaries)
	assert.Nil(t, ctx.SpellingSuggestions)
}

func TestLinkActions(t *testing.T) {
	sc, h := newTestSpellCheck(t, nil)
	act := sc.Actions()
	act.OpenLink("https://example.com")
	act.CopyLinkText("Example")
	act.CopyLinkAddress("https://example.com", "Example")
	act.DownloadURL("https://example.com/a.png")
	assert.Equal(t, []string{"https://example.com"}, h.opened)
	assert.Equal(t, []string{"https://example.com/a.png"}, h.downloads)
	assert.Equal(t, [][2]string{{"Example", "Example"}, {"https://example.com", "Example"}}, h.clipboard)
}

func TestToggleLanguage(t *testing.T) {
	st := settings.NewMemory(nil)
	sc, h := newTestSpellCheck(t, st)
	items := sc.HandleContextMenu(&Params{IsEditable: true})
	langs := items[0].(*contextmenu.Submenu)
	require.Len(t, langs.Items, 1)
	en := langs.Items[0].(*contextmenu.Checkbox)
	assert.True(t, en.Checked)

	assert.True(t, contextmenu.Click(en))
	assert.Empty(t, sc.Manager.EnabledDictionaries())
	v, ok := st.Get(settings.DictionariesKey)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	// spell checking is now off
	sc.Enable()
	assert.True(t, h.provider("wrld"))

	sc.ToggleLanguage("en_US", true)
	assert.Equal(t, []string{"en_US"}, sc.Manager.EnabledDictionaries())
	v, _ = st.Get(settings.DictionariesKey)
	assert.Equal(t, `["en_US"]`, v)
}

func TestLoadDictionaries(t *testing.T) {
	src := t.TempDir()
	good := filepath.Join(src, "fr-FR.dic")
	bad := filepath.Join(src, "de_DE.dic")
	require.NoError(t, os.WriteFile(good, []byte("2\nbonjour\nmonde\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0644))

	sc, h := newTestSpellCheck(t, nil)
	h.chosen = []string{good, bad}
	ins := sc.LoadDictionaries()
	sc.Wait()

	assert.Equal(t, "Open language dictionary", h.dialog.Title)
	assert.Equal(t, sc.Manager.Dir(), h.dialog.DefaultPath)
	assert.True(t, h.dialog.MultiSelections)
	assert.Equal(t, []FileFilter{{Name: "Dictionaries", Extensions: []string{"aff", "dic"}}}, h.dialog.Filters)

	require.Len(t, ins, 2)
	assert.NoError(t, ins[0].Wait())
	assert.Error(t, ins[1].Wait())
	assert.Equal(t, [][2]string{{"Error", "Error copying dictionary file: de_DE"}}, h.errors)
	assert.Equal(t, []string{"en_US", "fr_FR"}, sc.Manager.AvailableDictionaries())
}

func TestLoadDictionariesCanceled(t *testing.T) {
	sc, h := newTestSpellCheck(t, nil)
	assert.Nil(t, sc.LoadDictionaries())
	sc.Wait()
	assert.Empty(t, h.errors)
	assert.Equal(t, []string{"en_US"}, sc.Manager.AvailableDictionaries())
}
