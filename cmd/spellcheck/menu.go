// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/contextmenu"
	"cogentcore.org/spellcheck/spellcheck"
	"cogentcore.org/spellcheck/system"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type MenuOptions struct {
	*GlobalOptions

	Lang      string
	Params    spellcheck.Params
	EditFlags []string
	Click     string
	Files     []string
}

func NewMenuCmd(o *MenuOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the context menu for a text input as YAML",
		Long: `Print the context menu shown when a text input or other content
is right clicked, as YAML. With --click, the item with the given label
is clicked after the menu is printed.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	f := cmd.Flags()
	f.StringVar(&o.Lang, "lang", "", "Language of the menu labels (default: locale)")
	f.BoolVar(&o.Params.IsEditable, "editable", false, "Whether the region is editable")
	f.StringVar(&o.Params.SelectionText, "selection", "", "Selected text")
	f.StringVar(&o.Params.MediaType, "media-type", "", "Type of the right clicked media, such as image")
	f.StringVar(&o.Params.SrcURL, "src-url", "", "Source URL of the right clicked media")
	f.StringVar(&o.Params.LinkURL, "link-url", "", "URL of the right clicked link")
	f.StringVar(&o.Params.LinkText, "link-text", "", "Text of the right clicked link")
	f.StringSliceVar(&o.EditFlags, "edit-flags", nil, "Edit capabilities (undo, redo, cut, copy, paste, selectall)")
	f.StringVar(&o.Click, "click", "", "Label of the menu item to click")
	f.StringSliceVar(&o.Files, "files", nil, "Files chosen in the open dialog of the browse for language item")
	return cmd
}

func (o *MenuOptions) Run() error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	p, err := o.platform()
	if err != nil {
		return err
	}
	if err := o.setEditFlags(); err != nil {
		return err
	}
	lang := o.Lang
	if lang == "" {
		lang = o.Locale
	}
	if lang == "" {
		lang = system.Locale()
	}
	h := &cliHost{out: o.Out(), platform: p, files: o.Files}
	sc := spellcheck.New(m, h, contextmenu.NewBuilder(lang, p))
	items := sc.HandleContextMenu(&o.Params)
	if h.err != nil {
		return h.err
	}
	if o.Click == "" {
		return nil
	}
	it := findItem(items, o.Click)
	if it == nil {
		return errors.Errorf("no menu item %q", o.Click)
	}
	if !contextmenu.Click(it) {
		return errors.Errorf("menu item %q cannot be clicked", o.Click)
	}
	sc.Wait()
	return nil
}

func (o *MenuOptions) setEditFlags() error {
	fl := &o.Params.EditFlags
	for _, ef := range o.EditFlags {
		switch strings.ToLower(ef) {
		case "undo":
			fl.CanUndo = true
		case "redo":
			fl.CanRedo = true
		case "cut":
			fl.CanCut = true
		case "copy":
			fl.CanCopy = true
		case "paste":
			fl.CanPaste = true
		case "selectall":
			fl.CanSelectAll = true
		default:
			return errors.Errorf("unknown edit flag %q", ef)
		}
	}
	return nil
}

// findItem returns the first item with the given label,
// ignoring mnemonics, searching submenus depth first.
func findItem(items []contextmenu.Item, label string) contextmenu.Item {
	for _, it := range items {
		switch it := it.(type) {
		case *contextmenu.Action:
			if contextmenu.StripMnemonic(it.Label) == label {
				return it
			}
		case *contextmenu.Checkbox:
			if it.Label == label {
				return it
			}
		case *contextmenu.Submenu:
			if found := findItem(it.Items, label); found != nil {
				return found
			}
		}
	}
	return nil
}

// cliHost is a [spellcheck.Host] that prints menus as YAML
// and logs everything else.
type cliHost struct {
	out      io.Writer
	platform system.Platforms
	files    []string
	err      error
}

func (h *cliHost) SetSpellCheckProvider(check func(text string) bool) {}

func (h *cliHost) ReplaceMisspelling(text string) {
	slog.Info("replace misspelling", "text", text)
}

func (h *cliHost) DownloadURL(url string) {
	slog.Info("download", "url", url)
}

func (h *cliHost) OpenExternal(url string) error {
	slog.Info("open link", "url", url)
	return nil
}

func (h *cliHost) WriteClipboard(text, bookmark string) {
	slog.Info("write clipboard", "text", text, "bookmark", bookmark)
}

func (h *cliHost) ShowOpenDialog(opts spellcheck.OpenDialogOptions) []string {
	slog.Info("open dialog", "title", opts.Title, "dir", opts.DefaultPath, "files", h.files)
	return h.files
}

func (h *cliHost) ShowErrorBox(title, content string) {
	slog.Error(title, "content", content)
}

func (h *cliHost) PopupMenu(items []contextmenu.Item) {
	enc := yaml.NewEncoder(h.out)
	enc.SetIndent(2)
	h.err = errors.Join(enc.Encode(contextmenu.Describe(items, h.platform)), enc.Close())
}
