// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/base/fsx"
	"cogentcore.org/spellcheck/system"
)

//go:embed dicts
var embedDicts embed.FS

// MaxSuggestions is the maximum number of suggestions that
// [Checker.Suggestions] returns for one word.
const MaxSuggestions = 10

// Checker is a pure Go [Engine]. Its built in dictionaries are embedded
// word lists; other dictionaries are read from <dir>/<name>.dic (and the
// encoding declared in <dir>/<name>.aff), where the file base name may
// be any spelling of name that normalizes to it. Loaded dictionaries are cached.
type Checker struct {

	// Builtin is the file system with the built in <name>.dic files.
	Builtin fs.FS

	current string
	model   *Model
	models  map[string]*Model
	mu      sync.Mutex
}

// NewChecker returns a new [Checker] using the embedded dictionaries.
func NewChecker() *Checker {
	return &Checker{Builtin: errors.Log1(fs.Sub(embedDicts, "dicts")), models: map[string]*Model{}}
}

// AvailableDictionaries returns the names of the built in dictionaries.
func (c *Checker) AvailableDictionaries() []string {
	ents, err := fs.ReadDir(c.Builtin, ".")
	if err != nil {
		slog.Error("spell: reading built in dictionaries", "err", err)
		return nil
	}
	var names []string
	for _, e := range ents {
		if !e.IsDir() && path.Ext(e.Name()) == ".dic" {
			names = append(names, strings.TrimSuffix(e.Name(), ".dic"))
		}
	}
	slices.Sort(names)
	return names
}

// SetDictionary makes the named dictionary active, loading it if needed.
// A dictionary installed in dir takes precedence over a built in one
// with the same name.
func (c *Checker) SetDictionary(name, dir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := name
	if dir != "" {
		key = filepath.Join(dir, name)
	}
	if md, ok := c.models[key]; ok {
		c.current, c.model = name, md
		return nil
	}
	md, err := c.load(name, dir)
	if err != nil {
		return err
	}
	c.models[key] = md
	c.current, c.model = name, md
	return nil
}

// Dictionary returns the name of the active dictionary.
func (c *Checker) Dictionary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Checker) load(name, dir string) (*Model, error) {
	if dir != "" {
		if base := findDic(dir, name); base != "" {
			return loadDir(filepath.Join(dir, base+".dic"), filepath.Join(dir, base+".aff"))
		}
	}
	if ok, err := fsx.FileExistsFS(c.Builtin, name+".dic"); !ok {
		if err == nil {
			err = fs.ErrNotExist
		}
		return nil, errors.Errorf("spell: dictionary %q not found: %w", name, err)
	}
	f, err := c.Builtin.Open(name + ".dic")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ReadDic(f)
	if err != nil {
		return nil, err
	}
	return NewModel(d), nil
}

// findDic returns the base name of the .dic file in dir for the named
// dictionary, or "" if there is none. A file whose base name normalizes
// to name (such as de-DE.dic for de_DE) is used when there is no exact match.
func findDic(dir, name string) string {
	if ok, _ := fsx.FileExists(filepath.Join(dir, name+".dic")); ok {
		return name
	}
	files, err := fsx.Filenames(dir, ".dic")
	if errors.Log(err) != nil {
		return ""
	}
	for _, f := range files {
		base := strings.TrimSuffix(f, filepath.Ext(f))
		if system.NormalizeLanguage(base) == name {
			return base
		}
	}
	return ""
}

func loadDir(dicFile, affFile string) (*Model, error) {
	dic, err := os.ReadFile(dicFile)
	if err != nil {
		return nil, err
	}
	var enc string
	if aff, err := os.ReadFile(affFile); err == nil {
		enc = AffEncoding(aff)
	}
	r, err := decodeDic(dic, enc)
	if err != nil {
		return nil, err
	}
	d, err := ReadDic(r)
	if err != nil {
		return nil, errors.Errorf("spell: reading %q: %w", dicFile, err)
	}
	slog.Debug("spell: loaded dictionary", "file", dicFile, "words", len(d))
	return NewModel(d), nil
}

func (c *Checker) active() (*Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model == nil {
		return nil, errors.New("spell: no dictionary set")
	}
	return c.model, nil
}

// IsMisspelled returns whether any word of the given text is not
// in the active dictionary.
func (c *Checker) IsMisspelled(text string) (bool, error) {
	md, err := c.active()
	if err != nil {
		return false, err
	}
	for _, w := range Words(text) {
		if !md.Known(strings.ToLower(w)) {
			return true, nil
		}
	}
	return false, nil
}

// Suggestions returns the corrections for the first misspelled word
// of the given text, with the case pattern of that word.
func (c *Checker) Suggestions(text string) ([]string, error) {
	md, err := c.active()
	if err != nil {
		return nil, err
	}
	for _, w := range Words(text) {
		lw := strings.ToLower(w)
		if md.Known(lw) {
			continue
		}
		sugs := md.Suggestions(lw, MaxSuggestions)
		for i, s := range sugs {
			sugs[i] = matchCase(w, s)
		}
		return sugs, nil
	}
	return []string{}, nil
}
