// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"bufio"
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/spellcheck/base/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/htmlindex"
)

// Dict is a dictionary of words
type Dict map[string]struct{}

// Exists returns true if word is in the dictionary
func (d Dict) Exists(word string) bool {
	_, ok := d[word]
	return ok
}

// Add adds given word to the dictionary
func (d Dict) Add(word string) {
	d[word] = struct{}{}
}

// List returns a sorted list of all words in the dictionary
func (d Dict) List() []string {
	wl := maps.Keys(d)
	slices.Sort(wl)
	return wl
}

// ReadDic reads a hunspell .dic word list. The optional first line
// holds the number of words. Each following line is a word, optionally
// followed by "/" and affix flags and then by tab-separated morphological
// fields, which are ignored: affix rules are not expanded. Words are
// stored in lower case.
func ReadDic(r io.Reader) (Dict, error) {
	d := make(Dict)
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if first {
			first = false
			ln = strings.TrimPrefix(ln, "\uFEFF")
			if _, err := strconv.Atoi(ln); err == nil {
				continue
			}
		}
		if ln == "" || ln[0] == '#' {
			continue
		}
		if i := strings.IndexAny(ln, " \t"); i >= 0 {
			ln = ln[:i]
		}
		if i := strings.Index(ln, "/"); i > 0 {
			ln = ln[:i]
		}
		d.Add(strings.ToLower(ln))
	}
	return d, sc.Err()
}

// AffEncoding returns the character encoding declared by the SET
// directive of the given hunspell .aff file contents, or "" if there
// is none.
func AffEncoding(aff []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(aff))
	for sc.Scan() {
		fs := strings.Fields(sc.Text())
		if len(fs) >= 2 && fs[0] == "SET" {
			return fs[1]
		}
	}
	return ""
}

// decodeDic returns a reader of the given .dic contents decoded
// from the given encoding into UTF-8.
func decodeDic(dic []byte, encoding string) (io.Reader, error) {
	enc := strings.ToLower(encoding)
	if enc == "" || enc == "utf-8" || enc == "utf8" {
		return bytes.NewReader(dic), nil
	}
	e, err := htmlindex.Get(enc)
	if err != nil {
		return nil, errors.Errorf("spell: unsupported dictionary encoding %q: %w", encoding, err)
	}
	return e.NewDecoder().Reader(bytes.NewReader(dic)), nil
}
