// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// this code is adapted from: https://github.com/sajari/fuzzy
// https://www.sajari.com/
// Most of which seems to have been written by Hamish @sajari
// it does not have a copyright notice in the code itself but does have
// an MIT license file.
//
// key change is to ignore counts and just use a flat Dict dictionary
// list of words.

package spell

import (
	"slices"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Model is the full data model
type Model struct {
	// list of all words
	Dict Dict

	// map of misspelled word to potential correct spellings
	Suggest map[string][]string

	// depth of edits to include in Suggest map (2 is only sensible value)
	Depth int

	sync.RWMutex
}

// NewModel creates and initialises a new model for the given dictionary.
func NewModel(d Dict) *Model {
	md := &Model{Dict: d, Suggest: make(map[string][]string), Depth: 2}
	for _, term := range d.List() {
		md.createSuggestKeys(term)
	}
	return md
}

// Known returns whether the given lower case term is in the dictionary.
func (md *Model) Known(term string) bool {
	md.RLock()
	defer md.RUnlock()
	return md.Dict.Exists(term)
}

// For a given term, create the partially deleted lookup keys
func (md *Model) createSuggestKeys(term string) {
	edits := md.EditsMulti(term, md.Depth)
	for _, edit := range edits {
		if len(edit) <= 1 || slices.Contains(md.Suggest[edit], term) {
			continue
		}
		md.Suggest[edit] = append(md.Suggest[edit], term)
	}
}

// EditsMulti returns the edits at any depth for a given term.
func (md *Model) EditsMulti(term string, depth int) []string {
	edits := Edits1(term)
	for {
		depth--
		if depth <= 0 {
			break
		}
		for _, edit := range edits {
			edits = append(edits, Edits1(edit)...)
		}
	}
	return edits
}

// Edits1 creates a set of terms that are 1 char delete from the input term
func Edits1(word string) []string {
	rs := []rune(word)
	total := make([]string, 0, len(rs)+1)
	for i := range rs {
		total = append(total, string(rs[:i])+string(rs[i+1:]))
	}

	// Special case ending in "ies" or "ys"
	if strings.HasSuffix(word, "ies") {
		total = append(total, word[:len(word)-3]+"ys")
	}
	if strings.HasSuffix(word, "ys") {
		total = append(total, word[:len(word)-2]+"ies")
	}
	return total
}

// For a given input term, suggest some alternatives.
// if the input is in the dictionary, it will be the only item
// returned.
func (md *Model) suggestPotential(input string) []string {
	// 0 - If this is a dictionary term we're all good, no need to go further
	if md.Dict.Exists(input) {
		return []string{input}
	}

	ss := make(Dict)
	var sord []string
	add := func(pot string) {
		if !ss.Exists(pot) {
			sord = append(sord, pot)
			ss.Add(pot)
		}
	}

	// 1 - See if the input matches a "suggest" key
	for _, pot := range md.Suggest[input] {
		add(pot)
	}

	// 2 - See if edit1 matches input
	edits := md.EditsMulti(input, md.Depth)
	got := false
	for _, edit := range edits {
		if len([]rune(edit)) > 2 && md.Dict.Exists(edit) {
			got = true
			add(edit)
		}
	}
	if got {
		return sord
	}

	// 3 - No hits on edit1 distance, look for transposes and replaces
	// Note: these are more complex, we need to check the guesses
	// more thoroughly, e.g. levals=[valves] in a raw sense, which
	// is incorrect
	lev := metrics.NewLevenshtein()
	for _, edit := range edits {
		for _, pot := range md.Suggest[edit] {
			if lev.Distance(input, pot) <= md.Depth+1 {
				add(pot)
			}
		}
	}
	return sord
}

// Suggestions returns at most n of the most likely corrections
// of the given lower case input, in order from best to worst.
// Candidates are ranked by their Levenshtein similarity to the input.
// A known input is returned as the only suggestion.
func (md *Model) Suggestions(input string, n int) []string {
	md.RLock()
	sugs := md.suggestPotential(input)
	md.RUnlock()

	lev := metrics.NewLevenshtein()
	sim := make(map[string]float64, len(sugs))
	for _, s := range sugs {
		sim[s] = strutil.Similarity(input, s, lev)
	}
	slices.SortStableFunc(sugs, func(a, b string) int {
		switch {
		case sim[a] > sim[b]:
			return -1
		case sim[a] < sim[b]:
			return 1
		}
		return 0
	})
	if n > 0 && len(sugs) > n {
		sugs = sugs[:n]
	}
	return sugs
}
