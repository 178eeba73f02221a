// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionaries

import (
	"slices"
	"sync"

	"cogentcore.org/spellcheck/base/errors"
)

// fakeEngine is a [spell.Engine] whose dictionaries are word lists
// and suggestion tables. It records the dictionary switches.
type fakeEngine struct {
	embedded    []string
	words       map[string][]string
	suggestions map[string]map[string][]string
	failSet     map[string]bool
	failCheck   bool

	current  string
	switches []string
	mu       sync.Mutex
}

func (fe *fakeEngine) AvailableDictionaries() []string {
	return slices.Clone(fe.embedded)
}

func (fe *fakeEngine) SetDictionary(name, dir string) error {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	if fe.failSet[name] {
		return errors.New("cannot load " + name)
	}
	fe.current = name
	fe.switches = append(fe.switches, name)
	return nil
}

func (fe *fakeEngine) IsMisspelled(text string) (bool, error) {
	if fe.failCheck {
		return false, errors.New("engine failure")
	}
	return !slices.Contains(fe.words[fe.current], text), nil
}

func (fe *fakeEngine) Suggestions(text string) ([]string, error) {
	return fe.suggestions[fe.current][text], nil
}
