// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionaries

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/spellcheck/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	m, _ := newManager(t, &fakeEngine{embedded: []string{"en_US"}}, system.Linux, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	added := make(chan string, 4)
	done := make(chan error)
	go func() {
		done <- m.Watch(ctx, func(name string) { added <- name })
	}()

	// the watcher may not be registered yet, so keep writing until it is seen
	fnm := filepath.Join(m.Dir(), "nl-NL.dic")
	deadline := time.Now().Add(5 * time.Second)
	var name string
	for name == "" {
		require.True(t, time.Now().Before(deadline), "timed out waiting for watcher")
		require.NoError(t, os.WriteFile(fnm, []byte("1\nhallo\n"), 0644))
		select {
		case name = <-added:
		case <-time.After(100 * time.Millisecond):
		}
	}
	assert.Equal(t, "nl_NL", name)
	assert.Contains(t, m.AvailableDictionaries(), "nl_NL")

	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "notes.txt"), nil, 0644))
	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, []string{"en_US", "nl_NL"}, m.AvailableDictionaries())
}

func TestWatchSingleLanguage(t *testing.T) {
	m, _ := newManager(t, &fakeEngine{embedded: []string{"en_US"}}, system.Windows, "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, m.Watch(ctx, nil))
}

func TestWatchUpdate(t *testing.T) {
	m, _ := newManager(t, &fakeEngine{embedded: []string{"en_US"}}, system.Linux, "", nil)
	var got []string
	add := func(name string) { got = append(got, name) }

	m.watchUpdate(filepath.Join(m.Dir(), "sv_SE.dic"), add)
	assert.Empty(t, got)

	writeDicts(t, m.Dir(), "sv_SE")
	m.watchUpdate(filepath.Join(m.Dir(), "sv_SE.dic"), add)
	m.watchUpdate(filepath.Join(m.Dir(), "sv_SE.aff"), add)
	assert.Equal(t, []string{"sv_SE"}, got)
}
