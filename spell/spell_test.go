// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDic(t *testing.T) {
	d, err := ReadDic(strings.NewReader("4\nHello/SM\nworld\tpo:noun\n# comment\n\ncat/S\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "hello", "world"}, d.List())

	d, err = ReadDic(strings.NewReader("\uFEFF2\nbonjour\nmerci\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bonjour", "merci"}, d.List())
}

func TestAffEncoding(t *testing.T) {
	assert.Equal(t, "ISO8859-1", AffEncoding([]byte("# fr\nSET ISO8859-1\nTRY abc\n")))
	assert.Equal(t, "", AffEncoding([]byte("TRY abc\n")))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"Don't", "panic", "café"}, Words("Don't panic, a café! 3rd abc123 'x'"))
	assert.Empty(t, Words("  ... 42 "))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "Cat", matchCase("Cta", "cat"))
	assert.Equal(t, "CAT", matchCase("CTA", "cat"))
	assert.Equal(t, "cat", matchCase("cta", "cat"))
}

func TestModelSuggestions(t *testing.T) {
	d := make(Dict)
	for _, w := range []string{"cat", "car", "cot", "dog"} {
		d.Add(w)
	}
	md := NewModel(d)
	assert.True(t, md.Known("cat"))
	assert.False(t, md.Known("cst"))
	assert.Equal(t, []string{"cat"}, md.Suggestions("cat", 10))

	sugs := md.Suggestions("cst", 10)
	assert.Equal(t, "cat", sugs[0])
	assert.Contains(t, sugs, "cot")
	assert.NotContains(t, sugs, "dog")

	assert.Contains(t, md.Suggestions("catt", 10), "cat")
	assert.Len(t, md.Suggestions("cst", 1), 1)
	assert.Empty(t, md.Suggestions("zzzzzz", 10))
}

func TestChecker(t *testing.T) {
	c := NewChecker()
	assert.Equal(t, []string{"en_US"}, c.AvailableDictionaries())

	_, err := c.IsMisspelled("hello")
	assert.Error(t, err)

	require.NoError(t, c.SetDictionary("en_US", ""))
	assert.Equal(t, "en_US", c.Dictionary())

	bad, err := c.IsMisspelled("Hello world")
	require.NoError(t, err)
	assert.False(t, bad)

	bad, err = c.IsMisspelled("helo world")
	require.NoError(t, err)
	assert.True(t, bad)

	sugs, err := c.Suggestions("Helo")
	require.NoError(t, err)
	assert.Contains(t, sugs, "Hello")

	sugs, err = c.Suggestions("hello")
	require.NoError(t, err)
	assert.Empty(t, sugs)

	assert.Error(t, c.SetDictionary("xx_XX", t.TempDir()))
	assert.Equal(t, "en_US", c.Dictionary())
}

func TestCheckerDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_FR.aff"), []byte("SET ISO8859-1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_FR.dic"), []byte("2\ncaf\xe9\nbonjour/S\n"), 0644))

	c := NewChecker()
	require.NoError(t, c.SetDictionary("fr_FR", dir))
	bad, err := c.IsMisspelled("bonjour café")
	require.NoError(t, err)
	assert.False(t, bad)

	bad, err = c.IsMisspelled("hello")
	require.NoError(t, err)
	assert.True(t, bad)

	require.NoError(t, c.SetDictionary("en_US", dir))
	bad, err = c.IsMisspelled("hello")
	require.NoError(t, err)
	assert.False(t, bad)
}

func TestCheckerDirNormalizedName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de-DE.dic"), []byte("1\nhallo\n"), 0644))

	c := NewChecker()
	require.NoError(t, c.SetDictionary("de_DE", dir))
	bad, err := c.IsMisspelled("hallo")
	require.NoError(t, err)
	assert.False(t, bad)
	bad, err = c.IsMisspelled("qwzzx")
	require.NoError(t, err)
	assert.True(t, bad)

	assert.Error(t, c.SetDictionary("fr_FR", dir))
}
