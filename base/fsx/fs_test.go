// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenames(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"fr_FR.dic", "fr_FR.aff", "de-DE.DIC", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.dic"), 0755))

	names, err := Filenames(dir, ".aff", ".dic")
	require.NoError(t, err)
	assert.Equal(t, []string{"de-DE.DIC", "fr_FR.aff", "fr_FR.dic"}, names)

	all, err := Filenames(dir)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := Filenames(filepath.Join(dir, "missing"), ".dic")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.dic")
	require.NoError(t, os.WriteFile(src, []byte("2\ncat\ncar\n"), 0644))

	dst := filepath.Join(dir, "dictionaries", "en_US.dic")
	require.NoError(t, CopyFile(dst, src))
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "2\ncat\ncar\n", string(b))

	ok, err := FileExists(dst)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, CopyFile(dst, filepath.Join(dir, "missing.dic")))

	// copying a file onto itself leaves it intact
	require.NoError(t, CopyFile(dst, filepath.Join(dir, "dictionaries", ".", "en_US.dic")))
	b, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "2\ncat\ncar\n", string(b))
	assert.True(t, SameFile(dst, filepath.Join(dir, "dictionaries", "en_US.dic")))
	assert.False(t, SameFile(dst, src))
	assert.False(t, SameFile(dst, filepath.Join(dir, "missing.dic")))
}

func TestFileExistsFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.aff"), nil, 0644))
	fsys := os.DirFS(dir)
	ok, err := FileExistsFS(fsys, "a.aff")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "b.aff")
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
}
