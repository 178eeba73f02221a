// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformsString(t *testing.T) {
	var p Platforms
	assert.NoError(t, p.SetString("windows"))
	assert.Equal(t, Windows, p)
	assert.NoError(t, p.SetString("MacOS"))
	assert.Equal(t, MacOS, p)
	assert.NoError(t, p.SetString("darwin"))
	assert.Equal(t, MacOS, p)
	assert.Error(t, p.SetString("amiga"))
	assert.Equal(t, "Linux", Linux.String())
	assert.Equal(t, "Platforms(42)", Platforms(42).String())
	assert.True(t, IOS.IsMac())
	assert.False(t, Windows.IsMac())
	assert.Equal(t, []Platforms{MacOS, Linux, Windows, IOS, Android, Web, Offscreen}, PlatformsValues())
}

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]string{
		"en-US":       "en_US",
		"en_us":       "en_US",
		"EN":          "en",
		"de-DE.UTF-8": "de_DE",
		"fr_FR@euro":  "fr_FR",
		"sr-Latn-RS":  "sr_Latn_RS",
		"C":           "",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLanguage(in), in)
	}
}

func TestPrimaryLanguage(t *testing.T) {
	assert.Equal(t, "pt", PrimaryLanguage("pt_BR"))
	assert.Equal(t, "", PrimaryLanguage("pt"))
}
