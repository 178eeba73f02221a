// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslator(t *testing.T) {
	en := New("")
	assert.Equal(t, language.English, en.Language)
	assert.Equal(t, "No suggestions", en.T(NoSuggestions))

	fr := New("fr_CA")
	assert.Equal(t, language.French, fr.Language)
	assert.Equal(t, "Aucune suggestion", fr.T(NoSuggestions))

	de := New("de-DE")
	assert.Equal(t, "Fehler", de.T(Error))

	assert.Equal(t, "&Undo", New("xx_garbage!").T(Undo))
}

func TestCatalogComplete(t *testing.T) {
	en := translations[language.English]
	for tag, msgs := range translations {
		assert.Len(t, msgs, len(en), tag.String())
		for key := range en {
			assert.Contains(t, msgs, key, tag.String())
		}
	}
}
