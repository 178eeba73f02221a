// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n provides the translated labels used in
// spell checking menus and dialogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys, which are also the English text.
const (
	NoSuggestions           = "No suggestions"
	MoreSpellingSuggestions = "More spelling suggestions"
	SpellingLanguages       = "Spelling languages"
	BrowseForLanguage       = "Browse for language"
	SaveImageAs             = "Save image as..."
	OpenLink                = "Open link"
	CopyLinkText            = "Copy link text"
	CopyLinkAddress         = "Copy link address"
	Undo                    = "&Undo"
	Redo                    = "&Redo"
	Cut                     = "Cu&t"
	Copy                    = "&Copy"
	Paste                   = "&Paste"
	SelectAll               = "Select &all"
	Error                   = "Error"
	ErrorCopyingDictionary  = "Error copying dictionary file"
	OpenLanguageDictionary  = "Open language dictionary"
	Dictionaries            = "Dictionaries"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		NoSuggestions:           "No suggestions",
		MoreSpellingSuggestions: "More spelling suggestions",
		SpellingLanguages:       "Spelling languages",
		BrowseForLanguage:       "Browse for language",
		SaveImageAs:             "Save image as...",
		OpenLink:                "Open link",
		CopyLinkText:            "Copy link text",
		CopyLinkAddress:         "Copy link address",
		Undo:                    "&Undo",
		Redo:                    "&Redo",
		Cut:                     "Cu&t",
		Copy:                    "&Copy",
		Paste:                   "&Paste",
		SelectAll:               "Select &all",
		Error:                   "Error",
		ErrorCopyingDictionary:  "Error copying dictionary file",
		OpenLanguageDictionary:  "Open language dictionary",
		Dictionaries:            "Dictionaries",
	},
	language.French: {
		NoSuggestions:           "Aucune suggestion",
		MoreSpellingSuggestions: "Plus de suggestions",
		SpellingLanguages:       "Langues de correction",
		BrowseForLanguage:       "Parcourir pour une langue",
		SaveImageAs:             "Enregistrer l'image sous...",
		OpenLink:                "Ouvrir le lien",
		CopyLinkText:            "Copier le texte du lien",
		CopyLinkAddress:         "Copier l'adresse du lien",
		Undo:                    "&Annuler",
		Redo:                    "&Rétablir",
		Cut:                     "Cou&per",
		Copy:                    "&Copier",
		Paste:                   "C&oller",
		SelectAll:               "&Tout sélectionner",
		Error:                   "Erreur",
		ErrorCopyingDictionary:  "Erreur lors de la copie du dictionnaire",
		OpenLanguageDictionary:  "Ouvrir un dictionnaire de langue",
		Dictionaries:            "Dictionnaires",
	},
	language.German: {
		NoSuggestions:           "Keine Vorschläge",
		MoreSpellingSuggestions: "Weitere Vorschläge",
		SpellingLanguages:       "Rechtschreibsprachen",
		BrowseForLanguage:       "Sprache suchen",
		SaveImageAs:             "Bild speichern unter...",
		OpenLink:                "Link öffnen",
		CopyLinkText:            "Linktext kopieren",
		CopyLinkAddress:         "Linkadresse kopieren",
		Undo:                    "&Rückgängig",
		Redo:                    "&Wiederholen",
		Cut:                     "&Ausschneiden",
		Copy:                    "&Kopieren",
		Paste:                   "&Einfügen",
		SelectAll:               "Alles &auswählen",
		Error:                   "Fehler",
		ErrorCopyingDictionary:  "Fehler beim Kopieren der Wörterbuchdatei",
		OpenLanguageDictionary:  "Sprachwörterbuch öffnen",
		Dictionaries:            "Wörterbücher",
	},
	language.Spanish: {
		NoSuggestions:           "No hay sugerencias",
		MoreSpellingSuggestions: "Más sugerencias",
		SpellingLanguages:       "Idiomas de ortografía",
		BrowseForLanguage:       "Buscar idioma",
		SaveImageAs:             "Guardar imagen como...",
		OpenLink:                "Abrir enlace",
		CopyLinkText:            "Copiar texto del enlace",
		CopyLinkAddress:         "Copiar dirección del enlace",
		Undo:                    "&Deshacer",
		Redo:                    "&Rehacer",
		Cut:                     "Cor&tar",
		Copy:                    "&Copiar",
		Paste:                   "&Pegar",
		SelectAll:               "Seleccionar &todo",
		Error:                   "Error",
		ErrorCopyingDictionary:  "Error al copiar el diccionario",
		OpenLanguageDictionary:  "Abrir diccionario de idioma",
		Dictionaries:            "Diccionarios",
	},
}

var (
	builder   = newCatalog()
	supported = builder.Languages()
	matcher   = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			b.SetString(tag, key, msg)
		}
	}
	return b
}

// Translator translates message keys into one language.
type Translator struct {

	// Language is the language that messages are translated into.
	Language language.Tag

	printer *message.Printer
}

// New returns a [Translator] for the best supported match of the given
// language, which may use either dashes or underscores ("pt_BR", "fr-CA").
// Unknown or empty languages get English.
func New(lang string) *Translator {
	tag := language.English
	if lang != "" {
		if t, err := language.Parse(strings.ReplaceAll(lang, "_", "-")); err == nil {
			_, idx, conf := matcher.Match(t)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Translator{Language: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// T returns the translation of the given message key.
func (tr *Translator) T(key string) string {
	return tr.printer.Sprintf(key)
}
