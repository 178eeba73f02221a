// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// Locale returns the locale reported by the operating system
// in normalized form (see [NormalizeLanguage]), such as "en_US".
// It returns "" if the locale cannot be determined.
func Locale() string {
	loc, err := locale.GetLocale()
	if err != nil {
		slog.Debug("unable to get system locale", "err", err)
		return ""
	}
	return NormalizeLanguage(loc)
}

// NormalizeLanguage normalizes the given language or locale identifier
// into the form used for dictionary names: separators become underscores,
// the language subtag is lower case, and a two letter region subtag
// is upper case. Any encoding or modifier suffix (".UTF-8", "@euro") is
// removed. For example, "en-us.UTF-8" becomes "en_US".
func NormalizeLanguage(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return ""
	}
	parts := strings.Split(strings.ReplaceAll(s, "-", "_"), "_")
	parts[0] = strings.ToLower(parts[0])
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) == 2 {
			parts[i] = strings.ToUpper(parts[i])
		}
	}
	return strings.Join(parts, "_")
}

// PrimaryLanguage returns the primary language subtag of the given
// normalized language, which is the part before the first underscore.
// It returns "" if there is no underscore.
func PrimaryLanguage(lang string) string {
	before, _, found := strings.Cut(lang, "_")
	if !found {
		return ""
	}
	return before
}
