// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"strings"
	"unicode"
)

// Words splits the given text into the words to be spell checked.
// Words are runs of letters, with apostrophes allowed inside a word
// for contractions. Runs that contain digits are skipped, as are
// words of a single letter.
func Words(text string) []string {
	var words []string
	rs := []rune(text)
	start := -1
	digit := false
	flush := func(end int) {
		if start < 0 {
			return
		}
		w := strings.Trim(string(rs[start:end]), "'’")
		if !digit && len([]rune(w)) > 1 {
			words = append(words, w)
		}
		start = -1
		digit = false
	}
	for i, r := range rs {
		switch {
		case unicode.IsLetter(r) || r == '\'' || r == '’':
			if start < 0 {
				start = i
			}
		case unicode.IsDigit(r):
			if start < 0 {
				start = i
			}
			digit = true
		default:
			flush(i)
		}
	}
	flush(len(rs))
	return words
}

// matchCase returns the suggestion s with the case pattern of the
// original word: all upper case or an initial capital.
func matchCase(orig, s string) string {
	if orig == "" || s == "" {
		return s
	}
	rs := []rune(orig)
	if len(rs) > 1 && strings.ToUpper(orig) == orig {
		return strings.ToUpper(s)
	}
	if unicode.IsUpper(rs[0]) {
		sr := []rune(s)
		sr[0] = unicode.ToUpper(sr[0])
		return string(sr)
	}
	return s
}
