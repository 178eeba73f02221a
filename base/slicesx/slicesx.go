// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// Interleave returns the elements of the given slices in round-robin
// order: the first element of every slice, then the second element of
// every slice, and so on. Slices that run out are skipped.
func Interleave[E any](s ...[]E) []E {
	n := 0
	mx := 0
	for _, l := range s {
		n += len(l)
		mx = max(mx, len(l))
	}
	res := make([]E, 0, n)
	for i := range mx {
		for _, l := range s {
			if i < len(l) {
				res = append(res, l[i])
			}
		}
	}
	return res
}

// Unique returns a new slice with duplicate elements removed,
// keeping the first occurrence of each element in order.
func Unique[E comparable](s []E) []E {
	seen := make(map[E]struct{}, len(s))
	res := make([]E, 0, len(s))
	for _, e := range s {
		if _, has := seen[e]; has {
			continue
		}
		seen[e] = struct{}{}
		res = append(res, e)
	}
	return res
}

// Filter returns a new slice with the elements for which keep returns true.
func Filter[E any](s []E, keep func(e E) bool) []E {
	var res []E
	for _, e := range s {
		if keep(e) {
			res = append(res, e)
		}
	}
	return res
}
