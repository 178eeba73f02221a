// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterleave(t *testing.T) {
	assert.Equal(t, []string{"cat", "cot", "car"}, Interleave([]string{"cat", "car"}, []string{"cot"}))
	assert.Equal(t, []int{1, 4, 6, 2, 5, 3}, Interleave([]int{1, 2, 3}, []int{4, 5}, nil, []int{6}))
	assert.Empty(t, Interleave[int]())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Unique([]string(nil)))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, [][]int{{1}, {2, 3}}, Filter([][]int{{1}, nil, {2, 3}, {}}, func(e []int) bool { return len(e) > 0 }))
}
