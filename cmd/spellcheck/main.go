// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spellcheck manages spell checking dictionaries and
// shows the spell checking context menu from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := NewDefaultSpellcheckCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spellcheck: Error: %s\n", err)
		os.Exit(1)
	}
}
