// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type CheckOptions struct {
	*GlobalOptions
}

func NewCheckCmd(o *CheckOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check TEXT...",
		Short: "Check whether text is spelled correctly in any enabled dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
}

func (o *CheckOptions) Run(args []string) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	for _, text := range args {
		res := "misspelled"
		if m.IsCorrect(text) {
			res = "correct"
		}
		fmt.Fprintf(o.Out(), "%s: %s\n", text, res)
	}
	return nil
}

type SuggestOptions struct {
	*GlobalOptions
}

func NewSuggestCmd(o *SuggestOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest TEXT...",
		Short: "Print the spelling corrections of text from all enabled dictionaries",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
}

func (o *SuggestOptions) Run(args []string) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	for _, s := range m.Corrections(text) {
		fmt.Fprintln(o.Out(), s)
	}
	return nil
}
