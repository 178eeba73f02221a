// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type WatchOptions struct {
	*GlobalOptions
}

func NewWatchCmd(o *WatchOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print dictionaries as they are added to the dictionary directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return o.Run(ctx)
		},
	}
}

func (o *WatchOptions) Run(ctx context.Context) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	if !m.MultiLanguage() {
		fmt.Fprintln(o.Out(), "only built in dictionaries are used on this platform")
	}
	err = m.Watch(ctx, func(name string) {
		fmt.Fprintf(o.Out(), "added %s\n", name)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
