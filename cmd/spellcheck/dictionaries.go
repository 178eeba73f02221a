// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/dictionaries"
	"github.com/spf13/cobra"
)

type ListOptions struct {
	*GlobalOptions
}

func NewListCmd(o *ListOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available dictionaries, marking the enabled ones",
		Args:  cobra.NoArgs,
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
}

func (o *ListOptions) Run() error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	enabled := m.EnabledDictionaries()
	for _, name := range m.AvailableDictionaries() {
		mark := " "
		if slices.Contains(enabled, name) {
			mark = "x"
		}
		fmt.Fprintf(o.Out(), "[%s] %s\n", mark, name)
	}
	if len(enabled) == 0 {
		fmt.Fprintln(o.Out(), "spell checking is disabled")
	}
	return nil
}

type EnableOptions struct {
	*GlobalOptions
}

func NewEnableCmd(o *EnableOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enable NAME...",
		Short: "Enable dictionaries",
		Long: `Enable the given dictionaries, in order. When only one dictionary
can be enabled on the platform, the first available one is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
}

func (o *EnableOptions) Run(names []string) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	if !m.SetEnabled(names...) {
		return errors.Errorf("none of the dictionaries %s is available", strings.Join(names, ", "))
	}
	if err := m.SaveEnabledDictionaries(); err != nil {
		return err
	}
	fmt.Fprintln(o.Out(), strings.Join(m.EnabledDictionaries(), " "))
	return nil
}

type DisableOptions struct {
	*GlobalOptions
}

func NewDisableCmd(o *DisableOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "disable NAME...",
		Short: "Disable dictionaries",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
}

func (o *DisableOptions) Run(names []string) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	for _, name := range names {
		m.Disable(name)
	}
	if err := m.SaveEnabledDictionaries(); err != nil {
		return err
	}
	fmt.Fprintln(o.Out(), strings.Join(m.EnabledDictionaries(), " "))
	return nil
}

type InstallOptions struct {
	*GlobalOptions
}

func NewInstallCmd(o *InstallOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install FILE...",
		Short: "Install .aff and .dic dictionary files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
}

func (o *InstallOptions) Run(paths []string) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	names, err := dictionaries.WaitAll(m.InstallDictionariesFromPaths(paths))
	for _, name := range names {
		fmt.Fprintf(o.Out(), "installed %s\n", name)
	}
	return err
}
