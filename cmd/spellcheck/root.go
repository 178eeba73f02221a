// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/base/logx"
	"cogentcore.org/spellcheck/dictionaries"
	"cogentcore.org/spellcheck/settings"
	"cogentcore.org/spellcheck/spell"
	"cogentcore.org/spellcheck/system"
	"github.com/spf13/cobra"
)

// AppName is the name used for the default settings location.
const AppName = "spellcheck"

// GlobalOptions are the options shared by all commands.
type GlobalOptions struct {
	Dir         string
	Settings    string
	Locale      string
	Platform    string
	Verbose     bool
	VeryVerbose bool
	Quiet       bool

	out io.Writer
}

func NewGlobalOptions() *GlobalOptions {
	return &GlobalOptions{}
}

func NewDefaultSpellcheckCmd() *cobra.Command {
	return NewSpellcheckCmd(NewGlobalOptions())
}

func NewSpellcheckCmd(o *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spellcheck",
		Short: "spellcheck manages spell checking dictionaries",
		Long: `spellcheck manages the spell checking dictionaries of an app:
which dictionaries are installed and enabled, spelling checks and
suggestions, and the context menu shown for text inputs.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logx.UserLevel = logx.LevelFromFlags(o.VeryVerbose, o.Verbose, o.Quiet)
			logx.SetDefaultLogger()
			o.out = cmd.OutOrStdout()
		},
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.Dir, "dir", "", "Dictionary directory (default: dictionaries next to the executable)")
	pf.StringVar(&o.Settings, "settings", "", "Settings file (default: settings.toml in the user config directory)")
	pf.StringVar(&o.Locale, "locale", "", "Locale used to choose the default dictionary (default: system locale)")
	pf.StringVar(&o.Platform, "platform", "", "Platform whose dictionary rules apply (default: current platform)")
	pf.BoolVarP(&o.Verbose, "verbose", "v", false, "Show informational messages")
	pf.BoolVar(&o.VeryVerbose, "vv", false, "Show debug messages")
	pf.BoolVarP(&o.Quiet, "quiet", "q", false, "Only show errors")
	errors.Must(cmd.RegisterFlagCompletionFunc("platform", completePlatforms))

	cmd.AddCommand(NewListCmd(&ListOptions{GlobalOptions: o}))
	cmd.AddCommand(NewEnableCmd(&EnableOptions{GlobalOptions: o}))
	cmd.AddCommand(NewDisableCmd(&DisableOptions{GlobalOptions: o}))
	cmd.AddCommand(NewInstallCmd(&InstallOptions{GlobalOptions: o}))
	cmd.AddCommand(NewCheckCmd(&CheckOptions{GlobalOptions: o}))
	cmd.AddCommand(NewSuggestCmd(&SuggestOptions{GlobalOptions: o}))
	cmd.AddCommand(NewMenuCmd(&MenuOptions{GlobalOptions: o}))
	cmd.AddCommand(NewWatchCmd(&WatchOptions{GlobalOptions: o}))
	return cmd
}

// platform returns the platform named by the options.
func (o *GlobalOptions) platform() (system.Platforms, error) {
	if o.Platform == "" {
		return system.CurrentPlatform(), nil
	}
	var p system.Platforms
	err := p.SetString(o.Platform)
	return p, err
}

// completePlatforms completes the values of the --platform flag.
func completePlatforms(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, p := range system.PlatformsValues() {
		names = append(names, p.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// store opens the settings file named by the options.
func (o *GlobalOptions) store() (*settings.File, error) {
	fn := o.Settings
	if fn == "" {
		var err error
		fn, err = settings.DefaultFilename(AppName)
		if err != nil {
			return nil, err
		}
	}
	return settings.OpenFile(fn)
}

// dir returns the dictionary directory named by the options.
func (o *GlobalOptions) dir() (string, error) {
	if o.Dir != "" {
		return o.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return dictionaries.ResolveDir(filepath.Dir(exe)), nil
}

// Manager returns a new dictionary manager configured by the options.
func (o *GlobalOptions) Manager() (*dictionaries.Manager, error) {
	p, err := o.platform()
	if err != nil {
		return nil, err
	}
	st, err := o.store()
	if err != nil {
		return nil, err
	}
	dir, err := o.dir()
	if err != nil {
		return nil, err
	}
	locale := o.Locale
	if locale == "" {
		locale = system.Locale()
	}
	return dictionaries.New(spell.NewChecker(), dictionaries.Config{
		Dir:      dir,
		Platform: p,
		Locale:   locale,
		Store:    st,
	}), nil
}

// Out returns the writer that command output is written to.
func (o *GlobalOptions) Out() io.Writer {
	if o.out == nil {
		return os.Stdout
	}
	return o.out
}
