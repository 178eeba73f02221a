// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides information about the operating system
// the app is running on: its platform and the user's locale.
package system

import (
	"fmt"
	"runtime"
	"strings"
)

// Platforms are all the supported platforms for system
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin)
	MacOS Platforms = iota

	// Linux is a Linux OS machine
	Linux

	// Windows is a Microsoft Windows machine
	Windows

	// IOS is an Apple iOS or iPadOS mobile phone or iPad
	IOS

	// Android is an Android mobile phone or tablet
	Android

	// Web is a web browser running the app through WASM
	Web

	// Offscreen is an offscreen driver typically used for testing
	Offscreen
)

var platformNames = []string{"MacOS", "Linux", "Windows", "IOS", "Android", "Web", "Offscreen"}

// String returns the name of the platform.
func (p Platforms) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return fmt.Sprintf("Platforms(%d)", p)
	}
	return platformNames[p]
}

// SetString sets the platform from its name, compared case insensitively.
// It also accepts the GOOS names of the platforms (darwin, windows, etc).
func (p *Platforms) SetString(s string) error {
	for i, nm := range platformNames {
		if strings.EqualFold(nm, s) {
			*p = Platforms(i)
			return nil
		}
	}
	if gp, ok := goosPlatforms[strings.ToLower(s)]; ok {
		*p = gp
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Platforms", s)
}

// PlatformsValues returns all possible values for the type Platforms.
func PlatformsValues() []Platforms {
	vs := make([]Platforms, len(platformNames))
	for i := range vs {
		vs[i] = Platforms(i)
	}
	return vs
}

// IsMac returns whether the platform uses the Command modifier key
// for standard shortcuts (MacOS and iOS).
func (p Platforms) IsMac() bool {
	return p == MacOS || p == IOS
}

var goosPlatforms = map[string]Platforms{
	"darwin":  MacOS,
	"ios":     IOS,
	"linux":   Linux,
	"freebsd": Linux,
	"openbsd": Linux,
	"netbsd":  Linux,
	"windows": Windows,
	"android": Android,
	"js":      Web,
	"wasip1":  Web,
}

// CurrentPlatform returns the platform the program was built for.
func CurrentPlatform() Platforms {
	if p, ok := goosPlatforms[runtime.GOOS]; ok {
		return p
	}
	return Linux
}
