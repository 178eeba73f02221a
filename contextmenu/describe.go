// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contextmenu

import (
	"strings"

	"cogentcore.org/spellcheck/keymap"
	"cogentcore.org/spellcheck/system"
)

// Node is a plain data description of a menu item, suitable
// for encoding as YAML or JSON.
type Node struct {
	Type        string `yaml:"type" json:"type"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Checked     bool   `yaml:"checked,omitempty" json:"checked,omitempty"`
	Role        string `yaml:"role,omitempty" json:"role,omitempty"`
	Accelerator string `yaml:"accelerator,omitempty" json:"accelerator,omitempty"`
	Items       []Node `yaml:"items,omitempty" json:"items,omitempty"`
}

// Node types.
const (
	TypeAction    = "action"
	TypeSubmenu   = "submenu"
	TypeCheckbox  = "checkbox"
	TypeSeparator = "separator"
)

// Describe returns the plain data description of the given menu items,
// with accelerators formatted for the given platform and mnemonic
// markers removed from labels.
func Describe(items []Item, p system.Platforms) []Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		switch it := it.(type) {
		case *Action:
			n := Node{Type: TypeAction, Label: StripMnemonic(it.Label), Disabled: !it.Enabled}
			if it.Role != keymap.None {
				n.Role = strings.ToLower(it.Role.String())
			}
			if it.Accelerator != "" {
				n.Accelerator = it.Accelerator.Label(p)
			}
			nodes = append(nodes, n)
		case *Submenu:
			nodes = append(nodes, Node{Type: TypeSubmenu, Label: StripMnemonic(it.Label), Disabled: !it.Enabled, Items: Describe(it.Items, p)})
		case *Checkbox:
			nodes = append(nodes, Node{Type: TypeCheckbox, Label: it.Label, Disabled: !it.Enabled, Checked: it.Checked})
		case Separator:
			nodes = append(nodes, Node{Type: TypeSeparator})
		}
	}
	return nodes
}

// StripMnemonic removes the & mnemonic marker from the given label.
// A doubled && stands for a literal &.
func StripMnemonic(label string) string {
	if !strings.Contains(label, "&") {
		return label
	}
	var b strings.Builder
	rs := []rune(label)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '&' {
			if i+1 < len(rs) && rs[i+1] == '&' {
				b.WriteRune('&')
				i++
			}
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}
