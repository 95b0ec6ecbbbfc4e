// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package styles

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Back     key.Binding
	Toggle   key.Binding

	Search       key.Binding
	Filter       key.Binding
	Overflow     key.Binding
	ClearFilters key.Binding
	SavePreset   key.Binding

	Drawer     key.Binding
	NextRoute  key.Binding
	SwitchTab  key.Binding
	NewRequest key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	SizeUp     key.Binding
	SizeDown   key.Binding

	CyclePopup    key.Binding
	ClosePopup    key.Binding
	HidePopup     key.Binding
	MaximizePopup key.Binding
	NudgeUp       key.Binding
	NudgeDown     key.Binding
	NudgeLeft     key.Binding
	NudgeRight    key.Binding
	GrowPopup     key.Binding
	ShrinkPopup   key.Binding

	QuickOpen key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		Overflow: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "more filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear filters"),
		),
		SavePreset: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save preset"),
		),
		Drawer: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "drawer"),
		),
		NextRoute: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "next page"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch tab"),
		),
		NewRequest: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new request"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		SizeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows"),
		),
		SizeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows"),
		),
		CyclePopup: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next popup"),
		),
		ClosePopup: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close popup"),
		),
		HidePopup: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "hide popup"),
		),
		MaximizePopup: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "maximize popup"),
		),
		NudgeUp: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "move popup"),
		),
		NudgeDown: key.NewBinding(
			key.WithKeys("alt+down"),
		),
		NudgeLeft: key.NewBinding(
			key.WithKeys("alt+left"),
		),
		NudgeRight: key.NewBinding(
			key.WithKeys("alt+right"),
		),
		GrowPopup: key.NewBinding(
			key.WithKeys("alt+="),
			key.WithHelp("alt+=", "grow popup"),
		),
		ShrinkPopup: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("alt+-", "shrink popup"),
		),
		QuickOpen: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open by number"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy number"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help text
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Drawer, k.Help, k.Quit}
}

// FullHelp returns the full help text
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Select},
		{k.Search, k.Filter, k.Overflow, k.ClearFilters, k.SavePreset},
		{k.PrevPage, k.NextPage, k.SizeUp, k.SizeDown, k.NewRequest},
		{k.CyclePopup, k.ClosePopup, k.HidePopup, k.MaximizePopup, k.NudgeUp, k.GrowPopup, k.ShrinkPopup},
		{k.Drawer, k.NextRoute, k.SwitchTab, k.QuickOpen, k.Copy, k.Help, k.Quit},
	}
}
