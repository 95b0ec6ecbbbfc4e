// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package filter

// TextConfig declares a text field
type TextConfig struct {
	Placeholder string
	// Main marks the bar's primary search box. At most one per bar.
	Main     bool
	Get      func() string
	OnChange func(string)
}

// TextField is a free text filter
type TextField struct {
	draft[string]
	placeholder string
	main        bool
}

// NewText creates a text field from its declaration
func NewText(cfg TextConfig) *TextField {
	return &TextField{
		draft:       newDraft(cfg.Get, cfg.OnChange, func() string { return "" }, nil),
		placeholder: cfg.Placeholder,
		main:        cfg.Main,
	}
}

func (f *TextField) Kind() Kind          { return KindText }
func (f *TextField) Placeholder() string { return f.placeholder }
func (f *TextField) Main() bool          { return f.main }
func (f *TextField) IsEmpty() bool       { return f.committed() == "" }
func (f *TextField) Text() string        { return f.Local() }
func (f *TextField) SetText(v string)    { f.SetLocal(v) }

// Label is the committed text, or the placeholder when empty
func (f *TextField) Label() string {
	if v := f.committed(); v != "" {
		return v
	}
	return f.placeholder
}
