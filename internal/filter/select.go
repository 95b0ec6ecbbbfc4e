// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package filter

// SelectConfig declares a single-select field
type SelectConfig[T comparable] struct {
	Placeholder string
	Options     []Option[T]
	// Immediate applies every choice without a confirm step.
	Immediate bool
	Get       func() *T
	OnChange  func(*T)
}

// SelectField picks at most one option. A nil value means nothing selected.
type SelectField[T comparable] struct {
	draft[*T]
	placeholder string
	options     []Option[T]
	immediate   bool
}

// NewSelect creates a single-select field from its declaration
func NewSelect[T comparable](cfg SelectConfig[T]) *SelectField[T] {
	return &SelectField[T]{
		draft:       newDraft(cfg.Get, cfg.OnChange, func() *T { return nil }, clonePtr[T]),
		placeholder: cfg.Placeholder,
		options:     cfg.Options,
		immediate:   cfg.Immediate,
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (f *SelectField[T]) Kind() Kind          { return KindSelect }
func (f *SelectField[T]) Placeholder() string { return f.placeholder }
func (f *SelectField[T]) Immediate() bool     { return f.immediate }
func (f *SelectField[T]) IsEmpty() bool       { return f.committed() == nil }

// Options returns the declared options
func (f *SelectField[T]) Options() []Option[T] {
	return f.options
}

// Labels returns the option labels in declaration order
func (f *SelectField[T]) Labels() []string {
	return labels(f.options)
}

// Selected reports whether option i is the draft value
func (f *SelectField[T]) Selected(i int) bool {
	if i < 0 || i >= len(f.options) {
		return false
	}
	local := f.Local()
	return local != nil && *local == f.options[i].Value
}

// Choose stages option i. Immediate fields apply at once.
func (f *SelectField[T]) Choose(i int) {
	if i < 0 || i >= len(f.options) {
		return
	}
	v := f.options[i].Value
	f.SetLocal(&v)
	if f.immediate {
		f.Apply()
	}
}

// Clear empties the draft
func (f *SelectField[T]) Clear() {
	f.SetLocal(nil)
}

// Label is the committed option's label, or the placeholder
func (f *SelectField[T]) Label() string {
	v := f.committed()
	if v == nil {
		return f.placeholder
	}
	for _, o := range f.options {
		if o.Value == *v {
			return o.Label
		}
	}
	return f.placeholder
}

func labels[T comparable](opts []Option[T]) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
