// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package filter

import (
	"fmt"
	"slices"
)

// MultiSelectConfig declares a multi-select field
type MultiSelectConfig[T comparable] struct {
	Placeholder string
	Options     []Option[T]
	Get         func() []T
	OnChange    func([]T)
}

// MultiSelectField holds a set of option values. Order carries no meaning.
type MultiSelectField[T comparable] struct {
	draft[[]T]
	placeholder string
	options     []Option[T]
}

// NewMultiSelect creates a multi-select field from its declaration
func NewMultiSelect[T comparable](cfg MultiSelectConfig[T]) *MultiSelectField[T] {
	return &MultiSelectField[T]{
		draft:       newDraft(cfg.Get, cfg.OnChange, func() []T { return []T{} }, cloneSlice[T]),
		placeholder: cfg.Placeholder,
		options:     cfg.Options,
	}
}

func cloneSlice[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

func (f *MultiSelectField[T]) Kind() Kind          { return KindMultiSelect }
func (f *MultiSelectField[T]) Placeholder() string { return f.placeholder }
func (f *MultiSelectField[T]) IsEmpty() bool       { return len(f.committed()) == 0 }
func (f *MultiSelectField[T]) Count() int          { return len(f.committed()) }

// Options returns the declared options
func (f *MultiSelectField[T]) Options() []Option[T] {
	return f.options
}

// Labels returns the option labels in declaration order
func (f *MultiSelectField[T]) Labels() []string {
	return labels(f.options)
}

// Selected reports whether option i is in the draft set
func (f *MultiSelectField[T]) Selected(i int) bool {
	if i < 0 || i >= len(f.options) {
		return false
	}
	return slices.Contains(f.Local(), f.options[i].Value)
}

// Toggle removes option i from the draft if present, otherwise appends it.
func (f *MultiSelectField[T]) Toggle(i int) {
	if i < 0 || i >= len(f.options) {
		return
	}
	v := f.options[i].Value
	local := f.Local()
	if idx := slices.Index(local, v); idx >= 0 {
		f.SetLocal(slices.Delete(slices.Clone(local), idx, idx+1))
		return
	}
	f.SetLocal(append(slices.Clone(local), v))
}

// Clear empties the draft
func (f *MultiSelectField[T]) Clear() {
	f.SetLocal([]T{})
}

// Label is "first (+N)" for the committed selection, or the placeholder.
func (f *MultiSelectField[T]) Label() string {
	values := f.committed()
	if len(values) == 0 {
		return f.placeholder
	}
	first := fmt.Sprint(values[0])
	for _, o := range f.options {
		if o.Value == values[0] {
			first = o.Label
			break
		}
	}
	if len(values) == 1 {
		return first
	}
	return fmt.Sprintf("%s (+%d)", first, len(values)-1)
}
