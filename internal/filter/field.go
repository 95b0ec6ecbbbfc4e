// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package filter implements the filter field descriptors used by the
// filter bar. A field never owns its committed value: the page supplies a
// getter and an onChange callback. The field only keeps a local draft that
// diverges from the committed value while an editor is open.
package filter

// Kind discriminates the field variants
type Kind int

const (
	KindText Kind = iota
	KindSelect
	KindMultiSelect
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multi-select"
	default:
		return "unknown"
	}
}

// Field is the behaviour shared by every variant. Dispatch on Kind and
// narrow to TextInput, Choice or MultiChoice.
type Field interface {
	Kind() Kind
	Placeholder() string
	// IsEmpty reports whether the committed value is the empty default.
	IsEmpty() bool
	// Label is the trigger text derived from the committed value.
	Label() string
	// Sync copies the committed value into the draft. Editors call it on open.
	Sync()
	// Apply pushes the draft to the page.
	Apply()
	// Reset clears both the draft and the committed value.
	Reset()
	// Rollback discards the draft and resyncs it from the committed value.
	Rollback()
}

// Options is implemented by the select variants
type Options interface {
	Field
	Labels() []string
	// Selected reports whether option i is in the draft value.
	Selected(i int) bool
	Clear()
}

// Choice is a single-select field
type Choice interface {
	Options
	Choose(i int)
	Immediate() bool
}

// MultiChoice is a multi-select field
type MultiChoice interface {
	Options
	Toggle(i int)
	Count() int
}

// TextInput is a free text field
type TextInput interface {
	Field
	Main() bool
	Text() string
	SetText(v string)
}

// Option is one selectable value. Selection compares Value with ==.
type Option[T comparable] struct {
	Label string
	Value T
}

// draft implements the local/apply/reset/rollback protocol for any value type.
type draft[V any] struct {
	get   func() V
	set   func(V)
	empty func() V
	clone func(V) V
	local V
}

func newDraft[V any](get func() V, set func(V), empty func() V, clone func(V) V) draft[V] {
	if get == nil {
		panic("filter: field declared without a getter")
	}
	if set == nil {
		set = func(V) {}
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}
	d := draft[V]{get: get, set: set, empty: empty, clone: clone}
	d.local = clone(get())
	return d
}

func (d *draft[V]) committed() V {
	return d.get()
}

// Local returns the draft value
func (d *draft[V]) Local() V {
	return d.local
}

// SetLocal replaces the draft value
func (d *draft[V]) SetLocal(v V) {
	d.local = v
}

func (d *draft[V]) Sync() {
	d.local = d.clone(d.get())
}

func (d *draft[V]) Apply() {
	d.set(d.clone(d.local))
}

func (d *draft[V]) Reset() {
	d.local = d.empty()
	d.set(d.empty())
}

func (d *draft[V]) Rollback() {
	d.Sync()
}
