// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package popup holds the window registry behind the floating request
// popups. The registry is an ordered sequence of records: position in the
// sequence is the stacking order and the last record is the focused one.
package popup

import (
	"slices"
	"strings"
)

// Body renders the content area of a popup window.
type Body interface {
	View(width, height int) string
}

// BodyFunc adapts a plain function to Body.
type BodyFunc func(width, height int) string

// View implements Body
func (f BodyFunc) View(width, height int) string {
	return f(width, height)
}

// Model is an open request supplied by the caller
type Model struct {
	ID    string
	Title string
	Icon  string
	Body  Body
	Data  any
}

// Record is a Model plus the window state owned by the registry.
// X and Y of zero mean the window has not been positioned yet.
type Record struct {
	Model
	X      int
	Y      int
	Hidden bool
}

// Positioned reports whether the record has left the (0,0) sentinel.
func (r Record) Positioned() bool {
	return r.X != 0 || r.Y != 0
}

// Patch is a partial record update. Nil fields are left untouched.
type Patch struct {
	X      *int
	Y      *int
	Hidden *bool
	Title  *string
}

// Registry owns the ordered window records
type Registry struct {
	records  []Record
	onChange func()
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// MustRegistry returns r, panicking when it is nil. Components that render
// or mutate popups take the registry explicitly and call this at
// construction time.
func MustRegistry(r *Registry) *Registry {
	if r == nil {
		panic("popup: component constructed without a registry")
	}
	return r
}

// OnChange installs a callback invoked after every mutation.
func (r *Registry) OnChange(fn func()) {
	r.onChange = fn
}

func (r *Registry) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Add appends a new record, or reopens the existing one with the same id.
func (r *Registry) Add(m Model) {
	if r.indexOf(m.ID) >= 0 {
		r.Open(m.ID)
		return
	}
	r.records = append(r.records, Record{Model: m})
	r.changed()
}

// Close removes the record. Unknown ids are ignored.
func (r *Registry) Close(id string) {
	if r.removeByID(id) {
		r.changed()
	}
}

// Hide marks the record hidden without moving it in the sequence.
func (r *Registry) Hide(id string) {
	hidden := true
	if r.patchByID(id, Patch{Hidden: &hidden}) {
		r.changed()
	}
}

// Open shows the record and brings it to the top.
func (r *Registry) Open(id string) {
	visible := false
	patched := r.patchByID(id, Patch{Hidden: &visible})
	moved := r.focus(id)
	if patched || moved {
		r.changed()
	}
}

// Focus moves the record to the top of the stack and clears its hidden
// flag. Focusing the topmost record is a no-op.
func (r *Registry) Focus(id string) {
	if r.focus(id) {
		r.changed()
	}
}

func (r *Registry) focus(id string) bool {
	if len(r.records) == 0 {
		return false
	}
	if r.records[len(r.records)-1].ID == id {
		return false
	}
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.moveToEnd(idx)
	r.records[len(r.records)-1].Hidden = false
	return true
}

// UpdatePosition sets the record's top-left corner.
func (r *Registry) UpdatePosition(id string, x, y int) {
	r.Update(id, Patch{X: &x, Y: &y})
}

// Update merge-patches the record. Unknown ids are ignored.
func (r *Registry) Update(id string, p Patch) {
	if r.patchByID(id, p) {
		r.changed()
	}
}

// HideAll hides every record, keeping their order.
func (r *Registry) HideAll() {
	if len(r.records) == 0 {
		return
	}
	for i := range r.records {
		r.records[i].Hidden = true
	}
	r.changed()
}

// Get returns a copy of the record with the given id.
func (r *Registry) Get(id string) (Record, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Record{}, false
	}
	return r.records[idx], true
}

// Top returns the last record in the sequence.
func (r *Registry) Top() (Record, bool) {
	if len(r.records) == 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// IsTop reports whether id is the last record in the sequence.
func (r *Registry) IsTop(id string) bool {
	top, ok := r.Top()
	return ok && top.ID == id
}

// Len returns the number of records, hidden ones included.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns a copy of the sequence in stacking order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Visible returns the non-hidden records in paint order, bottom first.
func (r *Registry) Visible() []Record {
	var out []Record
	for _, rec := range r.records {
		if !rec.Hidden {
			out = append(out, rec)
		}
	}
	return out
}

// Sorted returns the records ordered by title for list display. The
// stacking sequence is not touched.
func (r *Registry) Sorted() []Record {
	out := r.Records()
	slices.SortStableFunc(out, func(a, b Record) int {
		return strings.Compare(a.Title, b.Title)
	})
	return out
}

// IDs returns the record ids in stacking order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.records))
	for i, rec := range r.records {
		ids[i] = rec.ID
	}
	return ids
}

func (r *Registry) indexOf(id string) int {
	return slices.IndexFunc(r.records, func(rec Record) bool { return rec.ID == id })
}

func (r *Registry) moveToEnd(idx int) {
	rec := r.records[idx]
	copy(r.records[idx:], r.records[idx+1:])
	r.records[len(r.records)-1] = rec
}

func (r *Registry) patchByID(id string, p Patch) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	rec := &r.records[idx]
	if p.X != nil {
		rec.X = *p.X
	}
	if p.Y != nil {
		rec.Y = *p.Y
	}
	if p.Hidden != nil {
		rec.Hidden = *p.Hidden
	}
	if p.Title != nil {
		rec.Title = *p.Title
	}
	return true
}

func (r *Registry) removeByID(id string) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.records = append(r.records[:idx], r.records[idx+1:]...)
	return true
}
