// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package filter

import (
	"fmt"

	"github.com/green/reqdesk/internal/theme"
)

// Mode is the presentation chosen from the viewport width
type Mode int

const (
	ModeDesktop Mode = iota
	ModeMedium
	ModeMobile
)

func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeMedium:
		return "medium"
	case ModeMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// SlotLimit is how many non-main fields render inline in this mode.
func (m Mode) SlotLimit() int {
	switch m {
	case ModeMobile:
		return 1
	case ModeMedium:
		return 2
	default:
		return 4
	}
}

// ModeFor maps a width in columns to a presentation mode.
func ModeFor(width int, bp theme.Breakpoints) Mode {
	switch {
	case width < bp.Small:
		return ModeMobile
	case width < bp.Medium:
		return ModeMedium
	default:
		return ModeDesktop
	}
}

// BarLayout splits a bar's fields for one presentation mode
type BarLayout struct {
	Mode     Mode
	Main     TextInput
	Inline   []Field
	Overflow []Field
	Limit    int
	// Badge counts non-main fields with a committed value.
	Badge int
}

// HasOverflow reports whether the overflow trigger should render.
func (l BarLayout) HasOverflow() bool {
	return len(l.Overflow) > 0
}

// Validate rejects bars with more than one main text field.
func Validate(fields []Field) error {
	mains := 0
	for _, f := range fields {
		if isMain(f) {
			mains++
		}
	}
	if mains > 1 {
		return fmt.Errorf("filter bar declares %d main fields, at most one allowed", mains)
	}
	return nil
}

// Layout computes the inline and overflow split. The breakpoints apply to
// the viewport width, not to the space left for the bar.
func Layout(fields []Field, viewportWidth int, bp theme.Breakpoints) BarLayout {
	mode := ModeFor(viewportWidth, bp)
	l := BarLayout{Mode: mode, Limit: mode.SlotLimit()}
	for _, f := range fields {
		if isMain(f) {
			if l.Main == nil {
				l.Main = f.(TextInput)
			}
			continue
		}
		if !f.IsEmpty() {
			l.Badge++
		}
		if len(l.Inline) < l.Limit {
			l.Inline = append(l.Inline, f)
		} else {
			l.Overflow = append(l.Overflow, f)
		}
	}
	return l
}

func isMain(f Field) bool {
	switch f.Kind() {
	case KindText:
		t, ok := f.(TextInput)
		return ok && t.Main()
	case KindSelect, KindMultiSelect:
		return false
	default:
		return false
	}
}

// ClearAll resets every field, committed values included.
func ClearAll(fields []Field) {
	for _, f := range fields {
		f.Reset()
	}
}

// ApplyAll pushes every draft to the page.
func ApplyAll(fields []Field) {
	for _, f := range fields {
		f.Apply()
	}
}

// RollbackAll discards every draft.
func RollbackAll(fields []Field) {
	for _, f := range fields {
		f.Rollback()
	}
}

// SyncAll copies committed values into every draft.
func SyncAll(fields []Field) {
	for _, f := range fields {
		f.Sync()
	}
}
