// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/theme"
)

var bp = theme.Breakpoints{Small: 80, Medium: 120}

type barPage struct {
	query   string
	selects [5]*int
}

func barFields(p *barPage) []Field {
	fields := []Field{NewText(TextConfig{
		Placeholder: "Search",
		Main:        true,
		Get:         func() string { return p.query },
		OnChange:    func(v string) { p.query = v },
	})}
	for i := range p.selects {
		fields = append(fields, NewSelect(SelectConfig[int]{
			Placeholder: fmt.Sprintf("Select %d", i+1),
			Options:     []Option[int]{{Label: "one", Value: 1}, {Label: "two", Value: 2}},
			Get:         func() *int { return p.selects[i] },
			OnChange:    func(v *int) { p.selects[i] = v },
		}))
	}
	return fields
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		width int
		want  Mode
	}{
		{40, ModeMobile},
		{79, ModeMobile},
		{80, ModeMedium},
		{119, ModeMedium},
		{120, ModeDesktop},
		{200, ModeDesktop},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, ModeFor(tt.width, bp))
		})
	}
}

func TestLayoutDesktopWithBadge(t *testing.T) {
	one, two := 1, 2
	p := &barPage{}
	p.selects[1] = &one
	p.selects[4] = &two
	fields := barFields(p)

	l := Layout(fields, 160, bp)

	require.NotNil(t, l.Main)
	assert.Equal(t, "Search", l.Main.Placeholder())
	assert.Equal(t, 4, l.Limit)
	assert.Len(t, l.Inline, 4)
	require.Len(t, l.Overflow, 1)
	assert.Equal(t, "Select 5", l.Overflow[0].Placeholder())
	assert.True(t, l.HasOverflow())
	assert.Equal(t, 2, l.Badge)
}

func TestLayoutSlotLimits(t *testing.T) {
	tests := []struct {
		width    int
		inline   int
		overflow int
	}{
		{160, 4, 1},
		{100, 2, 3},
		{60, 1, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.width), func(t *testing.T) {
			l := Layout(barFields(&barPage{}), tt.width, bp)
			assert.Len(t, l.Inline, tt.inline)
			assert.Len(t, l.Overflow, tt.overflow)
			assert.Zero(t, l.Badge)
		})
	}
}

func TestLayoutWithoutOverflow(t *testing.T) {
	fields := barFields(&barPage{})[:3]
	l := Layout(fields, 160, bp)
	assert.Len(t, l.Inline, 2)
	assert.False(t, l.HasOverflow())
}

func TestMainFieldNotCountedInBadge(t *testing.T) {
	p := &barPage{query: "novak"}
	l := Layout(barFields(p), 160, bp)
	assert.Zero(t, l.Badge)
}

func TestValidate(t *testing.T) {
	p := &barPage{}
	fields := barFields(p)
	require.NoError(t, Validate(fields))

	fields = append(fields, NewText(TextConfig{
		Placeholder: "Second",
		Main:        true,
		Get:         func() string { return "" },
	}))
	assert.Error(t, Validate(fields))
}

func TestClearAll(t *testing.T) {
	one := 1
	p := &barPage{query: "abc"}
	p.selects[0] = &one
	p.selects[3] = &one
	fields := barFields(p)

	ClearAll(fields)

	assert.Empty(t, p.query)
	for i, s := range p.selects {
		assert.Nil(t, s, "select %d", i)
	}
	assert.Zero(t, Layout(fields, 160, bp).Badge)
}

func TestApplyAndRollbackAll(t *testing.T) {
	p := &barPage{}
	fields := barFields(p)
	SyncAll(fields)

	fields[1].(Choice).Choose(0)
	fields[2].(Choice).Choose(1)
	RollbackAll(fields)
	assert.Nil(t, p.selects[0])

	fields[1].(Choice).Choose(0)
	ApplyAll(fields)
	require.NotNil(t, p.selects[0])
	assert.Equal(t, 1, *p.selects[0])
	assert.Nil(t, p.selects[1])
}
