// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/tui/styles"
)

func overflowFields(p *testPage) []filter.Field {
	fields := testFields(p)
	return []filter.Field{fieldByName(fields, "Partner"), fieldByName(fields, "City")}
}

func TestOverflowPickFieldOpensEditor(t *testing.T) {
	p := &testPage{}
	o := NewOverflow(testStyles(), styles.DefaultKeyMap())
	fields := overflowFields(p)
	o.Show(fields, filter.ModeDesktop, 30, 4)

	o.Update(down())
	_, cmd := o.Update(enter())

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	open, ok := msgs[0].(OpenEditorMsg)
	require.True(t, ok)
	assert.Same(t, fields[1], open.Field)
	assert.Equal(t, 30, open.X)
	assert.Equal(t, 4, open.Y)
	assert.False(t, o.IsVisible(), "the editor replaces the anchored panel")
}

func TestOverflowClearAll(t *testing.T) {
	p := &testPage{partner: []int{2}, city: intp(1)}
	o := NewOverflow(testStyles(), styles.DefaultKeyMap())
	o.Show(overflowFields(p), filter.ModeDesktop, 0, 0)

	o.cursor = o.clearIndex()
	_, cmd := o.Update(enter())

	assert.Equal(t, []tea.Msg{OverflowDoneMsg{Result: EditorReset}}, drain(cmd))
	assert.Equal(t, []int{}, p.partner)
	assert.Nil(t, p.city)
}

func TestOverflowMobileApplyAndBack(t *testing.T) {
	p := &testPage{}
	o := NewOverflow(testStyles(), styles.DefaultKeyMap())
	fields := overflowFields(p)

	o.Show(fields, filter.ModeMobile, 0, 0)
	fields[0].(filter.MultiChoice).Toggle(0)
	o.Back()
	assert.Nil(t, p.partner)
	assert.False(t, fields[0].(filter.Options).Selected(0))

	o.Show(fields, filter.ModeMobile, 0, 0)
	fields[0].(filter.MultiChoice).Toggle(0)
	fields[1].(filter.Choice).Choose(2)
	require.Equal(t, 2, o.applyIndex())
	o.cursor = o.applyIndex()
	_, cmd := o.Update(enter())

	assert.Equal(t, []tea.Msg{OverflowDoneMsg{Result: EditorApplied}}, drain(cmd))
	assert.Equal(t, []int{1}, p.partner)
	require.NotNil(t, p.city)
	assert.Equal(t, 3, *p.city)
}

func TestOverflowClickAwayRollsBack(t *testing.T) {
	p := &testPage{}
	o := NewOverflow(testStyles(), styles.DefaultKeyMap())
	fields := overflowFields(p)
	o.Show(fields, filter.ModeDesktop, 10, 2)
	fields[0].(filter.MultiChoice).Toggle(1)

	hit, cmd := o.HandleMouse(press(0, 30))

	assert.True(t, hit)
	assert.Equal(t, []tea.Msg{OverflowDoneMsg{Result: EditorRolledBack}}, drain(cmd))
	assert.False(t, fields[0].(filter.Options).Selected(1))
}

func TestOverflowViewShowsCommittedLabels(t *testing.T) {
	p := &testPage{partner: []int{1, 2}}
	o := NewOverflow(testStyles(), styles.DefaultKeyMap())
	o.Show(overflowFields(p), filter.ModeDesktop, 0, 0)

	v := o.View()
	assert.Contains(t, v, "Partner: 11 (+1)")
	assert.Contains(t, v, "City: any")
	assert.Contains(t, v, "Clear all")
	assert.NotContains(t, v, "Apply")
}
