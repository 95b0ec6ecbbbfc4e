// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/tui/styles"
)

type testPage struct {
	q         string
	status    []int
	requester *int
	client    *int
	partner   []int
	city      *int
}

func opts(labels ...string) []filter.Option[int] {
	out := make([]filter.Option[int], len(labels))
	for i, l := range labels {
		out[i] = filter.Option[int]{Label: l, Value: i + 1}
	}
	return out
}

func testFields(p *testPage) []filter.Field {
	return []filter.Field{
		filter.NewText(filter.TextConfig{
			Placeholder: "Search",
			Main:        true,
			Get:         func() string { return p.q },
			OnChange:    func(v string) { p.q = v },
		}),
		filter.NewMultiSelect(filter.MultiSelectConfig[int]{
			Placeholder: "Status",
			Options:     opts("Sent", "Processing", "Completed"),
			Get:         func() []int { return p.status },
			OnChange:    func(v []int) { p.status = v },
		}),
		filter.NewSelect(filter.SelectConfig[int]{
			Placeholder: "Requester",
			Options:     opts("Client", "Broker", "Salesperson"),
			Immediate:   true,
			Get:         func() *int { return p.requester },
			OnChange:    func(v *int) { p.requester = v },
		}),
		filter.NewSelect(filter.SelectConfig[int]{
			Placeholder: "Client",
			Options:     opts("100001", "100002", "100003", "100004", "100005", "100006", "100007", "123456"),
			Get:         func() *int { return p.client },
			OnChange:    func(v *int) { p.client = v },
		}),
		filter.NewMultiSelect(filter.MultiSelectConfig[int]{
			Placeholder: "Partner",
			Options:     opts("11", "22", "33"),
			Get:         func() []int { return p.partner },
			OnChange:    func(v []int) { p.partner = v },
		}),
		filter.NewSelect(filter.SelectConfig[int]{
			Placeholder: "City",
			Options:     opts("Bratislava", "Košice", "Žilina", "Nitra"),
			Get:         func() *int { return p.city },
			OnChange:    func(v *int) { p.city = v },
		}),
	}
}

func newTestBar(p *testPage, width int) *FilterBar {
	b := NewFilterBar(testStyles(), styles.DefaultKeyMap(), testFields(p))
	b.SetOrigin(0, 3)
	b.SetWidth(width)
	return b
}

func itemKinds(b *FilterBar) []barItemKind {
	var out []barItemKind
	for _, it := range b.items {
		out = append(out, it.kind)
	}
	return out
}

func intp(v int) *int { return &v }

func TestFilterBarPanicsOnTwoMainFields(t *testing.T) {
	p := &testPage{}
	fields := testFields(p)
	fields = append(fields, filter.NewText(filter.TextConfig{Main: true, Get: func() string { return "" }}))
	assert.Panics(t, func() { NewFilterBar(testStyles(), styles.DefaultKeyMap(), fields) })
}

func TestFilterBarDesktopLayout(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)

	assert.Equal(t, filter.ModeDesktop, b.Mode())
	assert.Equal(t, []barItemKind{
		barItemSearch, barItemTrigger, barItemTrigger, barItemTrigger, barItemTrigger, barItemOverflow,
	}, itemKinds(b))
}

func TestFilterBarNarrowLayouts(t *testing.T) {
	p := &testPage{}

	b := newTestBar(p, 100)
	assert.Equal(t, filter.ModeMedium, b.Mode())
	assert.Len(t, b.Layout().Inline, 2)
	assert.Len(t, b.Layout().Overflow, 3)

	b = newTestBar(p, 60)
	assert.Equal(t, filter.ModeMobile, b.Mode())
	assert.Equal(t, []barItemKind{barItemSearch, barItemTrigger, barItemOverflow}, itemKinds(b))
}

func TestFilterBarModeFollowsViewportNotBarWidth(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 112)
	b.SetViewportWidth(140)

	assert.Equal(t, filter.ModeDesktop, b.Mode())
	assert.Len(t, b.Layout().Inline, 4)

	b.SetViewportWidth(100)
	assert.Equal(t, filter.ModeMedium, b.Mode())
	assert.Len(t, b.Layout().Inline, 2)
}

func TestFilterBarHitBoxesReadyWithoutRender(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)

	for i, it := range b.items {
		assert.Greater(t, it.x1, it.x0, "item %d", i)
		if i > 0 {
			assert.Equal(t, b.items[i-1].x1+1, it.x0, "item %d", i)
		}
	}

	// spans match what View draws
	line := strings.Split(ansi.Strip(b.View()), "\n")[0]
	trig := b.items[1]
	label := trig.field.Label()
	idx := strings.Index(line, label)
	require.GreaterOrEqual(t, idx, 0)
	pad := testStyles().Tokens.Spacing
	assert.Equal(t, trig.x0+pad, ansi.StringWidth(line[:idx]))

	hit, cmd := b.HandleMouse(press(trig.x0, 3))
	require.True(t, hit)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, OpenEditorMsg{}, msgs[0])
}

func TestFilterBarClearShownOnlyWhenActive(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)
	assert.NotContains(t, itemKinds(b), barItemClear)

	p.requester = intp(2)
	b.Refresh()
	b.View()
	assert.Contains(t, itemKinds(b), barItemClear)
	assert.Equal(t, 1, b.Layout().Badge)
	assert.Contains(t, b.View(), "Broker")
}

func TestFilterBarClickTriggerOpensEditor(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)

	it := b.items[2]
	require.Equal(t, barItemTrigger, it.kind)
	hit, cmd := b.HandleMouse(press(it.x0+1, 3))
	require.True(t, hit)

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	open, ok := msgs[0].(OpenEditorMsg)
	require.True(t, ok)
	assert.Same(t, it.field, open.Field)
	assert.Equal(t, it.x0, open.X)
	assert.Equal(t, 4, open.Y, "editor anchors on the row below the bar")
	assert.Equal(t, filter.ModeDesktop, open.Mode)
}

func TestFilterBarClickOverflow(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)

	it := b.items[len(b.items)-1]
	require.Equal(t, barItemOverflow, it.kind)
	_, cmd := b.HandleMouse(press(it.x0, 3))

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	open, ok := msgs[0].(OpenOverflowMsg)
	require.True(t, ok)
	require.Len(t, open.Fields, 1)
	assert.Equal(t, "City", open.Fields[0].Placeholder())
}

func TestFilterBarPressOffRowIgnored(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)

	hit, cmd := b.HandleMouse(press(5, 10))
	assert.False(t, hit)
	assert.Nil(t, cmd)
}

func TestFilterBarClearResetsEveryField(t *testing.T) {
	p := &testPage{q: "abc", status: []int{1, 3}, city: intp(2)}
	b := newTestBar(p, 160)

	it := b.items[len(b.items)-1]
	require.Equal(t, barItemClear, it.kind)
	_, cmd := b.HandleMouse(press(it.x0, 3))

	assert.Equal(t, []tea.Msg{FiltersChangedMsg{}}, drain(cmd))
	assert.Empty(t, p.q)
	assert.Equal(t, []int{}, p.status)
	assert.Nil(t, p.city)
	assert.Zero(t, b.Layout().Badge)
}

func TestFilterBarSearchAppliesEveryKeystroke(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)
	b.FocusSearch()
	require.True(t, b.Editing())

	b.Update(keyRunes("b"))
	assert.Equal(t, "b", p.q)
	b.Update(keyRunes("r"))
	assert.Equal(t, "br", p.q)

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, b.Focused())
}

func TestFilterBarKeyboardActivation(t *testing.T) {
	p := &testPage{}
	b := newTestBar(p, 160)
	b.Focus()
	// leave the search input
	b.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, b.Editing())

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	open := msgs[0].(OpenEditorMsg)
	assert.Equal(t, "Status", open.Field.Placeholder())
}
