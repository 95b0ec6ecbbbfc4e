// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package tui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/config"
	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/router"
	"github.com/green/reqdesk/internal/tui/components"
)

func newTestModel(t *testing.T, width int) *Model {
	t.Helper()
	cfg := config.NewManager(t.TempDir())
	cfg.Get().UI.Theme = "light"
	m := NewModel(Options{Config: cfg, Version: "test"})
	m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// deliver feeds msg to the model and returns the command without running it
func deliver(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// settle finishes a pending delayed filter recompute
func settle(m *Model) {
	m.Update(filtersAppliedMsg{seq: m.filterSeq})
}

func TestRowClickOpensPopup(t *testing.T) {
	m := newTestModel(t, 140)
	m.View()

	// drawer, then table border, header and separator
	x := m.contentX() + 10
	y := barRow + m.bar.Height() + 3 + 2
	_, cmd := m.table.HandleMouse(press(x, y))
	require.NotNil(t, cmd)
	m.Update(cmd())

	rec, ok := m.reg.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Request 3", rec.Title)
	assert.False(t, rec.Hidden)

	// opening again brings the same record forward
	m.Update(components.OpenRequestMsg{Index: 2, Request: m.all[2]})
	assert.Equal(t, 1, m.reg.Len())
}

func TestNavigateHidesPopups(t *testing.T) {
	m := newTestModel(t, 140)
	m.Update(components.OpenRequestMsg{Request: m.all[0]})
	m.Update(components.OpenRequestMsg{Request: m.all[1]})

	m.Update(components.NavigateMsg{Route: router.Get(router.Stats)})
	assert.Equal(t, router.Stats, m.route.Name)
	assert.Equal(t, 2, m.reg.Len())
	assert.Empty(t, m.reg.Visible())
	assert.False(t, m.popups.HasVisible())
}

func TestFilterChangeRecomputesRowsAfterDelay(t *testing.T) {
	m := newTestModel(t, 140)
	require.Len(t, m.table.Rows(), 20)

	m.query.Status = []int{requests.StatusSent}
	cmd := deliver(m, components.FiltersChangedMsg{})
	assert.NotNil(t, cmd)
	assert.True(t, m.statusBar.Loading())
	assert.Len(t, m.table.Rows(), 20)

	// a stale recompute is dropped
	stale := m.filterSeq
	deliver(m, components.FiltersChangedMsg{})
	m.Update(filtersAppliedMsg{seq: stale})
	assert.True(t, m.statusBar.Loading())

	settle(m)
	assert.False(t, m.statusBar.Loading())
	assert.Len(t, m.table.Rows(), 7)
}

func TestClearFiltersKey(t *testing.T) {
	m := newTestModel(t, 140)
	m.query.Q = "alice"
	m.query.Status = []int{requests.StatusSent}
	m.bar.Refresh()

	deliver(m, runes("X"))
	settle(m)
	assert.False(t, m.query.Active())
	assert.Len(t, m.table.Rows(), 20)
}

func TestNewRequestDraft(t *testing.T) {
	m := newTestModel(t, 140)
	deliver(m, runes("n"))

	ids := m.reg.IDs()
	require.Len(t, ids, 1)
	_, err := uuid.Parse(ids[0])
	assert.NoError(t, err)

	deliver(m, runes("t"))
	assert.Equal(t, tabNew, m.tab)
	assert.Equal(t, 2, m.reg.Len())
}

func TestQuickOpen(t *testing.T) {
	m := newTestModel(t, 140)

	m.Update(components.QuickOpenSubmitMsg{Number: 5})
	rec, ok := m.reg.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Request 5", rec.Title)

	m.Update(components.QuickOpenSubmitMsg{Number: 99})
	assert.Equal(t, 1, m.reg.Len())
	assert.Contains(t, m.statusBar.Message(), "Request 99 not found")
}

func TestPresetSaveAndApply(t *testing.T) {
	m := newTestModel(t, 140)
	m.query.Status = []int{requests.StatusCompleted}
	r := requests.RequesterBroker
	m.query.Requester = &r

	deliver(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.modal.IsVisible())
	deliver(m, runes("3"))
	deliver(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.modal.IsVisible())

	require.NotNil(t, m.cfg.GetPreset("3"))
	_, err := os.Stat(m.cfg.Path())
	require.NoError(t, err)

	m.query = m.query.Cleared()
	deliver(m, runes("3"))
	assert.Equal(t, []int{requests.StatusCompleted}, m.query.Status)
	require.NotNil(t, m.query.Requester)
	assert.Equal(t, requests.RequesterBroker, *m.query.Requester)

	deliver(m, runes("7"))
	assert.Contains(t, m.statusBar.Message(), "No preset in slot 7")
}

func TestPageChange(t *testing.T) {
	m := newTestModel(t, 140)
	m.Update(components.PageChangeMsg{Page: 3, Size: 50})
	assert.Equal(t, 3, m.query.Page)
	assert.Equal(t, 50, m.query.PageSize)

	m.Update(components.PageChangeMsg{Page: 99, Size: 100})
	assert.Equal(t, 4, m.query.Page)
}

func TestMobileEditorIsRoute(t *testing.T) {
	m := newTestModel(t, 60)
	require.Equal(t, filter.ModeMobile, m.mode)
	assert.False(t, m.drawer.IsVisible())

	status := m.bar.Fields()[1]
	m.Update(components.OpenEditorMsg{Field: status, Mode: filter.ModeMobile})
	require.True(t, m.routes.IsVisible())
	assert.Contains(t, m.View(), "Back")

	deliver(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.routes.IsVisible())
	assert.False(t, m.editor.IsVisible())
}

func TestResizeAcrossBreakpointClosesEditor(t *testing.T) {
	m := newTestModel(t, 140)
	m.Update(components.OpenEditorMsg{Field: m.bar.Fields()[3], Mode: filter.ModeDesktop, X: 40, Y: 4})
	require.True(t, m.editor.IsVisible())

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.False(t, m.editor.IsVisible())
	assert.False(t, m.routes.IsVisible())
}

func TestCopyResultMessage(t *testing.T) {
	m := newTestModel(t, 140)
	m.Update(copyResultMsg{text: "Request 1"})
	assert.Contains(t, m.statusBar.Message(), "Copied Request 1")
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, 140)
	out := m.View()
	assert.Contains(t, out, "Requests list")
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "of 389")
	assert.Contains(t, out, "Open requests")

	deliver(m, runes("?"))
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
}

func TestUnknownStartRouteRedirects(t *testing.T) {
	cfg := config.NewManager(t.TempDir())
	cfg.Get().UI.Theme = "light"
	m := NewModel(Options{Config: cfg, Route: "/nowhere"})
	assert.Equal(t, router.Requests, m.route.Name)
}

func TestFilterBarSlotsFollowViewportWidth(t *testing.T) {
	tests := []struct {
		width  int
		mode   filter.Mode
		inline int
		drawer bool
	}{
		{140, filter.ModeDesktop, 4, true},
		{100, filter.ModeMedium, 2, true},
		{60, filter.ModeMobile, 1, false},
	}
	for _, tt := range tests {
		m := newTestModel(t, tt.width)
		assert.Equal(t, tt.drawer, m.drawer.IsVisible(), "width %d", tt.width)

		l := m.bar.Layout()
		assert.Equal(t, tt.mode, m.mode, "width %d", tt.width)
		assert.Equal(t, tt.mode, l.Mode, "width %d", tt.width)
		assert.Len(t, l.Inline, tt.inline, "width %d", tt.width)
		assert.Len(t, l.Overflow, 7-tt.inline, "width %d", tt.width)
	}
}

func TestTabClickBeforeFirstRender(t *testing.T) {
	m := newTestModel(t, 140)
	require.Len(t, m.tabHits, 2)

	m.Update(press(m.contentX()+m.tabHits[tabNew][0], tabsRow))
	assert.Equal(t, tabNew, m.tab)
	assert.Equal(t, 1, m.reg.Len())
}
