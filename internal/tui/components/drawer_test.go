// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/popup"
	"github.com/green/reqdesk/internal/router"
	"github.com/green/reqdesk/internal/tui/styles"
)

// drawer rows from origin (0, 1): title, blank, three routes, blank,
// section header, then popups sorted by title.
func newTestDrawer(reg *popup.Registry) *Drawer {
	d := NewDrawer(testStyles(), styles.DefaultKeyMap(), reg)
	d.SetOrigin(0, 1)
	d.SetHeight(20)
	d.View()
	return d
}

func TestDrawerPanicsWithoutRegistry(t *testing.T) {
	assert.Panics(t, func() { NewDrawer(testStyles(), styles.DefaultKeyMap(), nil) })
}

func TestDrawerListsPopupsSortedByTitle(t *testing.T) {
	reg := popup.NewRegistry()
	reg.Add(popup.Model{ID: "2", Title: "Request 3"})
	reg.Add(popup.Model{ID: "0", Title: "Request 1"})
	d := newTestDrawer(reg)

	out := d.View()
	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "Open requests")
	assert.Less(t, strings.Index(out, "Request 1"), strings.Index(out, "Request 3"))
	assert.NotContains(t, out, "none")

	// the sequence itself is untouched
	assert.Equal(t, []string{"2", "0"}, reg.IDs())
}

func TestDrawerEmptyPopupList(t *testing.T) {
	d := newTestDrawer(popup.NewRegistry())
	assert.Contains(t, d.View(), "none")
}

func TestDrawerClickRouteNavigates(t *testing.T) {
	d := newTestDrawer(popup.NewRegistry())

	handled, cmd := d.HandleMouse(press(3, 4))
	require.True(t, handled)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, router.Stats, msgs[0].(NavigateMsg).Route.Name)
}

func TestDrawerClickOpensHiddenPopup(t *testing.T) {
	reg := popup.NewRegistry()
	reg.Add(popup.Model{ID: "0", Title: "Request 1"})
	reg.Add(popup.Model{ID: "2", Title: "Request 3"})
	reg.Hide("0")
	d := newTestDrawer(reg)

	handled, cmd := d.HandleMouse(press(3, 8))
	require.True(t, handled)
	assert.Nil(t, cmd)

	rec, ok := reg.Top()
	require.True(t, ok)
	assert.Equal(t, "0", rec.ID)
	assert.False(t, rec.Hidden)
}

func TestDrawerCloseMark(t *testing.T) {
	reg := popup.NewRegistry()
	reg.Add(popup.Model{ID: "0", Title: "Request 1"})
	reg.Add(popup.Model{ID: "2", Title: "Request 3"})
	d := newTestDrawer(reg)

	handled, _ := d.HandleMouse(press(24, 8))
	require.True(t, handled)
	assert.Equal(t, []string{"2"}, reg.IDs())
}

func TestDrawerKeyboard(t *testing.T) {
	reg := popup.NewRegistry()
	reg.Add(popup.Model{ID: "0", Title: "Request 1"})
	d := newTestDrawer(reg)
	d.SetFocused(true)

	d.Update(down())
	_, cmd := d.Update(enter())
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, router.Stats, msgs[0].(NavigateMsg).Route.Name)

	d.Update(down())
	d.Update(down())
	d.Update(keyRunes("x"))
	assert.Zero(t, reg.Len())

	d.Update(esc())
	assert.False(t, d.IsFocused())
}

func TestDrawerToggle(t *testing.T) {
	d := newTestDrawer(popup.NewRegistry())
	d.SetFocused(true)
	d.Toggle()

	assert.False(t, d.IsVisible())
	assert.False(t, d.IsFocused())
	assert.Zero(t, d.Width())
	assert.Empty(t, d.View())
	handled, _ := d.HandleMouse(press(3, 4))
	assert.False(t, handled)

	d.SetFocused(true)
	assert.False(t, d.IsFocused())
}
