// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/tui/styles"
)

// table at origin (0, 5), ten rows tall: six request rows visible.
func newTestTable() *RequestTable {
	tbl := NewRequestTable(testStyles(), styles.DefaultKeyMap())
	tbl.SetOrigin(0, 5)
	tbl.SetSize(120, 10)
	tbl.SetRows(requests.MockRows())
	return tbl
}

func TestTableKeyboardNavigation(t *testing.T) {
	tbl := newTestTable()

	tbl.Update(down())
	tbl.Update(down())
	assert.Equal(t, 2, tbl.Cursor())

	tbl.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 19, tbl.Cursor())
	assert.Equal(t, 14, tbl.offset)

	tbl.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Zero(t, tbl.Cursor())
	assert.Zero(t, tbl.offset)

	_, cmd := tbl.Update(enter())
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	open := msgs[0].(OpenRequestMsg)
	assert.Equal(t, 0, open.Index)
	assert.Equal(t, "Request 1", open.Request.Name)
}

func TestTableClickOpensRow(t *testing.T) {
	tbl := newTestTable()

	// border, header and separator precede the first row
	handled, cmd := tbl.HandleMouse(press(10, 10))
	require.True(t, handled)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, 2, msgs[0].(OpenRequestMsg).Index)
	assert.Equal(t, 2, tbl.Cursor())

	handled, cmd = tbl.HandleMouse(press(10, 6))
	assert.True(t, handled)
	assert.Nil(t, cmd)

	handled, _ = tbl.HandleMouse(press(10, 30))
	assert.False(t, handled)
}

func TestTableWheelScrollsClamped(t *testing.T) {
	tbl := newTestTable()
	wheel := tea.MouseMsg{X: 10, Y: 8, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	for i := 0; i < 10; i++ {
		tbl.HandleMouse(wheel)
	}
	assert.Equal(t, 14, tbl.offset)

	wheel.Button = tea.MouseButtonWheelUp
	tbl.HandleMouse(wheel)
	assert.Equal(t, 11, tbl.offset)
}

func TestTableSetRowsKeepsCursorInRange(t *testing.T) {
	tbl := newTestTable()
	tbl.SetCursor(15)
	tbl.SetRows(requests.MockRows()[:4])
	assert.Equal(t, 3, tbl.Cursor())

	r, ok := tbl.Selected()
	require.True(t, ok)
	assert.Equal(t, "Request 4", r.Name)
}

func TestTableView(t *testing.T) {
	tbl := newTestTable()
	out := tbl.View()
	assert.Contains(t, out, "REQUESTER")
	assert.Contains(t, out, "Request 1")
	assert.Contains(t, out, "Sent")
	assert.NotContains(t, out, "Request 7 ")

	tbl.SetRows(nil)
	assert.Contains(t, tbl.View(), "No requests match")
	_, ok := tbl.Selected()
	assert.False(t, ok)
}
