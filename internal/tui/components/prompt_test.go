// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickOpenSubmit(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7", 7},
		{" 12 ", 12},
		{"Request 3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := NewQuickOpen(testStyles())
			q.Show()
			q.textInput.SetValue(tt.input)

			_, cmd := q.Update(enter())
			assert.False(t, q.IsVisible())
			msgs := drain(cmd)
			require.Len(t, msgs, 1)
			assert.Equal(t, QuickOpenSubmitMsg{Number: tt.want}, msgs[0])
		})
	}
}

func TestQuickOpenRejectsGarbage(t *testing.T) {
	q := NewQuickOpen(testStyles())
	q.Show()
	q.textInput.SetValue("abc")

	_, cmd := q.Update(enter())
	assert.Nil(t, cmd)
	assert.True(t, q.IsVisible())
	assert.Contains(t, q.View(), "not a request number")
}

func TestQuickOpenCancel(t *testing.T) {
	q := NewQuickOpen(testStyles())
	q.Show()

	_, cmd := q.Update(esc())
	assert.False(t, q.IsVisible())
	assert.Equal(t, []tea.Msg{QuickOpenCancelMsg{}}, drain(cmd))
	assert.Empty(t, q.View())
}

func TestModalConfirmError(t *testing.T) {
	m := NewModal(testStyles())
	var got string
	m.ShowTextInput("Save preset", "Slot", "", func(v string) error {
		if v == "" {
			return errors.New("slot is required")
		}
		got = v
		return nil
	}, nil)

	m.Update(enter())
	assert.True(t, m.IsVisible())
	assert.Contains(t, m.View(), "slot is required")

	m.textInput.SetValue("3")
	m.Update(enter())
	assert.False(t, m.IsVisible())
	assert.Equal(t, "3", got)
}

func TestModalCancel(t *testing.T) {
	m := NewModal(testStyles())
	cancelled := false
	m.ShowTextInput("Save preset", "", "1", func(string) error { return nil }, func() { cancelled = true })

	m.Update(esc())
	assert.True(t, cancelled)
	assert.False(t, m.IsVisible())
}
