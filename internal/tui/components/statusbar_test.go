// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusBarMessageExpires(t *testing.T) {
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewStatusBar(testStyles())
	s.now = func() time.Time { return clock }
	s.SetWidth(120)

	s.SetMessage("Copied Request 3", 2*time.Second)
	assert.Equal(t, "Copied Request 3", s.Message())
	assert.Contains(t, s.View(), "Copied Request 3")

	clock = clock.Add(3 * time.Second)
	assert.Empty(t, s.Message())
	s.Update(nil)
	assert.NotContains(t, s.View(), "Copied")
}

func TestStatusBarRightSide(t *testing.T) {
	s := NewStatusBar(testStyles())
	s.now = func() time.Time { return time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC) }
	s.SetWidth(120)
	s.SetMode("desktop")

	s.SetPopups(2, 0)
	out := s.View()
	assert.Contains(t, out, "2 open")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "desktop")
	assert.Contains(t, out, "09:05")

	s.SetPopups(3, 1)
	assert.Contains(t, s.View(), "3 open, 1 hidden")
}

func TestStatusBarLoading(t *testing.T) {
	s := NewStatusBar(testStyles())
	s.SetWidth(120)
	s.SetLoading(true, "Filtering…")
	assert.True(t, s.Loading())
	assert.Contains(t, s.View(), "Filtering…")
	assert.NotNil(t, s.SpinnerTick())

	s.SetLoading(false, "")
	assert.NotContains(t, s.View(), "Filtering")
}
