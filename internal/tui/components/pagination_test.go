// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/green/reqdesk/internal/requests"
)

func newTestPagination(page, size int) *Pagination {
	p := NewPagination(testStyles())
	p.SetOrigin(0, 30)
	p.SetWidth(100)
	p.Set(page, size, requests.TotalCount)
	return p
}

// clickHit presses hit box i and returns the requested change.
func clickHit(t *testing.T, p *Pagination, i int) PageChangeMsg {
	t.Helper()
	require.Greater(t, len(p.hits), i)
	handled, cmd := p.HandleMouse(press(p.hits[i].x0, 30))
	require.True(t, handled)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	return msgs[0].(PageChangeMsg)
}

func TestPaginationView(t *testing.T) {
	p := newTestPagination(2, 25)
	out := p.View()
	assert.Contains(t, out, "Rows per page:")
	assert.Contains(t, out, "26–50 of 389")
	assert.Contains(t, out, "Page 2 / 16")
}

func TestPaginationClicks(t *testing.T) {
	p := newTestPagination(2, 25)

	// size selector, previous, next
	assert.Equal(t, PageChangeMsg{Page: 1, Size: 50}, clickHit(t, p, 0))
	assert.Equal(t, PageChangeMsg{Page: 1, Size: 25}, clickHit(t, p, 1))
	assert.Equal(t, PageChangeMsg{Page: 3, Size: 25}, clickHit(t, p, 2))
}

func TestPaginationEdges(t *testing.T) {
	p := newTestPagination(1, 25)
	assert.Equal(t, 1, p.Prev().Page)

	p = newTestPagination(99, 100)
	assert.Equal(t, 4, p.Page())
	assert.Equal(t, 4, p.Next().Page)

	// the size selector wraps from the largest size
	assert.Equal(t, PageChangeMsg{Page: 1, Size: 25}, clickHit(t, p, 0))
}

func TestPaginationResize(t *testing.T) {
	p := newTestPagination(3, 50)
	assert.Equal(t, PageChangeMsg{Page: 1, Size: 100}, p.Resize(1))
	assert.Equal(t, PageChangeMsg{Page: 1, Size: 25}, p.Resize(-1))

	p = newTestPagination(1, 25)
	assert.Equal(t, 25, p.Resize(-1).Size)
}

func TestPaginationIgnoresOtherRows(t *testing.T) {
	p := newTestPagination(1, 25)
	handled, _ := p.HandleMouse(press(p.hits[0].x0, 29))
	assert.False(t, handled)
}

func TestPaginationPageBounds(t *testing.T) {
	tests := []struct {
		page, size int
		wantPage   int
		want       []string
	}{
		{16, 25, 16, []string{"376–389 of 389", "Page 16 / 16"}},
		{0, 25, 1, []string{"1–25 of 389", "Page 1 / 16"}},
		{9, 50, 8, []string{"351–389 of 389", "Page 8 / 8"}},
		{9, 100, 4, []string{"301–389 of 389", "Page 4 / 4"}},
	}
	for _, tt := range tests {
		p := newTestPagination(tt.page, tt.size)
		assert.Equal(t, tt.wantPage, p.Page())
		out := p.View()
		for _, w := range tt.want {
			assert.Contains(t, out, w)
		}
	}
}

func TestPaginationWithoutRows(t *testing.T) {
	p := NewPagination(testStyles())
	p.SetWidth(100)
	p.Set(3, 25, 0)
	assert.Equal(t, 1, p.Page())
	assert.Contains(t, p.View(), "0–0 of 0")
	assert.Contains(t, p.View(), "Page 1 / 1")
	assert.Equal(t, 1, p.Next().Page)
}
