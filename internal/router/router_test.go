// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path  string
		want  RouteName
		found bool
	}{
		{"/", Requests, true},
		{"/stats", Stats, true},
		{"/stats/", Stats, true},
		{"/sql-scripts", SQLScripts, true},
		{"/nowhere", Requests, false},
		{"", Requests, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Lookup(tt.path)
			assert.Equal(t, tt.want, r.Name)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestRoutesOrderAndCopy(t *testing.T) {
	rs := Routes()
	assert.Len(t, rs, 3)
	assert.Equal(t, "/", rs[0].Path)
	rs[0].Title = "changed"
	assert.Equal(t, "Requests", Routes()[0].Title)
}

func TestGetAndIndex(t *testing.T) {
	assert.Equal(t, "/sql-scripts", Get(SQLScripts).Path)
	assert.Equal(t, Requests, Get(RouteName(9)).Name)
	assert.Equal(t, 1, Index(Stats))
	assert.Equal(t, 0, Index(RouteName(9)))
}
