// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/green/reqdesk/internal/requests"
)

func TestRequestDetailView(t *testing.T) {
	r := requests.MockRows()[4]
	d := NewRequestDetail(testStyles(), r)
	out := d.View(50, 20)

	assert.Contains(t, out, "Request 5")
	assert.Contains(t, out, "Processing")
	assert.Contains(t, out, "Emily (Broker)")
	assert.Contains(t, out, r.PartnerNo)
	assert.Contains(t, out, "Reason 5")
	assert.Equal(t, r, d.Request())
}

func TestRequestDetailHighlight(t *testing.T) {
	d := NewRequestDetail(testStyles(), requests.MockRows()[0])
	d.SetHighlight("ALICE")
	assert.Contains(t, d.View(50, 20), "Alice")
	assert.Equal(t, "xx Alice yy", d.highlightMatches("xx Alice yy"))
}

func TestDraftRequestView(t *testing.T) {
	out := NewDraftRequest(testStyles(), "abc-123").View(40, 10)
	assert.Contains(t, out, "New request")
	assert.Contains(t, out, "abc-123")
}
