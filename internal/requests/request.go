// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package requests holds the request rows shown by the dashboard and the
// query model the filter bar edits. Rows are mocked; there is no backend.
package requests

import (
	"fmt"
	"strconv"
)

// Status values
const (
	StatusSent       = 1
	StatusProcessing = 2
	StatusCompleted  = 3
)

// Requester kinds
const (
	RequesterClient      = 1
	RequesterBroker      = 2
	RequesterSalesperson = 3
)

// TotalCount is the mocked server-side row count shown by pagination.
const TotalCount = 389

// Request is one table row
type Request struct {
	Name      string
	Date      string
	Status    int
	Requester string
	// RequesterKind is one of the Requester* constants
	RequesterKind int
	PartnerNo     string
	Reason        string
	Client        string
	ClientID      string
}

// StatusLabel returns the display label for a status value
func StatusLabel(status int) string {
	for _, o := range StatusOptions {
		if o.Value == status {
			return o.Label
		}
	}
	return strconv.Itoa(status)
}

var requesters = []string{
	"Alice", "Bob", "Charlie", "David", "Emily", "Frank", "Grace", "Henry", "Ivy", "Jack",
	"Kate", "Liam", "Mia", "Nathan", "Olivia", "Patrick", "Quinn", "Rachel", "Samuel", "Tiffany",
}

var partnerNos = []string{
	"987654", "456789", "789456", "321654", "654321", "963258", "147258", "258369", "369147", "951753",
	"753951", "357159", "159357", "951357", "753159", "357951", "159753", "951753", "369147", "753951",
}

var clientIDs = []string{
	"654321", "987654", "159753", "357159", "753159", "951357", "357951", "159357", "753951", "951753",
	"369147", "258369", "147258", "963258", "654321", "321654", "789456", "456789", "987654", "123456",
}

var clients = []string{"Customer", "Supplier", "Client"}

// MockRows returns the fixed demo rows. Each call returns a fresh slice.
func MockRows() []Request {
	rows := make([]Request, len(requesters))
	for i := range rows {
		n := i + 1
		rows[i] = Request{
			Name:          fmt.Sprintf("Request %d", n),
			Date:          fmt.Sprintf("%02d.01.2021", n),
			Status:        i%3 + 1,
			Requester:     requesters[i],
			RequesterKind: i%3 + 1,
			PartnerNo:     partnerNos[i],
			Reason:        fmt.Sprintf("Reason %d", n),
			Client:        clients[i%3],
			ClientID:      clientIDs[i],
		}
	}
	return rows
}
