// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package requests

import (
	"slices"

	"github.com/green/reqdesk/internal/filter"
)

// Query is the committed state of the requests filter bar
type Query struct {
	Q         string
	Status    []int
	Requester *int
	Client    *int
	PartnerNo []int
	Custom    *int
	Custom1   *int
	Custom2   *int
	Page      int
	PageSize  int
}

// NewQuery returns an empty query on page 1
func NewQuery(pageSize int) Query {
	if !slices.Contains(PageSizeOptions, pageSize) {
		pageSize = PageSizeOptions[0]
	}
	return Query{Status: []int{}, PartnerNo: []int{}, Page: 1, PageSize: pageSize}
}

// Cleared drops every filter but keeps the page size.
func (q Query) Cleared() Query {
	return NewQuery(q.PageSize)
}

// Active reports whether any filter is set
func (q Query) Active() bool {
	return q.Q != "" || len(q.Status) > 0 || q.Requester != nil || q.Client != nil ||
		len(q.PartnerNo) > 0 || q.Custom != nil || q.Custom1 != nil || q.Custom2 != nil
}

// StatusOptions are the status filter choices
var StatusOptions = []filter.Option[int]{
	{Label: "Sent", Value: StatusSent},
	{Label: "Processing", Value: StatusProcessing},
	{Label: "Completed", Value: StatusCompleted},
}

// RequesterOptions are the requester filter choices
var RequesterOptions = []filter.Option[int]{
	{Label: "Client", Value: RequesterClient},
	{Label: "Broker", Value: RequesterBroker},
	{Label: "Salesperson", Value: RequesterSalesperson},
}

// ClientOptions filter by client id
var ClientOptions = numbered("654321", "987654", "159753", "357159", "753159", "123456")

// PartnerOptions filter by partner number
var PartnerOptions = numbered(
	"987654", "456789", "789456", "321654", "654321", "963258", "147258", "258369", "369147",
	"951753", "753951", "357159", "159357", "951357", "753159", "357951", "159753", "123456",
)

// CustomOptions back the custom filters. They do not narrow the mock rows.
var CustomOptions = numbered(
	"Žilina", "Košice", "Bratislava", "Nitra", "Prešov", "Trenčín",
)

func numbered(labels ...string) []filter.Option[int] {
	out := make([]filter.Option[int], len(labels))
	for i, l := range labels {
		out[i] = filter.Option[int]{Label: l, Value: i + 1}
	}
	return out
}

func labelOf(opts []filter.Option[int], v int) (string, bool) {
	for _, o := range opts {
		if o.Value == v {
			return o.Label, true
		}
	}
	return "", false
}

// Matches reports whether a row passes every filter in q
func (q Query) Matches(r Request) bool {
	if q.Q != "" && !matchesText(r, q.Q) {
		return false
	}
	if len(q.Status) > 0 && !slices.Contains(q.Status, r.Status) {
		return false
	}
	if q.Requester != nil && r.RequesterKind != *q.Requester {
		return false
	}
	if q.Client != nil {
		id, ok := labelOf(ClientOptions, *q.Client)
		if !ok || id != r.ClientID {
			return false
		}
	}
	if len(q.PartnerNo) > 0 {
		found := false
		for _, v := range q.PartnerNo {
			if no, ok := labelOf(PartnerOptions, v); ok && no == r.PartnerNo {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesText(r Request, q string) bool {
	for _, s := range []string{r.Name, r.Requester, r.Reason, r.Client, r.ClientID, r.PartnerNo} {
		if filter.Matches(s, q) {
			return true
		}
	}
	return false
}

// Apply returns the rows matching q, preserving order
func Apply(rows []Request, q Query) []Request {
	var out []Request
	for _, r := range rows {
		if q.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
