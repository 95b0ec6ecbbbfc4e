// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package tui

import (
	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/requests"
)

// requestFields declares the requests filter bar. Every field reads and
// commits straight into m.query; a committed change goes back to page 1.
func (m *Model) requestFields() []filter.Field {
	single := func(placeholder string, opts []filter.Option[int], immediate bool, slot func() **int) filter.Field {
		return filter.NewSelect(filter.SelectConfig[int]{
			Placeholder: placeholder,
			Options:     opts,
			Immediate:   immediate,
			Get:         func() *int { return *slot() },
			OnChange: func(v *int) {
				*slot() = v
				m.query.Page = 1
			},
		})
	}

	return []filter.Field{
		filter.NewText(filter.TextConfig{
			Placeholder: "Search requests",
			Main:        true,
			Get:         func() string { return m.query.Q },
			OnChange: func(v string) {
				m.query.Q = v
				m.query.Page = 1
			},
		}),
		filter.NewMultiSelect(filter.MultiSelectConfig[int]{
			Placeholder: "Status",
			Options:     requests.StatusOptions,
			Get:         func() []int { return m.query.Status },
			OnChange: func(v []int) {
				m.query.Status = v
				m.query.Page = 1
			},
		}),
		single("Requester", requests.RequesterOptions, true, func() **int { return &m.query.Requester }),
		single("Client ID", requests.ClientOptions, false, func() **int { return &m.query.Client }),
		filter.NewMultiSelect(filter.MultiSelectConfig[int]{
			Placeholder: "Partner no.",
			Options:     requests.PartnerOptions,
			Get:         func() []int { return m.query.PartnerNo },
			OnChange: func(v []int) {
				m.query.PartnerNo = v
				m.query.Page = 1
			},
		}),
		single("Branch", requests.CustomOptions, false, func() **int { return &m.query.Custom }),
		single("Custom filter", requests.CustomOptions, false, func() **int { return &m.query.Custom1 }),
		single("Custom filter 2", requests.CustomOptions, true, func() **int { return &m.query.Custom2 }),
	}
}
