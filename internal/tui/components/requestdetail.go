// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/tui/styles"
)

// RequestDetail renders a request record inside a popup body
type RequestDetail struct {
	styles  *styles.Styles
	request requests.Request
	// highlight marks occurrences of the main search text
	highlight string
}

// NewRequestDetail creates the body for r
func NewRequestDetail(s *styles.Styles, r requests.Request) *RequestDetail {
	return &RequestDetail{styles: s, request: r}
}

// Request returns the displayed record
func (d *RequestDetail) Request() requests.Request {
	return d.request
}

// SetHighlight sets the text to highlight
func (d *RequestDetail) SetHighlight(q string) {
	d.highlight = q
}

func requesterKind(kind int) string {
	for _, o := range requests.RequesterOptions {
		if o.Value == kind {
			return o.Label
		}
	}
	return "unknown"
}

// View implements popup.Body
func (d *RequestDetail) View(width, height int) string {
	var sb strings.Builder
	r := d.request

	sb.WriteString(d.styles.Title.Render(r.Name))
	sb.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		style *lipgloss.Style
	}{
		{"Date", r.Date, nil},
		{"Status", requests.StatusLabel(r.Status), ptr(d.styles.StatusStyle(r.Status))},
		{"Requester", fmt.Sprintf("%s (%s)", r.Requester, requesterKind(r.RequesterKind)), nil},
		{"Partner", r.PartnerNo, nil},
		{"Client", r.Client, nil},
		{"Client ID", r.ClientID, nil},
	}
	for _, row := range rows {
		sb.WriteString(d.styles.Label.Render(fmt.Sprintf("%-11s", row.label+":")))
		sb.WriteString(" ")
		if row.style != nil {
			sb.WriteString(row.style.Render(row.value))
		} else {
			sb.WriteString(d.highlightMatches(row.value))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(d.styles.Label.Render("Reason"))
	sb.WriteString("\n")
	sb.WriteString(d.styles.Muted.Render(strings.Repeat("─", max(1, min(width, 40)))))
	sb.WriteString("\n")
	reason := lipgloss.NewStyle().Width(max(10, width)).Render(r.Reason)
	sb.WriteString(d.highlightMatches(reason))
	return sb.String()
}

func ptr[T any](v T) *T {
	return &v
}

// highlightMatches highlights all occurrences of the search text, ignoring
// case
func (d *RequestDetail) highlightMatches(text string) string {
	if d.highlight == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(d.highlight)
	// lowering may change byte lengths outside ASCII
	if len(lowerText) != len(text) || len(lowerQuery) != len(d.highlight) {
		return text
	}

	var result strings.Builder
	lastEnd := 0
	for {
		idx := strings.Index(lowerText[lastEnd:], lowerQuery)
		if idx < 0 {
			break
		}
		start := lastEnd + idx
		end := start + len(lowerQuery)
		result.WriteString(text[lastEnd:start])
		result.WriteString(d.styles.Badge.Render(text[start:end]))
		lastEnd = end
	}
	result.WriteString(text[lastEnd:])
	return result.String()
}

// DraftRequest is the body of a new-request popup
type DraftRequest struct {
	styles *styles.Styles
	id     string
}

// NewDraftRequest creates a draft body for the popup id
func NewDraftRequest(s *styles.Styles, id string) *DraftRequest {
	return &DraftRequest{styles: s, id: id}
}

// View implements popup.Body
func (d *DraftRequest) View(width, height int) string {
	lines := []string{
		d.styles.Title.Render("New request"),
		"",
		d.styles.Label.Render("Draft: ") + d.styles.Value.Render(d.id),
		"",
		d.styles.Muted.Render("Nothing is saved; close the window to discard."),
	}
	return lipgloss.NewStyle().Width(max(10, width)).Render(strings.Join(lines, "\n"))
}
