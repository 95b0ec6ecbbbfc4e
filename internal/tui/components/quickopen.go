// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/tui/styles"
)

// QuickOpenSubmitMsg is sent when the user submits a request number
type QuickOpenSubmitMsg struct {
	Number int
}

// QuickOpenCancelMsg is sent when the user cancels
type QuickOpenCancelMsg struct{}

// QuickOpen is a small box for opening a request by its number
type QuickOpen struct {
	styles    *styles.Styles
	textInput textinput.Model
	width     int
	height    int
	visible   bool
	err       string
}

// NewQuickOpen creates a new quick open component
func NewQuickOpen(s *styles.Styles) *QuickOpen {
	ti := textinput.New()
	ti.Placeholder = "e.g. 7"
	ti.CharLimit = 16
	ti.Width = 20

	return &QuickOpen{
		styles:    s,
		textInput: ti,
	}
}

// Show displays the box
func (q *QuickOpen) Show() tea.Cmd {
	q.visible = true
	q.err = ""
	q.textInput.SetValue("")
	return q.textInput.Focus()
}

// Hide hides the box
func (q *QuickOpen) Hide() {
	q.visible = false
	q.textInput.Blur()
}

// IsVisible returns whether the box is visible
func (q *QuickOpen) IsVisible() bool {
	return q.visible
}

// SetSize sets the container size for centering
func (q *QuickOpen) SetSize(width, height int) {
	q.width = width
	q.height = height
}

// Update handles input
func (q *QuickOpen) Update(msg tea.Msg) (*QuickOpen, tea.Cmd) {
	if !q.visible {
		return q, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			value := strings.TrimSpace(q.textInput.Value())
			if value == "" {
				q.Hide()
				return q, nil
			}
			n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(value), "request "))
			if err != nil || n <= 0 {
				q.err = "not a request number"
				return q, nil
			}
			q.Hide()
			return q, func() tea.Msg { return QuickOpenSubmitMsg{Number: n} }
		case "esc":
			q.Hide()
			return q, func() tea.Msg { return QuickOpenCancelMsg{} }
		}
	}

	var cmd tea.Cmd
	q.textInput, cmd = q.textInput.Update(msg)
	return q, cmd
}

// View renders the box
func (q *QuickOpen) View() string {
	if !q.visible {
		return ""
	}

	var content strings.Builder
	content.WriteString(q.styles.Title.Render("Open request"))
	content.WriteString("\n\n")
	content.WriteString(q.textInput.View())
	content.WriteString("\n\n")
	if q.err != "" {
		content.WriteString(q.styles.Error.Render(q.err))
		content.WriteString("\n")
	}
	content.WriteString(q.styles.Muted.Render("Enter: Open • Esc: Cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(q.styles.Colors.Primary).
		Padding(1, 3).
		Width(40)

	return boxStyle.Render(content.String())
}
