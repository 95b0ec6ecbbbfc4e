// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/tui/styles"
)

// Modal is a centered prompt with one text input
type Modal struct {
	styles    *styles.Styles
	title     string
	message   string
	errText   string
	textInput textinput.Model
	width     int
	height    int
	visible   bool
	// onConfirm returns an error to keep the modal open
	onConfirm func(string) error
	onCancel  func()
}

// NewModal creates a new modal component
func NewModal(s *styles.Styles) *Modal {
	ti := textinput.New()
	ti.Placeholder = "Enter value..."
	ti.CharLimit = 64
	ti.Width = 40

	return &Modal{
		styles:    s,
		textInput: ti,
	}
}

// ShowTextInput shows a text input modal
func (m *Modal) ShowTextInput(title, message, defaultValue string, onConfirm func(string) error, onCancel func()) tea.Cmd {
	m.title = title
	m.message = message
	m.errText = ""
	m.textInput.SetValue(defaultValue)
	m.onConfirm = onConfirm
	m.onCancel = onCancel
	m.visible = true
	return m.textInput.Focus()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.visible = false
	m.textInput.Blur()
}

// IsVisible returns whether modal is visible
func (m *Modal) IsVisible() bool {
	return m.visible
}

// SetSize sets the modal container size
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textInput.Width = max(10, min(40, width-20))
}

// Update handles input
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			if m.onConfirm != nil {
				if err := m.onConfirm(m.textInput.Value()); err != nil {
					m.errText = err.Error()
					return m, nil
				}
			}
			m.Hide()
			return m, nil
		case "esc":
			if m.onCancel != nil {
				m.onCancel()
			}
			m.Hide()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the modal
func (m *Modal) View() string {
	if !m.visible {
		return ""
	}

	var content strings.Builder
	content.WriteString(m.styles.Title.Render(m.title))
	content.WriteString("\n\n")
	if m.message != "" {
		content.WriteString(m.message)
		content.WriteString("\n\n")
	}
	content.WriteString(m.textInput.View())
	content.WriteString("\n\n")
	if m.errText != "" {
		content.WriteString(m.styles.Error.Render(m.errText))
		content.WriteString("\n")
	}
	content.WriteString(m.styles.Muted.Render("Enter to confirm • Esc to cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Colors.Primary).
		Padding(1, 3).
		Width(50)

	return boxStyle.Render(content.String())
}
