// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/tui/styles"
)

// StatusBar displays status information at the bottom of the screen
type StatusBar struct {
	styles     *styles.Styles
	width      int
	mode       string
	popups     int
	hidden     int
	message    string
	messageExp time.Time
	loading    bool
	loadingMsg string
	spinner    spinner.Model
	now        func() time.Time
}

// NewStatusBar creates a new status bar component
func NewStatusBar(s *styles.Styles) *StatusBar {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Warning.GetForeground())

	return &StatusBar{
		styles:  s,
		spinner: sp,
		now:     time.Now,
	}
}

// SetWidth sets the component width
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetMode shows the presentation mode name
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetPopups shows how many popups are open and how many of them are hidden
func (s *StatusBar) SetPopups(open, hidden int) {
	s.popups = open
	s.hidden = hidden
}

// SetMessage sets a temporary message
func (s *StatusBar) SetMessage(msg string, duration time.Duration) {
	s.message = msg
	s.messageExp = s.now().Add(duration)
}

// Message returns the current message, empty once expired
func (s *StatusBar) Message() string {
	if s.message != "" && s.now().After(s.messageExp) {
		return ""
	}
	return s.message
}

// SetLoading sets the loading state
func (s *StatusBar) SetLoading(loading bool, msg string) {
	s.loading = loading
	s.loadingMsg = msg
}

// Loading reports whether the spinner is shown
func (s *StatusBar) Loading() bool {
	return s.loading
}

// SpinnerTick returns the spinner tick command to kick-start animation
func (s *StatusBar) SpinnerTick() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model
func (s *StatusBar) Update(msg tea.Msg) (*StatusBar, tea.Cmd) {
	if s.message != "" && s.now().After(s.messageExp) {
		s.message = ""
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	if s.loading {
		return s, cmd
	}
	return s, nil
}

// View implements tea.Model
func (s *StatusBar) View() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"f", "Filter"},
		{"b", "Drawer"},
		{"?", "Help"},
		{"q", "Quit"},
	}

	var parts []string
	for _, sc := range shortcuts {
		parts = append(parts, fmt.Sprintf("%s %s",
			s.styles.HelpKey.Render("["+sc.key+"]"),
			s.styles.HelpDesc.Render(sc.desc)))
	}
	left := strings.Join(parts, "  ")

	var center string
	if s.loading {
		center = s.spinner.View() + " " + s.styles.Warning.Render(s.loadingMsg)
	} else if m := s.Message(); m != "" {
		center = m
	}

	popups := fmt.Sprintf("%d open", s.popups)
	if s.hidden > 0 {
		popups += fmt.Sprintf(", %d hidden", s.hidden)
	}
	right := fmt.Sprintf("%s  %s  %s",
		s.styles.Info.Render("▢ "+popups),
		s.styles.Muted.Render(s.mode),
		s.styles.Muted.Render(s.now().Format("15:04")))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	if leftLen+centerLen+rightLen >= s.width {
		padding := max(0, s.width-leftLen-rightLen)
		if centerLen > 0 && padding > centerLen+2 {
			return s.styles.StatusBar.Width(s.width).
				Render(fit(left+" "+center+strings.Repeat(" ", padding-centerLen-1)+right, s.width))
		}
		return s.styles.StatusBar.Width(s.width).
			Render(fit(left+strings.Repeat(" ", padding)+right, s.width))
	}

	leftPadding := max(1, (s.width-centerLen)/2-leftLen)
	rightPadding := max(1, s.width-leftLen-leftPadding-centerLen-rightLen)
	content := left + strings.Repeat(" ", leftPadding) + center + strings.Repeat(" ", rightPadding) + right

	return s.styles.StatusBar.
		Width(s.width).
		Render(content)
}
