// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/theme"
)

// ColorScheme holds colors for a theme
type ColorScheme struct {
	Primary       lipgloss.Color
	PrimaryDark   lipgloss.Color
	OnPrimary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Muted         lipgloss.Color
	Disabled      lipgloss.Color
	Background    lipgloss.Color
	Surface       lipgloss.Color
	Foreground    lipgloss.Color
	Border        lipgloss.Color
	Highlight     lipgloss.Color
	HighlightText lipgloss.Color
}

// ColorsFromTokens maps the palette tokens to terminal colours
func ColorsFromTokens(t theme.Tokens) ColorScheme {
	p := t.Palette
	return ColorScheme{
		Primary:       lipgloss.Color(p.Primary.Main),
		PrimaryDark:   lipgloss.Color(p.Primary.Dark),
		OnPrimary:     lipgloss.Color(p.Primary.Contrast),
		Success:       lipgloss.Color(p.Success.Main),
		Warning:       lipgloss.Color(p.Warning.Main),
		Error:         lipgloss.Color(p.Error.Main),
		Info:          lipgloss.Color(p.Info.Main),
		Muted:         lipgloss.Color(p.TextSecondary),
		Disabled:      lipgloss.Color(p.TextDisabled),
		Background:    lipgloss.Color(p.Background),
		Surface:       lipgloss.Color(p.Surface),
		Foreground:    lipgloss.Color(p.Text),
		Border:        lipgloss.Color(p.Divider),
		Highlight:     lipgloss.Color(p.Info.Main),
		HighlightText: lipgloss.Color(p.Info.Contrast),
	}
}

// Styles contains all the application styles
type Styles struct {
	Tokens theme.Tokens
	Colors ColorScheme

	Header           lipgloss.Style
	Footer           lipgloss.Style
	Title            lipgloss.Style
	Label            lipgloss.Style
	Value            lipgloss.Style
	Muted            lipgloss.Style
	Disabled         lipgloss.Style
	Selected         lipgloss.Style
	Border           lipgloss.Style
	Focused          lipgloss.Style
	StatusBar        lipgloss.Style
	HelpKey          lipgloss.Style
	HelpDesc         lipgloss.Style
	Error            lipgloss.Style
	Success          lipgloss.Style
	Warning          lipgloss.Style
	Info             lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	RequestName      lipgloss.Style
	Tab              lipgloss.Style
	TabActive        lipgloss.Style

	// drawer
	Drawer          lipgloss.Style
	DrawerItem      lipgloss.Style
	DrawerItemFocus lipgloss.Style
	DrawerSection   lipgloss.Style

	// filter bar
	Trigger       lipgloss.Style
	TriggerActive lipgloss.Style
	TriggerFocus  lipgloss.Style
	Badge         lipgloss.Style
	Editor        lipgloss.Style
	Checkbox      lipgloss.Style
	Button        lipgloss.Style
	ButtonFocus   lipgloss.Style

	// popups
	Popup        lipgloss.Style
	PopupFocused lipgloss.Style
	PopupTitle   lipgloss.Style
	PopupHeader  lipgloss.Style
	DotMaximize  lipgloss.Style
	DotHide      lipgloss.Style
	DotClose     lipgloss.Style

	StatusSent       lipgloss.Style
	StatusProcessing lipgloss.Style
	StatusCompleted  lipgloss.Style
}

// DefaultStyles returns styles based on auto-detected terminal background
func DefaultStyles() *Styles {
	if lipgloss.HasDarkBackground() {
		return NewStyles(theme.Dark())
	}
	return NewStyles(theme.Light())
}

// NewStyles creates styles from theme tokens
func NewStyles(t theme.Tokens) *Styles {
	c := ColorsFromTokens(t)
	pad := t.Spacing

	return &Styles{
		Tokens: t,
		Colors: c,

		Header: lipgloss.NewStyle().
			Foreground(c.OnPrimary).
			Background(c.Primary).
			Bold(true).
			Padding(0, pad),

		Footer: lipgloss.NewStyle().
			Foreground(c.Muted).
			Padding(0, pad),

		Title: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(c.Muted),

		Value: lipgloss.NewStyle().
			Foreground(c.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),

		Disabled: lipgloss.NewStyle().
			Foreground(c.Disabled),

		Selected: lipgloss.NewStyle().
			Foreground(c.HighlightText).
			Background(c.Highlight).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary),

		StatusBar: lipgloss.NewStyle().
			Foreground(c.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(c.Info).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(c.Muted),

		Error:   lipgloss.NewStyle().Foreground(c.Error),
		Success: lipgloss.NewStyle().Foreground(c.Success),
		Warning: lipgloss.NewStyle().Foreground(c.Warning),
		Info:    lipgloss.NewStyle().Foreground(c.Info),

		ListItem: lipgloss.NewStyle().
			Foreground(c.Foreground),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(c.HighlightText).
			Background(c.Highlight).
			Bold(true),

		RequestName: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(c.Muted).
			Padding(0, pad),

		TabActive: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true).
			Underline(true).
			Padding(0, pad),

		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(c.Border).
			Padding(0, pad),

		DrawerItem: lipgloss.NewStyle().
			Foreground(c.Foreground),

		DrawerItemFocus: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		DrawerSection: lipgloss.NewStyle().
			Foreground(c.Muted).
			Bold(true),

		Trigger: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface).
			Padding(0, pad),

		TriggerActive: lipgloss.NewStyle().
			Foreground(c.OnPrimary).
			Background(c.Primary).
			Padding(0, pad),

		TriggerFocus: lipgloss.NewStyle().
			Foreground(c.HighlightText).
			Background(c.Highlight).
			Bold(true).
			Padding(0, pad),

		Badge: lipgloss.NewStyle().
			Foreground(c.OnPrimary).
			Background(c.Primary).
			Bold(true),

		Editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary).
			Padding(0, pad),

		Checkbox: lipgloss.NewStyle().
			Foreground(c.Primary),

		Button: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Padding(0, pad),

		ButtonFocus: lipgloss.NewStyle().
			Foreground(c.OnPrimary).
			Background(c.Primary).
			Bold(true).
			Padding(0, pad),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border),

		PopupFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary),

		PopupTitle: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Bold(true),

		PopupHeader: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(c.Border),

		DotMaximize: lipgloss.NewStyle().Foreground(c.Success),
		DotHide:     lipgloss.NewStyle().Foreground(c.Warning),
		DotClose:    lipgloss.NewStyle().Foreground(c.Error),

		StatusSent:       lipgloss.NewStyle().Foreground(c.Info),
		StatusProcessing: lipgloss.NewStyle().Foreground(c.Warning),
		StatusCompleted:  lipgloss.NewStyle().Foreground(c.Success),
	}
}

// StatusStyle returns the appropriate style for a request status
func (s *Styles) StatusStyle(status int) lipgloss.Style {
	switch status {
	case requests.StatusSent:
		return s.StatusSent
	case requests.StatusProcessing:
		return s.StatusProcessing
	case requests.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.Muted
	}
}
