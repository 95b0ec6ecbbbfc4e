// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/tui/styles"
)

// Route is a full-screen page pushed on the route stack
type Route interface {
	Title() string
	Body(width, height int) string
	HandleKey(msg tea.KeyMsg) tea.Cmd
	ClickLine(n int) tea.Cmd
	// Back runs when the route is popped with the back control
	Back()
	// ClearRoute runs the header clear control
	ClearRoute() tea.Cmd
}

const (
	routeBackLabel  = "‹ Back"
	routeClearLabel = "Clear filter"
	// header row and divider
	routeHeaderRows = 2
)

// RouteStack stacks full-screen routes over the page on narrow terminals
type RouteStack struct {
	styles *styles.Styles
	routes []Route
	width  int
	height int
}

// NewRouteStack creates an empty stack
func NewRouteStack(s *styles.Styles) *RouteStack {
	return &RouteStack{styles: s}
}

// SetSize sets the screen size
func (r *RouteStack) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Push shows route on top of the stack
func (r *RouteStack) Push(rt Route) {
	r.routes = append(r.routes, rt)
}

// Top returns the current route
func (r *RouteStack) Top() (Route, bool) {
	if len(r.routes) == 0 {
		return nil, false
	}
	return r.routes[len(r.routes)-1], true
}

// IsVisible reports whether any route is shown
func (r *RouteStack) IsVisible() bool {
	return len(r.routes) > 0
}

// Len returns the stack depth
func (r *RouteStack) Len() int {
	return len(r.routes)
}

// Back pops the top route after running its rollback
func (r *RouteStack) Back() {
	rt, ok := r.Top()
	if !ok {
		return
	}
	r.routes = r.routes[:len(r.routes)-1]
	rt.Back()
}

// Drop pops rt without running its back action. It is a no-op unless rt
// is on top.
func (r *RouteStack) Drop(rt Route) {
	top, ok := r.Top()
	if !ok || top != rt {
		return
	}
	r.routes = r.routes[:len(r.routes)-1]
}

// Reset pops every route, rolling each back
func (r *RouteStack) Reset() {
	for r.IsVisible() {
		r.Back()
	}
}

// Update routes keys to the top route. Esc is the back control.
func (r *RouteStack) Update(msg tea.Msg) tea.Cmd {
	rt, ok := r.Top()
	if !ok {
		return nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if km.Type == tea.KeyEsc {
		r.Back()
		return nil
	}
	return rt.HandleKey(km)
}

// HandleMouse handles a press on the full-screen route. Every event is
// consumed while a route is shown.
func (r *RouteStack) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	rt, ok := r.Top()
	if !ok {
		return false, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return true, nil
	}
	switch {
	case msg.Y == 0 && msg.X < lipgloss.Width(routeBackLabel)+2:
		r.Back()
		return true, nil
	case msg.Y == 0 && msg.X >= r.width-lipgloss.Width(routeClearLabel)-2:
		return true, rt.ClearRoute()
	case msg.Y >= routeHeaderRows:
		return true, rt.ClickLine(msg.Y - routeHeaderRows)
	}
	return true, nil
}

// View renders the top route over the whole screen
func (r *RouteStack) View() string {
	rt, ok := r.Top()
	if !ok {
		return ""
	}
	back := r.styles.Info.Render(" " + routeBackLabel + " ")
	clearBtn := r.styles.Error.Render(" " + routeClearLabel + " ")
	title := r.styles.Title.Render(rt.Title())
	gap := r.width - lipgloss.Width(back) - lipgloss.Width(clearBtn) - lipgloss.Width(title)
	left := max(1, gap/2)
	right := max(1, gap-left)
	header := back + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + clearBtn

	bodyH := max(1, r.height-routeHeaderRows)
	body := rt.Body(r.width, bodyH)
	lines := strings.Split(body, "\n")
	for len(lines) < bodyH {
		lines = append(lines, "")
	}
	lines = lines[:bodyH]
	for i := range lines {
		lines[i] = fit(lines[i], r.width)
	}

	divider := r.styles.Muted.Render(strings.Repeat("─", max(0, r.width)))
	return fit(header, r.width) + "\n" + divider + "\n" + strings.Join(lines, "\n")
}
