// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/popup"
	"github.com/green/reqdesk/internal/router"
	"github.com/green/reqdesk/internal/tui/styles"
)

// NavigateMsg asks the page to switch route
type NavigateMsg struct {
	Route router.Route
}

type drawerEntry struct {
	route *router.Route
	id    string
}

// Drawer is the navigation panel: the route list followed by the open
// request popups sorted by title.
type Drawer struct {
	styles *styles.Styles
	keys   *styles.KeyMap
	reg    *popup.Registry
	log    *slog.Logger

	active  router.RouteName
	entries []drawerEntry
	cursor  int
	focused bool
	visible bool

	x, y      int
	width     int
	height    int
	lineEntry []int
}

// NewDrawer creates the drawer. It panics without a registry.
func NewDrawer(s *styles.Styles, keys *styles.KeyMap, reg *popup.Registry) *Drawer {
	return &Drawer{
		styles:  s,
		keys:    keys,
		reg:     popup.MustRegistry(reg),
		log:     logger.ComponentLogger("drawer"),
		visible: true,
		width:   s.Tokens.Variables.DrawerWidth,
	}
}

// SetOrigin records where the drawer is drawn
func (d *Drawer) SetOrigin(x, y int) {
	d.x = x
	d.y = y
}

// SetHeight sets the drawer height
func (d *Drawer) SetHeight(h int) {
	d.height = h
}

// SetWidth sets the drawer width including its border
func (d *Drawer) SetWidth(w int) {
	d.width = w
}

// Width returns the drawer width, zero when collapsed
func (d *Drawer) Width() int {
	if !d.visible {
		return 0
	}
	return d.width
}

// Toggle collapses or expands the drawer
func (d *Drawer) Toggle() {
	d.visible = !d.visible
	if !d.visible {
		d.focused = false
	}
}

// IsVisible reports whether the drawer is expanded
func (d *Drawer) IsVisible() bool {
	return d.visible
}

// SetActive marks the current route
func (d *Drawer) SetActive(name router.RouteName) {
	d.active = name
}

// SetFocused sets keyboard focus
func (d *Drawer) SetFocused(f bool) {
	d.focused = f && d.visible
}

// IsFocused returns the focus state
func (d *Drawer) IsFocused() bool {
	return d.focused
}

func (d *Drawer) rebuild() {
	d.entries = d.entries[:0]
	for _, r := range router.Routes() {
		d.entries = append(d.entries, drawerEntry{route: &r})
	}
	for _, rec := range d.reg.Sorted() {
		d.entries = append(d.entries, drawerEntry{id: rec.ID})
	}
	if d.cursor >= len(d.entries) {
		d.cursor = max(0, len(d.entries)-1)
	}
}

func (d *Drawer) activate(i int) tea.Cmd {
	d.rebuild()
	if i < 0 || i >= len(d.entries) {
		return nil
	}
	d.cursor = i
	en := d.entries[i]
	if en.route != nil {
		r := *en.route
		return func() tea.Msg { return NavigateMsg{Route: r} }
	}
	d.log.Debug("open", "id", en.id)
	d.reg.Open(en.id)
	return nil
}

func (d *Drawer) closeEntry(i int) {
	d.rebuild()
	if i < 0 || i >= len(d.entries) || d.entries[i].route != nil {
		return
	}
	d.log.Debug("close", "id", d.entries[i].id)
	d.reg.Close(d.entries[i].id)
	d.rebuild()
}

// Update handles keys while the drawer is focused
func (d *Drawer) Update(msg tea.Msg) (*Drawer, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused {
		return d, nil
	}
	d.rebuild()
	switch {
	case key.Matches(km, d.keys.Up):
		d.cursor = max(0, d.cursor-1)
	case key.Matches(km, d.keys.Down):
		d.cursor = min(len(d.entries)-1, d.cursor+1)
	case key.Matches(km, d.keys.Select):
		return d, d.activate(d.cursor)
	case km.String() == "x":
		d.closeEntry(d.cursor)
	case key.Matches(km, d.keys.Back):
		d.focused = false
	}
	return d, nil
}

// HandleMouse handles presses on the drawer
func (d *Drawer) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !d.visible || msg.X < d.x || msg.X >= d.x+d.width || msg.Y < d.y || msg.Y >= d.y+d.height {
		return false, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return true, nil
	}
	line := msg.Y - d.y
	if line < 0 || line >= len(d.lineEntry) || d.lineEntry[line] < 0 {
		return true, nil
	}
	i := d.lineEntry[line]
	// the close mark sits in the last two content columns
	closeCol := d.x + d.width - 1 - d.styles.Tokens.Spacing - 2
	if i < len(d.entries) && d.entries[i].route == nil && msg.X >= closeCol {
		d.closeEntry(i)
		return true, nil
	}
	return true, d.activate(i)
}

// View renders the drawer
func (d *Drawer) View() string {
	if !d.visible {
		return ""
	}
	d.rebuild()
	inner := max(4, d.width-1-2*d.styles.Tokens.Spacing)

	var lines []string
	d.lineEntry = d.lineEntry[:0]
	add := func(s string, entry int) {
		lines = append(lines, s)
		d.lineEntry = append(d.lineEntry, entry)
	}

	add(d.styles.RequestName.Render("reqdesk"), -1)
	add("", -1)
	for i, en := range d.entries {
		if en.route == nil {
			continue
		}
		label := en.route.Icon + " " + en.route.Title
		add(d.itemStyle(i, en.route.Name == d.active).Render(fit(label, inner)), i)
	}

	add("", -1)
	add(d.styles.DrawerSection.Render("Open requests"), -1)
	open := 0
	for i, en := range d.entries {
		if en.route != nil {
			continue
		}
		rec, ok := d.reg.Get(en.id)
		if !ok {
			continue
		}
		open++
		title := ansi.Truncate(rec.Title, inner-3, "…")
		label := fit(title, inner-2) + "✕"
		style := d.itemStyle(i, d.reg.IsTop(rec.ID) && !rec.Hidden)
		if rec.Hidden && !(d.focused && i == d.cursor) {
			style = d.styles.Disabled
		}
		add(style.Render(label), i)
	}
	if open == 0 {
		add(d.styles.Muted.Render("none"), -1)
	}

	for len(lines) < d.height {
		lines = append(lines, "")
	}
	if d.height > 0 && len(lines) > d.height {
		lines = lines[:d.height]
	}
	for i := range lines {
		lines[i] = fit(lines[i], inner)
	}
	return d.styles.Drawer.Render(strings.Join(lines, "\n"))
}

func (d *Drawer) itemStyle(i int, active bool) lipgloss.Style {
	switch {
	case d.focused && i == d.cursor:
		return d.styles.ListItemSelected
	case active:
		return d.styles.DrawerItemFocus
	default:
		return d.styles.DrawerItem
	}
}
