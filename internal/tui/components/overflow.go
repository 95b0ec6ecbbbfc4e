// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/tui/styles"
)

// OverflowDoneMsg is sent when the overflow panel closes
type OverflowDoneMsg struct {
	Result EditorResult
}

const overflowWidth = 36

// Overflow lists the fields that did not fit inline. Picking one opens
// its editor. On narrow screens it is a route with apply and clear.
type Overflow struct {
	styles *styles.Styles
	keys   *styles.KeyMap
	log    *slog.Logger

	fields  []filter.Field
	mode    filter.Mode
	x, y    int
	cursor  int
	visible bool

	lineEntry []int
}

// NewOverflow creates a hidden overflow panel
func NewOverflow(s *styles.Styles, keys *styles.KeyMap) *Overflow {
	return &Overflow{
		styles: s,
		keys:   keys,
		log:    logger.ComponentLogger("overflow"),
	}
}

// Show opens the panel over fields, syncing every draft
func (o *Overflow) Show(fields []filter.Field, mode filter.Mode, x, y int) {
	filter.SyncAll(fields)
	o.fields = fields
	o.mode = mode
	o.x, o.y = x, y
	o.cursor = 0
	o.visible = true
	o.log.Debug("open", "fields", len(fields), "mode", mode.String())
}

// Hide closes the panel without touching the fields
func (o *Overflow) Hide() {
	o.visible = false
}

// IsVisible returns whether the panel is open
func (o *Overflow) IsVisible() bool {
	return o.visible
}

// Origin returns the anchor the panel is drawn at
func (o *Overflow) Origin() (int, int) {
	return o.x, o.y
}

// Fields returns the listed fields
func (o *Overflow) Fields() []filter.Field {
	return o.fields
}

// entries: one per field, then apply (route only), then clear
func (o *Overflow) entryCount() int {
	n := len(o.fields) + 1
	if o.mode == filter.ModeMobile {
		n++
	}
	return n
}

func (o *Overflow) applyIndex() int {
	if o.mode != filter.ModeMobile {
		return -1
	}
	return len(o.fields)
}

func (o *Overflow) clearIndex() int {
	return o.entryCount() - 1
}

// Update handles keys while the anchored panel is open
func (o *Overflow) Update(msg tea.Msg) (*Overflow, tea.Cmd) {
	if !o.visible {
		return o, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	if km.Type == tea.KeyEsc {
		return o, o.finish(EditorRolledBack)
	}
	return o, o.HandleKey(km)
}

// HandleKey handles navigation and activation keys
func (o *Overflow) HandleKey(km tea.KeyMsg) tea.Cmd {
	n := o.entryCount()
	switch {
	case key.Matches(km, o.keys.Up), km.Type == tea.KeyShiftTab:
		o.cursor = (o.cursor - 1 + n) % n
	case key.Matches(km, o.keys.Down), km.Type == tea.KeyTab:
		o.cursor = (o.cursor + 1) % n
	case key.Matches(km, o.keys.Select), key.Matches(km, o.keys.Toggle):
		return o.activate(o.cursor)
	}
	return nil
}

func (o *Overflow) activate(i int) tea.Cmd {
	if i < 0 || i >= o.entryCount() {
		return nil
	}
	o.cursor = i
	switch i {
	case o.applyIndex():
		return o.finish(EditorApplied)
	case o.clearIndex():
		return o.finish(EditorReset)
	}
	f, mode := o.fields[i], o.mode
	x, y := o.x, o.y
	if mode != filter.ModeMobile {
		// the editor takes the panel's place
		o.Hide()
	}
	return func() tea.Msg { return OpenEditorMsg{Field: f, Mode: mode, X: x, Y: y} }
}

func (o *Overflow) finish(r EditorResult) tea.Cmd {
	switch r {
	case EditorApplied:
		filter.ApplyAll(o.fields)
	case EditorRolledBack:
		filter.RollbackAll(o.fields)
	case EditorReset:
		filter.ClearAll(o.fields)
	}
	o.log.Debug(r.String(), "fields", len(o.fields))
	o.Hide()
	return func() tea.Msg { return OverflowDoneMsg{Result: r} }
}

// HandleMouse handles a pointer event on the anchored panel. A press
// outside closes it.
func (o *Overflow) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !o.visible {
		return false, nil
	}
	v := o.View()
	w, h := lipgloss.Width(v), lipgloss.Height(v)
	inside := msg.X >= o.x && msg.X < o.x+w && msg.Y >= o.y && msg.Y < o.y+h
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return inside, nil
	}
	if !inside {
		return true, o.finish(EditorRolledBack)
	}
	return true, o.ClickLine(msg.Y - o.y - 1)
}

// ClickLine activates the entry on body line n
func (o *Overflow) ClickLine(n int) tea.Cmd {
	if n < 0 || n >= len(o.lineEntry) || o.lineEntry[n] < 0 {
		return nil
	}
	return o.activate(o.lineEntry[n])
}

// View renders the anchored panel
func (o *Overflow) View() string {
	if !o.visible {
		return ""
	}
	return o.styles.Editor.Width(overflowWidth).Render(o.Body(overflowWidth-2, 0))
}

// Body renders the field list without a frame
func (o *Overflow) Body(width, _ int) string {
	var lines []string
	o.lineEntry = o.lineEntry[:0]
	add := func(s string, entry int) {
		lines = append(lines, fit(s, width))
		o.lineEntry = append(o.lineEntry, entry)
	}

	for i, f := range o.fields {
		plain := "any"
		value := o.styles.Muted.Render(plain)
		if !f.IsEmpty() {
			plain = f.Label()
			value = o.styles.Checkbox.Render(plain)
		}
		line := f.Placeholder() + ": " + value
		if i == o.cursor {
			line = o.styles.ListItemSelected.Render(fit(f.Placeholder()+": "+plain, width))
		}
		add(line, i)
	}
	add("", -1)
	if i := o.applyIndex(); i >= 0 {
		add(o.button("Apply", i), i)
	}
	i := o.clearIndex()
	add(o.button("Clear all", i), i)
	return strings.Join(lines, "\n")
}

func (o *Overflow) button(label string, i int) string {
	if o.cursor == i {
		return o.styles.ButtonFocus.Render(label)
	}
	return o.styles.Button.Render("[" + label + "]")
}

// Title names the overflow route
func (o *Overflow) Title() string {
	return "Filters"
}

// Back is the route back action: every draft is rolled back
func (o *Overflow) Back() {
	if !o.visible {
		return
	}
	filter.RollbackAll(o.fields)
	o.log.Debug(EditorRolledBack.String(), "fields", len(o.fields))
	o.Hide()
}

// ClearRoute is the route header clear action
func (o *Overflow) ClearRoute() tea.Cmd {
	return o.finish(EditorReset)
}
