// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/theme"
	"github.com/green/reqdesk/internal/tui/styles"
)

// OpenEditorMsg asks the page to open the editor for one field, anchored
// below the cell X,Y.
type OpenEditorMsg struct {
	Field filter.Field
	Mode  filter.Mode
	X, Y  int
}

// OpenOverflowMsg asks the page to open the overflow panel
type OpenOverflowMsg struct {
	Fields []filter.Field
	Mode   filter.Mode
	X, Y   int
}

// FiltersChangedMsg is sent after the bar changed a committed value
type FiltersChangedMsg struct{}

type barItemKind int

const (
	barItemSearch barItemKind = iota
	barItemTrigger
	barItemOverflow
	barItemClear
)

type barItem struct {
	kind  barItemKind
	field filter.Field
	x0    int
	x1    int
}

const mainSearchWidth = 24

// FilterBar renders the main search input, the inline field triggers, the
// overflow trigger with its badge and the clear button on one row.
type FilterBar struct {
	styles *styles.Styles
	keys   *styles.KeyMap
	log    *slog.Logger

	fields []filter.Field
	bp     theme.Breakpoints
	layout filter.BarLayout
	search textinput.Model

	x, y  int
	width int
	// viewport is the terminal width the mode is chosen from
	viewport int
	items   []barItem
	focus   int
	focused bool
}

// NewFilterBar creates a filter bar over fields. It panics when more than
// one main text field is declared.
func NewFilterBar(s *styles.Styles, keys *styles.KeyMap, fields []filter.Field) *FilterBar {
	if err := filter.Validate(fields); err != nil {
		panic(err)
	}
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = mainSearchWidth

	b := &FilterBar{
		styles: s,
		keys:   keys,
		log:    logger.ComponentLogger("filterbar"),
		fields: fields,
		bp:     s.Tokens.Breakpoints,
		search: ti,
	}
	b.relayout()
	return b
}

// SetBreakpoints overrides the column thresholds
func (b *FilterBar) SetBreakpoints(bp theme.Breakpoints) {
	b.bp = bp
	b.relayout()
}

// SetOrigin records where the bar is drawn on screen
func (b *FilterBar) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// SetWidth sets the bar width and recomputes the layout
func (b *FilterBar) SetWidth(width int) {
	b.width = width
	b.relayout()
}

// SetViewportWidth sets the terminal width used to pick the presentation
// mode. Until it is set the bar width is used.
func (b *FilterBar) SetViewportWidth(width int) {
	b.viewport = width
	b.relayout()
}

func (b *FilterBar) modeWidth() int {
	if b.viewport > 0 {
		return b.viewport
	}
	return b.width
}

// Layout returns the current split
func (b *FilterBar) Layout() filter.BarLayout {
	return b.layout
}

// Fields returns the declared fields
func (b *FilterBar) Fields() []filter.Field {
	return b.fields
}

// Mode returns the presentation mode for the current width
func (b *FilterBar) Mode() filter.Mode {
	return b.layout.Mode
}

// Refresh re-reads committed values, e.g. after a preset was applied.
func (b *FilterBar) Refresh() {
	b.relayout()
}

// Focus gives the bar keyboard focus on its first item
func (b *FilterBar) Focus() tea.Cmd {
	b.focused = true
	b.focus = 0
	return b.focusItem()
}

// FocusSearch focuses the main search input
func (b *FilterBar) FocusSearch() tea.Cmd {
	if b.layout.Main == nil {
		return nil
	}
	b.focused = true
	b.focus = 0
	return b.focusItem()
}

// Blur drops keyboard focus
func (b *FilterBar) Blur() {
	b.focused = false
	b.search.Blur()
}

// Focused reports whether the bar has keyboard focus
func (b *FilterBar) Focused() bool {
	return b.focused
}

// Editing reports whether keystrokes go to the main search input
func (b *FilterBar) Editing() bool {
	return b.focused && b.search.Focused()
}

func (b *FilterBar) relayout() {
	b.layout = filter.Layout(b.fields, b.modeWidth(), b.bp)
	if b.layout.Main != nil && !b.search.Focused() {
		b.layout.Main.Sync()
		b.search.SetValue(b.layout.Main.Text())
	}
	if b.layout.Main != nil {
		b.search.Placeholder = b.layout.Main.Placeholder()
	}
	b.items = b.items[:0]
	if b.layout.Main != nil {
		b.items = append(b.items, barItem{kind: barItemSearch, field: b.layout.Main})
	}
	for _, f := range b.layout.Inline {
		b.items = append(b.items, barItem{kind: barItemTrigger, field: f})
	}
	if b.layout.HasOverflow() {
		b.items = append(b.items, barItem{kind: barItemOverflow})
	}
	if b.hasActive() {
		b.items = append(b.items, barItem{kind: barItemClear})
	}
	if b.focus >= len(b.items) {
		b.focus = max(0, len(b.items)-1)
	}
	b.placeItems()
}

// placeItems records the column span of every item. Focus styles share
// the padding of the plain ones, so spans only change on relayout.
func (b *FilterBar) placeItems() {
	col := 0
	for i := range b.items {
		if i > 0 {
			col++
		}
		w := lipgloss.Width(b.renderItem(i))
		b.items[i].x0, b.items[i].x1 = col, col+w
		col += w
	}
}

func (b *FilterBar) hasActive() bool {
	if b.layout.Badge > 0 {
		return true
	}
	return b.layout.Main != nil && !b.layout.Main.IsEmpty()
}

func (b *FilterBar) focusItem() tea.Cmd {
	if b.focus < len(b.items) && b.items[b.focus].kind == barItemSearch {
		return b.search.Focus()
	}
	b.search.Blur()
	return nil
}

// Update handles keys while the bar is focused
func (b *FilterBar) Update(msg tea.Msg) (*FilterBar, tea.Cmd) {
	if !b.focused {
		return b, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.search.Focused() {
		switch km.Type {
		case tea.KeyEsc:
			b.Blur()
			return b, nil
		case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
			b.focus = min(b.focus+1, len(b.items)-1)
			return b, b.focusItem()
		}
		before := b.search.Value()
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(km)
		if b.search.Value() != before {
			b.layout.Main.SetText(b.search.Value())
			b.layout.Main.Apply()
			b.relayout()
			return b, tea.Batch(cmd, changed)
		}
		return b, cmd
	}

	switch {
	case key.Matches(km, b.keys.Back):
		b.Blur()
	case key.Matches(km, b.keys.Left), km.Type == tea.KeyShiftTab:
		b.focus = max(0, b.focus-1)
		return b, b.focusItem()
	case key.Matches(km, b.keys.Right), km.Type == tea.KeyTab:
		b.focus = min(b.focus+1, len(b.items)-1)
		return b, b.focusItem()
	case key.Matches(km, b.keys.Search):
		return b, b.FocusSearch()
	case key.Matches(km, b.keys.Select), key.Matches(km, b.keys.Toggle):
		return b, b.activate(b.focus)
	}
	return b, nil
}

func changed() tea.Msg { return FiltersChangedMsg{} }

// activate runs the action of item i
func (b *FilterBar) activate(i int) tea.Cmd {
	if i < 0 || i >= len(b.items) {
		return nil
	}
	it := b.items[i]
	ax, ay := b.x+it.x0, b.y+1
	switch it.kind {
	case barItemSearch:
		b.focused = true
		b.focus = i
		return b.focusItem()
	case barItemTrigger:
		f, mode := it.field, b.layout.Mode
		return func() tea.Msg { return OpenEditorMsg{Field: f, Mode: mode, X: ax, Y: ay} }
	case barItemOverflow:
		fields, mode := b.layout.Overflow, b.layout.Mode
		return func() tea.Msg { return OpenOverflowMsg{Fields: fields, Mode: mode, X: ax, Y: ay} }
	case barItemClear:
		filter.ClearAll(b.fields)
		b.log.Debug("clear all", "fields", len(b.fields))
		b.search.SetValue("")
		b.relayout()
		return changed
	}
	return nil
}

// HandleMouse handles a press on the bar row. It reports whether the
// press hit the bar.
func (b *FilterBar) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, nil
	}
	if msg.Y != b.y || msg.X < b.x || msg.X >= b.x+b.width {
		return false, nil
	}
	col := msg.X - b.x
	for i, it := range b.items {
		if col >= it.x0 && col < it.x1 {
			b.focused = true
			b.focus = i
			cmd := b.focusItem()
			if it.kind == barItemSearch {
				return true, cmd
			}
			return true, b.activate(i)
		}
	}
	b.Blur()
	return true, nil
}

// Height is the number of rows the bar occupies
func (b *FilterBar) Height() int {
	return 2
}

// View renders the bar
func (b *FilterBar) View() string {
	var parts []string
	for i := range b.items {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b.renderItem(i))
	}

	row := strings.Join(parts, "")
	barStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(b.styles.Colors.Border).
		Width(max(1, b.width)).
		MaxHeight(b.Height())
	return barStyle.Render(fit(row, b.width))
}

func (b *FilterBar) renderItem(i int) string {
	it := b.items[i]
	focused := b.focused && b.focus == i
	switch it.kind {
	case barItemSearch:
		return b.search.View()
	case barItemTrigger:
		return b.renderTrigger(it.field.Label()+" ▾", !it.field.IsEmpty(), focused)
	case barItemOverflow:
		label := "⋯ More"
		if b.layout.Mode == filter.ModeMobile {
			label = "⋯"
		}
		s := b.renderTrigger(label, false, focused)
		if b.layout.Badge > 0 {
			s += b.styles.Badge.Render(fmt.Sprintf(" %d ", b.layout.Badge))
		}
		return s
	case barItemClear:
		return b.renderTrigger("✕ Clear", false, focused)
	}
	return ""
}

func (b *FilterBar) renderTrigger(label string, active, focused bool) string {
	switch {
	case focused:
		return b.styles.TriggerFocus.Render(label)
	case active:
		return b.styles.TriggerActive.Render(label)
	default:
		return b.styles.Trigger.Render(label)
	}
}
