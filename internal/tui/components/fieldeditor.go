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
	"github.com/green/reqdesk/internal/tui/styles"
)

// EditorResult says how an editor was left
type EditorResult int

const (
	EditorApplied EditorResult = iota
	EditorRolledBack
	EditorReset
)

func (r EditorResult) String() string {
	switch r {
	case EditorApplied:
		return "applied"
	case EditorRolledBack:
		return "rolled back"
	case EditorReset:
		return "reset"
	default:
		return "unknown"
	}
}

// EditorDoneMsg is sent when the field editor closes
type EditorDoneMsg struct {
	Field  filter.Field
	Result EditorResult
}

type entryKind int

const (
	entryOption entryKind = iota
	entryMore
	entryApply
	entryClear
)

type editorEntry struct {
	kind entryKind
	opt  int
}

const (
	editorWidth = 34
	// option rows shown at once in the anchored editor
	editorMaxRows = 8
)

// FieldEditor edits the draft of one filter field. Anchored under its
// trigger on wide screens, it also serves as a full-screen route on
// narrow ones.
type FieldEditor struct {
	styles *styles.Styles
	keys   *styles.KeyMap
	log    *slog.Logger

	field filter.Field
	mode  filter.Mode

	search   textinput.Model
	text     textinput.Model
	expanded bool
	hidden   int
	entries  []editorEntry
	cursor   int
	offset   int

	x, y    int
	visible bool

	// body line -> entry index, -1 for non interactive lines
	lineEntry []int
}

// NewFieldEditor creates a hidden editor
func NewFieldEditor(s *styles.Styles, keys *styles.KeyMap) *FieldEditor {
	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = "Search"
	search.CharLimit = 40
	search.Width = editorWidth - 6

	text := textinput.New()
	text.Prompt = ""
	text.CharLimit = 64
	text.Width = editorWidth - 4

	return &FieldEditor{
		styles: s,
		keys:   keys,
		log:    logger.ComponentLogger("editor"),
		search: search,
		text:   text,
	}
}

// Show opens the editor for f. The draft is synced from the committed
// value before anything renders.
func (e *FieldEditor) Show(f filter.Field, mode filter.Mode, x, y int) tea.Cmd {
	f.Sync()
	e.field = f
	e.mode = mode
	e.x, e.y = x, y
	e.visible = true
	e.expanded = false
	e.cursor = 0
	e.offset = 0
	e.search.SetValue("")
	e.search.Blur()
	e.text.Blur()
	e.log.Debug("open", "field", f.Placeholder(), "kind", f.Kind().String(), "mode", mode.String())

	var cmd tea.Cmd
	switch f.Kind() {
	case filter.KindText:
		t := f.(filter.TextInput)
		e.text.Placeholder = t.Placeholder()
		e.text.SetValue(t.Text())
		cmd = e.text.Focus()
	case filter.KindSelect, filter.KindMultiSelect:
		if e.searchable() {
			cmd = e.search.Focus()
		}
	}
	e.rebuild()
	if o, ok := f.(filter.Options); ok {
		// start on the first selected option
		for i, en := range e.entries {
			if en.kind == entryOption && o.Selected(en.opt) {
				e.cursor = i
				break
			}
		}
	}
	return cmd
}

// Hide closes the editor without touching the field
func (e *FieldEditor) Hide() {
	e.visible = false
	e.search.Blur()
	e.text.Blur()
}

// IsVisible returns whether the editor is open
func (e *FieldEditor) IsVisible() bool {
	return e.visible
}

// Field returns the field being edited
func (e *FieldEditor) Field() filter.Field {
	return e.field
}

// searchable reports whether the option search input is shown
func (e *FieldEditor) searchable() bool {
	o, ok := e.field.(filter.Options)
	if !ok {
		return false
	}
	if e.mode == filter.ModeMobile {
		return e.expanded
	}
	return e.field.Kind() == filter.KindMultiSelect || len(o.Labels()) > filter.MobileOptionLimit
}

func (e *FieldEditor) rebuild() {
	e.entries = e.entries[:0]
	e.hidden = 0
	switch e.field.Kind() {
	case filter.KindText:
		e.entries = append(e.entries, editorEntry{kind: entryApply}, editorEntry{kind: entryClear})
	case filter.KindSelect, filter.KindMultiSelect:
		o := e.field.(filter.Options)
		var visible []int
		if e.mode == filter.ModeMobile {
			visible, e.hidden = filter.MobileOptions(o.Labels(), e.expanded, e.search.Value())
		} else {
			visible = filter.FilterOptions(o.Labels(), e.search.Value())
		}
		for _, idx := range visible {
			e.entries = append(e.entries, editorEntry{kind: entryOption, opt: idx})
		}
		if e.hidden > 0 {
			e.entries = append(e.entries, editorEntry{kind: entryMore})
		}
		if e.needsApply() {
			e.entries = append(e.entries, editorEntry{kind: entryApply})
		}
		if e.field.Kind() == filter.KindMultiSelect || !e.field.IsEmpty() {
			e.entries = append(e.entries, editorEntry{kind: entryClear})
		}
	}
	if e.cursor >= len(e.entries) {
		e.cursor = max(0, len(e.entries)-1)
	}
}

func (e *FieldEditor) needsApply() bool {
	switch e.field.Kind() {
	case filter.KindText, filter.KindMultiSelect:
		return true
	case filter.KindSelect:
		c := e.field.(filter.Choice)
		return !c.Immediate()
	default:
		return false
	}
}

// jumpToBest moves the cursor to the closest fuzzy match of the search query
func (e *FieldEditor) jumpToBest() {
	o, ok := e.field.(filter.Options)
	if !ok {
		return
	}
	var visible []int
	for _, en := range e.entries {
		if en.kind == entryOption {
			visible = append(visible, en.opt)
		}
	}
	if len(visible) == 0 {
		return
	}
	e.cursor = filter.BestMatch(o.Labels(), visible, e.search.Value())
}

// Update handles keys while the editor is open
func (e *FieldEditor) Update(msg tea.Msg) (*FieldEditor, tea.Cmd) {
	if !e.visible {
		return e, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch {
	case km.Type == tea.KeyEsc:
		return e, e.finish(EditorRolledBack)
	case km.Type == tea.KeyUp:
		e.move(-1)
		return e, nil
	case km.Type == tea.KeyDown, km.Type == tea.KeyTab:
		e.move(1)
		return e, nil
	case km.Type == tea.KeyShiftTab:
		e.move(-1)
		return e, nil
	case km.Type == tea.KeyEnter:
		return e, e.activate(e.cursor)
	case km.Type == tea.KeySpace && !e.typing():
		return e, e.activate(e.cursor)
	case key.Matches(km, e.keys.Up) && !e.typing():
		e.move(-1)
		return e, nil
	case key.Matches(km, e.keys.Down) && !e.typing():
		e.move(1)
		return e, nil
	}

	var cmd tea.Cmd
	switch {
	case e.text.Focused():
		e.text, cmd = e.text.Update(km)
		e.field.(filter.TextInput).SetText(e.text.Value())
	case e.search.Focused():
		before := e.search.Value()
		e.search, cmd = e.search.Update(km)
		if e.search.Value() != before {
			e.rebuild()
			e.jumpToBest()
		}
	}
	return e, cmd
}

// typing reports whether printable keys belong to a text input
func (e *FieldEditor) typing() bool {
	return e.text.Focused() || e.search.Focused()
}

func (e *FieldEditor) move(delta int) {
	if len(e.entries) == 0 {
		return
	}
	e.cursor = (e.cursor + delta + len(e.entries)) % len(e.entries)
}

// activate runs entry i
func (e *FieldEditor) activate(i int) tea.Cmd {
	if i < 0 || i >= len(e.entries) {
		return nil
	}
	e.cursor = i
	en := e.entries[i]
	switch en.kind {
	case entryOption:
		switch e.field.Kind() {
		case filter.KindSelect:
			c := e.field.(filter.Choice)
			c.Choose(en.opt)
			if c.Immediate() {
				e.log.Debug("apply", "field", e.field.Placeholder())
				return e.close(EditorApplied)
			}
		case filter.KindMultiSelect:
			e.field.(filter.MultiChoice).Toggle(en.opt)
		case filter.KindText:
		}
	case entryMore:
		e.expanded = true
		e.rebuild()
		return e.search.Focus()
	case entryApply:
		return e.finish(EditorApplied)
	case entryClear:
		return e.finish(EditorReset)
	}
	return nil
}

// finish applies, rolls back or resets the field and closes the editor
func (e *FieldEditor) finish(r EditorResult) tea.Cmd {
	switch r {
	case EditorApplied:
		e.field.Apply()
	case EditorRolledBack:
		e.field.Rollback()
	case EditorReset:
		e.field.Reset()
	}
	e.log.Debug(r.String(), "field", e.field.Placeholder())
	return e.close(r)
}

func (e *FieldEditor) close(r EditorResult) tea.Cmd {
	f := e.field
	e.Hide()
	return func() tea.Msg { return EditorDoneMsg{Field: f, Result: r} }
}

// Cancel rolls the draft back and hides the editor without a message.
// The route stack uses it when the editor route is popped.
func (e *FieldEditor) Cancel() {
	if !e.visible {
		return
	}
	e.field.Rollback()
	e.log.Debug(EditorRolledBack.String(), "field", e.field.Placeholder())
	e.Hide()
}

// Bounds returns the anchored box in screen cells
func (e *FieldEditor) Bounds() (x, y, w, h int) {
	v := e.View()
	return e.x, e.y, lipgloss.Width(v), lipgloss.Height(v)
}

// HandleMouse handles a pointer event while the anchored editor is open.
// A press outside the box is a click-away and rolls the draft back.
func (e *FieldEditor) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !e.visible {
		return false, nil
	}
	x, y, w, h := e.Bounds()
	inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inside {
			e.move(-1)
		}
		return inside, nil
	case tea.MouseButtonWheelDown:
		if inside {
			e.move(1)
		}
		return inside, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return inside, nil
	}
	if !inside {
		return true, e.finish(EditorRolledBack)
	}
	// border row then body lines
	return true, e.ClickLine(msg.Y - y - 1)
}

// ClickLine activates whatever sits on body line n
func (e *FieldEditor) ClickLine(n int) tea.Cmd {
	if n < 0 || n >= len(e.lineEntry) {
		return nil
	}
	idx := e.lineEntry[n]
	if idx < 0 {
		if n == 0 && e.searchable() {
			return e.search.Focus()
		}
		return nil
	}
	return e.activate(idx)
}

// View renders the anchored editor box
func (e *FieldEditor) View() string {
	if !e.visible {
		return ""
	}
	return e.styles.Editor.Width(editorWidth).Render(e.Body(editorWidth-2, editorMaxRows+4))
}

// Body renders the editor content without a frame
func (e *FieldEditor) Body(width, height int) string {
	var lines []string
	e.lineEntry = e.lineEntry[:0]
	add := func(s string, entry int) {
		lines = append(lines, fit(s, width))
		e.lineEntry = append(e.lineEntry, entry)
	}

	if e.field.Kind() == filter.KindText {
		add(e.text.View(), -1)
		add("", -1)
		e.renderButtons(add)
		return strings.Join(lines, "\n")
	}

	if e.searchable() {
		add(e.search.View(), -1)
	}

	o := e.field.(filter.Options)
	labels := o.Labels()
	var options []int
	for i, en := range e.entries {
		if en.kind == entryOption {
			options = append(options, i)
		}
	}
	rows := max(1, height-len(lines)-3)
	if e.mode != filter.ModeMobile {
		rows = min(rows, editorMaxRows)
	}
	e.scrollTo(rows)

	if len(options) == 0 {
		add(e.styles.Muted.Render("  No matches"), -1)
	}
	for _, i := range options[min(e.offset, len(options)):min(e.offset+rows, len(options))] {
		en := e.entries[i]
		mark := e.marker(o, en.opt)
		line := fmt.Sprintf("%s %s", mark, labels[en.opt])
		if i == e.cursor {
			line = e.styles.ListItemSelected.Render(fit(line, width))
		}
		add(line, i)
	}
	if e.hidden > 0 {
		i := len(options)
		label := fmt.Sprintf("More options (%d)", e.hidden)
		if e.cursor == i {
			label = e.styles.ListItemSelected.Render(label)
		} else {
			label = e.styles.Info.Render(label)
		}
		add(label, i)
	}
	e.renderButtons(add)
	return strings.Join(lines, "\n")
}

// scrollTo keeps the cursor inside the window of rows option lines
func (e *FieldEditor) scrollTo(rows int) {
	if len(e.entries) == 0 {
		e.offset = 0
		return
	}
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	if e.cursor >= e.offset+rows && e.entries[e.cursor].kind == entryOption {
		e.offset = e.cursor - rows + 1
	}
	if e.offset < 0 {
		e.offset = 0
	}
}

func (e *FieldEditor) marker(o filter.Options, opt int) string {
	selected := o.Selected(opt)
	if e.field.Kind() == filter.KindMultiSelect {
		if selected {
			return e.styles.Checkbox.Render("[x]")
		}
		return "[ ]"
	}
	if selected {
		return e.styles.Checkbox.Render("(•)")
	}
	return "( )"
}

func (e *FieldEditor) renderButtons(add func(string, int)) {
	var parts []string
	var ids []int
	for i, en := range e.entries {
		var label string
		switch en.kind {
		case entryApply:
			label = "Apply"
		case entryClear:
			label = "Clear"
		default:
			continue
		}
		if i == e.cursor {
			parts = append(parts, e.styles.ButtonFocus.Render(label))
		} else {
			parts = append(parts, e.styles.Button.Render("["+label+"]"))
		}
		ids = append(ids, i)
	}
	if len(parts) == 0 {
		return
	}
	// every button sits on its own line so a click maps to one entry
	for k, p := range parts {
		add(p, ids[k])
	}
}

// Title names the editor when shown as a route
func (e *FieldEditor) Title() string {
	if e.field == nil {
		return ""
	}
	return e.field.Placeholder()
}

// Back is the route back action
func (e *FieldEditor) Back() {
	e.Cancel()
}

// ClearRoute is the route header clear action
func (e *FieldEditor) ClearRoute() tea.Cmd {
	return e.finish(EditorReset)
}

// HandleKey lets the route stack forward keys
func (e *FieldEditor) HandleKey(msg tea.KeyMsg) tea.Cmd {
	_, cmd := e.Update(msg)
	return cmd
}
