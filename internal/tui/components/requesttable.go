// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/tui/styles"
)

// OpenRequestMsg is sent when a row is clicked or confirmed
type OpenRequestMsg struct {
	Index   int
	Request requests.Request
}

// RequestTable lists the request rows with a scrollbar
type RequestTable struct {
	rows    []requests.Request
	cursor  int
	offset  int
	styles  *styles.Styles
	keys    *styles.KeyMap
	x, y    int
	width   int
	height  int
	focused bool
}

// NewRequestTable creates an empty table
func NewRequestTable(s *styles.Styles, keys *styles.KeyMap) *RequestTable {
	return &RequestTable{
		styles: s,
		keys:   keys,
	}
}

// SetRows replaces the rows. The cursor is kept when still in range.
func (c *RequestTable) SetRows(rows []requests.Request) {
	c.rows = rows
	if c.cursor >= len(rows) {
		c.cursor = max(0, len(rows)-1)
	}
	c.SetOffset(c.offset)
	c.ensureVisible()
}

// Rows returns the displayed rows
func (c *RequestTable) Rows() []requests.Request {
	return c.rows
}

// Selected returns the row under the cursor
func (c *RequestTable) Selected() (requests.Request, bool) {
	if c.cursor >= 0 && c.cursor < len(c.rows) {
		return c.rows[c.cursor], true
	}
	return requests.Request{}, false
}

// Cursor returns the cursor row index
func (c *RequestTable) Cursor() int {
	return c.cursor
}

// SetOrigin records where the table is drawn on screen
func (c *RequestTable) SetOrigin(x, y int) {
	c.x = x
	c.y = y
}

// SetSize sets the component dimensions
func (c *RequestTable) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.ensureVisible()
}

// SetFocused sets the focus state
func (c *RequestTable) SetFocused(focused bool) {
	c.focused = focused
}

// IsFocused returns the focus state
func (c *RequestTable) IsFocused() bool {
	return c.focused
}

// SetOffset sets the scroll offset, clamped to valid range.
func (c *RequestTable) SetOffset(offset int) {
	maxOffset := max(0, len(c.rows)-c.visibleRows())
	c.offset = min(max(0, offset), maxOffset)
}

// SetCursor sets the cursor position and ensures visibility
func (c *RequestTable) SetCursor(idx int) {
	if idx >= 0 && idx < len(c.rows) {
		c.cursor = idx
		c.ensureVisible()
	}
}

// visibleRows returns how many request rows can be displayed
func (c *RequestTable) visibleRows() int {
	// border (2), header row (1), separator (1)
	return max(1, c.height-4)
}

func (c *RequestTable) ensureVisible() {
	visible := c.visibleRows()
	if c.cursor < c.offset {
		c.offset = c.cursor
	} else if c.cursor >= c.offset+visible {
		c.offset = c.cursor - visible + 1
	}
}

func (c *RequestTable) open(i int) tea.Cmd {
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	r := c.rows[i]
	return func() tea.Msg { return OpenRequestMsg{Index: i, Request: r} }
}

// Update handles navigation keys
func (c *RequestTable) Update(msg tea.Msg) (*RequestTable, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(km, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
			c.ensureVisible()
		}
	case key.Matches(km, c.keys.Down):
		if c.cursor < len(c.rows)-1 {
			c.cursor++
			c.ensureVisible()
		}
	case key.Matches(km, c.keys.Top):
		c.cursor = 0
		c.offset = 0
	case key.Matches(km, c.keys.Bottom):
		c.cursor = max(0, len(c.rows)-1)
		c.ensureVisible()
	case key.Matches(km, c.keys.PageUp):
		c.cursor = max(0, c.cursor-c.visibleRows())
		c.ensureVisible()
	case key.Matches(km, c.keys.PageDown):
		c.cursor = max(0, min(len(c.rows)-1, c.cursor+c.visibleRows()))
		c.ensureVisible()
	case key.Matches(km, c.keys.Select):
		return c, c.open(c.cursor)
	}
	return c, nil
}

// HandleMouse selects and opens the clicked row and scrolls on the wheel.
func (c *RequestTable) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.X < c.x || msg.X >= c.x+c.width || msg.Y < c.y || msg.Y >= c.y+c.height {
		return false, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		c.SetOffset(c.offset - 3)
		return true, nil
	case tea.MouseButtonWheelDown:
		c.SetOffset(c.offset + 3)
		return true, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return true, nil
	}
	// border, header, separator
	line := msg.Y - c.y - 3
	if line < 0 || line >= c.visibleRows() {
		return true, nil
	}
	i := c.offset + line
	if i >= len(c.rows) {
		return true, nil
	}
	c.cursor = i
	return true, c.open(i)
}

// Column widths (fixed)
const (
	colName      = 12
	colDate      = 11
	colStatus    = 11
	colRequester = 10
	colPartner   = 10
	colClient    = 9
	colClientID  = 9
)

// View renders the table
func (c *RequestTable) View() string {
	style := c.styles.Border
	if c.focused {
		style = c.styles.Focused
	}

	// border plus scrollbar
	contentWidth := max(20, c.width-5)

	rows := []string{c.renderHeader(contentWidth), c.styles.Muted.Render(strings.Repeat("─", contentWidth))}
	visible := c.visibleRows()
	if len(c.rows) == 0 {
		rows = append(rows, c.styles.Muted.Render("  No requests match"))
	} else {
		for i := c.offset; i < len(c.rows) && i < c.offset+visible; i++ {
			rows = append(rows, c.renderRow(c.rows[i], contentWidth, i == c.cursor))
		}
	}

	innerHeight := max(1, c.height-2)
	scrollLines := strings.Split(c.renderScrollbar(innerHeight), "\n")

	var outLines []string
	for i, line := range rows {
		sb := "  "
		if i < len(scrollLines) {
			sb = scrollLines[i]
		}
		outLines = append(outLines, fit(line, contentWidth)+" "+sb)
	}
	for len(outLines) < innerHeight {
		outLines = append(outLines, strings.Repeat(" ", contentWidth+3))
	}
	if len(outLines) > innerHeight {
		outLines = outLines[:innerHeight]
	}

	return style.
		Width(max(1, c.width-2)).
		Height(innerHeight).
		Render(strings.Join(outLines, "\n"))
}

func (c *RequestTable) renderHeader(width int) string {
	h := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %-*s %s",
		colName, "NAME",
		colDate, "DATE",
		colStatus, "STATUS",
		colRequester, "REQUESTER",
		colPartner, "PARTNER",
		colClient, "CLIENT",
		colClientID, "CLIENT ID",
		"REASON",
	)
	return c.styles.Label.Render(ansi.Truncate(h, width, ""))
}

func (c *RequestTable) renderRow(r requests.Request, width int, selected bool) string {
	fixed := colName + colDate + colStatus + colRequester + colPartner + colClient + colClientID + 7
	reason := ansi.Truncate(r.Reason, max(10, width-fixed-1), "…")
	status := requests.StatusLabel(r.Status)

	if selected {
		row := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %-*s %s",
			colName, r.Name,
			colDate, r.Date,
			colStatus, status,
			colRequester, r.Requester,
			colPartner, r.PartnerNo,
			colClient, r.Client,
			colClientID, r.ClientID,
			reason,
		)
		return c.styles.ListItemSelected.Width(width).Render(ansi.Truncate(row, width, ""))
	}

	name := c.styles.RequestName.Render(fmt.Sprintf("%-*s", colName, r.Name))
	statusStr := c.styles.StatusStyle(r.Status).Render(fmt.Sprintf("%-*s", colStatus, status))
	return fmt.Sprintf("%s %-*s %s %-*s %-*s %-*s %-*s %s",
		name,
		colDate, r.Date,
		statusStr,
		colRequester, r.Requester,
		colPartner, r.PartnerNo,
		colClient, r.Client,
		colClientID, r.ClientID,
		reason,
	)
}

// renderScrollbar renders a vertical scrollbar aligned to the rows
func (c *RequestTable) renderScrollbar(height int) string {
	total := len(c.rows)
	visible := c.visibleRows()
	if total <= visible {
		return strings.Repeat("  \n", height-1) + "  "
	}

	areaTop := 2
	areaHeight := height - areaTop
	if areaHeight < 1 {
		areaTop = 0
		areaHeight = height
	}
	thumbSize := max(1, areaHeight*visible/total)
	maxScroll := total - visible
	thumbPos := c.offset * (areaHeight - thumbSize) / maxScroll

	thumb := c.styles.HelpKey.Render("██")
	track := c.styles.Muted.Render("▒▒")
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		switch {
		case i < areaTop:
			lines = append(lines, "  ")
		case i-areaTop >= thumbPos && i-areaTop < thumbPos+thumbSize:
			lines = append(lines, thumb)
		default:
			lines = append(lines, track)
		}
	}
	return strings.Join(lines, "\n")
}
