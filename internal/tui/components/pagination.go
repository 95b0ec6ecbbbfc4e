// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/tui/styles"
)

// PageChangeMsg asks the page to show another page or page size
type PageChangeMsg struct {
	Page int
	Size int
}

type pageHit struct {
	x0, x1 int
	page   int
	size   int
}

type pagePart struct {
	text string
	hit  *PageChangeMsg
}

// Pagination renders the page selector and rows-per-page control. Pages
// are 1-based outside; the embedded paginator counts from 0.
type Pagination struct {
	styles *styles.Styles
	pager  paginator.Model
	total  int
	x, y   int
	width  int
	hits   []pageHit
}

// NewPagination creates the control on page 1
func NewPagination(s *styles.Styles) *Pagination {
	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.ArabicFormat = "Page %d / %d"
	pg.PerPage = requests.PageSizeOptions[0]
	p := &Pagination{styles: s, pager: pg}
	p.place()
	return p
}

// Set updates the displayed state. page is clamped to the available pages.
func (p *Pagination) Set(page, size, total int) {
	p.total = total
	p.pager.PerPage = max(1, size)
	p.pager.TotalPages = 1
	p.pager.SetTotalPages(total)
	p.pager.Page = min(max(0, page-1), p.pager.TotalPages-1)
	p.place()
}

// Page returns the clamped current page
func (p *Pagination) Page() int {
	return p.pager.Page + 1
}

// Size returns the rows-per-page value
func (p *Pagination) Size() int {
	return p.pager.PerPage
}

// SetOrigin records where the control is drawn
func (p *Pagination) SetOrigin(x, y int) {
	p.x = x
	p.y = y
}

// SetWidth sets the row width
func (p *Pagination) SetWidth(w int) {
	p.width = w
	p.place()
}

// Prev returns the change for the previous page
func (p *Pagination) Prev() PageChangeMsg {
	pg := p.pager
	pg.PrevPage()
	return PageChangeMsg{Page: pg.Page + 1, Size: pg.PerPage}
}

// Next returns the change for the next page
func (p *Pagination) Next() PageChangeMsg {
	pg := p.pager
	pg.NextPage()
	return PageChangeMsg{Page: pg.Page + 1, Size: pg.PerPage}
}

// Resize returns the change for stepping the page size by delta. The page
// goes back to 1.
func (p *Pagination) Resize(delta int) PageChangeMsg {
	return PageChangeMsg{Page: 1, Size: requests.NextPageSize(p.pager.PerPage, delta)}
}

// HandleMouse handles presses on the controls
func (p *Pagination) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.Y != p.y || msg.X < p.x || msg.X >= p.x+p.width {
		return false, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return true, nil
	}
	col := msg.X - p.x
	for _, h := range p.hits {
		if col >= h.x0 && col < h.x1 {
			change := PageChangeMsg{Page: h.page, Size: h.size}
			return true, func() tea.Msg { return change }
		}
	}
	return true, nil
}

// rowRange returns the 1-based first and last row numbers on the page.
// Both are zero without rows.
func (p *Pagination) rowRange() (int, int) {
	if p.total <= 0 {
		return 0, 0
	}
	start, end := p.pager.GetSliceBounds(p.total)
	return start + 1, end
}

func (p *Pagination) parts() []pagePart {
	from, to := p.rowRange()

	// the size selector wraps from the largest size
	next := p.Resize(1)
	if next.Size == p.pager.PerPage {
		next = PageChangeMsg{Page: 1, Size: requests.PageSizeOptions[0]}
	}
	prev, fwd := p.Prev(), p.Next()
	return []pagePart{
		{text: p.styles.Label.Render("Rows per page:")},
		{text: p.styles.Trigger.Render(fmt.Sprintf("%d ▾", p.pager.PerPage)), hit: &next},
		{text: p.styles.Value.Render(fmt.Sprintf("%d–%d of %d", from, to, p.total))},
		{text: p.arrow("‹", !p.pager.OnFirstPage()), hit: &prev},
		{text: p.styles.Value.Render(p.pager.View())},
		{text: p.arrow("›", !p.pager.OnLastPage()), hit: &fwd},
	}
}

// place right-aligns the parts and records the hit boxes
func (p *Pagination) place() {
	parts := p.parts()
	width := 0
	for i, pt := range parts {
		if i > 0 {
			width += 2
		}
		width += lipgloss.Width(pt.text)
	}
	col := max(0, p.width-width)
	p.hits = p.hits[:0]
	for i, pt := range parts {
		if i > 0 {
			col += 2
		}
		w := lipgloss.Width(pt.text)
		if pt.hit != nil {
			p.hits = append(p.hits, pageHit{x0: col, x1: col + w, page: pt.hit.Page, size: pt.hit.Size})
		}
		col += w
	}
}

// View renders the right-aligned control row
func (p *Pagination) View() string {
	var texts []string
	for _, pt := range p.parts() {
		texts = append(texts, pt.text)
	}
	row := strings.Join(texts, "  ")
	pad := max(0, p.width-lipgloss.Width(row))
	return fit(strings.Repeat(" ", pad)+row, p.width)
}

func (p *Pagination) arrow(s string, enabled bool) string {
	if enabled {
		return p.styles.HelpKey.Render(" " + s + " ")
	}
	return p.styles.Disabled.Render(" " + s + " ")
}
