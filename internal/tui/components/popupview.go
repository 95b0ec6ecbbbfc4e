// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/popup"
	"github.com/green/reqdesk/internal/tui/styles"
)

// DoubleClickWindow is the longest gap between two header presses that
// still counts as a double click.
const DoubleClickWindow = 400 * time.Millisecond

const (
	minPopupWidth  = 24
	minPopupHeight = 8
	// border, header, divider above the body; divider, footer, border below
	popupChromeRows = 6
	footerCloseText = "[ Close ]"
)

type viewState int

const (
	stateEntering viewState = iota
	stateIdle
	stateDragging
	stateResizing
)

func (s viewState) String() string {
	switch s {
	case stateEntering:
		return "entering"
	case stateIdle:
		return "idle"
	case stateDragging:
		return "dragging"
	case stateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

type zone int

const (
	zoneNone zone = iota
	zoneHeader
	zoneMaximize
	zoneHide
	zoneClose
	zoneFooterClose
	zoneBody
	zoneResize
)

// resizeGrip marks the bottom-right corner that resizes the panel
const resizeGrip = "◢"

// popupCenterMsg is delivered once after a new window mounts
type popupCenterMsg struct {
	ID string
}

// PopupView is the window for one popup record. Position and visibility
// live in the registry; the view owns only drag, centering and maximize.
type PopupView struct {
	reg    *popup.Registry
	styles *styles.Styles
	id     string
	log    *slog.Logger

	state      viewState
	maximized  bool
	centered   bool
	offX, offY int

	width, height int

	lastPress        time.Time
	lastPX, lastPY   int
	body             viewport.Model
	bodyW, bodyH     int
	bodyContentDirty bool
}

// NewPopupView creates the view for record id. It panics without a registry.
func NewPopupView(reg *popup.Registry, s *styles.Styles, id string) *PopupView {
	v := &PopupView{
		reg:              popup.MustRegistry(reg),
		styles:           s,
		id:               id,
		log:              logger.ComponentLogger("popup"),
		width:            s.Tokens.Variables.PopupWidth,
		height:           s.Tokens.Variables.PopupHeight,
		body:             viewport.New(0, 0),
		bodyContentDirty: true,
	}
	if v.width < minPopupWidth {
		v.width = minPopupWidth
	}
	if v.height < minPopupHeight {
		v.height = minPopupHeight
	}
	return v
}

// ID returns the record id
func (v *PopupView) ID() string { return v.id }

// Maximized reports whether the panel fills the viewport
func (v *PopupView) Maximized() bool { return v.maximized }

// Dragging reports whether a drag is in progress
func (v *PopupView) Dragging() bool { return v.state == stateDragging }

// Resizing reports whether the panel is being resized from its grip
func (v *PopupView) Resizing() bool { return v.state == stateResizing }

// Size returns the panel size before viewport clamping
func (v *PopupView) Size() (int, int) { return v.width, v.height }

// Mount runs when the record becomes visible. Unpositioned records get a
// one-shot centering command.
func (v *PopupView) Mount() tea.Cmd {
	rec, ok := v.reg.Get(v.id)
	if !ok {
		return nil
	}
	if rec.Positioned() {
		v.centered = true
		v.state = stateIdle
		return nil
	}
	v.state = stateEntering
	id := v.id
	return func() tea.Msg { return popupCenterMsg{ID: id} }
}

// Center commits the centred position. Only the first call has any effect.
func (v *PopupView) Center(vw, vh int) {
	if v.centered {
		return
	}
	v.centered = true
	if v.state == stateEntering {
		v.state = stateIdle
	}
	rec, ok := v.reg.Get(v.id)
	if !ok || rec.Positioned() {
		return
	}
	w, h := v.size(vw, vh)
	x, y := vw/2-w/2, vh/2-h/2
	v.reg.UpdatePosition(v.id, x, y)
	v.log.Debug("centered", "id", v.id, "x", x, "y", y)
}

func (v *PopupView) size(vw, vh int) (int, int) {
	w, h := v.width, v.height
	if vw > 0 && w > vw {
		w = vw
	}
	if vh > 0 && h > vh {
		h = vh
	}
	return w, h
}

// Bounds returns the panel rectangle within a vw x vh viewport.
func (v *PopupView) Bounds(vw, vh int) (x, y, w, h int) {
	if v.maximized {
		return 0, 0, vw, vh
	}
	rec, _ := v.reg.Get(v.id)
	w, h = v.size(vw, vh)
	return rec.X, rec.Y, w, h
}

// Contains reports whether the cell lies on the panel
func (v *PopupView) Contains(px, py, vw, vh int) bool {
	return v.zoneAt(px, py, vw, vh) != zoneNone
}

func (v *PopupView) zoneAt(px, py, vw, vh int) zone {
	x, y, w, h := v.Bounds(vw, vh)
	if px < x || px >= x+w || py < y || py >= y+h {
		return zoneNone
	}
	if !v.maximized && px == x+w-1 && py == y+h-1 {
		return zoneResize
	}
	if py == y+1 {
		switch px {
		case x + w - 7:
			return zoneMaximize
		case x + w - 5:
			return zoneHide
		case x + w - 3:
			return zoneClose
		}
	}
	if py <= y+2 {
		return zoneHeader
	}
	closeW := lipgloss.Width(footerCloseText)
	if py == y+h-2 && px >= x+w-2-closeW && px <= x+w-3 {
		return zoneFooterClose
	}
	return zoneBody
}

// Press handles a left button press inside the panel. It returns true when
// a drag begins and the caller must hold the drag subscription.
func (v *PopupView) Press(px, py, vw, vh int, now time.Time) bool {
	switch v.zoneAt(px, py, vw, vh) {
	case zoneMaximize:
		v.reg.Focus(v.id)
		v.ToggleMaximize()
	case zoneHide:
		v.reg.Hide(v.id)
	case zoneClose, zoneFooterClose:
		v.reg.Close(v.id)
	case zoneHeader:
		v.reg.Focus(v.id)
		if !v.lastPress.IsZero() && now.Sub(v.lastPress) <= DoubleClickWindow && px == v.lastPX && py == v.lastPY {
			v.lastPress = time.Time{}
			v.ToggleMaximize()
			return false
		}
		v.lastPress, v.lastPX, v.lastPY = now, px, py
		rec, _ := v.reg.Get(v.id)
		v.offX, v.offY = px-rec.X, py-rec.Y
		v.state = stateDragging
		v.log.Debug("drag begin", "id", v.id, "offX", v.offX, "offY", v.offY)
		return true
	case zoneResize:
		v.reg.Focus(v.id)
		v.state = stateResizing
		v.log.Debug("resize begin", "id", v.id, "w", v.width, "h", v.height)
		return true
	case zoneBody:
		v.reg.Focus(v.id)
	case zoneNone:
	}
	return false
}

// Drag follows the pointer: it moves the panel, or while resizing puts
// the bottom-right corner under the pointer.
func (v *PopupView) Drag(px, py, vw, vh int) {
	switch v.state {
	case stateDragging:
		v.maximized = false
		v.reg.UpdatePosition(v.id, px-v.offX, py-v.offY)
	case stateResizing:
		rec, ok := v.reg.Get(v.id)
		if !ok {
			return
		}
		v.setSize(px-rec.X+1, py-rec.Y+1, vw-rec.X, vh-rec.Y)
	}
}

// Resize grows or shrinks the panel by a cell delta
func (v *PopupView) Resize(dw, dh, vw, vh int) {
	rec, ok := v.reg.Get(v.id)
	if !ok {
		return
	}
	v.maximized = false
	v.setSize(v.width+dw, v.height+dh, vw-rec.X, vh-rec.Y)
}

// setSize applies w x h, bounded by the room left in the viewport and by
// the minimum panel size.
func (v *PopupView) setSize(w, h, roomW, roomH int) {
	if roomW > 0 {
		w = min(w, roomW)
	}
	if roomH > 0 {
		h = min(h, roomH)
	}
	w, h = max(w, minPopupWidth), max(h, minPopupHeight)
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	v.Invalidate()
}

// Release ends a drag or resize. It is also used for external
// cancellation.
func (v *PopupView) Release() {
	switch v.state {
	case stateDragging:
		v.state = stateIdle
		v.log.Debug("drag end", "id", v.id)
	case stateResizing:
		v.state = stateIdle
		v.log.Debug("resize end", "id", v.id, "w", v.width, "h", v.height)
	}
}

// ToggleMaximize flips the maximized flag
func (v *PopupView) ToggleMaximize() {
	v.maximized = !v.maximized
}

// Nudge moves the panel by a cell offset
func (v *PopupView) Nudge(dx, dy int) {
	rec, ok := v.reg.Get(v.id)
	if !ok {
		return
	}
	v.maximized = false
	v.reg.UpdatePosition(v.id, rec.X+dx, rec.Y+dy)
}

// Scroll moves the body by n lines, negative scrolls up.
func (v *PopupView) Scroll(n int) {
	v.body.SetYOffset(v.body.YOffset + n)
}

// View renders the panel at its bounds size. focused selects the border.
func (v *PopupView) View(vw, vh int, focused bool) string {
	rec, ok := v.reg.Get(v.id)
	if !ok {
		return ""
	}
	_, _, w, h := v.Bounds(vw, vh)
	iw := w - 2
	if iw < 1 || h < popupChromeRows {
		return ""
	}

	divider := v.styles.Muted.Render(strings.Repeat("─", iw))

	// header: icon and title on the left, three dots on the right
	dots := v.styles.DotMaximize.Render("●") + " " +
		v.styles.DotHide.Render("●") + " " +
		v.styles.DotClose.Render("●")
	title := rec.Title
	if rec.Icon != "" {
		title = rec.Icon + " " + title
	}
	titleW := iw - lipgloss.Width(dots) - 3
	header := " " + fit(v.styles.PopupTitle.Render(title), titleW) + " " + dots + " "

	bodyH := h - popupChromeRows
	v.renderBody(rec, iw, bodyH)
	bodyLines := strings.Split(v.body.View(), "\n")
	for len(bodyLines) < bodyH {
		bodyLines = append(bodyLines, "")
	}
	for i := range bodyLines {
		bodyLines[i] = fit(bodyLines[i], iw)
	}

	closeBtn := v.styles.Button.UnsetPadding().Render(footerCloseText)
	footer := fit(strings.Repeat(" ", max(iw-lipgloss.Width(footerCloseText)-1, 0))+closeBtn, iw)

	lines := make([]string, 0, h-2)
	lines = append(lines, fit(header, iw), divider)
	lines = append(lines, bodyLines[:bodyH]...)
	lines = append(lines, divider, footer)

	frame := v.styles.Popup
	if focused {
		frame = v.styles.PopupFocused
	}
	if !v.maximized {
		border := frame.GetBorderStyle()
		border.BottomRight = resizeGrip
		frame = frame.BorderStyle(border)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (v *PopupView) renderBody(rec popup.Record, w, h int) {
	if w != v.bodyW || h != v.bodyH {
		v.body.Width, v.body.Height = w, h
		v.bodyW, v.bodyH = w, h
		v.bodyContentDirty = true
	}
	if !v.bodyContentDirty {
		return
	}
	content := ""
	if rec.Body != nil {
		content = rec.Body.View(w, h)
	}
	v.body.SetContent(content)
	v.bodyContentDirty = false
}

// Invalidate forces the body to be rendered again on the next View.
func (v *PopupView) Invalidate() {
	v.bodyContentDirty = true
}
