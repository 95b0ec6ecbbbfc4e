// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/popup"
	"github.com/green/reqdesk/internal/tui/styles"
)

// Popups hosts one PopupView per visible record, routes pointer and key
// events to them and composites them over the page.
type Popups struct {
	reg    *popup.Registry
	styles *styles.Styles
	keys   *styles.KeyMap
	log    *slog.Logger
	now    func() time.Time

	views map[string]*PopupView
	// id of the view holding the drag subscription, empty when none
	dragging string
	width    int
	height   int
}

// NewPopups creates the popup host. It panics without a registry.
func NewPopups(reg *popup.Registry, s *styles.Styles, keys *styles.KeyMap) *Popups {
	return &Popups{
		reg:    popup.MustRegistry(reg),
		styles: s,
		keys:   keys,
		log:    logger.ComponentLogger("popups"),
		now:    time.Now,
		views:  make(map[string]*PopupView),
	}
}

// SetSize sets the viewport the popups float over
func (p *Popups) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, v := range p.views {
		v.Invalidate()
	}
}

// View returns the mounted view for id, if any
func (p *Popups) View(id string) (*PopupView, bool) {
	v, ok := p.views[id]
	return v, ok
}

// HasVisible reports whether any popup is on screen
func (p *Popups) HasVisible() bool {
	return len(p.views) > 0
}

// Sync mounts views for newly visible records and unmounts views whose
// record was hidden or closed. Unmounting releases the drag subscription.
func (p *Popups) Sync() tea.Cmd {
	visible := make(map[string]bool)
	var cmds []tea.Cmd
	for _, rec := range p.reg.Visible() {
		visible[rec.ID] = true
		if _, ok := p.views[rec.ID]; ok {
			continue
		}
		v := NewPopupView(p.reg, p.styles, rec.ID)
		p.views[rec.ID] = v
		p.log.Debug("mount", "id", rec.ID)
		if cmd := v.Mount(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	for id, v := range p.views {
		if visible[id] {
			continue
		}
		if p.dragging == id {
			p.EndDrag()
		}
		v.Release()
		delete(p.views, id)
		p.log.Debug("unmount", "id", id)
	}
	return tea.Batch(cmds...)
}

// BeginDrag gives the drag subscription to id. Any previous holder is
// released first.
func (p *Popups) BeginDrag(id string) {
	if p.dragging != "" && p.dragging != id {
		p.EndDrag()
	}
	p.dragging = id
}

// EndDrag releases the drag subscription
func (p *Popups) EndDrag() {
	if p.dragging == "" {
		return
	}
	if v, ok := p.views[p.dragging]; ok {
		v.Release()
	}
	p.dragging = ""
}

// Dragging reports whether a drag subscription is held
func (p *Popups) Dragging() bool {
	return p.dragging != ""
}

// Update handles messages addressed to the popup host
func (p *Popups) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case popupCenterMsg:
		if v, ok := p.views[msg.ID]; ok {
			v.Center(p.width, p.height)
		}
	case tea.BlurMsg:
		p.EndDrag()
	}
	return nil
}

// HandleMouse routes a pointer event. It reports whether a popup consumed
// it; unconsumed events belong to the page underneath.
func (p *Popups) HandleMouse(msg tea.MouseMsg) bool {
	if p.dragging != "" {
		v, ok := p.views[p.dragging]
		if !ok {
			p.dragging = ""
			return false
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			v.Drag(msg.X, msg.Y, p.width, p.height)
			return true
		case tea.MouseActionRelease:
			p.EndDrag()
			return true
		case tea.MouseActionPress:
			// a release we never saw
			p.EndDrag()
		}
	}

	v := p.viewAt(msg.X, msg.Y)
	if v == nil {
		return false
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return true
		}
		id := v.ID()
		if v.Press(msg.X, msg.Y, p.width, p.height, p.now()) {
			p.BeginDrag(id)
		}
	case tea.MouseButtonWheelUp:
		v.Scroll(-3)
	case tea.MouseButtonWheelDown:
		v.Scroll(3)
	default:
	}
	return true
}

// viewAt returns the topmost view under the cell
func (p *Popups) viewAt(x, y int) *PopupView {
	visible := p.reg.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		if v, ok := p.views[visible[i].ID]; ok && v.Contains(x, y, p.width, p.height) {
			return v
		}
	}
	return nil
}

// Contains reports whether any popup covers the cell
func (p *Popups) Contains(x, y int) bool {
	return p.viewAt(x, y) != nil
}

// HandleKey applies window shortcuts to the topmost visible popup. It
// reports whether the key was consumed.
func (p *Popups) HandleKey(msg tea.KeyMsg) bool {
	top, ok := p.topVisible()
	if !ok {
		return false
	}
	v, ok := p.views[top.ID]
	if !ok {
		return false
	}

	switch {
	case key.Matches(msg, p.keys.ClosePopup):
		p.reg.Close(top.ID)
	case key.Matches(msg, p.keys.HidePopup):
		p.reg.Hide(top.ID)
	case key.Matches(msg, p.keys.MaximizePopup):
		v.ToggleMaximize()
	case key.Matches(msg, p.keys.CyclePopup):
		p.Cycle()
	case key.Matches(msg, p.keys.NudgeUp):
		v.Nudge(0, -1)
	case key.Matches(msg, p.keys.NudgeDown):
		v.Nudge(0, 1)
	case key.Matches(msg, p.keys.NudgeLeft):
		v.Nudge(-2, 0)
	case key.Matches(msg, p.keys.NudgeRight):
		v.Nudge(2, 0)
	case key.Matches(msg, p.keys.GrowPopup):
		v.Resize(2, 1, p.width, p.height)
	case key.Matches(msg, p.keys.ShrinkPopup):
		v.Resize(-2, -1, p.width, p.height)
	case key.Matches(msg, p.keys.PageUp):
		v.Scroll(-v.body.Height / 2)
	case key.Matches(msg, p.keys.PageDown):
		v.Scroll(v.body.Height / 2)
	default:
		return false
	}
	return true
}

// Cycle focuses the bottom-most visible popup, rotating the stack.
func (p *Popups) Cycle() {
	visible := p.reg.Visible()
	if len(visible) < 2 {
		return
	}
	p.reg.Focus(visible[0].ID)
}

// TopVisible returns the topmost visible record
func (p *Popups) TopVisible() (popup.Record, bool) {
	return p.topVisible()
}

func (p *Popups) topVisible() (popup.Record, bool) {
	visible := p.reg.Visible()
	if len(visible) == 0 {
		return popup.Record{}, false
	}
	return visible[len(visible)-1], true
}

// Overlay composites every visible popup over background in paint order.
func (p *Popups) Overlay(background string) string {
	out := background
	visible := p.reg.Visible()
	for i, rec := range visible {
		v, ok := p.views[rec.ID]
		if !ok || v.state == stateEntering {
			continue
		}
		x, y, _, _ := v.Bounds(p.width, p.height)
		out = PlaceOverlay(x, y, v.View(p.width, p.height, i == len(visible)-1), out)
	}
	return out
}
