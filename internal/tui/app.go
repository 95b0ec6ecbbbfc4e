// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/green/reqdesk/internal/config"
	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/popup"
	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/router"
	"github.com/green/reqdesk/internal/theme"
	"github.com/green/reqdesk/internal/tui/components"
	"github.com/green/reqdesk/internal/tui/styles"
)

// Options configures the TUI
type Options struct {
	Version string
	Config  *config.Manager
	// Route is the path the dashboard starts on
	Route string
}

// Page tabs on the requests route
const (
	tabList = iota
	tabNew
)

var tabTitles = []string{"Requests list", "New request"}

// filterDelay batches filter changes before the rows are recomputed
const filterDelay = 150 * time.Millisecond

// Screen rows above the page body: app bar, tabs
const (
	appBarRow = 0
	tabsRow   = 1
	barRow    = 2
)

// Model is the main TUI model
type Model struct {
	opts   Options
	cfg    *config.Manager
	tokens theme.Tokens
	styles *styles.Styles
	keys   *styles.KeyMap
	log    *slog.Logger
	width  int
	height int
	ready  bool

	reg       *popup.Registry
	popups    *components.Popups
	bar       *components.FilterBar
	editor    *components.FieldEditor
	overflow  *components.Overflow
	routes    *components.RouteStack
	table     *components.RequestTable
	drawer    *components.Drawer
	pager     *components.Pagination
	statusBar *components.StatusBar
	quickOpen *components.QuickOpen
	modal     *components.Modal
	help      help.Model

	route    router.Route
	tab      int
	showHelp bool
	mode     filter.Mode
	query    requests.Query
	all      []requests.Request
	// filterSeq drops stale delayed recomputes
	filterSeq int

	// x of each tab label, for mouse hits
	tabHits [][2]int
}

type filtersAppliedMsg struct {
	seq int
}

type copyResultMsg struct {
	text string
	err  error
}

// NewModel creates the root model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewManager("")
	}
	c := cfg.Get()
	dark := c.UI.Theme == "dark" || (c.UI.Theme == "auto" && lipgloss.HasDarkBackground())
	tokens := c.Tokens(dark)
	s := styles.NewStyles(tokens)
	keys := styles.DefaultKeyMap()

	m := &Model{
		opts:      opts,
		cfg:       cfg,
		tokens:    tokens,
		styles:    s,
		keys:      keys,
		log:       logger.ComponentLogger("app"),
		reg:       popup.NewRegistry(),
		editor:    components.NewFieldEditor(s, keys),
		overflow:  components.NewOverflow(s, keys),
		routes:    components.NewRouteStack(s),
		table:     components.NewRequestTable(s, keys),
		pager:     components.NewPagination(s),
		statusBar: components.NewStatusBar(s),
		quickOpen: components.NewQuickOpen(s),
		modal:     components.NewModal(s),
		help:      help.New(),
		query:     requests.NewQuery(c.UI.PageSize),
		all:       requests.MockRows(),
	}
	m.help.ShowAll = true
	m.reg.OnChange(func() {
		m.log.Debug("registry changed", "ids", m.reg.IDs())
	})
	m.popups = components.NewPopups(m.reg, s, keys)
	m.drawer = components.NewDrawer(s, keys, m.reg)
	m.bar = components.NewFilterBar(s, keys, m.requestFields())
	m.bar.SetBreakpoints(tokens.Breakpoints)

	r, ok := router.Lookup(opts.Route)
	if !ok && opts.Route != "" {
		m.log.Info("unknown route, redirecting", "path", opts.Route, "to", r.Path)
	}
	m.route = r
	m.drawer.SetActive(r.Name)
	m.table.SetFocused(true)
	m.applyQuery()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// applyQuery recomputes the table and pagination from the committed query.
// The mock backend returns every matching row on any page; the pagination
// shows the mocked server count.
func (m *Model) applyQuery() {
	m.table.SetRows(requests.Apply(m.all, m.query))
	m.pager.Set(m.query.Page, m.query.PageSize, requests.TotalCount)
	m.query.Page = m.pager.Page()
	m.bar.Refresh()

	for _, rec := range m.reg.Records() {
		if d, ok := rec.Body.(*components.RequestDetail); ok {
			d.SetHighlight(m.query.Q)
			if v, ok := m.popups.View(rec.ID); ok {
				v.Invalidate()
			}
		}
	}
}

// scheduleFilter shows the spinner and recomputes the rows after a short
// delay. Later changes supersede earlier ones.
func (m *Model) scheduleFilter() tea.Cmd {
	m.filterSeq++
	seq := m.filterSeq
	wasLoading := m.statusBar.Loading()
	m.statusBar.SetLoading(true, "Filtering…")
	cmds := []tea.Cmd{tea.Tick(filterDelay, func(time.Time) tea.Msg {
		return filtersAppliedMsg{seq: seq}
	})}
	if !wasLoading {
		cmds = append(cmds, m.statusBar.SpinnerTick())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	cmd = tea.Batch(cmd, m.popups.Sync())
	m.syncStatus()
	return m, cmd
}

func (m *Model) syncStatus() {
	hidden := 0
	for _, rec := range m.reg.Records() {
		if rec.Hidden {
			hidden++
		}
	}
	m.statusBar.SetPopups(m.reg.Len(), hidden)
	m.statusBar.SetMode(m.mode.String())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateLayout()
		return nil

	case tea.BlurMsg:
		return m.popups.Update(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		_, cmd := m.statusBar.Update(msg)
		return cmd

	case filtersAppliedMsg:
		if msg.seq != m.filterSeq {
			return nil
		}
		m.statusBar.SetLoading(false, "")
		m.applyQuery()
		m.log.Debug("filters applied", "rows", len(m.table.Rows()), "active", m.query.Active())
		return nil

	case components.FiltersChangedMsg:
		return m.scheduleFilter()

	case components.OpenEditorMsg:
		m.bar.Blur()
		cmd := m.editor.Show(msg.Field, msg.Mode, msg.X, msg.Y)
		if msg.Mode == filter.ModeMobile {
			m.routes.Push(m.editor)
		}
		return cmd

	case components.OpenOverflowMsg:
		m.bar.Blur()
		m.overflow.Show(msg.Fields, msg.Mode, msg.X, msg.Y)
		if msg.Mode == filter.ModeMobile {
			m.routes.Push(m.overflow)
		}
		return nil

	case components.EditorDoneMsg:
		m.routes.Drop(m.editor)
		m.bar.Refresh()
		if msg.Result == components.EditorRolledBack {
			return nil
		}
		return m.scheduleFilter()

	case components.OverflowDoneMsg:
		m.routes.Drop(m.overflow)
		m.bar.Refresh()
		if msg.Result == components.EditorRolledBack {
			return nil
		}
		return m.scheduleFilter()

	case components.OpenRequestMsg:
		m.openRequest(msg.Request)
		return nil

	case components.NavigateMsg:
		m.navigate(msg.Route)
		return nil

	case components.PageChangeMsg:
		m.query.Page = msg.Page
		m.query.PageSize = msg.Size
		m.applyQuery()
		return nil

	case components.QuickOpenSubmitMsg:
		if msg.Number > len(m.all) {
			m.statusBar.SetMessage(m.styles.Warning.Render(fmt.Sprintf("Request %d not found", msg.Number)), 3*time.Second)
			return nil
		}
		m.openRequest(m.all[msg.Number-1])
		return nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusBar.SetMessage(m.styles.Error.Render("Copy failed: "+msg.err.Error()), 5*time.Second)
		} else {
			m.statusBar.SetMessage(m.styles.Success.Render("Copied "+msg.text), 3*time.Second)
		}
		return nil
	}
	return m.popups.Update(msg)
}

// rowIndex returns the position of a request among all rows, the popup id
func (m *Model) rowIndex(r requests.Request) int {
	for i, row := range m.all {
		if row.Name == r.Name {
			return i
		}
	}
	return -1
}

// openRequest opens the popup for r, or brings an open one to the front
func (m *Model) openRequest(r requests.Request) {
	i := m.rowIndex(r)
	if i < 0 {
		return
	}
	body := components.NewRequestDetail(m.styles, r)
	body.SetHighlight(m.query.Q)
	m.reg.Add(popup.Model{
		ID:    strconv.Itoa(i),
		Title: r.Name,
		Icon:  "▤",
		Body:  body,
		Data:  r,
	})
}

// newDraft opens an empty new-request popup
func (m *Model) newDraft() {
	id := uuid.NewString()
	m.reg.Add(popup.Model{
		ID:    id,
		Title: "New request " + id[:8],
		Icon:  "✎",
		Body:  components.NewDraftRequest(m.styles, id),
	})
	m.log.Debug("draft", "id", id)
}

// navigate switches route. Popups are hidden, not closed, and any open
// filter editor is rolled back.
func (m *Model) navigate(r router.Route) {
	m.popups.EndDrag()
	m.reg.HideAll()
	m.closeFilterEditors()
	m.bar.Blur()
	m.drawer.SetFocused(false)
	m.route = r
	m.drawer.SetActive(r.Name)
	m.log.Debug("navigate", "path", r.Path)
}

func (m *Model) closeFilterEditors() {
	if m.editor.IsVisible() {
		m.editor.Cancel()
	}
	if m.overflow.IsVisible() {
		m.overflow.Back()
	}
	m.routes.Reset()
}

func (m *Model) nextRoute() router.Route {
	routes := router.Routes()
	return routes[(router.Index(m.route.Name)+1)%len(routes)]
}

func (m *Model) switchTab(tab int) {
	if tab == m.tab {
		return
	}
	m.tab = tab
	if tab == tabNew {
		m.closeFilterEditors()
		m.bar.Blur()
		m.newDraft()
	}
}

// copyTop copies the topmost popup's request number to the clipboard
func (m *Model) copyTop() tea.Cmd {
	rec, ok := m.popups.TopVisible()
	if !ok {
		m.statusBar.SetMessage(m.styles.Muted.Render("No open request"), 2*time.Second)
		return nil
	}
	text := rec.Title
	if r, ok := rec.Data.(requests.Request); ok {
		text = r.Name
	}
	return func() tea.Msg {
		return copyResultMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// applyPreset loads the filters saved in slot
func (m *Model) applyPreset(slot string) tea.Cmd {
	p := m.cfg.GetPreset(slot)
	if p == nil {
		m.statusBar.SetMessage(m.styles.Muted.Render("No preset in slot "+slot), 2*time.Second)
		return nil
	}
	m.closeFilterEditors()
	m.query = p.ApplyTo(m.query)
	m.bar.Refresh()
	m.statusBar.SetMessage(m.styles.Info.Render("Preset: "+p.Name), 2*time.Second)
	return m.scheduleFilter()
}

// promptSavePreset asks for a slot and saves the current filters to it
func (m *Model) promptSavePreset() tea.Cmd {
	return m.modal.ShowTextInput("Save filter preset", "Slot (1-9, 0)", "", func(v string) error {
		slot, ok := config.SlotForKey(strings.TrimSpace(v))
		if !ok {
			return fmt.Errorf("slot must be a single digit")
		}
		if err := m.cfg.SetPreset(slot, config.PresetFromQuery("Preset "+slot, m.query)); err != nil {
			return err
		}
		if err := m.cfg.Save(); err != nil {
			m.log.Error("save preset", "err", err)
			return fmt.Errorf("saving config: %w", err)
		}
		m.statusBar.SetMessage(m.styles.Success.Render("Saved preset "+slot), 3*time.Second)
		return nil
	}, nil)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.quickOpen.IsVisible():
		_, cmd := m.quickOpen.Update(msg)
		return cmd
	case m.modal.IsVisible():
		_, cmd := m.modal.Update(msg)
		return cmd
	case m.routes.IsVisible():
		return m.routes.Update(msg)
	case m.editor.IsVisible():
		_, cmd := m.editor.Update(msg)
		return cmd
	case m.overflow.IsVisible():
		_, cmd := m.overflow.Update(msg)
		return cmd
	case m.bar.Focused():
		_, cmd := m.bar.Update(msg)
		return cmd
	case m.drawer.IsFocused():
		_, cmd := m.drawer.Update(msg)
		return cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.showHelp = false
		} else if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		return nil
	}

	if m.popups.HandleKey(msg) {
		return nil
	}

	onList := m.route.Name == router.Requests && m.tab == tabList
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Drawer):
		switch {
		case !m.drawer.IsVisible():
			m.drawer.Toggle()
			m.drawer.SetFocused(true)
			m.updateLayout()
		case m.drawer.IsFocused():
			m.drawer.Toggle()
			m.updateLayout()
		default:
			m.drawer.SetFocused(true)
		}
	case key.Matches(msg, m.keys.NextRoute):
		m.navigate(m.nextRoute())
	case key.Matches(msg, m.keys.QuickOpen):
		return m.quickOpen.Show()
	case key.Matches(msg, m.keys.Copy):
		return m.copyTop()
	case key.Matches(msg, m.keys.NewRequest):
		m.newDraft()
	case m.route.Name != router.Requests:
		return nil
	case key.Matches(msg, m.keys.SwitchTab):
		m.switchTab(1 - m.tab)
	case !onList:
		return nil
	case key.Matches(msg, m.keys.Search):
		return m.bar.FocusSearch()
	case key.Matches(msg, m.keys.Filter):
		return m.bar.Focus()
	case key.Matches(msg, m.keys.Overflow):
		l := m.bar.Layout()
		if !l.HasOverflow() {
			return nil
		}
		x, y := m.contentX(), barRow+1
		return func() tea.Msg {
			return components.OpenOverflowMsg{Fields: l.Overflow, Mode: l.Mode, X: x, Y: y}
		}
	case key.Matches(msg, m.keys.ClearFilters):
		filter.ClearAll(m.bar.Fields())
		m.bar.Refresh()
		return m.scheduleFilter()
	case key.Matches(msg, m.keys.SavePreset):
		return m.promptSavePreset()
	case key.Matches(msg, m.keys.PrevPage):
		return pageCmd(m.pager.Prev())
	case key.Matches(msg, m.keys.NextPage):
		return pageCmd(m.pager.Next())
	case key.Matches(msg, m.keys.SizeUp):
		return pageCmd(m.pager.Resize(1))
	case key.Matches(msg, m.keys.SizeDown):
		return pageCmd(m.pager.Resize(-1))
	default:
		if slot, ok := config.SlotForKey(msg.String()); ok {
			return m.applyPreset(slot)
		}
		_, cmd := m.table.Update(msg)
		return cmd
	}
	return nil
}

func pageCmd(change components.PageChangeMsg) tea.Cmd {
	return func() tea.Msg { return change }
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.routes.IsVisible() {
		_, cmd := m.routes.HandleMouse(msg)
		return cmd
	}
	if m.modal.IsVisible() || m.quickOpen.IsVisible() {
		return nil
	}
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return nil
	}
	if handled, cmd := m.editor.HandleMouse(msg); handled {
		return cmd
	}
	if handled, cmd := m.overflow.HandleMouse(msg); handled {
		return cmd
	}
	if m.popups.HandleMouse(msg) {
		return nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if m.bar.Focused() && msg.Y != barRow {
			m.bar.Blur()
		}
		if m.drawer.IsFocused() && msg.X >= m.drawer.Width() {
			m.drawer.SetFocused(false)
		}
	}
	if handled, cmd := m.drawer.HandleMouse(msg); handled {
		return cmd
	}
	if m.route.Name != router.Requests {
		return nil
	}
	if msg.Y == tabsRow && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		col := msg.X - m.contentX()
		for i, h := range m.tabHits {
			if col >= h[0] && col < h[1] {
				m.switchTab(i)
			}
		}
		return nil
	}
	if m.tab != tabList {
		return nil
	}
	if handled, cmd := m.bar.HandleMouse(msg); handled {
		return cmd
	}
	if handled, cmd := m.table.HandleMouse(msg); handled {
		return cmd
	}
	_, cmd := m.pager.HandleMouse(msg)
	return cmd
}

func (m *Model) contentX() int {
	return m.drawer.Width()
}

func (m *Model) contentWidth() int {
	return max(1, m.width-m.contentX())
}

// updateLayout places every component for the current size
func (m *Model) updateLayout() {
	mode := filter.ModeFor(m.width, m.tokens.Breakpoints)
	if mode != m.mode {
		// editors are laid out per mode; reopen rather than carry them over
		m.closeFilterEditors()
		m.mode = mode
	}

	// the drawer collapses on mobile widths
	if mode == filter.ModeMobile && m.drawer.IsVisible() && !m.drawer.IsFocused() {
		m.drawer.Toggle()
	}

	x := m.contentX()
	w := m.contentWidth()
	pageH := max(1, m.height-1)

	m.drawer.SetOrigin(0, 1)
	m.drawer.SetHeight(max(1, pageH-1))
	m.bar.SetOrigin(x, barRow)
	m.bar.SetViewportWidth(m.width)
	m.bar.SetWidth(w)
	m.placeTabs()
	tableY := barRow + m.bar.Height()
	m.table.SetOrigin(x, tableY)
	m.table.SetSize(w, max(5, pageH-tableY-1))
	m.pager.SetOrigin(x, pageH-1)
	m.pager.SetWidth(w)
	m.popups.SetSize(m.width, pageH)
	m.routes.SetSize(m.width, pageH)
	m.statusBar.SetWidth(m.width)
	m.quickOpen.SetSize(m.width, m.height)
	m.modal.SetSize(m.width, m.height)
	m.help.Width = m.width - 4
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	pageH := max(1, m.height-1)

	var view string
	if m.routes.IsVisible() {
		view = m.routes.View()
	} else {
		page := m.renderPage(pageH - 1)
		if dv := m.drawer.View(); dv != "" {
			page = lipgloss.JoinHorizontal(lipgloss.Top, dv, page)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, m.renderAppBar(), page)
		view = m.popups.Overlay(view)
		if m.editor.IsVisible() {
			x, y, _, _ := m.editor.Bounds()
			view = components.PlaceOverlay(x, y, m.editor.View(), view)
		}
		if m.overflow.IsVisible() {
			x, y := m.overflow.Origin()
			view = components.PlaceOverlay(x, y, m.overflow.View(), view)
		}
	}

	lines := strings.Split(view, "\n")
	for len(lines) < pageH {
		lines = append(lines, "")
	}
	lines = append(lines[:pageH], m.statusBar.View())
	view = strings.Join(lines, "\n")

	switch {
	case m.showHelp:
		view = components.PlaceCenter(m.renderHelp(), view, m.width, m.height)
	case m.quickOpen.IsVisible():
		view = components.PlaceCenter(m.quickOpen.View(), view, m.width, m.height)
	case m.modal.IsVisible():
		view = components.PlaceCenter(m.modal.View(), view, m.width, m.height)
	}
	return view
}

func (m *Model) renderAppBar() string {
	text := "reqdesk"
	if m.opts.Version != "" {
		text += " " + m.opts.Version
	}
	text += "  " + m.route.Icon + " " + m.route.Title
	if m.query.Active() {
		text += "  ● filtered"
	}
	return m.styles.Header.Width(m.width).Render(text)
}

// renderPage renders the content area right of the drawer
func (m *Model) renderPage(height int) string {
	w := m.contentWidth()
	var lines []string
	switch m.route.Name {
	case router.Requests:
		lines = append(lines, m.renderTabs())
		if m.tab == tabList {
			lines = append(lines, m.bar.View(), m.table.View(), m.pager.View())
		} else {
			lines = append(lines,
				"",
				m.styles.Title.Render("New request"),
				m.styles.Muted.Render("Drafts open in their own window. Press n for another, t to go back to the list."))
		}
	default:
		lines = append(lines,
			m.styles.Title.Render(m.route.Title),
			"",
			m.styles.Muted.Render("Nothing to show yet."))
	}

	out := strings.Split(strings.Join(lines, "\n"), "\n")
	for len(out) < height {
		out = append(out, "")
	}
	out = out[:height]
	for i := range out {
		out[i] = fitLine(out[i], w)
	}
	return strings.Join(out, "\n")
}

// fitLine truncates or pads s to exactly width cells
func fitLine(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func (m *Model) tabStyle(i int) lipgloss.Style {
	if i == m.tab {
		return m.styles.TabActive
	}
	return m.styles.Tab
}

// placeTabs records the column span of each tab title
func (m *Model) placeTabs() {
	m.tabHits = m.tabHits[:0]
	col := 0
	for i, title := range tabTitles {
		w := lipgloss.Width(m.tabStyle(i).Render(title))
		m.tabHits = append(m.tabHits, [2]int{col, col + w})
		col += w
	}
}

func (m *Model) renderTabs() string {
	var b strings.Builder
	for i, title := range tabTitles {
		b.WriteString(m.tabStyle(i).Render(title))
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	body := m.styles.Title.Render("Keyboard Shortcuts") + "\n\n" +
		m.help.View(m.keys) + "\n\n" +
		m.styles.Muted.Render("Press ? to close")
	return m.styles.Border.
		Padding(1, 2).
		Render(body)
}

// Run starts the TUI
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
