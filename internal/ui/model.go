package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/geometry"
	"github.com/kyaoi/folio/internal/nav"
	"github.com/kyaoi/folio/internal/theme"
)

const (
	topBarHeight    = 1
	statusHeight    = 1
	minPageWidth    = 24
	maxPageWidth    = 110
	drawerWidth     = 28
	tabGap          = 2
	twoColumnsWidth = 96
)

// Model implements the Bubble Tea program for the portfolio.
type Model struct {
	pageVP    viewport.Model
	overlayVP viewport.Model
	renderer  *glamour.TermRenderer
	bio       string

	portfolio   *content.Portfolio
	contentPath string
	techFilter  string

	nav       *nav.Machine
	theme     theme.State
	styles    theme.Styles
	tracker   *geometry.Tracker[nav.Section]
	tabLayout geometry.Layout
	animator  *geometry.Animator
	animating bool

	drawerCursor int
	keys         keyMap
	help         help.Model
	showHelp     bool
	zones        *zone.Manager
	logger       *slog.Logger

	ready  bool
	width  int
	height int
	err    error

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	watchDone        chan struct{}
	initialWatchPath string
}

type indicatorFrameMsg struct{}

// NewModel constructs the portfolio model with the provided initial state.
func NewModel(state State) *Model {
	logger := state.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	portfolio := state.Portfolio
	if portfolio == nil {
		portfolio = content.Default()
	}

	pageVP := viewport.New(0, 0)
	overlayVP := viewport.New(0, 0)

	machine := nav.NewMachine(state.InitialTab, logger)
	tracker := geometry.NewTracker(machine.State().SelectedTab)
	for _, tab := range nav.Tabs() {
		tracker.Bind(tab, tabHandle(tab))
	}

	zones := zone.New()
	zones.SetEnabled(state.Mouse)

	m := &Model{
		pageVP:      pageVP,
		overlayVP:   overlayVP,
		portfolio:   portfolio.WithTech(state.TechFilter),
		contentPath: state.ContentPath,
		techFilter:  state.TechFilter,
		nav:         machine,
		theme:       theme.State{Dark: state.Dark},
		tracker:     tracker,
		animator:    geometry.NewAnimator(state.Animate),
		keys:        newKeyMap(),
		help:        help.New(),
		zones:       zones,
		logger:      logger,
	}
	m.applyTheme()

	if state.Watch && state.ContentPath != "" {
		m.initialWatchPath = state.ContentPath
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Close releases the file watcher and the mouse zone manager.
func (m *Model) Close() {
	if m.watchDone != nil {
		close(m.watchDone)
		m.watchDone = nil
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	if m.zones != nil {
		m.zones.Close()
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		m.logger.Warn("content watcher error", "err", msg.err)
		return m, m.waitForFileEvent()
	case contentReloadedMsg:
		return m, m.applyReload(msg)
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)
	case indicatorFrameMsg:
		return m, m.stepIndicator()
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	}

	state := m.nav.State()
	if state.DrawerOpen {
		return m.handleDrawerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.openDrawer()
		return nil
	case key.Matches(msg, m.keys.Home):
		return m.apply(m.nav.OpenOverlay(nav.Home))
	}

	if !state.Overlay.IsZero() {
		return m.handleOverlayKey(msg, state.Overlay)
	}
	return m.handleInlineKey(msg, state.SelectedTab)
}

func (m *Model) handleInlineKey(msg tea.KeyMsg, selected nav.Section) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.apply(m.nav.SelectTab(selected.Next(-1)))
	case key.Matches(msg, m.keys.Next):
		return m.apply(m.nav.SelectTab(selected.Next(1)))
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		return m.apply(m.nav.SelectTab(nav.Tabs()[idx]))
	case key.Matches(msg, m.keys.Expand):
		return m.apply(m.nav.OpenOverlay(selected))
	case key.Matches(msg, m.keys.ScrollUp):
		m.pageVP.HalfPageUp()
		return nil
	case key.Matches(msg, m.keys.ScrollDn):
		m.pageVP.HalfPageDown()
		return nil
	}
	var cmd tea.Cmd
	m.pageVP, cmd = m.pageVP.Update(msg)
	return cmd
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg, active nav.Section) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.apply(m.nav.CloseOverlay())
	case key.Matches(msg, m.keys.Prev):
		return m.apply(m.nav.OpenOverlay(active.Next(-1)))
	case key.Matches(msg, m.keys.Next):
		return m.apply(m.nav.OpenOverlay(active.Next(1)))
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		return m.apply(m.nav.OpenOverlay(nav.Tabs()[idx]))
	case key.Matches(msg, m.keys.ScrollUp):
		m.overlayVP.HalfPageUp()
		return nil
	case key.Matches(msg, m.keys.ScrollDn):
		m.overlayVP.HalfPageDown()
		return nil
	}
	var cmd tea.Cmd
	m.overlayVP, cmd = m.overlayVP.Update(msg)
	return cmd
}

func (m *Model) handleDrawerKey(msg tea.KeyMsg) tea.Cmd {
	items := nav.MenuItems()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Menu):
		m.nav.CloseDrawer()
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = clamp(m.drawerCursor-1, 0, len(items)-1)
	case key.Matches(msg, m.keys.Down):
		m.drawerCursor = clamp(m.drawerCursor+1, 0, len(items)-1)
	case key.Matches(msg, m.keys.Choose):
		return m.apply(m.nav.OpenOverlay(items[m.drawerCursor]))
	}
	return nil
}

// apply performs the follow-up work a navigation transition asked for and
// redraws the affected regions.
func (m *Model) apply(effect nav.Effect) tea.Cmd {
	if effect.Has(nav.EffectScrollTop) {
		m.pageVP.GotoTop()
	}
	pres := m.nav.Presentation()
	if pres.Mode == nav.ModeOverlay {
		m.renderOverlay(pres.Section)
		m.overlayVP.GotoTop()
	}
	var cmd tea.Cmd
	if effect.Has(nav.EffectGeometry) {
		m.tracker.Select(m.nav.State().SelectedTab)
		cmd = m.syncIndicator()
	}
	m.renderPage()
	return cmd
}

func (m *Model) openDrawer() {
	m.nav.OpenDrawer()
	m.drawerCursor = 0
	current := m.nav.Presentation()
	if current.Mode == nav.ModeOverlay {
		for i, item := range nav.MenuItems() {
			if item == current.Section {
				m.drawerCursor = i
			}
		}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme.Toggle()
	m.logger.Debug("theme toggled", "theme", m.theme.String())
	m.applyTheme()
	return m.rerender()
}

func (m *Model) applyTheme() {
	m.styles = theme.NewStyles(m.theme.Palette())
	m.help.Styles.ShortKey = m.styles.Eyebrow
	m.help.Styles.ShortDesc = m.styles.Dim
	m.help.Styles.ShortSeparator = m.styles.Dim
	m.help.Styles.FullKey = m.styles.Eyebrow
	m.help.Styles.FullDesc = m.styles.Dim
	m.help.Styles.FullSeparator = m.styles.Dim
}

func (m *Model) resize(width, height int) tea.Cmd {
	if width <= 0 || height <= topBarHeight+statusHeight {
		return nil
	}

	m.width = width
	m.height = height
	m.ready = true

	bodyHeight := max(height-topBarHeight-statusHeight, 1)
	m.pageVP.Width = width
	m.pageVP.Height = bodyHeight
	m.overlayVP.Width = width
	m.overlayVP.Height = bodyHeight
	m.help.Width = width

	return m.rerender()
}

// rerender rebuilds everything derived from the width, the theme or the
// content: the Markdown renderer, the strip layout and both viewports.
func (m *Model) rerender() tea.Cmd {
	if !m.ready {
		return nil
	}
	renderer, err := newRenderer(m.theme.Palette(), m.pageWidth()-4)
	if err != nil {
		m.err = err
		return nil
	}
	m.renderer = renderer
	m.renderBio()

	m.tabLayout = m.layoutTabs(m.width)
	m.tracker.Invalidate()
	cmd := m.syncIndicator()

	m.renderPage()
	if pres := m.nav.Presentation(); pres.Mode == nav.ModeOverlay {
		m.renderOverlay(pres.Section)
	}
	return cmd
}

func (m *Model) renderBio() {
	if m.renderer == nil || m.portfolio.Bio == "" {
		m.bio = ""
		return
	}
	rendered, err := m.renderer.Render(m.portfolio.Bio)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.bio = rendered
}

func (m *Model) pageWidth() int {
	return clamp(m.width, minPageWidth, maxPageWidth)
}

func newRenderer(p theme.Palette, width int) (*glamour.TermRenderer, error) {
	cfg := styles.DarkStyleConfig
	if sc, ok := styles.DefaultStyles[p.MarkdownStyle]; ok && sc != nil {
		cfg = *sc
	}
	bg := string(p.Background)
	cfg.Document.BackgroundColor = &bg
	return glamour.NewTermRenderer(
		glamour.WithStyles(cfg),
		glamour.WithWordWrap(max(width, 0)),
	)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
