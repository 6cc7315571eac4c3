package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/folio/internal/nav"
)

func newMouseModel(t *testing.T) *Model {
	t.Helper()
	return newTestModel(t, func(s *State) { s.Mouse = true })
}

// locate renders the screen and returns the cell where text starts on the
// first line accepted by match. A nil match accepts every line.
func locate(t *testing.T, m *Model, text string, match func(line string, x int) bool) (int, int) {
	t.Helper()
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for y, line := range lines {
		i := strings.Index(line, text)
		if i < 0 {
			continue
		}
		x := ansi.StringWidth(line[:i])
		if match == nil || match(line, x) {
			return x, y
		}
	}
	require.Failf(t, "text not on screen", "%q", text)
	return 0, 0
}

// click waits for the zone to be recorded at the cell and then clicks it.
func click(t *testing.T, m *Model, id string, x, y int) {
	t.Helper()
	msg := tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.Eventually(t, func() bool { return m.hit(id, msg) }, time.Second, 5*time.Millisecond,
		"zone %s at %d,%d", id, x, y)
	m.Update(msg)
}

func inTabStrip(line string, _ int) bool {
	for _, tab := range nav.Tabs() {
		if !strings.Contains(line, tab.Label()) {
			return false
		}
	}
	return true
}

func inDrawer(_ string, x int) bool {
	return x < drawerWidth
}

func TestClickTabSelectsIt(t *testing.T) {
	m := newMouseModel(t)

	x, y := locate(t, m, nav.Projects.Label(), inTabStrip)
	click(t, m, string(tabHandle(nav.Projects)), x, y)

	want := m.tabLayout[tabHandle(nav.Projects)]
	assert.Equal(t, nav.Projects, m.nav.State().SelectedTab)
	assert.Equal(t, want, m.tracker.Extent())
	assert.Equal(t, want, m.animator.Current())
	assert.Equal(t, strings.Repeat(" ", want.Left)+strings.Repeat("━", want.Width), indicatorRow(t, m))
}

func TestClickMenuOpensDrawer(t *testing.T) {
	m := newMouseModel(t)

	x, y := locate(t, m, "☰ Menu", nil)
	click(t, m, zoneMenu, x, y)

	assert.True(t, m.nav.State().DrawerOpen)
}

func TestClickDrawerItemOpensOverlay(t *testing.T) {
	m := newMouseModel(t)
	press(m, runes("2"))

	x, y := locate(t, m, "☰ Menu", nil)
	click(t, m, zoneMenu, x, y)
	require.True(t, m.nav.State().DrawerOpen)

	x, y = locate(t, m, nav.Connect.Label(), inDrawer)
	click(t, m, drawerZone(nav.Connect), x, y)

	state := m.nav.State()
	assert.False(t, state.DrawerOpen)
	assert.Equal(t, nav.Connect, state.Overlay)
	assert.Equal(t, nav.Projects, state.SelectedTab)
}

func TestClickScrimClosesDrawer(t *testing.T) {
	m := newMouseModel(t)
	press(m, runes("2"), runes("o"), runes("m"))
	m.View()

	click(t, m, zoneScrim, drawerWidth+20, m.height/2)

	state := m.nav.State()
	assert.False(t, state.DrawerOpen)
	assert.Equal(t, nav.Projects, state.Overlay)
	assert.Equal(t, nav.Projects, state.SelectedTab)
}

func TestClickThemeToggles(t *testing.T) {
	m := newMouseModel(t)

	x, y := locate(t, m, "☀ light", nil)
	click(t, m, zoneTheme, x, y)

	assert.False(t, m.theme.Dark)
	assert.Contains(t, ansi.Strip(m.View()), "☾ dark")
}

func TestClickOverlayHomeClosesOverlay(t *testing.T) {
	m := newMouseModel(t)
	press(m, runes("3"), runes("o"))

	x, y := locate(t, m, "✕ Home", nil)
	click(t, m, zoneHome, x, y)

	state := m.nav.State()
	assert.True(t, state.Overlay.IsZero())
	assert.Equal(t, nav.Certifications, state.SelectedTab)
	assert.Equal(t, 0, m.pageVP.YOffset)
}

func TestClickOutsideZonesIsIgnored(t *testing.T) {
	m := newMouseModel(t)
	x, y := locate(t, m, "☰ Menu", nil)
	require.Eventually(t, func() bool {
		return m.hit(zoneMenu, tea.MouseMsg{X: x, Y: y})
	}, time.Second, 5*time.Millisecond)

	m.Update(tea.MouseMsg{X: 50, Y: m.height - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	state := m.nav.State()
	assert.Equal(t, nav.Skills, state.SelectedTab)
	assert.False(t, state.DrawerOpen)
	assert.True(t, state.Overlay.IsZero())
	assert.True(t, m.theme.Dark)
}
