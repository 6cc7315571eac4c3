package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/folio/internal/nav"
)

// Mouse hit regions. Tabs use their geometry handle as zone id.
const (
	zoneMenu  = "menu"
	zoneTheme = "theme"
	zoneScrim = "scrim"
	zoneHome  = "overlay-home"
)

func drawerZone(item nav.Section) string {
	return "drawer-" + item.String()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	state := m.nav.State()
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if state.DrawerOpen {
			return nil
		}
		var cmd tea.Cmd
		if state.Overlay.IsZero() {
			m.pageVP, cmd = m.pageVP.Update(msg)
		} else {
			m.overlayVP, cmd = m.overlayVP.Update(msg)
		}
		return cmd
	}

	if state.DrawerOpen {
		for _, item := range nav.MenuItems() {
			if m.hit(drawerZone(item), msg) {
				return m.apply(m.nav.OpenOverlay(item))
			}
		}
		if m.hit(zoneScrim, msg) {
			m.nav.CloseDrawer()
		}
		return nil
	}

	switch {
	case m.hit(zoneMenu, msg):
		m.openDrawer()
		return nil
	case m.hit(zoneTheme, msg):
		return m.toggleTheme()
	}

	if !state.Overlay.IsZero() {
		if m.hit(zoneHome, msg) {
			return m.apply(m.nav.OpenOverlay(nav.Home))
		}
		return nil
	}
	for _, tab := range nav.Tabs() {
		if m.hit(string(tabHandle(tab)), msg) {
			return m.apply(m.nav.SelectTab(tab))
		}
	}
	return nil
}

// hit reports whether the click landed in the zone. Zones are recorded from
// the previous frame; an unknown zone never matches.
func (m *Model) hit(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}
