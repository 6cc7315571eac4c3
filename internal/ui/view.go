package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/folio/internal/nav"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	if m.showHelp {
		m.help.ShowAll = true
		box := m.styles.Help.Render(m.styles.Title.Render("Keys") + "\n\n" + m.help.View(m.keys))
		m.help.ShowAll = false
		return m.zones.Scan(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
			lipgloss.WithWhitespaceBackground(m.styles.Palette.Background)))
	}

	var header, body string
	if pres := m.nav.Presentation(); pres.Mode == nav.ModeOverlay {
		header = m.renderOverlayHeader(pres.Section)
		body = m.overlayVP.View()
	} else {
		header = m.renderTopBar()
		body = m.pageVP.View()
	}
	screen := strings.Join([]string{header, body, m.renderStatus()}, "\n")

	if m.nav.State().DrawerOpen {
		screen = m.composeDrawer(screen)
	}
	return m.zones.Scan(screen)
}

// renderPage rebuilds the inline page: hero, tab strip with indicator, the
// selected section and the footer.
func (m *Model) renderPage() {
	if !m.ready {
		return
	}
	section := m.nav.State().SelectedTab
	parts := []string{
		m.renderHero(),
		"",
		m.renderTabStrip(),
		"",
		m.center(m.renderSection(section, m.pageWidth()-4)),
		"",
		m.renderFooter(),
	}
	m.pageVP.SetContent(m.fill(strings.Join(parts, "\n")))
}

func (m *Model) renderOverlay(section nav.Section) {
	if !m.ready {
		return
	}
	parts := []string{
		"",
		m.center(m.renderSection(section, m.pageWidth()-4)),
		"",
		m.renderFooter(),
	}
	m.overlayVP.SetContent(m.fill(strings.Join(parts, "\n")))
}

func (m *Model) renderTopBar() string {
	left := m.zones.Mark(zoneMenu, m.styles.Title.Render("☰ Menu"))

	var links []string
	for _, l := range m.portfolio.Links {
		links = append(links, m.link(l.URL, l.Label))
	}
	if m.portfolio.Email != "" {
		links = append(links, m.link("mailto:"+m.portfolio.Email, "Mail"))
	}
	if m.portfolio.CV != "" {
		links = append(links, m.link(m.portfolio.CV, "CV"))
	}
	toggle := "☀ light"
	if !m.theme.Dark {
		toggle = "☾ dark"
	}
	links = append(links, m.zones.Mark(zoneTheme, m.styles.Eyebrow.Render(toggle)))
	right := strings.Join(links, m.gap(2))

	inner := m.width - m.styles.TopBar.GetHorizontalFrameSize()
	spacer := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return m.styles.TopBar.Render(left + m.gap(spacer) + right)
}

func (m *Model) renderOverlayHeader(section nav.Section) string {
	left := m.zones.Mark(zoneHome, m.styles.Title.Render("✕ Home"))
	title := m.styles.Eyebrow.Render(strings.ToUpper(section.Label()))
	inner := m.width - m.styles.TopBar.GetHorizontalFrameSize()
	used := lipgloss.Width(left) + lipgloss.Width(title)
	pad := max((inner-lipgloss.Width(title))/2-lipgloss.Width(left), 1)
	line := left + m.gap(pad) + title
	if rest := inner - used - pad; rest > 0 {
		line += m.gap(rest)
	}
	return m.styles.TopBar.Render(line)
}

func (m *Model) renderStatus() string {
	var line string
	if m.err != nil {
		line = m.styles.Error.Render(m.err.Error())
	} else {
		line = m.help.View(m.keys)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, ansi.Truncate(line, m.width, "…"),
		lipgloss.WithWhitespaceBackground(m.styles.Palette.Background))
}

// composeDrawer draws the drawer over the left edge of screen and dims the
// remainder into the scrim.
func (m *Model) composeDrawer(screen string) string {
	lines := strings.Split(screen, "\n")
	width := min(drawerWidth, m.width)

	scrim := make([]string, len(lines))
	for i, line := range lines {
		rest := ansi.Strip(ansi.Cut(line, width, m.width))
		scrim[i] = m.styles.Scrim.Render(rest)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderDrawer(width, len(lines)),
		m.zones.Mark(zoneScrim, strings.Join(scrim, "\n")),
	)
}

func (m *Model) renderDrawer(width, height int) string {
	frame := m.styles.Drawer.GetHorizontalFrameSize()
	inner := max(width-frame, 1)

	rows := []string{"", m.styles.DrawerItem.Bold(true).Render(ansi.Truncate(m.portfolio.Name, inner, "…")), ""}
	for i, item := range nav.MenuItems() {
		label := ansi.Truncate(" "+item.Label(), inner, "…")
		style := m.styles.DrawerItem
		if i == m.drawerCursor {
			style = m.styles.DrawerSel
		}
		rows = append(rows, m.zones.Mark(drawerZone(item), style.Width(inner).Render(label)))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return m.styles.Drawer.Width(width - m.styles.Drawer.GetHorizontalBorderSize()).Render(strings.Join(rows, "\n"))
}
