package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/folio/internal/geometry"
	"github.com/kyaoi/folio/internal/nav"
)

const indicatorGlyph = "━"

func tabHandle(tab nav.Section) geometry.Handle {
	return geometry.Handle("tab-" + tab.String())
}

// layoutTabs places the tab controls in centred rows of the given width,
// wrapping onto a new row when the next tab would overflow. Every tab is
// measured with the same padding, so the layout does not depend on which tab
// is selected.
func (m *Model) layoutTabs(width int) geometry.Layout {
	tabs := nav.Tabs()
	layout := make(geometry.Layout, len(tabs))

	var row []nav.Section
	var widths []int
	used, rowIndex := 0, 0
	place := func() {
		left := max((width-used)/2, 0)
		for i, tab := range row {
			layout[tabHandle(tab)] = geometry.Extent{Row: rowIndex, Left: left, Width: widths[i]}
			left += widths[i] + tabGap
		}
		row, widths, used = nil, nil, 0
		rowIndex++
	}

	for _, tab := range tabs {
		w := lipgloss.Width(m.styles.Tab.Render(tab.Label()))
		if len(row) > 0 && used+tabGap+w > width {
			place()
		}
		if len(row) > 0 {
			used += tabGap
		}
		row = append(row, tab)
		widths = append(widths, w)
		used += w
	}
	if len(row) > 0 {
		place()
	}
	return layout
}

// syncIndicator re-measures the selected tab and starts the indicator
// animation when the target moved.
func (m *Model) syncIndicator() tea.Cmd {
	if !m.tracker.Sync(m.tabLayout) {
		return nil
	}
	if !m.animator.SetTarget(m.tracker.Extent()) || m.animating {
		return nil
	}
	m.animating = true
	return indicatorFrame()
}

func (m *Model) stepIndicator() tea.Cmd {
	more := m.animator.Step()
	m.renderPage()
	if !more {
		m.animating = false
		return nil
	}
	return indicatorFrame()
}

func indicatorFrame() tea.Cmd {
	return tea.Tick(geometry.FrameInterval, func(time.Time) tea.Msg {
		return indicatorFrameMsg{}
	})
}

// renderTabStrip draws each row of controls at its laid out position, each
// followed by an indicator line. Only the row holding the indicator draws it.
func (m *Model) renderTabStrip() string {
	selected := m.nav.State().SelectedTab
	var rows [][]nav.Section
	for _, tab := range nav.Tabs() {
		ext, ok := m.tabLayout.Measure(tabHandle(tab))
		if !ok {
			continue
		}
		for len(rows) <= ext.Row {
			rows = append(rows, nil)
		}
		rows[ext.Row] = append(rows[ext.Row], tab)
	}
	if len(rows) == 0 {
		return "\n"
	}

	ind := m.animator.Current()
	lines := make([]string, 0, len(rows)*2)
	for i, tabs := range rows {
		var row strings.Builder
		cursor := 0
		for _, tab := range tabs {
			ext := m.tabLayout[tabHandle(tab)]
			if ext.Left > cursor {
				row.WriteString(m.styles.Page.Render(strings.Repeat(" ", ext.Left-cursor)))
			}
			style := m.styles.Tab
			if tab == selected {
				style = m.styles.TabActive
			}
			row.WriteString(m.zones.Mark(string(tabHandle(tab)), style.Render(tab.Label())))
			cursor = ext.Left + ext.Width
		}

		var under strings.Builder
		if ind.Row == i {
			if ind.Left > 0 {
				under.WriteString(m.styles.Page.Render(strings.Repeat(" ", ind.Left)))
			}
			if ind.Width > 0 {
				under.WriteString(m.styles.Indicator.Render(strings.Repeat(indicatorGlyph, ind.Width)))
			}
		}
		lines = append(lines, row.String(), under.String())
	}
	return strings.Join(lines, "\n")
}
