package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/nav"
)

func (m *Model) renderSection(section nav.Section, width int) string {
	switch section {
	case nav.Skills:
		return m.renderSkills(width)
	case nav.Projects:
		return m.renderProjects(width)
	case nav.Certifications:
		return m.renderCertifications(width)
	case nav.Connect:
		return m.renderConnect(width)
	default:
		return ""
	}
}

func (m *Model) heading(eyebrow, title string) string {
	return m.styles.Eyebrow.Render(strings.ToUpper(eyebrow)) + "\n" + m.styles.Title.Render(title)
}

func (m *Model) renderSkills(width int) string {
	p := m.portfolio
	parts := []string{m.heading("Technical skills", "SKILLS & EXPERTISE"), ""}
	if p.SkillsIntro != "" {
		parts = append(parts, m.styles.Body.Width(width).Render(p.SkillsIntro), "")
	}
	badges := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		badges = append(badges, m.styles.Badge.Render(skill))
	}
	parts = append(parts, m.flow(badges, width, 1))
	return strings.Join(parts, "\n")
}

func (m *Model) renderProjects(width int) string {
	parts := []string{m.heading("Projects", "FEATURED PROJECTS"), ""}
	if m.techFilter != "" {
		parts = append(parts, m.styles.Dim.Render("filtered by "+m.techFilter), "")
	}
	if len(m.portfolio.Projects) == 0 {
		parts = append(parts, m.styles.Dim.Render("No projects to show."))
		return strings.Join(parts, "\n")
	}
	cards := make([]string, 0, len(m.portfolio.Projects))
	cardWidth := m.cardWidth(width)
	for _, project := range m.portfolio.Projects {
		cards = append(cards, m.projectCard(project, cardWidth))
	}
	parts = append(parts, m.grid(cards, width))
	return strings.Join(parts, "\n")
}

func (m *Model) projectCard(p content.Project, width int) string {
	inner := width - m.styles.Card.GetHorizontalFrameSize()
	rows := []string{
		m.styles.CardTitle.Width(inner).Render(p.Title),
		"",
		m.styles.Body.Width(inner).Render(strings.TrimSpace(p.Description)),
	}
	if len(p.Tech) > 0 {
		tech := make([]string, 0, len(p.Tech))
		for _, t := range p.Tech {
			tech = append(tech, m.styles.TechBadge.Render(t))
		}
		rows = append(rows, "", m.flow(tech, inner, 1))
	}
	var links []string
	if p.GitHub != "" {
		links = append(links, m.link(p.GitHub, "GitHub ↗"))
	}
	if p.Live != "" {
		links = append(links, m.link(p.Live, "Live ↗"))
	}
	if len(links) > 0 {
		rows = append(rows, "", strings.Join(links, m.gap(3)))
	}
	return m.card(strings.Join(rows, "\n"), width)
}

func (m *Model) renderCertifications(width int) string {
	p := m.portfolio
	parts := []string{m.heading("Certifications", "CERTIFICATIONS"), ""}
	cardWidth := m.cardWidth(width)
	if len(p.Certifications) == 0 {
		parts = append(parts, m.styles.Dim.Render("No certifications listed yet."))
	} else {
		cards := make([]string, 0, len(p.Certifications))
		for _, cert := range p.Certifications {
			cards = append(cards, m.certificationCard(cert, cardWidth))
		}
		parts = append(parts, m.grid(cards, width))
	}

	if len(p.Testimonials) > 0 {
		parts = append(parts, "", m.styles.Title.Render("What People Say"), "")
		cards := make([]string, 0, len(p.Testimonials))
		for _, t := range p.Testimonials {
			cards = append(cards, m.testimonialCard(t, cardWidth))
		}
		parts = append(parts, m.grid(cards, width))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) certificationCard(c content.Certification, width int) string {
	inner := width - m.styles.Card.GetHorizontalFrameSize()
	rows := []string{m.styles.CardTitle.Width(inner).Render(c.Title)}
	if c.Issuer != "" {
		rows = append(rows, m.styles.Dim.Width(inner).Render(c.Issuer))
	}
	if c.Description != "" {
		rows = append(rows, "", m.styles.Body.Width(inner).Render(strings.TrimSpace(c.Description)))
	}
	if c.File != "" {
		rows = append(rows, "", m.link(c.File, "Download ↓ "+filepath.Base(c.File)))
	}
	return m.card(strings.Join(rows, "\n"), width)
}

func (m *Model) testimonialCard(t content.Testimonial, width int) string {
	inner := width - m.styles.Card.GetHorizontalFrameSize()
	rows := []string{
		m.styles.Quote.Width(inner).Render("“" + strings.TrimSpace(t.Content) + "”"),
		"",
		m.styles.Title.Render(t.Name),
		m.styles.Dim.Render(t.Role),
	}
	return m.card(strings.Join(rows, "\n"), width)
}

func (m *Model) renderConnect(width int) string {
	p := m.portfolio
	cardWidth := min(width, 72)
	inner := cardWidth - m.styles.Card.GetHorizontalFrameSize()

	var buttons []string
	if p.Email != "" {
		buttons = append(buttons, m.styles.CallToAct.Render(m.hyperlink("mailto:"+p.Email, "✉ Send Email")))
	}
	if p.Calendar != "" {
		buttons = append(buttons, m.styles.CallToAct.Render(m.hyperlink(p.Calendar, "☏ Schedule Call")))
	}

	rows := []string{
		m.styles.Title.Render("Ready to Work Together?"),
		"",
		m.styles.Body.Width(inner).Render("Have a project in mind or just want to chat? I'd love to hear from you!"),
	}
	if len(buttons) > 0 {
		rows = append(rows, "", m.flow(buttons, inner, 2))
	}
	if direct := m.directContact(); direct != "" {
		rows = append(rows, "", m.styles.Dim.Width(inner).Render(direct))
	}
	return m.heading("Connect", "LET'S CONNECT") + "\n\n" + m.card(strings.Join(rows, "\n"), cardWidth)
}

func (m *Model) directContact() string {
	p := m.portfolio
	switch {
	case p.Email != "" && p.Phone != "":
		return "You can also reach me directly at " + p.Email + " or call me at " + p.Phone
	case p.Email != "":
		return "You can also reach me directly at " + p.Email
	case p.Phone != "":
		return "You can also call me at " + p.Phone
	}
	return ""
}

func (m *Model) renderHero() string {
	p := m.portfolio
	name := strings.ToUpper(p.Name)
	if spaced := strings.Join(strings.Split(name, ""), " "); lipgloss.Width(spaced) <= m.width {
		name = spaced
	}
	lines := []string{
		"",
		m.center(m.styles.HeroName.Render(name)),
		m.center(m.styles.HeroRole.Render(p.Role)),
		"",
	}
	if m.bio != "" {
		lines = append(lines, m.center(strings.TrimRight(m.bio, "\n")))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.portfolio.Footer == "" {
		return ""
	}
	return m.styles.Footer.Width(m.width).Align(lipgloss.Center).Render(m.portfolio.Footer)
}

// card wraps body in the card frame so the result is exactly width cells wide.
func (m *Model) card(body string, width int) string {
	border := m.styles.Card.GetHorizontalBorderSize()
	return m.styles.Card.Width(max(width-border, 1)).Render(body)
}

func (m *Model) cardWidth(width int) int {
	if width >= twoColumnsWidth {
		return (width - tabGap) / 2
	}
	return width
}

// grid lays cards out in one or two columns depending on width.
func (m *Model) grid(cards []string, width int) string {
	if width < twoColumnsWidth {
		return strings.Join(cards, "\n")
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], m.gap(tabGap), cards[i+1]))
			continue
		}
		rows = append(rows, cards[i])
	}
	return strings.Join(rows, "\n")
}

// flow packs rendered items left to right, starting a new row whenever the
// next item would overflow width.
func (m *Model) flow(items []string, width, gap int) string {
	var rows []string
	var row []string
	used := 0
	for _, item := range items {
		w := lipgloss.Width(item)
		if len(row) > 0 && used+gap+w > width {
			rows = append(rows, m.joinRow(row, gap))
			row, used = nil, 0
		}
		if len(row) > 0 {
			used += gap
		}
		row = append(row, item)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, m.joinRow(row, gap))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) joinRow(row []string, gap int) string {
	spaced := make([]string, 0, len(row)*2)
	for i, item := range row {
		if i > 0 {
			spaced = append(spaced, m.gap(gap))
		}
		spaced = append(spaced, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

func (m *Model) gap(n int) string {
	return m.styles.Page.Render(strings.Repeat(" ", n))
}

func (m *Model) center(block string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(m.styles.Palette.Background))
}

// fill pads every line to the full width with the page background.
func (m *Model) fill(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(m.styles.Palette.Background))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) link(url, text string) string {
	return m.hyperlink(url, m.styles.Link.Render(text))
}

// hyperlink wraps text in an OSC 8 hyperlink. Terminals without support show
// the text only.
func (m *Model) hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
