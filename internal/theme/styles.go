package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles of the page, all derived from one Palette.
// Text styles carry the page background so no region keeps the terminal's
// own colours after a switch.
type Styles struct {
	Palette Palette

	Page       lipgloss.Style
	HeroName   lipgloss.Style
	HeroRole   lipgloss.Style
	Link       lipgloss.Style
	Eyebrow    lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	Quote      lipgloss.Style
	Dim        lipgloss.Style
	Badge      lipgloss.Style
	TechBadge  lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Indicator  lipgloss.Style
	TopBar     lipgloss.Style
	Drawer     lipgloss.Style
	DrawerItem lipgloss.Style
	DrawerSel  lipgloss.Style
	Scrim      lipgloss.Style
	CallToAct  lipgloss.Style
	Footer     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles builds the page styles for p.
func NewStyles(p Palette) Styles {
	page := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
	boxed := func(b lipgloss.Border, fg lipgloss.Color) lipgloss.Style {
		return page.BorderStyle(b).BorderForeground(fg).BorderBackground(p.Background)
	}

	return Styles{
		Palette:   p,
		Page:      page,
		HeroName:  page.Foreground(p.Accent).Bold(true),
		HeroRole:  page,
		Link:      page.Foreground(p.Accent).Underline(true),
		Eyebrow:   page.Foreground(p.Accent).Bold(true),
		Title:     page.Bold(true),
		Body:      page.Foreground(p.Muted),
		Quote:     page.Foreground(p.Muted).Italic(true),
		Dim:       page.Foreground(p.Subtle),
		Badge:     lipgloss.NewStyle().Foreground(p.BadgeFg).Background(p.BadgeBg).Padding(0, 2),
		TechBadge: boxed(lipgloss.NormalBorder(), p.Accent).Padding(0, 1),
		Card:      boxed(lipgloss.RoundedBorder(), p.Border).Padding(1, 2),
		CardTitle: page.Foreground(p.Accent).Bold(true),
		Tab:       page.Foreground(p.Subtle).Padding(0, 3),
		TabActive: page.Bold(true).Padding(0, 3),
		Indicator: page.Foreground(p.Accent),
		TopBar:    page.Padding(0, 1),
		Drawer: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.Foreground).
			Background(p.CardBg).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Accent).
			BorderBackground(p.CardBg),
		DrawerItem: lipgloss.NewStyle().Foreground(p.Muted).Background(p.CardBg),
		DrawerSel:  lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Bold(true),
		Scrim:      lipgloss.NewStyle().Foreground(p.Scrim).Background(p.Background).Faint(true),
		CallToAct:  boxed(lipgloss.DoubleBorder(), p.Accent).Foreground(p.Accent).Padding(0, 2),
		Footer:     lipgloss.NewStyle().Foreground(p.Muted).Background(p.FooterBg),
		Error:      page.Foreground(p.Error),
		Help:       boxed(lipgloss.RoundedBorder(), p.Accent).Padding(1, 2),
	}
}
