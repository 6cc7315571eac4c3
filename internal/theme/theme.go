// Package theme holds the light/dark switch and the colour tokens every
// rendered region draws from.
package theme

import (
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// State is the theme flag of one view.
type State struct {
	Dark bool
}

// Toggle flips between dark and light.
func (s *State) Toggle() {
	s.Dark = !s.Dark
}

// Palette returns the token set for the current flag.
func (s State) Palette() Palette {
	if s.Dark {
		return Dark
	}
	return Light
}

func (s State) String() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

// Palette is one complete set of colour tokens.
type Palette struct {
	Name          string
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	Muted         lipgloss.Color
	Subtle        lipgloss.Color
	Accent        lipgloss.Color
	Border        lipgloss.Color
	BadgeBg       lipgloss.Color
	BadgeFg       lipgloss.Color
	CardBg        lipgloss.Color
	Scrim         lipgloss.Color
	Error         lipgloss.Color
	FooterBg      lipgloss.Color
	MarkdownStyle string
}

var (
	Dark = Palette{
		Name:          "dark",
		Background:    lipgloss.Color("#000000"),
		Foreground:    lipgloss.Color("#ffffff"),
		Muted:         lipgloss.Color("#d1d5db"),
		Subtle:        lipgloss.Color("#9ca3af"),
		Accent:        lipgloss.Color("#ffe6a5"),
		Border:        lipgloss.Color("#4b5563"),
		BadgeBg:       lipgloss.Color("#3a3a3a"),
		BadgeFg:       lipgloss.Color("#ffffff"),
		CardBg:        lipgloss.Color("#111111"),
		Scrim:         lipgloss.Color("#3f3f46"),
		Error:         lipgloss.Color("#ff6b6b"),
		FooterBg:      lipgloss.Color("#0a0a0a"),
		MarkdownStyle: styles.DarkStyle,
	}

	Light = Palette{
		Name:          "light",
		Background:    lipgloss.Color("#f3e6b3"),
		Foreground:    lipgloss.Color("#000000"),
		Muted:         lipgloss.Color("#262626"),
		Subtle:        lipgloss.Color("#525252"),
		Accent:        lipgloss.Color("#000000"),
		Border:        lipgloss.Color("#4b5563"),
		BadgeBg:       lipgloss.Color("#404040"),
		BadgeFg:       lipgloss.Color("#ffffff"),
		CardBg:        lipgloss.Color("#e9d99a"),
		Scrim:         lipgloss.Color("#a89f7c"),
		Error:         lipgloss.Color("#b91c1c"),
		FooterBg:      lipgloss.Color("#111827"),
		MarkdownStyle: styles.LightStyle,
	}
)
