package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestToggleIsInvolution(t *testing.T) {
	for _, start := range []bool{true, false} {
		s := State{Dark: start}
		s.Toggle()
		assert.Equal(t, !start, s.Dark)
		s.Toggle()
		assert.Equal(t, start, s.Dark)
	}
}

func TestPaletteSelection(t *testing.T) {
	assert.Equal(t, Dark, State{Dark: true}.Palette())
	assert.Equal(t, Light, State{Dark: false}.Palette())
	assert.Equal(t, "dark", State{Dark: true}.String())
	assert.Equal(t, "light", State{}.String())
	assert.Equal(t, "dark", Dark.MarkdownStyle)
	assert.Equal(t, "light", Light.MarkdownStyle)
}

// Every token must be set in both palettes, otherwise a region would fall back
// to the terminal default and stand out after a switch.
func TestPalettesAreComplete(t *testing.T) {
	for _, p := range []Palette{Dark, Light} {
		v := reflect.ValueOf(p)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).Interface(), "%s.%s", p.Name, v.Type().Field(i).Name)
		}
	}
}

func TestStylesFollowPalette(t *testing.T) {
	dark := NewStyles(Dark)
	light := NewStyles(Light)

	assert.Equal(t, lipgloss.TerminalColor(Dark.Accent), dark.Indicator.GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(Light.Accent), light.Indicator.GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(Dark.Background), dark.Page.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(Light.Background), light.Page.GetBackground())
	assert.NotEqual(t, dark.TabActive.GetForeground(), light.TabActive.GetForeground())
}
