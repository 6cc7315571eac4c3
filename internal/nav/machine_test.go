package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMachine(t *testing.T) {
	m := NewMachine(None, nil)
	assert.Equal(t, State{SelectedTab: Skills, Overlay: None, DrawerOpen: false}, m.State())
	assert.Equal(t, Presentation{Mode: ModeInline, Section: Skills}, m.Presentation())
}

func TestNewMachineInitialTab(t *testing.T) {
	assert.Equal(t, Connect, NewMachine(Connect, nil).State().SelectedTab)
	assert.Equal(t, Skills, NewMachine(Home, nil).State().SelectedTab)
}

func TestSelectTabSetsSelection(t *testing.T) {
	for _, tab := range Tabs() {
		t.Run(tab.String(), func(t *testing.T) {
			m := NewMachine(None, nil)
			m.OpenDrawer()
			eff := m.SelectTab(tab)
			assert.True(t, eff.Has(EffectGeometry))
			assert.Equal(t, tab, m.State().SelectedTab)
			assert.False(t, m.State().DrawerOpen)
		})
	}
}

func TestSelectTabIdempotent(t *testing.T) {
	once := NewMachine(None, nil)
	once.SelectTab(Projects)

	twice := NewMachine(None, nil)
	twice.SelectTab(Projects)
	eff := twice.SelectTab(Projects)

	assert.Equal(t, once.State(), twice.State())
	assert.True(t, eff.Has(EffectGeometry), "reselect still re-measures")
}

func TestSelectTabIgnoresNonTabs(t *testing.T) {
	m := NewMachine(Projects, nil)
	m.OpenDrawer()
	before := m.State()

	assert.Equal(t, Effect(0), m.SelectTab(Home))
	assert.Equal(t, Effect(0), m.SelectTab(None))
	assert.Equal(t, before, m.State())
}

func TestOpenOverlayClosesDrawer(t *testing.T) {
	for _, drawer := range []bool{true, false} {
		for _, tab := range Tabs() {
			m := NewMachine(None, nil)
			if drawer {
				m.OpenDrawer()
			}
			m.OpenOverlay(tab)
			assert.False(t, m.State().DrawerOpen)
			assert.Equal(t, tab, m.State().Overlay)
			assert.Equal(t, Skills, m.State().SelectedTab)
		}
	}
}

func TestOpenOverlayHomeEqualsClose(t *testing.T) {
	viaHome := NewMachine(Connect, nil)
	viaHome.OpenOverlay(Projects)
	viaHome.OpenDrawer()
	eff := viaHome.OpenOverlay(Home)

	viaClose := NewMachine(Connect, nil)
	viaClose.OpenOverlay(Projects)
	viaClose.OpenDrawer()
	viaClose.CloseOverlay()

	assert.Equal(t, viaClose.State(), viaHome.State())
	assert.Equal(t, Connect, viaHome.State().SelectedTab)
	assert.True(t, eff.Has(EffectScrollTop))
	assert.Equal(t, Presentation{Mode: ModeInline, Section: Connect}, viaHome.Presentation())
}

func TestLastOverlayWins(t *testing.T) {
	m := NewMachine(None, nil)
	m.OpenOverlay(Projects)
	m.OpenOverlay(Certifications)

	require.Equal(t, Certifications, m.State().Overlay)
	assert.Equal(t, Presentation{Mode: ModeOverlay, Section: Certifications}, m.Presentation())
}

func TestDrawerDoesNotTouchSelection(t *testing.T) {
	m := NewMachine(Projects, nil)
	m.OpenOverlay(Connect)
	m.OpenDrawer()

	s := m.State()
	assert.True(t, s.DrawerOpen)
	assert.Equal(t, Projects, s.SelectedTab)
	assert.Equal(t, Connect, s.Overlay)

	m.CloseDrawer()
	assert.False(t, m.State().DrawerOpen)
	assert.Equal(t, Connect, m.State().Overlay)
}

func TestDrawerThenMenuSelection(t *testing.T) {
	strip := NewMachine(None, nil)
	strip.OpenDrawer()
	strip.SelectTab(Connect)
	assert.False(t, strip.State().DrawerOpen)
	assert.Equal(t, Connect, strip.State().SelectedTab)
	assert.True(t, strip.State().Overlay.IsZero())

	menu := NewMachine(None, nil)
	menu.OpenDrawer()
	menu.OpenOverlay(Connect)
	assert.False(t, menu.State().DrawerOpen)
	assert.Equal(t, Skills, menu.State().SelectedTab)
	assert.Equal(t, Connect, menu.State().Overlay)
}
