package nav

import (
	"io"
	"log/slog"
)

// Effect lists follow-up work the view owes after a transition.
type Effect uint8

const (
	// EffectGeometry asks for the selection indicator to be re-measured.
	EffectGeometry Effect = 1 << iota
	// EffectScrollTop asks for the page to scroll back to the hero.
	EffectScrollTop
)

// Has reports whether e contains all bits of other.
func (e Effect) Has(other Effect) bool {
	return other != 0 && e&other == other
}

// State is the navigation state of one view instance.
type State struct {
	SelectedTab Section
	Overlay     Section
	DrawerOpen  bool
}

// DefaultState is the state every view starts from.
func DefaultState() State {
	return State{SelectedTab: Skills}
}

// Mode tells whether a section is shown in the strip or full-screen.
type Mode uint8

const (
	ModeInline Mode = iota
	ModeOverlay
)

func (m Mode) String() string {
	if m == ModeOverlay {
		return "overlay"
	}
	return "inline"
}

// Presentation is the section currently on screen together with how it is
// presented.
type Presentation struct {
	Mode    Mode
	Section Section
}

// Machine owns the navigation state of a single view. It is not safe for
// concurrent use; the Bubble Tea update loop is its only caller.
type Machine struct {
	state  State
	logger *slog.Logger
}

// NewMachine returns a machine in the default state with the given initial
// tab. A non-tab initial value keeps Skills.
func NewMachine(initial Section, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	state := DefaultState()
	if initial.IsTab() {
		state.SelectedTab = initial
	}
	return &Machine{state: state, logger: logger}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Presentation returns Overlay(section) while an overlay is active and
// Inline(selected tab) otherwise.
func (m *Machine) Presentation() Presentation {
	if !m.state.Overlay.IsZero() {
		return Presentation{Mode: ModeOverlay, Section: m.state.Overlay}
	}
	return Presentation{Mode: ModeInline, Section: m.state.SelectedTab}
}

// SelectTab makes tab the strip selection and closes the drawer. Reselecting
// the current tab still requests a geometry pass. Non-tab input is ignored.
func (m *Machine) SelectTab(tab Section) Effect {
	if !tab.IsTab() {
		m.logger.Debug("ignoring non-tab selection", "section", tab.String())
		return 0
	}
	prev := m.state.SelectedTab
	m.state.SelectedTab = tab
	m.state.DrawerOpen = false
	m.logger.Debug("tab selected", "from", prev.String(), "to", tab.String())
	return EffectGeometry
}

// OpenOverlay shows target full-screen and closes the drawer. Home (or None)
// closes the overlay instead and asks the view to scroll to the top.
func (m *Machine) OpenOverlay(target Section) Effect {
	if target == Home || target.IsZero() {
		return m.CloseOverlay() | EffectScrollTop
	}
	m.state.Overlay = target
	m.state.DrawerOpen = false
	m.logger.Debug("overlay opened", "section", target.String())
	return 0
}

// CloseOverlay returns to inline presentation and closes the drawer.
func (m *Machine) CloseOverlay() Effect {
	m.state.Overlay = None
	m.state.DrawerOpen = false
	m.logger.Debug("overlay closed", "tab", m.state.SelectedTab.String())
	// The strip becomes visible again; its indicator must be re-measured.
	return EffectGeometry
}

// OpenDrawer opens the side drawer without touching the selection.
func (m *Machine) OpenDrawer() {
	m.state.DrawerOpen = true
	m.logger.Debug("drawer opened")
}

// CloseDrawer closes the side drawer.
func (m *Machine) CloseDrawer() {
	m.state.DrawerOpen = false
	m.logger.Debug("drawer closed")
}
