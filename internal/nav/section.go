package nav

import "strings"

// Section identifies one of the fixed content groupings. The set is closed:
// outside this package only the declared values and the zero value (None)
// can exist.
type Section struct {
	key string
}

var (
	// None is the zero Section, meaning "no section".
	None = Section{}

	// The tab sections, in strip order.
	Skills         = Section{key: "skills"}
	Projects       = Section{key: "projects"}
	Certifications = Section{key: "certifications"}
	Connect        = Section{key: "connect"}

	// Home is a navigation target only; it is never a tab.
	Home = Section{key: "home"}
)

var tabs = [...]Section{Skills, Projects, Certifications, Connect}

var labels = map[Section]string{
	Skills:         "Skills",
	Projects:       "Projects",
	Certifications: "Certifications",
	Connect:        "Connect",
	Home:           "Home",
}

// Tabs returns the tab sections in strip order.
func Tabs() []Section {
	out := make([]Section, len(tabs))
	copy(out, tabs[:])
	return out
}

// MenuItems returns the drawer entries: Home followed by the tabs.
func MenuItems() []Section {
	return append([]Section{Home}, tabs[:]...)
}

// IsTab reports whether the section can be selected in the tab strip.
func (s Section) IsTab() bool {
	for _, t := range tabs {
		if s == t {
			return true
		}
	}
	return false
}

// IsZero reports whether s is None.
func (s Section) IsZero() bool {
	return s.key == ""
}

func (s Section) String() string {
	if s.key == "" {
		return "none"
	}
	return s.key
}

// Label is the human readable name shown in the strip and drawer.
func (s Section) Label() string {
	return labels[s]
}

// Index returns the strip position of a tab section, or -1.
func (s Section) Index() int {
	for i, t := range tabs {
		if s == t {
			return i
		}
	}
	return -1
}

// Next returns the tab delta positions away from s, wrapping around the strip.
// Non-tab sections start from the first tab.
func (s Section) Next(delta int) Section {
	idx := s.Index()
	if idx < 0 {
		return tabs[0]
	}
	n := len(tabs)
	return tabs[((idx+delta)%n+n)%n]
}

// Parse maps a configuration value onto a tab section. "testimonials" is
// accepted for Certifications.
func Parse(raw string) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "skills":
		return Skills, true
	case "projects":
		return Projects, true
	case "certifications", "testimonials":
		return Certifications, true
	case "connect":
		return Connect, true
	default:
		return None, false
	}
}
