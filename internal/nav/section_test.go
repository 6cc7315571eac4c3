package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Section
		ok   bool
	}{
		{"skills", Skills, true},
		{" Projects ", Projects, true},
		{"certifications", Certifications, true},
		{"testimonials", Certifications, true},
		{"CONNECT", Connect, true},
		{"home", None, false},
		{"", None, false},
		{"blog", None, false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.raw)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.raw)
		assert.Equal(t, tc.ok, ok, "Parse(%q) ok", tc.raw)
	}
}

func TestSectionNext(t *testing.T) {
	assert.Equal(t, Projects, Skills.Next(1))
	assert.Equal(t, Connect, Skills.Next(-1))
	assert.Equal(t, Skills, Connect.Next(1))
	assert.Equal(t, Skills, Home.Next(1))
}

func TestSectionBasics(t *testing.T) {
	assert.Len(t, Tabs(), 4)
	assert.Equal(t, Home, MenuItems()[0])
	assert.False(t, Home.IsTab())
	assert.False(t, None.IsTab())
	assert.True(t, None.IsZero())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "Certifications", Certifications.Label())
	assert.Equal(t, 2, Certifications.Index())
	assert.Equal(t, -1, Home.Index())

	// Tabs returns a copy.
	ts := Tabs()
	ts[0] = Connect
	assert.Equal(t, Skills, Tabs()[0])
}
