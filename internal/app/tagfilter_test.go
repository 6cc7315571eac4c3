package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/folio/internal/content"
)

func TestCheckTechFilter(t *testing.T) {
	p := &content.Portfolio{
		Name: "Test",
		Projects: []content.Project{
			{Title: "A", Tech: []string{"go", "Redis"}},
			{Title: "B", Tech: []string{"Bash"}},
		},
	}

	assert.NoError(t, checkTechFilter(p, "GO"))
	assert.NoError(t, checkTechFilter(p, "redis"))

	err := checkTechFilter(p, "rust")
	require.Error(t, err)
	assert.Equal(t, `no projects use "rust" (available: Bash, go, Redis)`, err.Error())
}

func TestCheckTechFilterWithoutTags(t *testing.T) {
	err := checkTechFilter(&content.Portfolio{Name: "Test"}, "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tech tags")
}
