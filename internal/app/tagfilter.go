package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kyaoi/folio/internal/content"
)

// checkTechFilter rejects a tech filter that no project carries, listing the
// tags that would match.
func checkTechFilter(p *content.Portfolio, tag string) error {
	if len(p.WithTech(tag).Projects) > 0 {
		return nil
	}
	tags := p.TechTags()
	if len(tags) == 0 {
		return fmt.Errorf("no projects use %q: the portfolio lists no tech tags", tag)
	}
	sortTags(tags)
	return fmt.Errorf("no projects use %q (available: %s)", tag, strings.Join(tags, ", "))
}

func sortTags(tags []string) {
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
}
