// Package content loads the read-only portfolio records the view renders.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

//go:embed default.md
var defaultDocument []byte

// ErrEmptyName is returned when a document has no profile name.
var ErrEmptyName = errors.New("portfolio name is empty")

// Link is an external reference shown in the hero.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Project is one entry of the projects section.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	GitHub      string   `yaml:"github"`
	Live        string   `yaml:"live"`
}

// HasTech reports whether the project lists tag, ignoring case.
func (p Project) HasTech(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, t := range p.Tech {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Certification is one entry of the certifications section.
type Certification struct {
	Title       string `yaml:"title"`
	Issuer      string `yaml:"issuer"`
	Description string `yaml:"description"`
	File        string `yaml:"file"`
}

// Testimonial is a quote shown after the certifications.
type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// Portfolio is the complete content of the page. It is built once and never
// mutated by the view.
type Portfolio struct {
	Name           string          `yaml:"name"`
	Role           string          `yaml:"role"`
	Email          string          `yaml:"email"`
	Phone          string          `yaml:"phone"`
	Calendar       string          `yaml:"calendar"`
	CV             string          `yaml:"cv"`
	Links          []Link          `yaml:"links"`
	SkillsIntro    string          `yaml:"skills_intro"`
	Skills         []string        `yaml:"skills"`
	Projects       []Project       `yaml:"projects"`
	Certifications []Certification `yaml:"certifications"`
	Testimonials   []Testimonial   `yaml:"testimonials"`
	Footer         string          `yaml:"footer"`

	// Bio is the Markdown body that follows the front matter.
	Bio string `yaml:"-"`
}

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p, err := Parse(bytes.NewReader(defaultDocument))
	if err != nil {
		panic(fmt.Sprintf("content: built-in document: %v", err))
	}
	return p
}

// Load reads a portfolio document from path. An empty path yields Default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a Markdown document whose front matter carries the records
// and whose body is the bio.
func Parse(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	body, err := frontmatter.Parse(r, &p)
	if err != nil {
		return nil, err
	}
	p.Bio = strings.TrimSpace(string(body))
	p.normalize()
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	return &p, nil
}

// WithTech returns a copy of p listing only projects that carry tag. An empty
// tag returns p unchanged.
func (p *Portfolio) WithTech(tag string) *Portfolio {
	if strings.TrimSpace(tag) == "" {
		return p
	}
	filtered := *p
	filtered.Projects = nil
	for _, proj := range p.Projects {
		if proj.HasTech(tag) {
			filtered.Projects = append(filtered.Projects, proj)
		}
	}
	return &filtered
}

// TechTags lists every distinct tech tag in project order.
func (p *Portfolio) TechTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, proj := range p.Projects {
		for _, t := range proj.Tech {
			key := strings.ToLower(t)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func (p *Portfolio) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Skills = compact(p.Skills)
	for i := range p.Projects {
		p.Projects[i].Tech = compact(p.Projects[i].Tech)
		p.Projects[i].GitHub = linkOrEmpty(p.Projects[i].GitHub)
		p.Projects[i].Live = linkOrEmpty(p.Projects[i].Live)
	}
	for i := range p.Links {
		p.Links[i].URL = linkOrEmpty(p.Links[i].URL)
	}
	p.Calendar = linkOrEmpty(p.Calendar)
}

// linkOrEmpty treats "#" placeholders as missing links.
func linkOrEmpty(s string) string {
	s = strings.TrimSpace(s)
	if s == "#" {
		return ""
	}
	return s
}

func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
