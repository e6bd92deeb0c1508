package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// Tag is a filter value the trivia service understands plus its display label.
type Tag struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Catalog is the static game content: filter tags, result tiers and texts.
type Catalog struct {
	Title        string   `yaml:"title"`
	Tagline      string   `yaml:"tagline"`
	Difficulties []Tag    `yaml:"difficulties"`
	Categories   []Tag    `yaml:"categories"`
	Tiers        []string `yaml:"tiers"`
	HowTo        string   `yaml:"howto"`
	Credits      string   `yaml:"credits"`
}

// Load parses the content bundled with the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// MustLoad is Load for callers that treat a broken bundle as a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a single YAML content document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, errors.New("parse catalog: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Difficulties) == 0 {
		return errors.New("catalog: no difficulties defined")
	}
	if len(c.Categories) == 0 {
		return errors.New("catalog: no categories defined")
	}
	if len(c.Tiers) == 0 {
		return errors.New("catalog: no tiers defined")
	}
	if err := uniqueIDs("difficulty", c.Difficulties); err != nil {
		return err
	}
	return uniqueIDs("category", c.Categories)
}

func uniqueIDs(kind string, tags []Tag) error {
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t.ID == "" {
			return fmt.Errorf("catalog: %s with empty id", kind)
		}
		if seen[t.ID] {
			return fmt.Errorf("catalog: duplicate %s %q", kind, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// DifficultyIDs returns every known difficulty id in display order.
func (c *Catalog) DifficultyIDs() []string {
	return ids(c.Difficulties)
}

// CategoryIDs returns every known category id in display order.
func (c *Catalog) CategoryIDs() []string {
	return ids(c.Categories)
}

// HasDifficulty reports whether id is a known difficulty.
func (c *Catalog) HasDifficulty(id string) bool {
	return find(c.Difficulties, id) != nil
}

// HasCategory reports whether id is a known category.
func (c *Catalog) HasCategory(id string) bool {
	return find(c.Categories, id) != nil
}

// DifficultyLabel returns the display label for id, or id itself if unknown.
func (c *Catalog) DifficultyLabel(id string) string {
	if t := find(c.Difficulties, id); t != nil {
		return t.Label
	}
	return id
}

// CategoryLabel returns the display label for id, or id itself if unknown.
func (c *Catalog) CategoryLabel(id string) string {
	if t := find(c.Categories, id); t != nil {
		return t.Label
	}
	return id
}

func ids(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.ID
	}
	return out
}

func find(tags []Tag, id string) *Tag {
	for i := range tags {
		if tags[i].ID == id {
			return &tags[i]
		}
	}
	return nil
}
