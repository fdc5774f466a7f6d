// Package exercise implements the card-sorting training exercise: the fixed
// catalog of scenario cards and drop zones, and the Controller that tracks
// where the trainee has placed each card and scores the result.
package exercise

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog shape. A catalog that does not match is rejected at load time.
const (
	CardCount    = 6
	ZoneCount    = 3
	SlotsPerZone = 2
)

// headlineSeparator splits a card's short title from its narrative.
const headlineSeparator = " – "

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ErrInvalidCatalog wraps every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ScenarioCard is one draggable scenario.
type ScenarioCard struct {
	ID          int    `yaml:"id"`
	Text        string `yaml:"text"`
	CorrectZone string `yaml:"correct_zone"`
	// Feedback explains the correct categorization. It is not shown on the
	// exercise screen.
	Feedback string `yaml:"feedback"`
}

// Headline returns the short title in front of the card's narrative, or ""
// when the text has none.
func (c ScenarioCard) Headline() string {
	head, _, ok := strings.Cut(c.Text, headlineSeparator)
	if !ok {
		return ""
	}
	return head
}

// Body returns the narrative after the headline, or the full text.
func (c ScenarioCard) Body() string {
	_, body, ok := strings.Cut(c.Text, headlineSeparator)
	if !ok {
		return c.Text
	}
	return body
}

// DropZoneConfig describes one category cards can be dropped into.
type DropZoneConfig struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Catalog is the immutable exercise content.
type Catalog struct {
	Title        string           `yaml:"title"`
	Instructions string           `yaml:"instructions"`
	SlotsPerZone int              `yaml:"slots_per_zone"`
	Zones        []DropZoneConfig `yaml:"zones"`
	Cards        []ScenarioCard   `yaml:"cards"`
}

// DefaultCatalog returns the built-in fire officer catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads and validates a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if cat.SlotsPerZone == 0 {
		cat.SlotsPerZone = SlotsPerZone
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the catalog shape: six uniquely numbered cards, three
// uniquely named zones, and exactly two cards belonging to each zone.
func (c *Catalog) Validate() error {
	if len(c.Cards) != CardCount {
		return fmt.Errorf("%w: want %d cards, got %d", ErrInvalidCatalog, CardCount, len(c.Cards))
	}
	if len(c.Zones) != ZoneCount {
		return fmt.Errorf("%w: want %d zones, got %d", ErrInvalidCatalog, ZoneCount, len(c.Zones))
	}
	if c.SlotsPerZone != SlotsPerZone {
		return fmt.Errorf("%w: want %d slots per zone, got %d", ErrInvalidCatalog, SlotsPerZone, c.SlotsPerZone)
	}

	perZone := make(map[string]int, len(c.Zones))
	for _, z := range c.Zones {
		if z.ID == "" {
			return fmt.Errorf("%w: zone with empty id", ErrInvalidCatalog)
		}
		if _, dup := perZone[z.ID]; dup {
			return fmt.Errorf("%w: duplicate zone id %q", ErrInvalidCatalog, z.ID)
		}
		perZone[z.ID] = 0
	}

	seen := make(map[int]bool, len(c.Cards))
	for _, card := range c.Cards {
		if card.ID <= 0 {
			return fmt.Errorf("%w: card id %d must be positive", ErrInvalidCatalog, card.ID)
		}
		if seen[card.ID] {
			return fmt.Errorf("%w: duplicate card id %d", ErrInvalidCatalog, card.ID)
		}
		seen[card.ID] = true
		if _, ok := perZone[card.CorrectZone]; !ok {
			return fmt.Errorf("%w: card %d references unknown zone %q", ErrInvalidCatalog, card.ID, card.CorrectZone)
		}
		perZone[card.CorrectZone]++
	}

	for _, z := range c.Zones {
		if perZone[z.ID] != c.SlotsPerZone {
			return fmt.Errorf("%w: zone %q has %d cards, want %d", ErrInvalidCatalog, z.ID, perZone[z.ID], c.SlotsPerZone)
		}
	}
	return nil
}

// Card looks up a card by id.
func (c *Catalog) Card(id int) (ScenarioCard, bool) {
	for _, card := range c.Cards {
		if card.ID == id {
			return card, true
		}
	}
	return ScenarioCard{}, false
}

// Zone looks up a zone by id.
func (c *Catalog) Zone(id string) (DropZoneConfig, bool) {
	for _, z := range c.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return DropZoneConfig{}, false
}

// TotalCards is the number of cards to place.
func (c *Catalog) TotalCards() int { return len(c.Cards) }
