// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed items.yaml
var itemsYAML []byte

// Item is a single survey statement. Reverse items are inverted relative to
// the scale and score 6 - raw when aggregated.
type Item struct {
	ID        string `yaml:"id" json:"id"`
	Dimension string `yaml:"dimension" json:"dimension"`
	Text      string `yaml:"text" json:"text"`
	Reverse   bool   `yaml:"reverse" json:"reverse"`
}

// Catalog is the ordered, read-only set of survey items. Item order defines
// display and report order; dimension order is first-seen.
type Catalog struct {
	items      []Item
	byID       map[string]int
	dimensions []string
}

// Load parses the embedded catalog. Called once at startup.
func Load() (*Catalog, error) {
	return Parse(itemsYAML)
}

// Parse builds a catalog from YAML data.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Items []Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	c := &Catalog{
		items: doc.Items,
		byID:  make(map[string]int, len(doc.Items)),
	}
	seen := make(map[string]bool)
	for i, item := range doc.Items {
		if item.ID == "" || item.Dimension == "" || item.Text == "" {
			return nil, fmt.Errorf("catalog item %d is missing id, dimension, or text", i)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id: %s", item.ID)
		}
		c.byID[item.ID] = i
		if !seen[item.Dimension] {
			seen[item.Dimension] = true
			c.dimensions = append(c.dimensions, item.Dimension)
		}
	}
	return c, nil
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the total number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Dimensions returns dimension names in first-seen order.
func (c *Catalog) Dimensions() []string {
	out := make([]string, len(c.dimensions))
	copy(out, c.dimensions)
	return out
}

// ByID looks up an item by its stable identifier.
func (c *Catalog) ByID(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// ByDimension returns the items of one dimension in catalog order.
func (c *Catalog) ByDimension(dimension string) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Dimension == dimension {
			out = append(out, item)
		}
	}
	return out
}
