// Package reference holds the display data for archetypes and work-style tags.
package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/workstyle"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Archetype is the display form of an archetype.
type Archetype struct {
	ID          archetype.ID `json:"id" mapstructure:"id"`
	Name        string       `json:"name" mapstructure:"name"`
	Description string       `json:"description" mapstructure:"description"`
}

// Tag is the display form of a work-style tag.
type Tag struct {
	ID   workstyle.TagID `json:"id" mapstructure:"id"`
	Name string          `json:"name" mapstructure:"name"`
}

// Catalog indexes archetypes and tags by id.
type Catalog struct {
	archetypes map[archetype.ID]Archetype
	tags       map[workstyle.TagID]Tag
}

// Default returns the built-in catalog.
func Default() *Catalog {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultCatalog)); err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}

	c, err := fromViper(v)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file with "archetypes" and "tags" lists.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	c, err := fromViper(v)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

func fromViper(v *viper.Viper) (*Catalog, error) {
	var raw struct {
		Archetypes []Archetype `mapstructure:"archetypes"`
		Tags       []Tag       `mapstructure:"tags"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}
	return New(raw.Archetypes, raw.Tags)
}

// New indexes the given entries, rejecting duplicates and unknown archetype ids.
func New(archetypes []Archetype, tags []Tag) (*Catalog, error) {
	c := &Catalog{
		archetypes: make(map[archetype.ID]Archetype, len(archetypes)),
		tags:       make(map[workstyle.TagID]Tag, len(tags)),
	}

	for _, a := range archetypes {
		if !a.ID.Valid() {
			return nil, fmt.Errorf("archetype id %d is not between 1 and 5", a.ID)
		}
		if _, ok := c.archetypes[a.ID]; ok {
			return nil, fmt.Errorf("duplicate archetype id %d", a.ID)
		}
		c.archetypes[a.ID] = a
	}

	for _, t := range tags {
		if t.ID <= 0 {
			return nil, fmt.Errorf("tag id %d must be positive", t.ID)
		}
		if _, ok := c.tags[t.ID]; ok {
			return nil, fmt.Errorf("duplicate tag id %d", t.ID)
		}
		c.tags[t.ID] = t
	}

	return c, nil
}

// Archetype looks up the display data for id.
func (c *Catalog) Archetype(id archetype.ID) (Archetype, bool) {
	a, ok := c.archetypes[id]
	return a, ok
}

// TagName returns the tag name, or "tag-<id>" for unknown tags.
func (c *Catalog) TagName(id workstyle.TagID) string {
	if t, ok := c.tags[id]; ok {
		return t.Name
	}
	return "tag-" + strconv.Itoa(int(id))
}

// TagNames names every tag in s, in tag id order.
func (c *Catalog) TagNames(s workstyle.TagSet) []string {
	ids := s.IDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.TagName(id))
	}
	return out
}

// Tags returns every known tag in id order.
func (c *Catalog) Tags() []Tag {
	ids := make([]workstyle.TagID, 0, len(c.tags))
	for id := range c.tags {
		ids = append(ids, id)
	}
	out := make([]Tag, 0, len(ids))
	for _, id := range workstyle.NewTagSet(ids...).IDs() {
		out = append(out, c.tags[id])
	}
	return out
}
