// Package weights holds the static (archetype, work-style tag) -> weight table the scorer reads.
package weights

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/workstyle"
)

const (
	MinWeight = -2
	MaxWeight = 2
)

var (
	ErrWeightOutOfRange = errors.New("weight out of range")
	ErrDuplicateEntry   = errors.New("duplicate weight entry")
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrInvalidTag       = errors.New("invalid tag id")
)

// Entry is one configured affinity between an archetype and a tag.
type Entry struct {
	Archetype archetype.ID    `json:"archetype" mapstructure:"archetype"`
	Tag       workstyle.TagID `json:"tag" mapstructure:"tag"`
	Weight    int             `json:"weight" mapstructure:"weight"`
}

type key struct {
	archetype archetype.ID
	tag       workstyle.TagID
}

// Table is an immutable weight lookup. A nil *Table behaves as an empty table.
type Table struct {
	weights map[key]int
}

// New validates entries and builds a table from them.
func New(entries []Entry) (*Table, error) {
	t := &Table{weights: make(map[key]int, len(entries))}

	for i, e := range entries {
		if !e.Archetype.Valid() {
			return nil, fmt.Errorf("entry %d: %w: %d", i, ErrUnknownArchetype, e.Archetype)
		}
		if e.Tag <= 0 {
			return nil, fmt.Errorf("entry %d: %w: %d", i, ErrInvalidTag, e.Tag)
		}
		if e.Weight < MinWeight || e.Weight > MaxWeight {
			return nil, fmt.Errorf("entry %d (archetype %d, tag %d): %w: %d not in [%d,%d]",
				i, e.Archetype, e.Tag, ErrWeightOutOfRange, e.Weight, MinWeight, MaxWeight)
		}

		k := key{archetype: e.Archetype, tag: e.Tag}
		if _, ok := t.weights[k]; ok {
			return nil, fmt.Errorf("entry %d: %w for archetype %d, tag %d", i, ErrDuplicateEntry, e.Archetype, e.Tag)
		}
		t.weights[k] = e.Weight
	}

	return t, nil
}

// MustNew is New that panics on invalid entries. Meant for tests and literals.
func MustNew(entries ...Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the weight for (a, tag) and whether an entry exists.
func (t *Table) Lookup(a archetype.ID, tag workstyle.TagID) (int, bool) {
	if t == nil {
		return 0, false
	}
	w, ok := t.weights[key{archetype: a, tag: tag}]
	return w, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.weights)
}

// Entries returns all entries ordered by archetype, then tag.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}

	out := make([]Entry, 0, len(t.weights))
	for k, w := range t.weights {
		out = append(out, Entry{Archetype: k.archetype, Tag: k.tag, Weight: w})
	}
	slices.SortFunc(out, func(x, y Entry) int {
		if c := cmp.Compare(x.Archetype, y.Archetype); c != 0 {
			return c
		}
		return cmp.Compare(x.Tag, y.Tag)
	})
	return out
}
