// Package workstyle holds the work-style tag identifiers a job posting can declare.
package workstyle

import (
	"slices"
	"strconv"
	"strings"
)

// TagID identifies a work-style dimension such as "fast-paced".
type TagID int

// TagSet is an unordered set of distinct tag ids. The zero value is an empty set.
type TagSet struct {
	ids map[TagID]struct{}
}

// NewTagSet builds a set from ids, dropping duplicates.
func NewTagSet(ids ...TagID) TagSet {
	s := TagSet{ids: make(map[TagID]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Len returns the number of distinct tags in the set.
func (s TagSet) Len() int { return len(s.ids) }

// Empty reports whether the set holds no tags.
func (s TagSet) Empty() bool { return len(s.ids) == 0 }

// Contains reports whether id is in the set.
func (s TagSet) Contains(id TagID) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the tags sorted ascending.
func (s TagSet) IDs() []TagID {
	out := make([]TagID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s TagSet) String() string {
	ids := s.IDs()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(int(id)))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ParseTagList parses a comma separated list such as "1, 4,7" into a set.
// Empty elements are ignored.
func ParseTagList(raw string) (TagSet, error) {
	var ids []TagID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return TagSet{}, err
		}
		ids = append(ids, TagID(n))
	}
	return NewTagSet(ids...), nil
}
