// Package dataset reads seeker and posting summaries from files, standing in for
// the data-access layer that feeds the matcher.
package dataset

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/matching"
	"github.com/spigell/workfit/internal/reference"
	"github.com/spigell/workfit/internal/workstyle"
)

type seekerRow struct {
	ID        int64 `mapstructure:"id"`
	Archetype *int  `mapstructure:"archetype"`
}

type postingRow struct {
	ID       int64    `mapstructure:"id"`
	Tags     []int    `mapstructure:"tags"`
	TagNames []string `mapstructure:"tag-names"`
}

// LoadSeekers reads a file with a top-level "seekers" list of {id, archetype}.
// A missing, null or 0 archetype marks a seeker without a quiz result.
func LoadSeekers(path string) ([]matching.Seeker, error) {
	var raw struct {
		Seekers []seekerRow `mapstructure:"seekers"`
	}
	if err := read(path, &raw); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(raw.Seekers))
	out := make([]matching.Seeker, 0, len(raw.Seekers))
	for i, row := range raw.Seekers {
		if seen[row.ID] {
			return nil, fmt.Errorf("%s: seeker %d: duplicate id %d", path, i+1, row.ID)
		}
		seen[row.ID] = true

		s := matching.Seeker{ID: row.ID}
		if row.Archetype != nil && *row.Archetype != int(archetype.None) {
			id := archetype.ID(*row.Archetype)
			if !id.Valid() {
				return nil, fmt.Errorf("%s: seeker %d: unknown archetype %d", path, row.ID, *row.Archetype)
			}
			s.Archetype = &id
		}
		out = append(out, s)
	}

	return out, nil
}

// LoadPostings reads a file with a top-level "postings" list of {id, tags, tag-names}.
// Postings without tag-names get their names from catalog.
func LoadPostings(path string, catalog *reference.Catalog) ([]matching.Posting, error) {
	var raw struct {
		Postings []postingRow `mapstructure:"postings"`
	}
	if err := read(path, &raw); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(raw.Postings))
	out := make([]matching.Posting, 0, len(raw.Postings))
	for i, row := range raw.Postings {
		if seen[row.ID] {
			return nil, fmt.Errorf("%s: posting %d: duplicate id %d", path, i+1, row.ID)
		}
		seen[row.ID] = true

		ids := make([]workstyle.TagID, 0, len(row.Tags))
		for _, t := range row.Tags {
			ids = append(ids, workstyle.TagID(t))
		}
		tags := workstyle.NewTagSet(ids...)

		names := row.TagNames
		if len(names) == 0 && catalog != nil {
			names = catalog.TagNames(tags)
		}

		out = append(out, matching.Posting{ID: row.ID, Tags: tags, TagNames: names})
	}

	return out, nil
}

func read(path string, result any) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	return nil
}
