package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/weights"
	"github.com/spigell/workfit/internal/workstyle"
)

func TestScoreEmptyTagsIsZero(t *testing.T) {
	t.Parallel()

	tables := map[string]*weights.Table{
		"nil":     nil,
		"empty":   weights.MustNew(),
		"default": weights.Default(),
	}

	for name, table := range tables {
		for _, a := range append(archetype.All(), archetype.None) {
			assert.Equal(t, 0.0, Score(a, workstyle.NewTagSet(), table), "%s/%v", name, a)
			assert.Equal(t, 0.0, Score(a, workstyle.TagSet{}, table), "%s/%v", name, a)
		}
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	table := weights.MustNew(
		weights.Entry{Archetype: archetype.Decisive, Tag: 1, Weight: 2},
		weights.Entry{Archetype: archetype.Decisive, Tag: 3, Weight: 1},
		weights.Entry{Archetype: archetype.Decisive, Tag: 4, Weight: -2},
		weights.Entry{Archetype: archetype.Steady, Tag: 1, Weight: -1},
		weights.Entry{Archetype: archetype.Steady, Tag: 2, Weight: 0},
		weights.Entry{Archetype: archetype.Solver, Tag: 5, Weight: 1},
	)

	tests := []struct {
		name string
		a    archetype.ID
		tags []workstyle.TagID
		want float64
	}{
		{name: "single full match", a: archetype.Decisive, tags: []workstyle.TagID{1}, want: 2.0},
		{name: "missing tag dilutes", a: archetype.Decisive, tags: []workstyle.TagID{1, 2}, want: 1.0},
		{name: "mean of three", a: archetype.Decisive, tags: []workstyle.TagID{1, 3, 4}, want: 0.3},
		{name: "one third rounds down", a: archetype.Solver, tags: []workstyle.TagID{5, 6, 7}, want: 0.3},
		{name: "two thirds rounds up", a: archetype.Decisive, tags: []workstyle.TagID{1, 8, 9}, want: 0.7},
		{name: "half rounds away from zero", a: archetype.Solver, tags: []workstyle.TagID{5, 6, 7, 8}, want: 0.3},
		{name: "negative", a: archetype.Steady, tags: []workstyle.TagID{1, 2}, want: -0.5},
		{name: "only zero weights", a: archetype.Steady, tags: []workstyle.TagID{2}, want: 0.0},
		{name: "no entries for archetype", a: archetype.Coordinator, tags: []workstyle.TagID{1, 2, 3}, want: 0.0},
		{name: "unassigned archetype", a: archetype.None, tags: []workstyle.TagID{1}, want: 0.0},
		{name: "duplicates collapse", a: archetype.Decisive, tags: []workstyle.TagID{1, 1, 2}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tt.a, workstyle.NewTagSet(tt.tags...), table)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	table := weights.Default()
	all := workstyle.NewTagSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	for _, a := range archetype.All() {
		s := Score(a, all, table)
		assert.GreaterOrEqual(t, s, -2.0)
		assert.LessOrEqual(t, s, 2.0)
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.3, Round(0.25))
	assert.Equal(t, -0.3, Round(-0.25))
	assert.Equal(t, 0.7, Round(2.0/3.0))
	assert.Equal(t, 1.0, Round(1))
	assert.Equal(t, 0.0, Round(-0.04))
}
