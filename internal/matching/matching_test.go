package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/weights"
	"github.com/spigell/workfit/internal/workstyle"
)

func testTable() *weights.Table {
	return weights.MustNew(
		weights.Entry{Archetype: archetype.Decisive, Tag: 1, Weight: 2},
		weights.Entry{Archetype: archetype.Decisive, Tag: 2, Weight: -1},
		weights.Entry{Archetype: archetype.Coordinator, Tag: 1, Weight: 1},
		weights.Entry{Archetype: archetype.Coordinator, Tag: 3, Weight: 2},
		weights.Entry{Archetype: archetype.Steady, Tag: 1, Weight: -2},
	)
}

func TestRankSeekersForPostingWithoutTags(t *testing.T) {
	t.Parallel()

	seekers := []Seeker{
		{ID: 1, Archetype: archetype.Ptr(archetype.Coordinator)},
		{ID: 2},
	}

	got := RankSeekersForPosting(workstyle.NewTagSet(), seekers, testTable())

	assert.Equal(t, []SeekerMatch{
		{SeekerID: 1, Archetype: nil, Score: 0},
		{SeekerID: 2, Archetype: nil, Score: 0},
	}, got)
}

func TestRankSeekersForPosting(t *testing.T) {
	t.Parallel()

	seekers := []Seeker{
		{ID: 10, Archetype: archetype.Ptr(archetype.Steady)},
		{ID: 11},
		{ID: 12, Archetype: archetype.Ptr(archetype.Decisive)},
		{ID: 13, Archetype: archetype.Ptr(archetype.None)},
		{ID: 14, Archetype: archetype.Ptr(archetype.Generalist)},
	}

	got := RankSeekersForPosting(workstyle.NewTagSet(1, 2), seekers, testTable())

	require.Len(t, got, len(seekers))
	assert.Equal(t, SeekerMatch{SeekerID: 10, Archetype: archetype.Ptr(archetype.Steady), Score: -1.0}, got[0])
	assert.Equal(t, SeekerMatch{SeekerID: 11}, got[1])
	assert.Equal(t, SeekerMatch{SeekerID: 12, Archetype: archetype.Ptr(archetype.Decisive), Score: 0.5}, got[2])
	assert.Equal(t, SeekerMatch{SeekerID: 13}, got[3])
	assert.Equal(t, SeekerMatch{SeekerID: 14, Archetype: archetype.Ptr(archetype.Generalist), Score: 0}, got[4])
}

func TestRankSeekersOutOfRangeArchetypeIsUnassigned(t *testing.T) {
	t.Parallel()

	seekers := []Seeker{
		{ID: 1, Archetype: archetype.Ptr(archetype.ID(9))},
		{ID: 2, Archetype: archetype.Ptr(archetype.ID(-1))},
		{ID: 3, Archetype: archetype.Ptr(archetype.Decisive)},
	}

	got := RankSeekersForPosting(workstyle.NewTagSet(1), seekers, testTable())

	assert.Equal(t, []SeekerMatch{
		{SeekerID: 1},
		{SeekerID: 2},
		{SeekerID: 3, Archetype: archetype.Ptr(archetype.Decisive), Score: 2},
	}, got)

	engine, err := NewEngine(testTable(), 4)
	require.NoError(t, err)
	fromEngine, err := engine.RankSeekers(context.Background(), workstyle.NewTagSet(1), seekers)
	require.NoError(t, err)
	assert.Equal(t, got, fromEngine)
}

func TestRankSeekersDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	a := archetype.Decisive
	seekers := []Seeker{{ID: 1, Archetype: &a}}

	got := RankSeekersForPosting(workstyle.NewTagSet(1), seekers, testTable())
	a = archetype.Steady

	assert.Equal(t, archetype.Decisive, *got[0].Archetype)
}

func TestRankPostingsForArchetype(t *testing.T) {
	t.Parallel()

	postings := []Posting{
		{ID: 1, Tags: workstyle.NewTagSet(1, 2), TagNames: []string{"fast-paced", "detail-oriented"}},
		{ID: 2, Tags: workstyle.NewTagSet(), TagNames: []string{"ignored"}},
		{ID: 3, Tags: workstyle.NewTagSet(3), TagNames: []string{"teamwork"}},
		{ID: 4, Tags: workstyle.NewTagSet(1), TagNames: []string{"fast-paced"}},
		{ID: 5, Tags: workstyle.NewTagSet(9)},
	}

	got := RankPostingsForArchetype(archetype.Coordinator, postings, testTable())

	assert.Equal(t, []PostingMatch{
		{PostingID: 3, Score: 2.0, MatchedTagNames: []string{"teamwork"}},
		{PostingID: 4, Score: 1.0, MatchedTagNames: []string{"fast-paced"}},
		{PostingID: 1, Score: 0.5, MatchedTagNames: []string{"fast-paced", "detail-oriented"}},
		{PostingID: 2, Score: 0, MatchedTagNames: []string{}},
		{PostingID: 5, Score: 0, MatchedTagNames: []string{}},
	}, got)
}

func TestRankPostingsSortedDescending(t *testing.T) {
	t.Parallel()

	postings := []Posting{
		{ID: 1, Tags: workstyle.NewTagSet(2)},    // -1
		{ID: 2, Tags: workstyle.NewTagSet(1)},    // 2
		{ID: 3, Tags: workstyle.NewTagSet(1, 2)}, // 0.5
		{ID: 4, Tags: workstyle.NewTagSet(1, 9)}, // 1
	}

	got := RankPostingsForArchetype(archetype.Decisive, postings, testTable())

	ids := make([]int64, 0, len(got))
	for i, m := range got {
		ids = append(ids, m.PostingID)
		if i > 0 {
			assert.Greater(t, got[i-1].Score, m.Score)
		}
	}
	assert.Equal(t, []int64{2, 4, 3, 1}, ids)
}

func TestRankPostingsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RankPostingsForArchetype(archetype.Decisive, nil, testTable()))
	assert.Empty(t, RankSeekersForPosting(workstyle.NewTagSet(1), nil, testTable()))
}

func manySeekers(n int) []Seeker {
	out := make([]Seeker, 0, n)
	for i := 0; i < n; i++ {
		s := Seeker{ID: int64(i)}
		if i%6 != 0 {
			s.Archetype = archetype.Ptr(archetype.ID(i%6))
		}
		out = append(out, s)
	}
	return out
}

func manyPostings(n int) []Posting {
	out := make([]Posting, 0, n)
	for i := 0; i < n; i++ {
		tags := make([]workstyle.TagID, 0, i%4)
		for j := 0; j < i%4; j++ {
			tags = append(tags, workstyle.TagID(j+1+i%3))
		}
		out = append(out, Posting{ID: int64(i), Tags: workstyle.NewTagSet(tags...), TagNames: []string{fmt.Sprint(i)}})
	}
	return out
}

func TestEngineMatchesPureFunctions(t *testing.T) {
	t.Parallel()

	table := weights.Default()
	seekers := manySeekers(200)
	postings := manyPostings(200)
	tags := workstyle.NewTagSet(1, 3, 8)

	for _, workers := range []int{0, 1, 4, 32} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()

			e, err := NewEngine(table, workers)
			require.NoError(t, err)

			gotSeekers, err := e.RankSeekers(context.Background(), tags, seekers)
			require.NoError(t, err)
			assert.Equal(t, RankSeekersForPosting(tags, seekers, table), gotSeekers)

			gotPostings, err := e.RankPostings(context.Background(), archetype.Coordinator, postings)
			require.NoError(t, err)
			assert.Equal(t, RankPostingsForArchetype(archetype.Coordinator, postings, table), gotPostings)
		})
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	_, err := NewEngine(nil, 4)
	assert.ErrorIs(t, err, ErrNilWeights)

	e, err := NewEngine(weights.MustNew(), -3)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Workers())
}

func TestEngineCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 8} {
		e, err := NewEngine(weights.Default(), workers)
		require.NoError(t, err)

		_, err = e.RankSeekers(ctx, workstyle.NewTagSet(1), manySeekers(50))
		assert.ErrorIs(t, err, context.Canceled)

		_, err = e.RankPostings(ctx, archetype.Decisive, manyPostings(50))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWithLogging(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	e, err := NewEngine(testTable(), 2)
	require.NoError(t, err)

	m := WithLogging(e, zap.New(core))

	got, err := m.RankSeekers(context.Background(), workstyle.NewTagSet(1), manySeekers(3))
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = m.RankPostings(context.Background(), archetype.Decisive, manyPostings(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.RankPostings(ctx, archetype.Decisive, manyPostings(2))
	require.Error(t, err)

	entries := observed.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "rank_seekers", entries[0].ContextMap()["operation"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["input"])
	assert.Equal(t, "{1}", entries[0].ContextMap()["tags"])

	assert.Equal(t, "rank_postings", entries[1].ContextMap()["operation"])
	assert.Equal(t, "decisive", entries[1].ContextMap()["archetype"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestWithLoggingNilLogger(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(testTable(), 1)
	require.NoError(t, err)

	_, err = WithLogging(e, nil).RankSeekers(context.Background(), workstyle.NewTagSet(), manySeekers(2))
	assert.NoError(t, err)
}
