package matching

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/weights"
	"github.com/spigell/workfit/internal/workstyle"
)

var ErrNilWeights = errors.New("matching engine requires a weight table")

// Matcher runs the batch operations over a bound weight table.
type Matcher interface {
	RankSeekers(ctx context.Context, tags workstyle.TagSet, seekers []Seeker) ([]SeekerMatch, error)
	RankPostings(ctx context.Context, a archetype.ID, postings []Posting) ([]PostingMatch, error)
}

// Engine binds a read-only weight table and scores items on up to workers goroutines.
type Engine struct {
	table   *weights.Table
	workers int
}

var _ Matcher = (*Engine)(nil)

// NewEngine returns an engine over table. workers <= 1 scores sequentially.
func NewEngine(table *weights.Table, workers int) (*Engine, error) {
	if table == nil {
		return nil, ErrNilWeights
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{table: table, workers: workers}, nil
}

// Workers returns the fan-out width.
func (e *Engine) Workers() int { return e.workers }

// RankSeekers is RankSeekersForPosting with fan-out. Results keep input order.
func (e *Engine) RankSeekers(ctx context.Context, tags workstyle.TagSet, seekers []Seeker) ([]SeekerMatch, error) {
	return fanOut(ctx, e.workers, seekers, func(s Seeker) SeekerMatch {
		return matchSeeker(tags, s, e.table)
	})
}

// RankPostings is RankPostingsForArchetype with fan-out.
func (e *Engine) RankPostings(ctx context.Context, a archetype.ID, postings []Posting) ([]PostingMatch, error) {
	out, err := fanOut(ctx, e.workers, postings, func(p Posting) PostingMatch {
		return matchPosting(a, p, e.table)
	})
	if err != nil {
		return nil, err
	}
	sortByScore(out)
	return out, nil
}

// fanOut applies fn to every item. Each goroutine owns one result slot.
func fanOut[In, Out any](ctx context.Context, workers int, items []In, fn func(In) Out) ([]Out, error) {
	out := make([]Out, len(items))

	if workers <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = fn(item)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = fn(item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
