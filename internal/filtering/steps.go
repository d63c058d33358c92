package filtering

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"go.uber.org/zap"
)

type sortFilter[T Scored] struct {
	disabled bool
	reason   string
}

// NewSortByScore orders results by score, highest first. Ties keep their order.
func NewSortByScore[T Scored]() Filter[T] {
	return &sortFilter[T]{}
}

func (f *sortFilter[T]) Name() string { return "sort_by_score" }

func (f *sortFilter[T]) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *sortFilter[T]) IsEnabled() bool { return !f.disabled }

func (f *sortFilter[T]) Validate(*Config) error { return nil }

func (f *sortFilter[T]) Apply(_ context.Context, _ Deps, items []T) ([]T, Step, error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(x, y T) int {
		return cmp.Compare(y.MatchScore(), x.MatchScore())
	})
	return sorted, Step{Initial: len(items), Left: len(sorted)}, nil
}

func (f *sortFilter[T]) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

type minimumScoreFilter[T Scored] struct {
	threshold *float64
}

// NewMinimumScore drops results scoring below the configured minimum.
// It passes everything through when no minimum is configured.
func NewMinimumScore[T Scored]() Filter[T] {
	return &minimumScoreFilter[T]{}
}

func (f *minimumScoreFilter[T]) Name() string { return "minimum_score" }

func (f *minimumScoreFilter[T]) Disable(string) {}

func (f *minimumScoreFilter[T]) IsEnabled() bool { return true }

func (f *minimumScoreFilter[T]) Validate(cfg *Config) error {
	f.threshold = nil
	if cfg == nil || cfg.MinimumScore == nil {
		return nil
	}
	if math.IsNaN(*cfg.MinimumScore) {
		return errors.New("minimum score is not a number")
	}
	v := *cfg.MinimumScore
	f.threshold = &v
	return nil
}

func (f *minimumScoreFilter[T]) Apply(_ context.Context, deps Deps, items []T) ([]T, Step, error) {
	initial := len(items)
	if f.threshold == nil {
		return items, Step{Initial: initial, Left: initial}, nil
	}

	kept := make([]T, 0, initial)
	for _, item := range items {
		if item.MatchScore() >= *f.threshold {
			kept = append(kept, item)
		}
	}

	if deps.Logger != nil && len(kept) < initial {
		deps.Logger.Debug("dropping results below minimum score",
			zap.Float64("minimum_score", *f.threshold),
			zap.Int("results_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *minimumScoreFilter[T]) Status() Status {
	details := map[string]string{}
	reason := "no minimum score configured"
	if f.threshold != nil {
		details["minimum_score"] = strconv.FormatFloat(*f.threshold, 'f', 1, 64)
		reason = ""
	}
	return Status{Name: f.Name(), Enabled: true, Reason: reason, Details: details}
}

type limitFilter[T Scored] struct {
	limit int
}

// NewLimit keeps at most the configured number of results.
func NewLimit[T Scored]() Filter[T] {
	return &limitFilter[T]{}
}

func (f *limitFilter[T]) Name() string { return "limit" }

func (f *limitFilter[T]) Disable(string) {}

func (f *limitFilter[T]) IsEnabled() bool { return true }

func (f *limitFilter[T]) Validate(cfg *Config) error {
	f.limit = 0
	if cfg == nil {
		return nil
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", cfg.Limit)
	}
	f.limit = cfg.Limit
	return nil
}

func (f *limitFilter[T]) Apply(_ context.Context, _ Deps, items []T) ([]T, Step, error) {
	initial := len(items)
	if f.limit == 0 || initial <= f.limit {
		return items, Step{Initial: initial, Left: initial}, nil
	}
	return items[:f.limit], Step{Initial: initial, Dropped: initial - f.limit, Left: f.limit}, nil
}

func (f *limitFilter[T]) Status() Status {
	details := map[string]string{"limit": strconv.Itoa(f.limit)}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
