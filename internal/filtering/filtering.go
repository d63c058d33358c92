// Package filtering applies the caller-side steps to scored match results:
// ordering, a minimum score threshold and a result limit.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Scored is implemented by every match result type.
type Scored interface {
	MatchScore() float64
}

// Filter represents a single step applied to match results.
type Filter[T Scored] interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, items []T) ([]T, Step, error)
}

// Deps aggregates dependencies shared across all steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the settings consumed by the steps.
type Config struct {
	// MinimumScore drops results scoring below it. Nil disables the threshold.
	MinimumScore *float64
	// Limit truncates the results. Zero means unlimited.
	Limit int
}

// Status represents runtime information about a step.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by steps that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName[T Scored](steps []Filter[T], name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled step, then applies them in order.
func Run[T Scored](ctx context.Context, cfg *Config, deps Deps, steps []Filter[T], items []T) ([]T, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, info, err := step.Apply(ctx, deps, items)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		items = next
	}

	return items, nil
}

// Describe returns status entries for the provided steps.
func Describe[T Scored](steps []Filter[T]) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
