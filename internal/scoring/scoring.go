// Package scoring computes how well an archetype aligns with a posting's work-style tags.
package scoring

import (
	"math"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/weights"
	"github.com/spigell/workfit/internal/workstyle"
)

// Score is the mean configured weight of a over tags, rounded to one decimal.
//
// The mean divides by the number of requested tags, not by the number of tags
// that have a weight entry: unconfigured tags pull the score toward zero.
// An empty tag set, or one with no entries for a, scores 0.
func Score(a archetype.ID, tags workstyle.TagSet, table *weights.Table) float64 {
	if tags.Empty() {
		return 0
	}

	sum, found := 0, 0
	for _, tag := range tags.IDs() {
		if w, ok := table.Lookup(a, tag); ok {
			sum += w
			found++
		}
	}

	if found == 0 {
		return 0
	}

	return Round(float64(sum) / float64(tags.Len()))
}

// Round rounds to one decimal place, halves away from zero.
func Round(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		// avoid -0 in output
		return 0
	}
	return r
}
