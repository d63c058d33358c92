// Package matching scores many seekers against one posting, or many postings against one archetype.
package matching

import (
	"cmp"
	"slices"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/scoring"
	"github.com/spigell/workfit/internal/weights"
	"github.com/spigell/workfit/internal/workstyle"
)

// Seeker is the summary of a job seeker. A nil or archetype.None Archetype means
// the seeker has not completed the quiz.
type Seeker struct {
	ID        int64         `json:"id" mapstructure:"id"`
	Archetype *archetype.ID `json:"archetype" mapstructure:"archetype"`
}

// Posting is the summary of a job posting.
type Posting struct {
	ID       int64            `json:"id"`
	Tags     workstyle.TagSet `json:"-"`
	TagNames []string         `json:"tag_names"`
}

// SeekerMatch is one scored seeker. Archetype is nil when nothing was scored.
type SeekerMatch struct {
	SeekerID  int64         `json:"seeker_id"`
	Archetype *archetype.ID `json:"archetype"`
	Score     float64       `json:"score"`
}

func (m SeekerMatch) MatchScore() float64 { return m.Score }

// PostingMatch is one scored posting.
type PostingMatch struct {
	PostingID       int64    `json:"posting_id"`
	Score           float64  `json:"score"`
	MatchedTagNames []string `json:"matched_tag_names"`
}

func (m PostingMatch) MatchScore() float64 { return m.Score }

// RankSeekersForPosting scores every seeker against the posting's tags, in input order.
//
// With no posting tags there is nothing to rank on: every seeker gets score 0
// and a nil archetype, including seekers that do have one. A seeker whose
// archetype is nil or outside 1..5 is unassigned: score 0, nil archetype.
// Sorting and thresholds are left to the caller.
func RankSeekersForPosting(tags workstyle.TagSet, seekers []Seeker, table *weights.Table) []SeekerMatch {
	out := make([]SeekerMatch, 0, len(seekers))
	for _, s := range seekers {
		out = append(out, matchSeeker(tags, s, table))
	}
	return out
}

// RankPostingsForArchetype scores every posting for a and returns them sorted by
// score, highest first. Equal scores keep their input order.
func RankPostingsForArchetype(a archetype.ID, postings []Posting, table *weights.Table) []PostingMatch {
	out := make([]PostingMatch, 0, len(postings))
	for _, p := range postings {
		out = append(out, matchPosting(a, p, table))
	}
	sortByScore(out)
	return out
}

func matchSeeker(tags workstyle.TagSet, s Seeker, table *weights.Table) SeekerMatch {
	if tags.Empty() || s.Archetype == nil || !s.Archetype.Valid() {
		return SeekerMatch{SeekerID: s.ID}
	}

	return SeekerMatch{
		SeekerID:  s.ID,
		Archetype: archetype.Ptr(*s.Archetype),
		Score:     scoring.Score(*s.Archetype, tags, table),
	}
}

func matchPosting(a archetype.ID, p Posting, table *weights.Table) PostingMatch {
	if p.Tags.Empty() {
		return PostingMatch{PostingID: p.ID, MatchedTagNames: []string{}}
	}

	names := slices.Clone(p.TagNames)
	if names == nil {
		names = []string{}
	}

	return PostingMatch{
		PostingID:       p.ID,
		Score:           scoring.Score(a, p.Tags, table),
		MatchedTagNames: names,
	}
}

func sortByScore(ms []PostingMatch) {
	slices.SortStableFunc(ms, func(x, y PostingMatch) int {
		return cmp.Compare(y.Score, x.Score)
	})
}
