package matching

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/logger"
	"github.com/spigell/workfit/internal/workstyle"
)

type loggingMatcher struct {
	next Matcher
	log  *zap.Logger
}

// WithLogging wraps m so that every batch call is logged at debug level,
// failures at warn.
func WithLogging(m Matcher, log *zap.Logger) Matcher {
	return &loggingMatcher{next: m, log: logger.WithFields(log)}
}

func (l *loggingMatcher) RankSeekers(ctx context.Context, tags workstyle.TagSet, seekers []Seeker) ([]SeekerMatch, error) {
	start := time.Now()
	out, err := l.next.RankSeekers(ctx, tags, seekers)

	fields := append(logger.MatchFields(logger.OpRankSeekers, len(seekers), len(out), time.Since(start)),
		zap.Stringer("tags", tags),
	)
	l.done(err, fields)

	return out, err
}

func (l *loggingMatcher) RankPostings(ctx context.Context, a archetype.ID, postings []Posting) ([]PostingMatch, error) {
	start := time.Now()
	out, err := l.next.RankPostings(ctx, a, postings)

	fields := append(logger.MatchFields(logger.OpRankPostings, len(postings), len(out), time.Since(start)),
		zap.Stringer("archetype", a),
	)
	l.done(err, fields)

	return out, err
}

func (l *loggingMatcher) done(err error, fields []zap.Field) {
	if err != nil {
		l.log.Warn("batch match failed", append(fields, zap.Error(err))...)
		return
	}
	l.log.Debug("batch match", fields...)
}
