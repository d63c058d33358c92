package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/band"
	"github.com/spigell/workfit/internal/dataset"
	"github.com/spigell/workfit/internal/filtering"
	"github.com/spigell/workfit/internal/matching"
	"github.com/spigell/workfit/internal/workstyle"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank seekers for a posting or postings for an archetype",
}

var rankSeekersCmd = &cobra.Command{
	Use:     "seekers",
	Short:   "Rank seekers against a posting's work-style tags",
	Example: "  workfit rank seekers --tags 1,3 --seekers seekers.yaml --limit 10",
	Run: func(cmd *cobra.Command, _ []string) {
		rankSeekers(cmd)
	},
}

var rankPostingsCmd = &cobra.Command{
	Use:     "postings",
	Short:   "Rank postings for an archetype",
	Example: "  workfit rank postings --archetype 4 --postings postings.yaml --minimum-score 0.5",
	Run: func(cmd *cobra.Command, _ []string) {
		rankPostings(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.AddCommand(rankSeekersCmd, rankPostingsCmd)

	rankCmd.PersistentFlags().Float64("minimum-score", 0, "drop results scoring below this (default from config, unset means keep all)")
	rankCmd.PersistentFlags().IntP("limit", "l", 0, "keep at most this many results (default from config, 0 means all)")
	rankCmd.PersistentFlags().IntP("workers", "w", 0, "score on this many goroutines (default from config)")

	rankSeekersCmd.Flags().StringP("tags", "t", "", "comma separated work-style tag ids of the posting")
	rankSeekersCmd.Flags().StringP("seekers", "s", "", "file with seeker summaries")
	rankSeekersCmd.MarkFlagRequired("seekers")

	rankPostingsCmd.Flags().IntP("archetype", "a", 0, "archetype id (1-5)")
	rankPostingsCmd.Flags().StringP("postings", "p", "", "file with posting summaries")
	rankPostingsCmd.MarkFlagRequired("archetype")
	rankPostingsCmd.MarkFlagRequired("postings")
}

type rankedSeeker struct {
	matching.SeekerMatch
	Band band.Band `json:"band"`
}

type rankedPosting struct {
	matching.PostingMatch
	Band band.Band `json:"band"`
}

func rankSeekers(cmd *cobra.Command) {
	ctx := context.Background()
	e := setup()

	tags, err := workstyle.ParseTagList(cmd.Flag("tags").Value.String())
	if err != nil {
		e.log.Fatal("parsing tags", zap.Error(err))
	}

	path := cmd.Flag("seekers").Value.String()
	seekers, err := dataset.LoadSeekers(path)
	if err != nil {
		e.log.Fatal("loading seekers", zap.Error(err))
	}
	e.log.Info("loaded seekers", zap.Int("count", len(seekers)), zap.String("path", path))

	matcher := newMatcher(cmd, e)
	results, err := matcher.RankSeekers(ctx, tags, seekers)
	if err != nil {
		e.log.Fatal("ranking seekers", zap.Error(err))
	}

	steps := []filtering.Filter[matching.SeekerMatch]{
		filtering.NewSortByScore[matching.SeekerMatch](),
		filtering.NewMinimumScore[matching.SeekerMatch](),
		filtering.NewLimit[matching.SeekerMatch](),
	}
	results = runFilters(ctx, cmd, e, steps, results)

	out := make([]rankedSeeker, 0, len(results))
	for _, r := range results {
		out = append(out, rankedSeeker{SeekerMatch: r, Band: band.For(r.Score)})
	}

	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		e.log.Fatal("printing result", zap.Error(err))
	}
}

func rankPostings(cmd *cobra.Command) {
	ctx := context.Background()
	e := setup()

	a, err := parseArchetype(cmd.Flag("archetype").Value.String())
	if err != nil {
		e.log.Fatal("parsing archetype", zap.Error(err))
	}

	path := cmd.Flag("postings").Value.String()
	postings, err := dataset.LoadPostings(path, e.catalog)
	if err != nil {
		e.log.Fatal("loading postings", zap.Error(err))
	}
	e.log.Info("loaded postings", zap.Int("count", len(postings)), zap.String("path", path))

	matcher := newMatcher(cmd, e)
	results, err := matcher.RankPostings(ctx, a, postings)
	if err != nil {
		e.log.Fatal("ranking postings", zap.Error(err))
	}

	steps := []filtering.Filter[matching.PostingMatch]{
		filtering.NewSortByScore[matching.PostingMatch](),
		filtering.NewMinimumScore[matching.PostingMatch](),
		filtering.NewLimit[matching.PostingMatch](),
	}
	filtering.DisableByName(steps, "sort_by_score", "postings come back sorted")
	results = runFilters(ctx, cmd, e, steps, results)

	out := make([]rankedPosting, 0, len(results))
	for _, r := range results {
		out = append(out, rankedPosting{PostingMatch: r, Band: band.For(r.Score)})
	}

	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		e.log.Fatal("printing result", zap.Error(err))
	}
}

func newMatcher(cmd *cobra.Command, e *env) matching.Matcher {
	workers := e.config.Match.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = strconv.Atoi(cmd.Flag("workers").Value.String())
	}

	engine, err := matching.NewEngine(e.table, workers)
	if err != nil {
		e.log.Fatal("creating matcher", zap.Error(err))
	}

	return matching.WithLogging(engine, e.log.With(zap.Int("workers", engine.Workers())))
}

// filterConfig merges flags over the config file; flags win when set.
func filterConfig(cmd *cobra.Command, cfg MatchConfig) (*filtering.Config, error) {
	out := &filtering.Config{MinimumScore: cfg.MinimumScore, Limit: cfg.Limit}

	if cmd.Flags().Changed("minimum-score") {
		v, err := strconv.ParseFloat(cmd.Flag("minimum-score").Value.String(), 64)
		if err != nil {
			return nil, err
		}
		out.MinimumScore = &v
	}

	if cmd.Flags().Changed("limit") {
		v, err := strconv.Atoi(cmd.Flag("limit").Value.String())
		if err != nil {
			return nil, err
		}
		out.Limit = v
	}

	return out, nil
}

func runFilters[T filtering.Scored](ctx context.Context, cmd *cobra.Command, e *env, steps []filtering.Filter[T], items []T) []T {
	cfg, err := filterConfig(cmd, e.config.Match)
	if err != nil {
		e.log.Fatal("reading filter flags", zap.Error(err))
	}

	filtered, err := filtering.Run(ctx, cfg, filtering.Deps{Logger: e.log}, steps, items)
	if err != nil {
		e.log.Fatal("filtering failed", zap.Error(err))
	}

	for _, status := range filtering.Describe(steps) {
		e.log.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	e.log.Info("ranking finished", zap.Int("initial", len(items)), zap.Int("left", len(filtered)))
	return filtered
}
