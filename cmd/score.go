package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/band"
	"github.com/spigell/workfit/internal/logger"
	"github.com/spigell/workfit/internal/scoring"
	"github.com/spigell/workfit/internal/workstyle"
)

var scoreCmd = &cobra.Command{
	Use:     "score",
	Short:   "Score one archetype against a set of work-style tags",
	Example: "  workfit score --archetype 3 --tags 1,3,5",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup()

		a, err := parseArchetype(cmd.Flag("archetype").Value.String())
		if err != nil {
			e.log.Fatal("parsing archetype", zap.Error(err))
		}

		tags, err := workstyle.ParseTagList(cmd.Flag("tags").Value.String())
		if err != nil {
			e.log.Fatal("parsing tags", zap.Error(err))
		}

		score := scoring.Score(a, tags, e.table)
		e.log.Debug("scored",
			zap.String(logger.FieldOperation, logger.OpScore),
			zap.Stringer("archetype", a),
			zap.Stringer("tags", tags),
			zap.Float64("score", score),
		)

		out := struct {
			Archetype archetype.ID `json:"archetype"`
			Tags      []string     `json:"tags"`
			Score     float64      `json:"score"`
			Band      band.Band    `json:"band"`
		}{
			Archetype: a,
			Tags:      e.catalog.TagNames(tags),
			Score:     score,
			Band:      band.For(score),
		}

		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			e.log.Fatal("printing result", zap.Error(err))
		}
	},
}

var bandCmd = &cobra.Command{
	Use:   "band SCORE",
	Short: "Show the compatibility band for a match score",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup()

		score, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			e.log.Fatal("parsing score", zap.Error(err))
		}

		if err := printJSON(cmd.OutOrStdout(), band.For(score)); err != nil {
			e.log.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(bandCmd)

	scoreCmd.Flags().IntP("archetype", "a", 0, "archetype id (1-5)")
	scoreCmd.Flags().StringP("tags", "t", "", "comma separated work-style tag ids")
	scoreCmd.MarkFlagRequired("archetype")
}

func parseArchetype(raw string) (archetype.ID, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return archetype.None, fmt.Errorf("archetype %q: %w", raw, err)
	}
	id := archetype.ID(n)
	if !id.Valid() {
		return archetype.None, fmt.Errorf("archetype %d is not between 1 and 5", n)
	}
	return id, nil
}
