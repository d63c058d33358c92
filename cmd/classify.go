package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/archetype"
	"github.com/spigell/workfit/internal/logger"
	"github.com/spigell/workfit/internal/quiz"
	"github.com/spigell/workfit/internal/reference"
)

var classifyCmd = &cobra.Command{
	Use:   "classify ANSWER...",
	Short: "Classify six quiz answers into an archetype",
	Long: `Classify six quiz answers into an archetype.

Answers are either six bare choices in question order (A B B A B A)
or question/choice pairs in any order (Q4=A Q1=B ...).`,
	Example: "  workfit classify A A B A B B\n  workfit classify Q1=A Q2=A Q3=B Q4=A Q5=B Q6=B",
	Run: func(cmd *cobra.Command, args []string) {
		e := setup()

		answers, err := parseAnswers(args)
		if err != nil {
			e.log.Fatal("parsing answers", zap.Error(err))
		}

		classify(cmd, e, answers)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

type classification struct {
	Archetype   archetype.ID `json:"archetype"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Rule        string       `json:"rule"`
}

func classify(cmd *cobra.Command, e *env, answers []quiz.Answer) {
	if err := quiz.Check(answers); err != nil {
		e.log.Fatal("invalid quiz answers", zap.Error(err))
	}

	id, rule := quiz.Explain(answers)
	e.log.Debug("quiz classified",
		zap.String(logger.FieldOperation, logger.OpClassify),
		zap.Stringer("archetype", id),
		zap.String("rule", rule),
	)

	if err := printJSON(cmd.OutOrStdout(), describeArchetype(e.catalog, id, rule)); err != nil {
		e.log.Fatal("printing result", zap.Error(err))
	}
}

func describeArchetype(c *reference.Catalog, id archetype.ID, rule string) classification {
	out := classification{Archetype: id, Rule: rule}
	if info, ok := c.Archetype(id); ok {
		out.Name = info.Name
		out.Description = info.Description
	}
	return out
}

// parseAnswers accepts either six bare choices or QUESTION=CHOICE pairs.
func parseAnswers(args []string) ([]quiz.Answer, error) {
	answers := make([]quiz.Answer, 0, len(args))
	for i, arg := range args {
		questionID := fmt.Sprintf("Q%d", i+1)
		raw := arg

		if id, choice, ok := strings.Cut(arg, "="); ok {
			questionID = strings.TrimSpace(id)
			raw = choice
		}

		c, err := quiz.ParseChoice(raw)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		answers = append(answers, quiz.NewAnswer(questionID, c))
	}
	return answers, nil
}
