package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the six-question work-style quiz interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup()

		answers, err := askQuiz(quiz.Questions(), selectPrompt)
		if err != nil {
			e.log.Fatal("exiting", zap.Error(err))
		}

		classify(cmd, e, answers)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

// selector asks one question and returns the index of the picked option.
type selector func(label string, items []string) (int, error)

func selectPrompt(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	idx, _, err := prompt.Run()
	return idx, err
}

func askQuiz(questions []quiz.Question, ask selector) ([]quiz.Answer, error) {
	answers := make([]quiz.Answer, 0, len(questions))
	for _, q := range questions {
		label := fmt.Sprintf("%d/%d %s", q.Ordinal, len(questions), q.Text)
		idx, err := ask(label, []string{q.OptionA, q.OptionB})
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID(), err)
		}

		choice := quiz.ChoiceA
		if idx == 1 {
			choice = quiz.ChoiceB
		}
		answers = append(answers, quiz.Answer{QuestionID: q.ID(), Ordinal: q.Ordinal, Choice: choice})
	}
	return answers, nil
}
