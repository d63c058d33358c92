// Package quiz classifies a seeker into an archetype from the six-question A/B preference quiz.
package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// QuestionCount is the fixed number of quiz questions.
const QuestionCount = 6

// Choice is the option picked for a single question.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// Answer is one answered question. Ordinal is 1..QuestionCount and is set by the
// producer; NewAnswer derives it from string ids like "Q4".
type Answer struct {
	QuestionID string `json:"question_id" mapstructure:"question_id" validate:"required"`
	Ordinal    int    `json:"ordinal,omitempty" mapstructure:"ordinal"`
	Choice     Choice `json:"choice" mapstructure:"choice" validate:"oneof=A B"`
}

// NewAnswer builds an answer from a string question id, parsing the ordinal once.
// An unparseable id leaves Ordinal at zero, which Validate rejects.
func NewAnswer(questionID string, choice Choice) Answer {
	ordinal, _ := ParseOrdinal(questionID)
	return Answer{QuestionID: questionID, Ordinal: ordinal, Choice: choice}
}

// ordinal falls back to parsing QuestionID for answers built without NewAnswer.
func (a Answer) ordinal() int {
	if a.Ordinal != 0 {
		return a.Ordinal
	}
	n, _ := ParseOrdinal(a.QuestionID)
	return n
}

// ParseOrdinal extracts the trailing number of a question id: "Q4", "q4" and "4" all give 4.
func ParseOrdinal(questionID string) (int, bool) {
	id := strings.TrimSpace(questionID)
	digits := strings.TrimLeftFunc(id, func(r rune) bool { return !unicode.IsDigit(r) })
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseChoice accepts "A"/"B" in any case.
func ParseChoice(raw string) (Choice, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(ChoiceA):
		return ChoiceA, nil
	case string(ChoiceB):
		return ChoiceB, nil
	default:
		return "", fmt.Errorf("invalid choice %q: must be A or B", raw)
	}
}
