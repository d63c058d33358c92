package quiz

import "fmt"

// Question is one fixed quiz question with its two options.
type Question struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
}

// ID returns the question id in the "Q<n>" form used by answer producers.
func (q Question) ID() string {
	return fmt.Sprintf("Q%d", q.Ordinal)
}

var questions = [QuestionCount]Question{
	{
		Ordinal: 1,
		Text:    "A new task lands on your desk. What do you do first?",
		OptionA: "Start right away and adjust as I go",
		OptionB: "Plan the steps before touching anything",
	},
	{
		Ordinal: 2,
		Text:    "Something is broken and nobody owns it.",
		OptionA: "I dig in and fix it myself",
		OptionB: "I report it and wait for the owner",
	},
	{
		Ordinal: 3,
		Text:    "Which pace suits you better?",
		OptionA: "Fast, with frequent changes",
		OptionB: "Steady, with predictable work",
	},
	{
		Ordinal: 4,
		Text:    "Where do you do your best work?",
		OptionA: "Together with a team",
		OptionB: "On my own",
	},
	{
		Ordinal: 5,
		Text:    "How do you prefer to make decisions?",
		OptionA: "Quickly, trusting my instinct",
		OptionB: "Carefully, after checking the facts",
	},
	{
		Ordinal: 6,
		Text:    "On a group project you usually...",
		OptionA: "Coordinate people and keep everyone aligned",
		OptionB: "Take a well-defined piece and finish it",
	},
}

// Questions returns the quiz in ordinal order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions[:])
	return out
}
