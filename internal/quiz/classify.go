package quiz

import "github.com/spigell/workfit/internal/archetype"

// Tally is the summary of a quiz the classification rules look at.
type Tally struct {
	A, B    int
	choices map[int]Choice
}

// At returns the choice given for ordinal n, or "" when unanswered.
func (t Tally) At(n int) Choice {
	return t.choices[n]
}

// Count summarizes answers by choice and by ordinal.
func Count(answers []Answer) Tally {
	t := Tally{choices: make(map[int]Choice, len(answers))}
	for _, a := range answers {
		switch a.Choice {
		case ChoiceA:
			t.A++
		case ChoiceB:
			t.B++
		}
		t.choices[a.ordinal()] = a.Choice
	}
	return t
}

// Rule maps a tally predicate to an archetype.
type Rule struct {
	Name   string
	Match  func(Tally) bool
	Result archetype.ID
}

// Rules is the decision table, evaluated top to bottom; the first match wins.
// The ordinal rules only ever see a 3/3 split because the majority rules precede them.
var Rules = []Rule{
	{
		Name:   "majority_a",
		Match:  func(t Tally) bool { return t.A >= 4 },
		Result: archetype.Decisive,
	},
	{
		Name:   "majority_b",
		Match:  func(t Tally) bool { return t.B >= 4 },
		Result: archetype.Steady,
	},
	{
		Name:   "q4a_q6a",
		Match:  func(t Tally) bool { return t.At(4) == ChoiceA && t.At(6) == ChoiceA },
		Result: archetype.Coordinator,
	},
	{
		Name:   "q2a_q4b",
		Match:  func(t Tally) bool { return t.At(2) == ChoiceA && t.At(4) == ChoiceB },
		Result: archetype.Solver,
	},
	{
		Name:   "fallback",
		Match:  func(Tally) bool { return true },
		Result: archetype.Generalist,
	},
}

// Classify returns the archetype for a validated answer set.
func Classify(answers []Answer) archetype.ID {
	id, _ := Explain(answers)
	return id
}

// Explain is Classify that also names the rule that fired.
func Explain(answers []Answer) (archetype.ID, string) {
	t := Count(answers)
	for _, r := range Rules {
		if r.Match(t) {
			return r.Result, r.Name
		}
	}
	return archetype.Generalist, "fallback"
}
