package quiz

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrAnswerCount       = errors.New("quiz requires exactly six answers")
	ErrMissingQuestionID = errors.New("answer has no question id")
	ErrInvalidChoice     = errors.New("answer choice must be A or B")
	ErrOrdinalOutOfRange = errors.New("question ordinal must be between 1 and 6")
	ErrDuplicateOrdinal  = errors.New("question answered more than once")
)

var validate = validator.New()

// Validate reports whether answers form a complete quiz: six answers, each with a
// question id and an A/B choice, covering ordinals 1..6 exactly once.
// Classify assumes its input passed Validate.
func Validate(answers []Answer) bool {
	return Check(answers) == nil
}

// Check is Validate with the first failure returned as an error.
func Check(answers []Answer) error {
	if len(answers) != QuestionCount {
		return fmt.Errorf("%w: got %d", ErrAnswerCount, len(answers))
	}

	seen := make(map[int]bool, QuestionCount)
	for i, a := range answers {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("answer %d: %w", i+1, fieldError(err))
		}

		n := a.ordinal()
		if n < 1 || n > QuestionCount {
			return fmt.Errorf("answer %d (%q): %w", i+1, a.QuestionID, ErrOrdinalOutOfRange)
		}
		if seen[n] {
			return fmt.Errorf("answer %d (%q): %w", i+1, a.QuestionID, ErrDuplicateOrdinal)
		}
		seen[n] = true
	}

	// six answers, six distinct ordinals in 1..6: coverage is complete
	return nil
}

func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].StructField() {
	case "QuestionID":
		return ErrMissingQuestionID
	case "Choice":
		return fmt.Errorf("%w: got %q", ErrInvalidChoice, verrs[0].Value())
	default:
		return err
	}
}
