package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/signmaster/internal/catalog"
)

// OptionCount is the number of options on a multiple-choice question.
const OptionCount = 4

// Question is a multiple-choice question about one sign.
type Question struct {
	Subject catalog.SignRecord
	Options [OptionCount]string
	Correct string
}

// CorrectIndex returns the zero-based position of the correct option, or -1.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Correct {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether the option at index is the correct one.
func (q Question) IsCorrect(index int) bool {
	return index >= 0 && index < OptionCount && q.Options[index] == q.Correct
}

// Validate checks that the options are non-empty and distinct and that
// exactly one of them is the correct answer.
func (q Question) Validate() error {
	seen := make(map[string]bool, OptionCount)
	matches := 0
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		if o == q.Correct {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("answer %q matches %d options, want 1", q.Correct, matches)
	}
	return nil
}

// TrueFalseQuestion pairs a sign with a name that may or may not be its own.
type TrueFalseQuestion struct {
	Subject       catalog.SignRecord
	DisplayedName string
	Expected      bool
}

// IsCorrect reports whether answer matches the expected verdict.
func (q TrueFalseQuestion) IsCorrect(answer bool) bool {
	return answer == q.Expected
}
