package quiz

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrAlreadyAnswered is returned when a question index is scored twice.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")

	// ErrIndexOutOfRange is returned for an index outside the quiz.
	ErrIndexOutOfRange = errors.New("quiz: question index out of range")
)

// Scorecard tracks which questions were answered correctly.
type Scorecard struct {
	total     int
	correct   []int
	incorrect []int
	answered  map[int]bool
}

// NewScorecard creates a scorecard for a quiz of total questions.
func NewScorecard(total int) *Scorecard {
	return &Scorecard{total: total, answered: make(map[int]bool, total)}
}

// Record scores the question at index.
func (s *Scorecard) Record(index int, correct bool) error {
	if index < 0 || index >= s.total {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, s.total)
	}
	if s.answered[index] {
		return fmt.Errorf("%w: %d", ErrAlreadyAnswered, index)
	}
	s.answered[index] = true
	if correct {
		s.correct = append(s.correct, index)
	} else {
		s.incorrect = append(s.incorrect, index)
	}
	return nil
}

// CorrectIndices returns the indices answered correctly, in answer order.
func (s *Scorecard) CorrectIndices() []int { return slices.Clone(s.correct) }

// IncorrectIndices returns the indices answered incorrectly, in answer order.
func (s *Scorecard) IncorrectIndices() []int { return slices.Clone(s.incorrect) }

// Answered returns how many questions have been scored.
func (s *Scorecard) Answered() int { return len(s.answered) }

// Total returns the quiz length.
func (s *Scorecard) Total() int { return s.total }

// Correct returns the number of correct answers.
func (s *Scorecard) Correct() int { return len(s.correct) }

// Done reports whether every question has been scored.
func (s *Scorecard) Done() bool { return len(s.answered) >= s.total }

// Accuracy returns correct answers over total questions, in [0, 1].
func (s *Scorecard) Accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(len(s.correct)) / float64(s.total)
}
