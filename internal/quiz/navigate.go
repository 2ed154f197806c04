package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions is returned when answering in a session without items.
	ErrNoQuestions = errors.New("quiz: session has no questions")
	// ErrOptionOutOfRange is returned for an option index the question does not have.
	ErrOptionOutOfRange = errors.New("quiz: option index out of range")
)

// CurrentItem returns the item at the current index.
func (s *Session) CurrentItem() (Item, bool) {
	if len(s.Items) == 0 {
		return Item{}, false
	}
	return s.Items[s.Current], true
}

// SelectOption records index as the answer to the current question. Out of
// range indexes are rejected and leave the answers untouched.
func (s *Session) SelectOption(index int) error {
	item, ok := s.CurrentItem()
	if !ok {
		return ErrNoQuestions
	}
	if index < 0 || index >= len(item.Options) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOptionOutOfRange, index, len(item.Options))
	}
	s.Answers[s.Current] = index
	return nil
}

// Navigate moves the current index by delta, clamped to the item range.
func (s *Session) Navigate(delta int) {
	switch last := len(s.Items) - 1; {
	case delta > 0 && delta > last-s.Current:
		s.JumpTo(last)
	case delta < 0 && delta < -s.Current:
		s.JumpTo(0)
	default:
		s.JumpTo(s.Current + delta)
	}
}

// JumpTo moves to index, clamped to the item range.
func (s *Session) JumpTo(index int) {
	last := len(s.Items) - 1
	if last < 0 {
		s.Current = 0
		return
	}
	s.Current = min(max(index, 0), last)
}

// AnsweredCount returns how many questions have an answer.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, answer := range s.Answers {
		if answer != NoAnswer {
			count++
		}
	}
	return count
}

// AllAnswered reports whether every question has an answer.
func (s *Session) AllAnswered() bool {
	return s.AnsweredCount() == len(s.Answers)
}
