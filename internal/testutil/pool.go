package testutil

import (
	"fmt"

	"quizgen/internal/question"
)

// NumberedPool builds a pool with one source per size, keyed f1, f2, ...
// Question j of source fN has text "fN-q<j>", three options "fN-q<j>-o<k>"
// and correct index j%3.
func NumberedPool(sizes ...int) question.Pool {
	pool := question.Pool{}
	for i, size := range sizes {
		key := fmt.Sprintf("f%d", i+1)
		source := question.Source{Key: key, Label: key, Questions: make([]question.Question, size)}
		for j := 0; j < size; j++ {
			text := fmt.Sprintf("%s-q%d", key, j)
			source.Questions[j] = question.Question{
				Text: text,
				Options: []string{
					text + "-o0",
					text + "-o1",
					text + "-o2",
				},
				Correct: j % 3,
			}
		}
		pool.Sources = append(pool.Sources, source)
	}
	return pool
}
