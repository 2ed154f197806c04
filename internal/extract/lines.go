package extract

import (
	"regexp"
	"strings"
	"unicode"

	"quizgen/internal/question"
)

// Line is one line of document text. Marked flags the correct option: a bold
// option letter in docx and pdf, a leading '*' in text files. Para is set on
// the first line of a docx paragraph and Wrap on a docx line that follows a
// soft break inside the same paragraph.
type Line struct {
	Text   string
	Marked bool
	Para   bool
	Wrap   bool
}

var (
	headingPattern = regexp.MustCompile(`(?i)^(spørsmål|question)\s+\d+$`)
	optionPattern  = regexp.MustCompile(`^([A-C])\.\s*((?s:.*))$`)
)

// parseLines groups lines into question blocks and parses each block. A block
// ends at a blank line, a heading, a new paragraph that is not an option, or
// the first non-option line after the options. A soft-wrapped line after an
// option continues that option's text instead. Blocks with no options are
// skipped; blocks with options that cannot form a question count as dropped.
func parseLines(lines []Line) ([]question.Question, int) {
	var (
		blocks    [][]Line
		current   []Line
		sawOption bool
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
		}
		current = nil
		sawOption = false
	}
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		switch {
		case text == "":
			flush()
		case headingPattern.MatchString(text):
			flush()
		case optionPattern.MatchString(text):
			current = append(current, line)
			sawOption = true
		case sawOption && line.Wrap:
			last := &current[len(current)-1]
			last.Text = strings.TrimRightFunc(last.Text, unicode.IsSpace) + "\n" + text
		default:
			if sawOption || line.Para {
				flush()
			}
			current = append(current, line)
		}
	}
	flush()

	var (
		questions []question.Question
		dropped   int
	)
	for _, block := range blocks {
		q, options, ok := parseBlock(block)
		switch {
		case options == 0:
		case !ok:
			dropped++
		default:
			questions = append(questions, q)
		}
	}
	return questions, dropped
}

// parseBlock returns the question, the number of option lines seen and
// whether the block formed a usable question.
func parseBlock(block []Line) (question.Question, int, bool) {
	var (
		text    []string
		options []string
		correct = -1
	)
	for _, line := range block {
		trimmed := strings.TrimSpace(line.Text)
		match := optionPattern.FindStringSubmatch(trimmed)
		if match == nil {
			text = append(text, trimmed)
			continue
		}
		if line.Marked && correct < 0 {
			correct = len(options)
		}
		options = append(options, strings.TrimSpace(match[2]))
	}
	if len(options) < question.MinOptions || correct < 0 {
		return question.Question{}, len(options), false
	}
	return question.Question{
		Text:    strings.Join(text, " "),
		Options: options,
		Correct: correct,
	}, len(options), true
}
