package play

import (
	"fmt"
	"strings"

	"quizgen/internal/quiz"
)

// renderStart renders the mode selection screen.
func renderStart(view *quiz.StartView, title string, st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render(title))
	b.WriteString("\n\n")
	for _, choice := range view.Choices {
		fmt.Fprintf(&b, "  [%s] %s: %d questions\n", choice.Key, choice.Label, choice.Available)
	}
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%d questions in the pool", view.PoolSize)))
	if view.Notice != "" {
		b.WriteString("\n")
		b.WriteString(st.notice.Render(view.Notice))
	}
	return b.String()
}

// renderQuestion renders the current question, options and progress.
func renderQuestion(view *quiz.QuestionView, st styles) string {
	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d", view.Number, view.Total)
	clock := st.bands[view.Band].Render("Time left " + view.Remaining)
	b.WriteString(st.title.Render(header))
	b.WriteString("   ")
	b.WriteString(clock)
	b.WriteString("\n\n")
	if view.Total == 0 {
		b.WriteString("No questions are available for this mode. Press f to finish.\n")
		return b.String()
	}
	b.WriteString(st.question.Render(view.Text))
	b.WriteString("\n\n")
	for _, option := range view.Options {
		line := fmt.Sprintf("%s. %s", option.Letter, option.Text)
		if option.Selected {
			b.WriteString("> ")
			b.WriteString(st.selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.muted.Render(progressStrip(view.Progress)))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%d of %d answered", view.Answered, view.Total)))
	return b.String()
}

// progressStrip renders one cell per question: [n] current, # answered, . open.
func progressStrip(cells []quiz.ProgressCell) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 && i%20 == 0 {
			b.WriteString("\n")
		}
		switch {
		case cell.Current:
			b.WriteString("@")
		case cell.Answered:
			b.WriteString("#")
		default:
			b.WriteString(".")
		}
	}
	return b.String()
}

// renderSummary renders the result headline.
func renderSummary(view *quiz.ResultsView, st styles) string {
	var b strings.Builder
	verdict := st.failed
	if view.Result.Passed {
		verdict = st.passed
	}
	b.WriteString(verdict.Render(view.Verdict))
	b.WriteString("\n")
	r := view.Result
	fmt.Fprintf(&b, "%d of %d correct (pass mark %d)\n", r.Correct, r.Total, r.Threshold)
	summary := fmt.Sprintf("%d wrong, %d not answered, time %s", r.Wrong, r.Skipped, view.Elapsed)
	if view.TimedOut {
		summary += " (time ran out)"
	}
	b.WriteString(st.muted.Render(summary))
	if view.Notice != "" {
		b.WriteString("\n")
		b.WriteString(st.notice.Render(view.Notice))
	}
	return b.String()
}
