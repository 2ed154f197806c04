package play

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"quizgen/internal/quiz"
)

// reviewColumns returns review table columns sized for width.
func reviewColumns(width int) []table.Column {
	if width <= 0 {
		width = 100
	}
	fixed := 4 + 6 + 8
	text := max((width-fixed)/3, 12)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: text},
		{Title: "Your answer", Width: text},
		{Title: "Result", Width: 6},
		{Title: "Correct answer", Width: text},
	}
}

// reviewRows converts review rows into table rows.
func reviewRows(rows []quiz.ReviewRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		correct := ""
		if !row.Correct {
			correct = row.CorrectOption
		}
		out = append(out, table.Row{
			strconv.Itoa(row.Number),
			compact(row.Question),
			compact(row.Chosen),
			reviewMark(row),
			compact(correct),
		})
	}
	return out
}

func reviewMark(row quiz.ReviewRow) string {
	switch {
	case row.Skipped:
		return "-"
	case row.Correct:
		return "ok"
	default:
		return "x"
	}
}

func compact(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
