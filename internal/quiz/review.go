package quiz

// SkippedMarker stands in for the chosen option of an unanswered question.
const SkippedMarker = "(not answered)"

// ReviewRow describes one question of a finished session.
type ReviewRow struct {
	Number        int
	Question      string
	Chosen        string
	Skipped       bool
	Correct       bool
	CorrectOption string
	Source        string
}

// Review lists every item in session order with the chosen answer and the
// correct option.
func Review(session *Session) []ReviewRow {
	if session == nil {
		return nil
	}
	rows := make([]ReviewRow, 0, len(session.Items))
	for i, item := range session.Items {
		row := ReviewRow{
			Number:   i + 1,
			Question: item.Text,
			Source:   item.Source,
		}
		if item.Correct >= 0 && item.Correct < len(item.Options) {
			row.CorrectOption = item.Options[item.Correct]
		}
		answer := session.Answers[i]
		if answer == NoAnswer {
			row.Skipped = true
			row.Chosen = SkippedMarker
		} else {
			row.Chosen = item.Options[answer]
			row.Correct = answer == item.Correct
		}
		rows = append(rows, row)
	}
	return rows
}
