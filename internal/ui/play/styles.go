package play

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

// styles holds the lipgloss styles for one color setting.
type styles struct {
	title    lipgloss.Style
	muted    lipgloss.Style
	question lipgloss.Style
	selected lipgloss.Style
	notice   lipgloss.Style
	passed   lipgloss.Style
	failed   lipgloss.Style
	bands    map[quiz.Band]lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:    plain,
			muted:    plain,
			question: plain,
			selected: plain,
			notice:   plain,
			passed:   plain,
			failed:   plain,
			bands: map[quiz.Band]lipgloss.Style{
				quiz.BandNormal:   plain,
				quiz.BandWarning:  plain,
				quiz.BandCritical: plain,
			},
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		question: lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		passed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		bands: map[quiz.Band]lipgloss.Style{
			quiz.BandNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			quiz.BandWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			quiz.BandCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

// tableStyles returns review table styles.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}
