package quiz

import (
	"fmt"
	"time"
)

// Screen names the view shown for a controller state.
type Screen string

const (
	ScreenStart    Screen = "start"
	ScreenQuestion Screen = "question"
	ScreenResults  Screen = "results"
)

// OptionLetters label options in display order.
var OptionLetters = []string{"A", "B", "C", "D", "E"}

// Letter returns the display letter for an option index.
func Letter(index int) string {
	if index >= 0 && index < len(OptionLetters) {
		return OptionLetters[index]
	}
	return fmt.Sprintf("%d", index+1)
}

// ViewModel is the display projection of a Snapshot.
type ViewModel struct {
	Screen   Screen
	Start    *StartView
	Question *QuestionView
	Results  *ResultsView
}

// StartView lists the available modes.
type StartView struct {
	Choices  []ModeChoice
	PoolSize int
	Notice   string
}

// ModeChoice describes one selectable mode.
type ModeChoice struct {
	Mode      Mode
	Key       string
	Label     string
	Requested int
	Available int
}

// QuestionView describes the current question of an in-progress session.
type QuestionView struct {
	Mode        Mode
	Number      int
	Total       int
	Text        string
	Options     []OptionView
	Progress    []ProgressCell
	Answered    int
	AllAnswered bool
	Remaining   string
	Band        Band
}

// OptionView is one lettered option.
type OptionView struct {
	Letter   string
	Text     string
	Selected bool
}

// ProgressCell is one entry of the progress strip.
type ProgressCell struct {
	Number   int
	Answered bool
	Current  bool
}

// ResultsView describes a finished session.
type ResultsView struct {
	Result   Result
	Verdict  string
	Elapsed  string
	Notice   string
	Review   []ReviewRow
	TimedOut bool
}

// Project maps a snapshot onto a view model. It has no side effects.
func Project(snap Snapshot) ViewModel {
	switch snap.State {
	case StateInProgress:
		if snap.Session != nil {
			return ViewModel{Screen: ScreenQuestion, Question: projectQuestion(snap.Session)}
		}
	case StateFinished:
		if snap.Session != nil && snap.Result != nil {
			return ViewModel{Screen: ScreenResults, Results: projectResults(snap.Session, *snap.Result)}
		}
	}
	return ViewModel{Screen: ScreenStart, Start: projectStart(snap)}
}

func projectStart(snap Snapshot) *StartView {
	settings := snap.Settings
	view := &StartView{
		PoolSize: snap.Pool.Total,
		Choices: []ModeChoice{
			{
				Mode:      ModeFixed,
				Key:       "1",
				Label:     "Fixed order",
				Requested: settings.FixedCount,
				Available: min(settings.FixedCount, snap.Pool.Primary),
			},
			{
				Mode:      ModeRandom,
				Key:       "2",
				Label:     "Random selection",
				Requested: settings.RandomCount,
				Available: min(settings.RandomCount, snap.Pool.Total),
			},
		},
	}
	if snap.Pool.Primary < settings.FixedCount {
		view.Notice = fmt.Sprintf("Primary source has %d questions; fixed mode wants %d.", snap.Pool.Primary, settings.FixedCount)
	}
	return view
}

func projectQuestion(session *Session) *QuestionView {
	view := &QuestionView{
		Mode:        session.Mode,
		Total:       len(session.Items),
		Answered:    session.AnsweredCount(),
		AllAnswered: session.AllAnswered(),
		Remaining:   FormatClock(session.SecondsRemaining),
		Band:        BandFor(session.SecondsRemaining),
	}
	view.Progress = make([]ProgressCell, len(session.Items))
	for i := range session.Items {
		view.Progress[i] = ProgressCell{
			Number:   i + 1,
			Answered: session.Answers[i] != NoAnswer,
			Current:  i == session.Current,
		}
	}
	item, ok := session.CurrentItem()
	if !ok {
		return view
	}
	view.Number = session.Current + 1
	view.Text = item.Text
	view.Options = make([]OptionView, len(item.Options))
	for i, option := range item.Options {
		view.Options[i] = OptionView{
			Letter:   Letter(i),
			Text:     option,
			Selected: session.Answers[session.Current] == i,
		}
	}
	return view
}

func projectResults(session *Session, result Result) *ResultsView {
	view := &ResultsView{
		Result:   result,
		Verdict:  result.Verdict(),
		Elapsed:  FormatElapsed(result.Elapsed),
		Review:   Review(session),
		TimedOut: result.Reason == FinishTimeout,
	}
	if result.Shortfall > 0 {
		view.Notice = fmt.Sprintf("Only %d of %d questions were available.", result.Total, result.Total+result.Shortfall)
	}
	return view
}

// FormatElapsed renders a duration as mm:ss, truncated to whole seconds.
func FormatElapsed(d time.Duration) string {
	return FormatClock(int(d / time.Second))
}
