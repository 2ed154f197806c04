package play

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

// DefaultRefreshInterval is how often the screen re-reads the controller.
const DefaultRefreshInterval = 200 * time.Millisecond

// Options configures the terminal player.
type Options struct {
	Title           string
	NoColor         bool
	RefreshInterval time.Duration
}

// Model is the bubbletea model for an interactive quiz.
type Model struct {
	ctrl            *quiz.Controller
	view            quiz.ViewModel
	keys            keyMap
	help            help.Model
	review          table.Model
	styles          styles
	title           string
	noColor         bool
	refreshInterval time.Duration
	confirmFinish   bool
	jumping         bool
	jumpInput       string
	status          string
	width           int
	height          int
}

// NewModel returns a model driving ctrl.
func NewModel(ctrl *quiz.Controller, opts Options) Model {
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	title := opts.Title
	if title == "" {
		title = "Quiz"
	}
	review := table.New(
		table.WithColumns(reviewColumns(0)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	review.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		ctrl:            ctrl,
		keys:            defaultKeyMap(),
		help:            help.New(),
		review:          review,
		styles:          newStyles(opts.NoColor),
		title:           title,
		noColor:         opts.NoColor,
		refreshInterval: interval,
	}
	return m.refresh()
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.refreshInterval)
}

// tickMsg carries a refresh tick.
type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles keys, window size changes and refresh ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.help.Width = typed.Width
		m.review.SetColumns(reviewColumns(typed.Width))
		m.review.SetHeight(max(typed.Height-10, 3))
		return m, nil
	case tickMsg:
		return m.refresh(), tick(m.refreshInterval)
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.ForceEnd) {
			m.ctrl.Close()
			return m, tea.Quit
		}
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	var err error
	switch m.view.Screen {
	case quiz.ScreenStart:
		switch {
		case key.Matches(msg, m.keys.Fixed):
			err = m.ctrl.StartQuiz(quiz.ModeFixed)
		case key.Matches(msg, m.keys.Random):
			err = m.ctrl.StartQuiz(quiz.ModeRandom)
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit
		}
	case quiz.ScreenQuestion:
		if m.confirmFinish {
			return m.handleConfirm(msg)
		}
		if m.jumping {
			return m.handleJump(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Answer):
			err = m.ctrl.SelectOption(optionIndex(msg.String()))
		case key.Matches(msg, m.keys.Prev):
			err = m.ctrl.Navigate(-1)
		case key.Matches(msg, m.keys.Next):
			err = m.ctrl.Navigate(1)
		case key.Matches(msg, m.keys.GoTo):
			m.jumping, m.jumpInput = true, ""
			m.keys.jumping = true
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			if next, ok := nextUnanswered(m.view.Question); ok {
				err = m.ctrl.JumpTo(next)
			}
		case key.Matches(msg, m.keys.Finish):
			if m.view.Question != nil && !m.view.Question.AllAnswered {
				m.confirmFinish = true
				return m, nil
			}
			_, err = m.ctrl.Finish()
		case key.Matches(msg, m.keys.Home):
			err = m.ctrl.Home()
		}
	case quiz.ScreenResults:
		switch {
		case key.Matches(msg, m.keys.Retry):
			err = m.ctrl.Retry()
		case key.Matches(msg, m.keys.Home):
			err = m.ctrl.Home()
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.review, cmd = m.review.Update(msg)
			return m, cmd
		}
	}
	m = m.noteError(err)
	return m.refresh(), nil
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmFinish = false
	if key.Matches(msg, m.keys.Confirm) {
		_, err := m.ctrl.Finish()
		m = m.noteError(err)
	}
	return m.refresh(), nil
}

// handleJump collects a question number typed after g and jumps on enter.
func (m Model) handleJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Digit):
		if len(m.jumpInput) < 3 {
			m.jumpInput += msg.String()
		}
		return m, nil
	case key.Matches(msg, m.keys.Erase):
		if m.jumpInput != "" {
			m.jumpInput = m.jumpInput[:len(m.jumpInput)-1]
		}
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		number, err := strconv.Atoi(m.jumpInput)
		m = m.stopJump()
		if err != nil {
			return m, nil
		}
		m = m.noteError(m.ctrl.JumpTo(number - 1))
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.stopJump(), nil
	}
	return m, nil
}

func (m Model) stopJump() Model {
	m.jumping, m.jumpInput = false, ""
	m.keys.jumping = false
	return m
}

// nextUnanswered returns the index of the first open question after the
// current one, wrapping around to the start.
func nextUnanswered(view *quiz.QuestionView) (int, bool) {
	if view == nil || view.Total == 0 {
		return 0, false
	}
	start := view.Number - 1
	for step := 1; step < len(view.Progress); step++ {
		i := (start + step) % len(view.Progress)
		if !view.Progress[i].Answered {
			return i, true
		}
	}
	return 0, false
}

// noteError shows an error in the status line. A transition that lost a race
// with the timer is not worth reporting.
func (m Model) noteError(err error) Model {
	switch {
	case err == nil:
	case errors.Is(err, quiz.ErrInvalidTransition), errors.Is(err, quiz.ErrNoActiveSession):
	default:
		m.status = err.Error()
	}
	return m
}

// refresh re-reads the controller and updates derived widgets.
func (m Model) refresh() Model {
	previous := m.view.Screen
	m.view = quiz.Project(m.ctrl.Snapshot())
	m.keys.screen = m.view.Screen
	if m.view.Screen != quiz.ScreenQuestion {
		m.confirmFinish = false
		m = m.stopJump()
	}
	if m.view.Screen == quiz.ScreenResults && previous != quiz.ScreenResults {
		m.review.SetRows(reviewRows(m.view.Results.Review))
		m.review.GotoTop()
	}
	return m
}

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.view.Screen {
	case quiz.ScreenQuestion:
		body = renderQuestion(m.view.Question, m.styles)
		if m.confirmFinish {
			unanswered := m.view.Question.Total - m.view.Question.Answered
			body += "\n\n" + m.styles.notice.Render(fmt.Sprintf("%d questions are unanswered. Finish anyway? (y/n)", unanswered))
		}
		if m.jumping {
			body += "\n\n" + m.styles.notice.Render(fmt.Sprintf("Go to question (1-%d): %s_", m.view.Question.Total, m.jumpInput))
		}
	case quiz.ScreenResults:
		body = renderSummary(m.view.Results, m.styles) + "\n\n" + m.review.View()
	default:
		body = renderStart(m.view.Start, m.title, m.styles)
	}
	parts := []string{body, ""}
	if m.status != "" {
		parts = append(parts, m.styles.notice.Render(m.status), "")
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// optionIndex maps an answer key to its option index.
func optionIndex(keyName string) int {
	return int(strings.ToUpper(keyName)[0] - 'A')
}
