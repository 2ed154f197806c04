package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizgen/internal/quiz"
)

// ErrQuit is returned by RunPlain when the user quits explicitly.
var ErrQuit = errors.New("quit")

// RunPlain drives the quiz with line commands read from in. It returns nil
// on end of input or quit.
func RunPlain(ctx context.Context, ctrl *quiz.Controller, in io.Reader, out io.Writer, opts Options) error {
	p := &plainRunner{
		ctrl:   ctrl,
		out:    out,
		title:  opts.Title,
		styles: newStyles(true),
	}
	if p.title == "" {
		p.title = "Quiz"
	}
	defer ctrl.Close()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	p.show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := p.handle(strings.TrimSpace(line)); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

type plainRunner struct {
	ctrl          *quiz.Controller
	out           io.Writer
	title         string
	styles        styles
	confirmFinish bool
	lastScreen    quiz.Screen
}

func (p *plainRunner) handle(input string) error {
	view := quiz.Project(p.ctrl.Snapshot())
	if view.Screen != p.lastScreen {
		// The timer finished the session since the last prompt; the input
		// was meant for the old screen.
		p.confirmFinish = false
		fmt.Fprintln(p.out, "\nTime is up.")
		p.show()
		return nil
	}
	command, arg, _ := strings.Cut(strings.ToLower(input), " ")
	if command == "q" || command == "quit" {
		return ErrQuit
	}
	var err error
	switch view.Screen {
	case quiz.ScreenStart:
		err = p.handleStart(command)
	case quiz.ScreenQuestion:
		err = p.handleQuestion(view.Question, command, strings.TrimSpace(arg))
	case quiz.ScreenResults:
		err = p.handleResults(command)
	}
	if err != nil {
		fmt.Fprintf(p.out, "! %v\n", err)
	}
	p.show()
	return nil
}

func (p *plainRunner) handleStart(command string) error {
	if command == "" {
		return nil
	}
	mode, err := quiz.ParseMode(command)
	if err != nil {
		return fmt.Errorf("choose 1 (fixed) or 2 (random)")
	}
	return p.ctrl.StartQuiz(mode)
}

func (p *plainRunner) handleQuestion(view *quiz.QuestionView, command, arg string) error {
	if p.confirmFinish {
		p.confirmFinish = false
		if command == "y" || command == "yes" {
			_, err := p.ctrl.Finish()
			return ignoreRace(err)
		}
		return nil
	}
	switch command {
	case "", "n", "next":
		return ignoreRace(p.ctrl.Navigate(1))
	case "p", "prev":
		return ignoreRace(p.ctrl.Navigate(-1))
	case "a", "b", "c":
		if err := p.ctrl.SelectOption(optionIndex(command)); err != nil {
			return ignoreRace(err)
		}
		return ignoreRace(p.ctrl.Navigate(1))
	case "g", "goto":
		number, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("usage: g <question number>")
		}
		return ignoreRace(p.ctrl.JumpTo(number - 1))
	case "f", "finish":
		if view != nil && !view.AllAnswered {
			p.confirmFinish = true
			return nil
		}
		_, err := p.ctrl.Finish()
		return ignoreRace(err)
	case "h", "home":
		return ignoreRace(p.ctrl.Home())
	default:
		return fmt.Errorf("unknown command %q (a/b/c, n, p, g N, f, h, q)", command)
	}
}

func (p *plainRunner) handleResults(command string) error {
	switch command {
	case "r", "retry":
		return p.ctrl.Retry()
	case "":
		return nil
	case "h", "home":
		return p.ctrl.Home()
	default:
		return fmt.Errorf("unknown command %q (r, h, q)", command)
	}
}

// ignoreRace drops transition errors caused by the timer finishing first.
func ignoreRace(err error) error {
	if errors.Is(err, quiz.ErrInvalidTransition) || errors.Is(err, quiz.ErrNoActiveSession) {
		return nil
	}
	return err
}

// show prints the current screen and prompt.
func (p *plainRunner) show() {
	view := quiz.Project(p.ctrl.Snapshot())
	p.lastScreen = view.Screen
	switch view.Screen {
	case quiz.ScreenStart:
		fmt.Fprintln(p.out, renderStart(view.Start, p.title, p.styles))
		fmt.Fprint(p.out, "Mode (1/2, q to quit)> ")
	case quiz.ScreenQuestion:
		fmt.Fprintln(p.out, renderQuestion(view.Question, p.styles))
		if p.confirmFinish {
			unanswered := view.Question.Total - view.Question.Answered
			fmt.Fprintf(p.out, "%d questions are unanswered. Finish anyway? (y/n)> ", unanswered)
			return
		}
		fmt.Fprint(p.out, "Answer (a/b/c, n, p, g N, f, h, q)> ")
	case quiz.ScreenResults:
		fmt.Fprintln(p.out, renderSummary(view.Results, p.styles))
		writeReview(p.out, view.Results.Review)
		fmt.Fprint(p.out, "Next (r retry, h home, q quit)> ")
	}
}

func writeReview(out io.Writer, rows []quiz.ReviewRow) {
	fmt.Fprintln(out, "\nReview:")
	for _, row := range rows {
		fmt.Fprintf(out, "%2d. [%s] %s\n", row.Number, reviewMark(row), compact(row.Question))
		fmt.Fprintf(out, "    your answer: %s\n", row.Chosen)
		if !row.Correct {
			fmt.Fprintf(out, "    correct: %s\n", row.CorrectOption)
		}
	}
}
