package play

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/quiz"
)

// Program runs the live player in the background.
type Program struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

// Start launches the live player on the alternate screen.
func Start(ctx context.Context, ctrl *quiz.Controller, stdin io.Reader, stdout io.Writer, opts Options) *Program {
	if stdout == nil {
		stdout = os.Stdout
	}
	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(stdout), tea.WithAltScreen()}
	if stdin != nil {
		options = append(options, tea.WithInput(stdin))
	}
	program := tea.NewProgram(NewModel(ctrl, opts), options...)
	p := &Program{program: program, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		_, p.err = program.Run()
		ctrl.Close()
	}()
	return p
}

// Close asks the player to exit.
func (p *Program) Close() {
	if p == nil {
		return
	}
	p.program.Quit()
}

// Wait blocks until the player has exited and returns its error. A context
// cancellation is reported as nil.
func (p *Program) Wait() error {
	if p == nil {
		return nil
	}
	<-p.done
	if errors.Is(p.err, tea.ErrProgramKilled) {
		return nil
	}
	return p.err
}
