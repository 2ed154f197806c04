package play

import (
	"github.com/charmbracelet/bubbles/key"

	"quizgen/internal/quiz"
)

// keyMap lists the bindings for every screen.
type keyMap struct {
	Fixed    key.Binding
	Random   key.Binding
	Answer   key.Binding
	Prev     key.Binding
	Next     key.Binding
	GoTo     key.Binding
	Skip     key.Binding
	Digit    key.Binding
	Erase    key.Binding
	Jump     key.Binding
	Finish   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Home     key.Binding
	Retry    key.Binding
	Quit     key.Binding
	ForceEnd key.Binding
	screen   quiz.Screen
	jumping  bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fixed:    key.NewBinding(key.WithKeys("1", "f"), key.WithHelp("1", "fixed quiz")),
		Random:   key.NewBinding(key.WithKeys("2", "r"), key.WithHelp("2", "random quiz")),
		Answer:   key.NewBinding(key.WithKeys("a", "b", "c", "A", "B", "C"), key.WithHelp("a/b/c", "answer")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next")),
		GoTo:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to #")),
		Skip:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next unanswered")),
		Digit:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "number")),
		Erase:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Jump:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		Finish:   key.NewBinding(key.WithKeys("enter", "f"), key.WithHelp("f", "finish")),
		Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep going")),
		Home:     key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc", "home")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceEnd: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the bindings shown for the current screen.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.screen {
	case quiz.ScreenQuestion:
		if k.jumping {
			return []key.Binding{k.Digit, k.Erase, k.Jump, k.Cancel}
		}
		return []key.Binding{k.Answer, k.Prev, k.Next, k.GoTo, k.Skip, k.Finish, k.Home}
	case quiz.ScreenResults:
		return []key.Binding{k.Retry, k.Home, k.Quit}
	default:
		return []key.Binding{k.Fixed, k.Random, k.Quit}
	}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
