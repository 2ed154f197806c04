package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiMode is the value of the play --ui flag.
type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

func parseUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", value)
	}
}

// uiModeDecision captures whether the quiz runs in the full-screen player.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the live player only when stdout is a terminal.
// Verbose logging interleaves with the screen, so it always selects plain.
func resolveUIMode(value string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	mode, err := parseUIMode(value)
	if err != nil {
		return uiModeDecision{}, err
	}
	if verbose || mode == uiPlain {
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdout)
	if mode == uiLive && !tty {
		return uiModeDecision{
			warning: "Live UI requested but stdout is not a TTY; using plain prompts.",
		}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	switch w := stdout.(type) {
	case *os.File:
		return term.IsTerminal(int(w.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(w.Fd()))
	default:
		return false
	}
}
