package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"quizgen/internal/quiz"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleSession
	stylePassed
	styleFailed
)

func logVerbose(enabled bool, writer io.Writer, noColor bool, style verboseStyle, format string, args ...any) {
	if !enabled || writer == nil {
		return
	}
	palette := paletteFor(writer, noColor)
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer, "%s %s\n", palette.prefix(verbosePrefix), palette.apply(style, line))
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return isTerminal(writer)
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleSession:
		return ansiBold + ansiBlue + text + ansiReset
	case stylePassed:
		return ansiBold + ansiGreen + text + ansiReset
	case styleFailed:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}

// verboseObserver logs controller lifecycle events.
func verboseObserver(enabled bool, writer io.Writer, noColor bool) quiz.Observer {
	return quiz.ObserverFuncs{
		SessionStart: func(info quiz.SessionInfo) {
			logVerbose(enabled, writer, noColor, styleSession, "Session %s started mode=%s questions=%d/%d timer=%s",
				info.SessionID, info.Mode, info.Items, info.Requested, quiz.FormatClock(info.TimerSeconds))
		},
		Finish: func(result quiz.Result) {
			style := styleFailed
			if result.Passed {
				style = stylePassed
			}
			logVerbose(enabled, writer, noColor, style, "Session %s finished reason=%s correct=%d/%d threshold=%d verdict=%s elapsed=%s",
				result.SessionID, result.Reason, result.Correct, result.Total, result.Threshold, result.Verdict(), quiz.FormatElapsed(result.Elapsed))
		},
		Abandon: func(info quiz.SessionInfo, answered int) {
			logVerbose(enabled, writer, noColor, styleDefault, "Session %s abandoned answered=%d/%d",
				info.SessionID, answered, info.Items)
		},
	}
}
