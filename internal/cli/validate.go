package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/quiz"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizgen/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintln(stdout, "Config OK")
		for _, source := range cfg.Sources {
			fmt.Fprintf(stdout, "  %s %-6s %s\n", source.Key, source.Format, source.Path)
		}
		settings := quiz.SettingsFromConfig(cfg.Quiz)
		fmt.Fprintf(stdout, "  fixed %d from %s, random %d, timer %s, pass mark %d\n",
			settings.FixedCount, settings.PrimarySource, settings.RandomCount,
			quiz.FormatClock(settings.TimerSeconds), quiz.PassThreshold(settings))
		return ExitOK
	}
}
