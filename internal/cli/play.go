package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"quizgen/internal/quiz"
	"quizgen/internal/ui/play"
)

// playInput allows tests to script the plain player.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizgen/config.yml)")
		poolPath := flags.String("pool", "", "Read questions from a pool file instead of the sources")
		modeValue := flags.String("mode", "", "Start directly in fixed or random mode")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		verbose := flags.Bool("verbose", false, "Log session events (forces plain UI)")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
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

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		var mode quiz.Mode
		if strings.TrimSpace(*modeValue) != "" {
			mode, err = quiz.ParseMode(*modeValue)
			if err != nil {
				fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
				return ExitUsage
			}
		}

		proj, err := loadProject(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		report := io.Discard
		if !decision.useLive {
			report = stdout
		}
		pool, err := loadPool(ctx, proj, *poolPath, report, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		if pool.Size() == 0 {
			fmt.Fprintln(stderr, "Play failed: no questions available")
			return ExitError
		}

		settings := quiz.SettingsFromConfig(proj.cfg.Quiz)
		ctrl := quiz.NewController(pool, settings, quiz.Options{
			Observer: verboseObserver(*verbose, stdout, *noColor),
		})
		defer ctrl.Close()
		logVerbose(*verbose, stdout, *noColor, styleDefault, "Pool %d questions in %d sources, primary=%s pass mark=%d",
			pool.Size(), len(pool.Sources), settings.PrimarySource, quiz.PassThreshold(settings))

		if mode != "" {
			if err := ctrl.StartQuiz(mode); err != nil {
				fmt.Fprintf(stderr, "Play failed: %v\n", err)
				return ExitError
			}
		}

		opts := play.Options{Title: proj.cfg.Title, NoColor: *noColor}
		if decision.useLive {
			var in io.Reader
			if playInput != os.Stdin {
				in = playInput
			}
			err = play.Start(ctx, ctrl, in, stdout, opts).Wait()
		} else {
			err = play.RunPlain(ctx, ctrl, playInput, stdout, opts)
		}
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
