package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/page"
	"quizgen/internal/quiz"
)

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizgen/config.yml)")
		poolPath := flags.String("pool", "", "Read questions from a pool file instead of the sources")
		outputPath := flags.String("output", "", "HTML path (default: output.html from config)")
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

		proj, err := loadProject(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		pool, err := loadPool(ctx, proj, *poolPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Build failed: %v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*poolPath) != "" {
			fmt.Fprintf(stdout, "Loaded %d questions from %d sources\n", pool.Size(), len(pool.Sources))
		}
		settings := quiz.SettingsFromConfig(proj.cfg.Quiz)
		warnShortfall(stderr, pool, settings)

		target := proj.outputPath(*outputPath, proj.cfg.Output.HTML)
		if err := page.WriteFile(ctx, target, page.NewPayload(proj.cfg.Title, pool, settings)); err != nil {
			fmt.Fprintf(stderr, "Build failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}
