package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizgen/internal/extract"
	"quizgen/internal/question"
)

// runExtract builds the handler for the extract command.
func runExtract(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizgen/config.yml)")
		outputPath := flags.String("output", "", "Pool JSON path (default: output.pool from config)")
		sqlitePath := flags.String("sqlite", "", "Also write the pool to a SQLite database")
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
		results, err := extract.ExtractAll(ctx, proj.root, proj.cfg.Sources)
		if err != nil {
			fmt.Fprintf(stderr, "Extract failed: %v\n", err)
			return ExitError
		}
		printExtraction(stdout, stderr, results)
		pool := extract.Pool(results)

		target := proj.outputPath(*outputPath, proj.cfg.Output.Pool)
		if err := ensureParentDir(target); err != nil {
			fmt.Fprintf(stderr, "Extract failed: %v\n", err)
			return ExitError
		}
		if err := question.WritePool(target, pool); err != nil {
			fmt.Fprintf(stderr, "Extract failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)

		if path := strings.TrimSpace(*sqlitePath); path != "" {
			if err := ensureParentDir(path); err != nil {
				fmt.Fprintf(stderr, "Extract failed: %v\n", err)
				return ExitError
			}
			if err := extract.WriteSQLite(ctx, path, pool); err != nil {
				fmt.Fprintf(stderr, "Extract failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
