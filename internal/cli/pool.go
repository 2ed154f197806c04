package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/extract"
	"quizgen/internal/question"
	"quizgen/internal/quiz"
)

// loadPool reads the pool file when one is given, otherwise runs the
// extractors and reports what they found.
func loadPool(ctx context.Context, proj project, poolPath string, stdout, stderr io.Writer) (question.Pool, error) {
	if path := strings.TrimSpace(poolPath); path != "" {
		pool, err := question.LoadPool(path, proj.cfg.SourceKeys())
		if err != nil {
			return question.Pool{}, err
		}
		return pool.WithLabels(proj.labels()), nil
	}
	results, err := extract.ExtractAll(ctx, proj.root, proj.cfg.Sources)
	if err != nil {
		return question.Pool{}, err
	}
	printExtraction(stdout, stderr, results)
	return extract.Pool(results), nil
}

// printExtraction writes per-source counts and warnings.
func printExtraction(stdout, stderr io.Writer, results []extract.Result) {
	total := 0
	for _, result := range results {
		if result.Missing {
			fmt.Fprintf(stderr, "Warning: %s not found; source %s is empty\n", result.Path, result.Key)
		}
		fmt.Fprintf(stdout, "%s (%s): %d questions\n", result.Key, result.Label, len(result.Questions))
		if result.Dropped > 0 {
			fmt.Fprintf(stdout, "  dropped %d malformed questions\n", result.Dropped)
		}
		total += len(result.Questions)
	}
	fmt.Fprintf(stdout, "Total: %d questions\n", total)
}

// warnShortfall reports when the primary source cannot fill a fixed session.
func warnShortfall(w io.Writer, pool question.Pool, settings quiz.Settings) {
	primary, _ := pool.Source(settings.PrimarySource)
	if len(primary.Questions) >= settings.FixedCount {
		return
	}
	fmt.Fprintf(w, "Warning: primary source %s has %d questions; fixed mode wants %d.\n",
		settings.PrimarySource, len(primary.Questions), settings.FixedCount)
}
