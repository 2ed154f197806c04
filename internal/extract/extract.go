// Package extract reads question sources into question lists.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"quizgen/internal/config"
	"quizgen/internal/question"
	"quizgen/internal/spec"
)

// Result is the outcome of extracting one source.
type Result struct {
	Key       string
	Label     string
	Path      string
	Format    string
	Questions []question.Question
	Dropped   int
	Missing   bool
}

type reader func(ctx context.Context, path string, source spec.SourceConfig) ([]question.Question, int, error)

var readers = map[string]reader{
	config.FormatDOCX:   readDOCX,
	config.FormatPDF:    readPDF,
	config.FormatText:   readText,
	config.FormatJSON:   readQuestionFile,
	config.FormatYAML:   readQuestionFile,
	config.FormatSQLite: readSQLite,
}

// Extract reads one source relative to root. A missing file is not an error:
// the result is empty with Missing set. Malformed questions are dropped and
// counted.
func Extract(ctx context.Context, root string, source spec.SourceConfig) (Result, error) {
	result := Result{
		Key:    source.Key,
		Label:  source.Label,
		Path:   config.ResolvePath(root, source.Path),
		Format: source.Format,
	}
	read, ok := readers[source.Format]
	if !ok {
		return result, fmt.Errorf("source %s: unsupported format %q", source.Key, source.Format)
	}
	if _, err := os.Stat(result.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Missing = true
			return result, nil
		}
		return result, fmt.Errorf("source %s: %w", source.Key, err)
	}
	raw, dropped, err := read(ctx, result.Path, source)
	if err != nil {
		return result, fmt.Errorf("source %s: %w", source.Key, err)
	}
	questions, invalid := question.Sanitize(raw)
	result.Questions = questions
	result.Dropped = dropped + invalid
	return result, nil
}

// ExtractAll extracts every source in order and stops at the first error.
func ExtractAll(ctx context.Context, root string, sources []spec.SourceConfig) ([]Result, error) {
	results := make([]Result, 0, len(sources))
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := Extract(ctx, root, source)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Pool assembles extraction results into a pool in result order.
func Pool(results []Result) question.Pool {
	pool := question.Pool{Sources: make([]question.Source, 0, len(results))}
	for _, result := range results {
		questions := result.Questions
		if questions == nil {
			questions = []question.Question{}
		}
		pool.Sources = append(pool.Sources, question.Source{
			Key:       result.Key,
			Label:     result.Label,
			Questions: questions,
		})
	}
	return pool
}
