package extract

import (
	"context"
	"fmt"
	"os"

	"quizgen/internal/config"
	"quizgen/internal/question"
	"quizgen/internal/spec"
)

// readQuestionFile reads a JSON or YAML file holding either a bare question
// list or a pool object. For a pool object the list under the source key is used.
func readQuestionFile(_ context.Context, path string, source spec.SourceConfig) ([]question.Question, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", source.Format, err)
	}
	yamlFormat := source.Format == config.FormatYAML
	list, listErr := question.DecodeList(data, yamlFormat)
	if listErr == nil {
		return list, 0, nil
	}
	sources, err := question.DecodeSources(data, yamlFormat)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", source.Format, listErr)
	}
	list, ok := sources[source.Key]
	if !ok {
		return nil, 0, fmt.Errorf("decode %s: no list for source %q", source.Format, source.Key)
	}
	return list, 0, nil
}
