package extract

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"quizgen/internal/question"
	"quizgen/internal/spec"
)

// textMarker prefixes the correct option in plain text sources.
const textMarker = "*"

func readText(_ context.Context, path string, _ spec.SourceConfig) ([]question.Question, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open text: %w", err)
	}
	defer file.Close()
	lines, err := textLines(file)
	if err != nil {
		return nil, 0, err
	}
	questions, dropped := parseLines(lines)
	return questions, dropped, nil
}

func textLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []Line
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		line := Line{Text: text}
		if rest, ok := strings.CutPrefix(text, textMarker); ok {
			line.Text = strings.TrimSpace(rest)
			line.Marked = true
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return lines, nil
}
