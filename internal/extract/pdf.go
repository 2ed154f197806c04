package extract

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"quizgen/internal/question"
	"quizgen/internal/spec"
)

func readPDF(ctx context.Context, path string, _ spec.SourceConfig) (questions []question.Question, dropped int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat pdf: %w", err)
	}
	// The content stream parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			questions, dropped, err = nil, 0, fmt.Errorf("read pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, 0, fmt.Errorf("read pdf: %w", err)
	}

	var lines []Line
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pdfLines(page.Content().Text)...)
		lines = append(lines, Line{})
	}
	questions, dropped = parseLines(lines)
	return questions, dropped, nil
}

type pdfRow struct {
	y     float64
	size  float64
	texts []pdf.Text
}

// pdfLines groups glyphs into rows by baseline, top to bottom, and inserts a
// blank line where the vertical gap is larger than a line and a half.
func pdfLines(texts []pdf.Text) []Line {
	var rows []*pdfRow
	for _, text := range texts {
		if text.S == "" {
			continue
		}
		var row *pdfRow
		for _, candidate := range rows {
			if math.Abs(candidate.y-text.Y) < 1 {
				row = candidate
				break
			}
		}
		if row == nil {
			row = &pdfRow{y: text.Y}
			rows = append(rows, row)
		}
		row.texts = append(row.texts, text)
		row.size = math.Max(row.size, text.FontSize)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	var lines []Line
	for i, row := range rows {
		if i > 0 {
			gap := rows[i-1].y - row.y
			if row.size > 0 && gap > 1.5*row.size*1.2 {
				lines = append(lines, Line{})
			}
		}
		lines = append(lines, rowLine(row))
	}
	return lines
}

func rowLine(row *pdfRow) Line {
	sort.SliceStable(row.texts, func(i, j int) bool { return row.texts[i].X < row.texts[j].X })
	var (
		builder strings.Builder
		line    Line
		end     float64
		started bool
	)
	for i, text := range row.texts {
		if i > 0 && text.X-end > 0.2*text.FontSize && !strings.HasSuffix(builder.String(), " ") {
			builder.WriteByte(' ')
		}
		if !started && strings.TrimSpace(text.S) != "" {
			started = true
			line.Marked = isBoldFont(text.Font)
		}
		builder.WriteString(text.S)
		end = text.X + text.W
	}
	line.Text = builder.String()
	return line
}

func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy")
}
