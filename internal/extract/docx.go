package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/question"
	"quizgen/internal/spec"
)

const docxBody = "word/document.xml"

func readDOCX(_ context.Context, path string, _ spec.SourceConfig) ([]question.Question, int, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()
	for _, file := range archive.File {
		if file.Name != docxBody {
			continue
		}
		body, err := file.Open()
		if err != nil {
			return nil, 0, fmt.Errorf("open %s: %w", docxBody, err)
		}
		defer body.Close()
		lines, err := docxLines(body)
		if err != nil {
			return nil, 0, err
		}
		questions, dropped := parseLines(lines)
		return questions, dropped, nil
	}
	return nil, 0, fmt.Errorf("docx has no %s", docxBody)
}

// docxLines walks WordprocessingML and emits one Line per paragraph line.
// Soft breaks (w:br, w:cr) split a paragraph into lines. A line is marked
// when the run holding its first visible character is bold.
func docxLines(r io.Reader) ([]Line, error) {
	decoder := xml.NewDecoder(r)
	var (
		lines   []Line
		line    strings.Builder
		marked  bool
		para    bool
		wrap    bool
		inPara  bool
		inRun   bool
		inProps bool
		inText  bool
		bold    bool
	)
	endLine := func() {
		lines = append(lines, Line{Text: line.String(), Marked: marked, Para: para, Wrap: wrap})
		line.Reset()
		marked = false
		para = false
		wrap = false
	}
	write := func(text string) {
		if strings.TrimSpace(line.String()) == "" && strings.TrimSpace(text) != "" {
			marked = bold
		}
		line.WriteString(text)
	}
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", docxBody, err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				para = true
			case "r":
				inRun = true
				bold = false
			case "rPr":
				inProps = inRun
			case "b":
				if inProps {
					bold = boldOn(t.Attr)
				}
			case "t":
				inText = inRun
			case "tab":
				if inRun {
					write("\t")
				}
			case "br", "cr":
				if inPara {
					endLine()
					wrap = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				endLine()
				inPara = false
			case "r":
				inRun = false
				bold = false
			case "rPr":
				inProps = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				write(string(t))
			}
		}
	}
	return lines, nil
}

// boldOn reads the w:val of a w:b element; absent means on.
func boldOn(attrs []xml.Attr) bool {
	for _, attr := range attrs {
		if attr.Name.Local == "val" {
			switch strings.ToLower(attr.Value) {
			case "0", "false", "off":
				return false
			}
		}
	}
	return true
}
