package extract

import (
	"archive/zip"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// docxRun is one run of a test paragraph; a "\n" in text becomes a soft break.
type docxRun struct {
	text string
	bold bool
}

func writeDOCX(t *testing.T, dir, name string, paragraphs [][]docxRun) string {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, paragraph := range paragraphs {
		body.WriteString(`<w:p><w:pPr><w:rPr><w:b/></w:rPr></w:pPr>`)
		for _, run := range paragraph {
			body.WriteString(`<w:r>`)
			if run.bold {
				body.WriteString(`<w:rPr><w:b/></w:rPr>`)
			} else {
				body.WriteString(`<w:rPr><w:b w:val="0"/></w:rPr>`)
			}
			for i, part := range strings.Split(run.text, "\n") {
				if i > 0 {
					body.WriteString(`<w:br/>`)
				}
				if part != "" {
					fmt.Fprintf(&body, `<w:t xml:space="preserve">%s</w:t>`, html.EscapeString(part))
				}
			}
			body.WriteString(`</w:r>`)
		}
		body.WriteString(`</w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	archive := zip.NewWriter(file)
	entry, err := archive.Create(docxBody)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := entry.Write([]byte(body.String())); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := archive.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
