// Package page renders the self-contained HTML quiz page.
package page

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
)

// DataElementID is the id of the script element holding the JSON payload.
const DataElementID = "quiz-data"

// Document is the page component: the payload as a JSON data element, the
// runtime script and styles inlined.
func Document(payload Payload, script, style string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(payload.Title)
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="nb">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`+title+`</title>
<style>
`); err != nil {
			return err
		}
		if err := templ.Raw(style).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</style>
</head>
<body>
<header class="topbar"><h1>`+title+`</h1><div id="timer" class="timer" hidden></div></header>
<main id="app"><noscript>This quiz needs JavaScript.</noscript></main>
`); err != nil {
			return err
		}
		if err := templ.JSONScript(DataElementID, payload).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n<script>\n"); err != nil {
			return err
		}
		if err := templ.Raw(script).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</script>\n</body>\n</html>\n")
		return err
	})
}

// Render writes the page for payload to w.
func Render(ctx context.Context, w io.Writer, payload Payload) error {
	assets, err := LoadAssets()
	if err != nil {
		return err
	}
	script, err := assets.Read(ScriptAsset)
	if err != nil {
		return err
	}
	style, err := assets.Read(StyleAsset)
	if err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(script), "</script") {
		return fmt.Errorf("page: runtime script contains a closing script tag")
	}
	return Document(payload, script, style).Render(ctx, w)
}

// BuildHTML renders the page into a string.
func BuildHTML(ctx context.Context, payload Payload) (string, error) {
	var builder strings.Builder
	if err := Render(ctx, &builder, payload); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteFile renders the page to path, creating parent directories.
func WriteFile(ctx context.Context, path string, payload Payload) error {
	html, err := BuildHTML(ctx, payload)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
