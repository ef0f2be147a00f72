package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	defaultWrapWidth     = 80
	defaultMarkdownStyle = "dark"
)

// renderers caches one glamour renderer per width/style pair; building a
// renderer parses the whole style sheet.
var renderers = struct {
	sync.Mutex
	byKey map[rendererKey]*glamour.TermRenderer
}{byKey: map[rendererKey]*glamour.TermRenderer{}}

type rendererKey struct {
	width int
	style string
}

func renderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = defaultWrapWidth
	}
	if style == "" {
		style = defaultMarkdownStyle
	}
	key := rendererKey{width: width, style: style}

	renderers.Lock()
	defer renderers.Unlock()
	if r, ok := renderers.byKey[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers.byKey[key] = r
	return r, nil
}

// RenderMarkdown renders an entry for the terminal using the given glamour
// style. It falls back to the raw text when rendering fails.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := renderer(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
