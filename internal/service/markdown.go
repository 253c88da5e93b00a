package service

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts generated markdown into sanitized HTML. When the
// markdown renderer fails the body is degraded to plain paragraphs so the
// caller always gets displayable HTML.
func RenderMarkdown(markdown string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return fallbackParagraphs(markdown)
	}
	return sanitizer.Sanitize(buf.String())
}

func fallbackParagraphs(text string) string {
	var builder strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		builder.WriteString("<p>")
		builder.WriteString(trimmed)
		builder.WriteString("</p>\n")
	}
	return sanitizer.Sanitize(builder.String())
}
