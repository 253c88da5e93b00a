package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("## Heading\n\nSome **bold** text.")
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "Heading") {
		t.Fatalf("expected heading in output: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold text in output: %q", html)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html := RenderMarkdown("hello <script>alert('x')</script> world")
	if strings.Contains(html, "<script") {
		t.Fatalf("script tag survived sanitizing: %q", html)
	}
	if !strings.Contains(html, "hello") || !strings.Contains(html, "world") {
		t.Fatalf("text content lost: %q", html)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	html := RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(html, "<table") {
		t.Fatalf("expected table output: %q", html)
	}
}
