package service

import (
	"strings"
	"testing"
)

func TestStripInstructionPrefix(t *testing.T) {
	body := "Write a high-quality blog article titled 'Gardening'. Cover the basics.\n\nGardening rewards patience.\n\nStart with soil."
	got := StripInstructionPrefix(body)
	if strings.Contains(got, "high-quality") {
		t.Fatalf("instruction paragraph survived: %q", got)
	}
	if !strings.HasPrefix(got, "Gardening rewards patience.") {
		t.Fatalf("unexpected body start: %q", got)
	}
}

func TestStripInstructionPrefixKeepsSingleParagraph(t *testing.T) {
	body := "Write a plan for the week ahead."
	if got := StripInstructionPrefix(body); got != body {
		t.Fatalf("single paragraph must be kept, got %q", got)
	}
}

func TestStripInstructionPrefixKeepsCleanBody(t *testing.T) {
	body := "Gardening rewards patience.\n\nStart with soil."
	if got := StripInstructionPrefix(body); got != body {
		t.Fatalf("clean body must be untouched, got %q", got)
	}
}

func TestStripInstructionPrefixHTML(t *testing.T) {
	input := "<p>Write a high-quality blog article titled 'Gardening'.</p><h2>Soil first</h2><p>Start with soil.</p>"
	got := StripInstructionPrefixHTML(input)
	if strings.Contains(got, "high-quality") {
		t.Fatalf("instruction element survived: %q", got)
	}
	if !strings.Contains(got, "<h2>Soil first</h2>") {
		t.Fatalf("article content lost: %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	input := "<h2>Soil first</h2><p>Start with <strong>soil</strong>.</p>"
	got := HTMLToText(input)
	if got != "Soil first\n\nStart with soil." {
		t.Fatalf("unexpected plain text: %q", got)
	}
}
