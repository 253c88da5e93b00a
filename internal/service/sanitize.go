package service

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// instructionTriggers mark a leading paragraph as a leaked generation
// prompt. Some provider responses echo the instruction ("Write a
// high-quality blog article titled ...") before the article itself;
// exports must not contain it.
var instructionTriggers = []string{
	"write a ",
	"write an ",
	"you are a ",
	"write a high-quality",
	"write an engaging",
}

func looksLikeInstruction(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, trigger := range instructionTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}

// StripInstructionPrefix removes a leading instruction paragraph from a
// plain text body. The body is left untouched when the first paragraph is
// the only one or does not look like an instruction.
func StripInstructionPrefix(text string) string {
	if text == "" {
		return text
	}
	parts := strings.Split(text, "\n\n")
	if len(parts) < 2 {
		return text
	}
	if looksLikeInstruction(parts[0]) {
		return strings.TrimLeft(strings.Join(parts[1:], "\n\n"), " \t\n")
	}
	return text
}

// StripInstructionPrefixHTML removes the first top-level element of an HTML
// body when its text content looks like a leaked instruction. Unparseable
// input falls back to tag-stripped text sanitizing.
func StripInstructionPrefixHTML(input string) string {
	if strings.TrimSpace(input) == "" {
		return input
	}

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return StripInstructionPrefix(HTMLToText(input))
	}

	body := findBody(doc)
	if body == nil {
		return input
	}

	// First child with visible text decides.
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		text := strings.TrimSpace(nodeText(child))
		if text == "" {
			continue
		}
		if looksLikeInstruction(text) {
			body.RemoveChild(child)
		}
		break
	}

	var buf bytes.Buffer
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return input
		}
	}
	return buf.String()
}

// HTMLToText flattens an HTML fragment to readable plain text. Block
// elements become paragraph breaks so the plain body mirrors the visible
// structure.
func HTMLToText(input string) string {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return strings.TrimSpace(input)
	}

	body := findBody(doc)
	if body == nil {
		return strings.TrimSpace(input)
	}

	var parts []string
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		text := strings.TrimSpace(nodeText(child))
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var builder strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		builder.WriteString(nodeText(child))
		if isBlockElement(child) {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func isBlockElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "pre", "blockquote", "br", "table", "tr":
		return true
	}
	return false
}
