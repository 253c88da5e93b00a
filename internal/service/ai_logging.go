package service

import (
	"log"
	"strings"
)

const aiLogSnippetRunes = 1024

// logAIExchange traces one side of a provider exchange. Bodies are
// collapsed to a single line and truncated so article-sized payloads do
// not flood the log.
func logAIExchange(op, phase, content string) {
	flat := strings.Join(strings.Fields(content), " ")
	if flat == "" {
		log.Printf("ai %s %s: <empty>", op, phase)
		return
	}

	runes := []rune(flat)
	total := len(runes)
	if total > aiLogSnippetRunes {
		flat = string(runes[:aiLogSnippetRunes]) + " [truncated]"
	}
	log.Printf("ai %s %s (%d runes): %s", op, phase, total, flat)
}
