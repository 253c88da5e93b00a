package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidPattern  = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugCollapsePattern = regexp.MustCompile(`_+`)
)

const maxSlugRunes = 120

// Slugify derives a download filename base from a blog title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidPattern.ReplaceAllString(s, "_")
	s = slugCollapsePattern.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")

	runes := []rune(s)
	if len(runes) > maxSlugRunes {
		s = string(runes[:maxSlugRunes])
	}
	if s == "" {
		return "blog"
	}
	return s
}
