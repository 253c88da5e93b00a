package service

import "strings"

// DefaultCategory is assigned when no keyword group matches.
const DefaultCategory = "General"

// categoryKeywords maps a category label to the keywords that vote for it.
var categoryKeywords = map[string][]string{
	"Tech": {
		"python", "javascript", "coding", "programming", "development", "web",
		"cloud", "ai", "machine learning", "api", "database", "devops",
		"cybersecurity", "blockchain", "docker", "react", "node", "software",
		"code", "algorithm", "data science", "computer",
	},
	"Beauty": {
		"skincare", "makeup", "beauty", "cosmetics", "hair", "nail",
		"skincare routine", "anti-aging", "cruelty-free", "wellness",
	},
	"Education": {
		"learning", "study", "education", "course", "student", "teaching",
		"school", "university", "academic", "language", "skill",
	},
	"Gaming": {
		"gaming", "game", "esports", "video game", "console", "pc game",
		"mobile game", "gaming setup", "streaming", "vr",
	},
	"Health": {
		"fitness", "workout", "health", "diet", "nutrition", "exercise",
		"mental health", "yoga", "meditation", "wellness", "sleep",
	},
	"Travel": {
		"travel", "trip", "destination", "hotel", "vacation", "tourism",
		"adventure", "backpack", "tour", "explore",
	},
	"Lifestyle": {
		"lifestyle", "minimalist", "living", "habits", "daily routine",
		"personal growth", "productivity", "home", "organization",
		"digital detox",
	},
	"Business": {
		"business", "startup", "entrepreneurship", "marketing", "leadership",
		"finance", "management", "strategy", "sales", "remote work",
	},
}

// DetectCategory labels a blog from its title and details by counting
// keyword hits per category; the highest count wins, ties keep the earlier
// winner and zero hits fall back to General.
func DetectCategory(title, details string) string {
	text := strings.ToLower(title + " " + details)

	best := DefaultCategory
	bestMatches := 0
	for _, category := range categoryOrder {
		matches := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				matches++
			}
		}
		if matches > bestMatches {
			bestMatches = matches
			best = category
		}
	}
	return best
}

// categoryOrder fixes iteration order so tie-breaking is deterministic.
var categoryOrder = []string{
	"Tech", "Beauty", "Education", "Gaming", "Health", "Travel",
	"Lifestyle", "Business",
}

// Categories returns the known category labels in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
