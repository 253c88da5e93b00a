package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultGenerateMaxTokens   = 1024
	defaultGenerateTemperature = 0.7
	generateTimeout            = 30 * time.Second
)

// ErrTitleEmpty is returned when a generation request has no usable title.
var ErrTitleEmpty = errors.New("title cannot be empty")

// technicalKeywords steer the prompt toward a programming article when the
// topic looks technical, so non-technical topics are not forced into a
// programming perspective.
var technicalKeywords = []string{
	"program", "programming", "python", "java", "javascript", "developer",
	"software", "engineer", "code", "coding", "api", "machine learning",
	"ml", "ai", "artificial intelligence", "react", "django", "flask",
	"node", "rust", "go", "c++", "c#",
}

// Topic is a single requested article: a title plus optional free-text
// instructions.
type Topic struct {
	Title   string
	Details string
}

// GeneratedBlog is the result of one provider call, ready to persist or
// cache.
type GeneratedBlog struct {
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Body         string    `json:"body"`
	BodyHTML     string    `json:"body_html"`
	FilenameBase string    `json:"filename_base"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
}

// BlogGenerator produces an article for a topic. Declared as an interface
// so handlers can be tested without a live provider.
type BlogGenerator interface {
	Generate(ctx context.Context, topic Topic) (GeneratedBlog, error)
}

// GenerateService turns topics into full articles through the generation
// provider.
type GenerateService struct {
	client *geminiClient
}

// NewGenerateService constructs a GenerateService for the given provider
// credentials.
func NewGenerateService(apiKey, model string) *GenerateService {
	return &GenerateService{client: newGeminiClient(apiKey, model, generateTimeout)}
}

// SetHTTPClient overrides the provider HTTP client, mainly for tests.
func (s *GenerateService) SetHTTPClient(client httpDoer) {
	s.client.SetHTTPClient(client)
}

// SetBaseURL overrides the provider base URL, mainly for tests.
func (s *GenerateService) SetBaseURL(base string) {
	s.client.SetBaseURL(base)
}

// Generate calls the provider for one topic and renders the markdown body
// to sanitized HTML.
func (s *GenerateService) Generate(ctx context.Context, topic Topic) (GeneratedBlog, error) {
	title := strings.TrimSpace(topic.Title)
	if title == "" {
		return GeneratedBlog{}, ErrTitleEmpty
	}
	details := strings.TrimSpace(topic.Details)

	prompt := buildGenerationPrompt(title, details)
	logAIExchange("generate", "prompt", prompt)

	result, err := s.client.call(ctx, generationRequest{
		UserPrompt:  prompt,
		MaxTokens:   defaultGenerateMaxTokens,
		Temperature: defaultGenerateTemperature,
	})
	if err != nil {
		return GeneratedBlog{}, err
	}
	logAIExchange("generate", "response", result.Content)

	body := strings.TrimSpace(result.Content)
	if body == "" {
		return GeneratedBlog{}, fmt.Errorf("provider returned empty article for %q", title)
	}

	return GeneratedBlog{
		Title:        title,
		Details:      details,
		Body:         body,
		BodyHTML:     RenderMarkdown(body),
		FilenameBase: Slugify(title),
		Category:     DetectCategory(title, details),
		Date:         time.Now(),
	}, nil
}

func buildGenerationPrompt(title, details string) string {
	var builder strings.Builder
	if isTechnicalTopic(title, details) {
		builder.WriteString("Write a high-quality programming blog article titled '")
	} else {
		builder.WriteString("Write a high-quality blog article titled '")
	}
	builder.WriteString(title)
	builder.WriteString("'.")
	if details != "" {
		builder.WriteString(" ")
		builder.WriteString(details)
	}
	return builder.String()
}

func isTechnicalTopic(title, details string) bool {
	text := strings.ToLower(title + " " + details)
	for _, keyword := range technicalKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// ParseTopics splits a multi-line submission into topics. Each non-empty
// line is "Title" or "Title | details"; blank lines are skipped.
func ParseTopics(input string) []Topic {
	var topics []Topic
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title, details, _ := strings.Cut(line, "|")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		topics = append(topics, Topic{Title: title, Details: strings.TrimSpace(details)})
	}
	return topics
}
