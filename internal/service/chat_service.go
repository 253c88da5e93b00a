package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	defaultChatMaxTokens   = 1000
	defaultChatTemperature = 0.7
	chatTimeout            = 20 * time.Second
)

// ErrChatEmptyReply is returned when the provider produced no usable text.
var ErrChatEmptyReply = errors.New("assistant returned an empty reply")

// multiOptionPattern finds a standalone count (2-9 or any multi-digit
// number) in the message, which signals the user wants several numbered
// suggestions instead of a single rewrite.
var multiOptionPattern = regexp.MustCompile(`\b([2-9]|\d{2,})\b`)

const singleSuggestionPrompt = `You are an expert writing and content assistant specializing in creating compelling titles, headlines, and alternative phrasings.

IMPORTANT INSTRUCTIONS:
- Provide a SINGLE, high-quality alternative or improvement
- Do NOT provide multiple options unless explicitly asked
- Provide the complete, full-length response
- Keep the tone professional and natural
- Make the alternative meaningfully different from the original

Provide ONLY ONE response, no numbering, no "Option 1:", just the improved text directly.`

const multiSuggestionPrompt = `You are an expert writing and content assistant specializing in creating compelling titles, headlines, and alternative phrasings.

IMPORTANT INSTRUCTIONS:
- When asked for alternatives, provide COMPLETE, FULL-LENGTH options
- Do NOT truncate or shorten options - provide the complete version of each
- Number each option clearly (1., 2., 3., etc.)
- Each option should be a complete, ready-to-use alternative
- Provide diverse variations that differ in tone, structure, and emphasis
- Make each option meaningfully different and unique from others
- Keep options professional and well-written

FORMAT YOUR RESPONSE:
1. [Complete first option here - full text]
2. [Complete second option here - full text]
3. [Complete third option here - full text]

Always provide COMPLETE OPTIONS, never truncate them.`

// EditAssistant answers edit-suggestion requests for article content.
type EditAssistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ChatService proxies conversational edit requests to the generation
// provider with a prompt chosen by the multi-option heuristic.
type ChatService struct {
	client *geminiClient
}

// NewChatService constructs a ChatService. The chat key may differ from the
// blog-generation key; callers pass whichever is configured.
func NewChatService(apiKey, model string) *ChatService {
	return &ChatService{client: newGeminiClient(apiKey, model, chatTimeout)}
}

// SetHTTPClient overrides the provider HTTP client, mainly for tests.
func (s *ChatService) SetHTTPClient(client httpDoer) {
	s.client.SetHTTPClient(client)
}

// SetBaseURL overrides the provider base URL, mainly for tests.
func (s *ChatService) SetBaseURL(base string) {
	s.client.SetBaseURL(base)
}

// Reply generates a short assistant answer for the user message.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", errors.New("message cannot be empty")
	}

	systemPrompt := singleSuggestionPrompt
	if asksForMultipleOptions(trimmed) {
		systemPrompt = multiSuggestionPrompt
	}
	logAIExchange("chat", "prompt", trimmed)

	result, err := s.client.call(ctx, generationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   trimmed,
		MaxTokens:    defaultChatMaxTokens,
		Temperature:  defaultChatTemperature,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(result.Content)
	logAIExchange("chat", "response", reply)
	if reply == "" {
		return "", ErrChatEmptyReply
	}
	return reply, nil
}

func asksForMultipleOptions(message string) bool {
	return multiOptionPattern.MatchString(strings.ToLower(message))
}
