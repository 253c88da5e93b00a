package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrAPIKeyMissing is returned when no provider API key is configured.
var ErrAPIKeyMissing = errors.New("gemini api key is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type generationRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

type generationResponse struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// geminiClient wraps the generateContent REST endpoint of the generation
// provider. API key and model are fixed at construction; base URL and HTTP
// client can be overridden for tests.
type geminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    httpDoer
}

func newGeminiClient(apiKey, model string, timeout time.Duration) *geminiClient {
	return &geminiClient{
		apiKey:  strings.TrimSpace(apiKey),
		model:   strings.TrimSpace(model),
		baseURL: defaultGeminiBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *geminiClient) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
		return
	}
	c.http = client
}

func (c *geminiClient) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

func (c *geminiClient) SetModel(model string) {
	model = strings.TrimSpace(model)
	if model == "" {
		return
	}
	c.model = model
}

func (c *geminiClient) call(ctx context.Context, req generationRequest) (generationResponse, error) {
	if c.apiKey == "" {
		return generationResponse{}, ErrAPIKeyMissing
	}

	payload := generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.UserPrompt}}}},
	}
	if system := strings.TrimSpace(req.SystemPrompt); system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	payload.GenerationConfig.Temperature = req.Temperature
	payload.GenerationConfig.MaxOutputTokens = req.MaxTokens

	body, err := json.Marshal(payload)
	if err != nil {
		return generationResponse{}, fmt.Errorf("encode generation request: %w", err)
	}

	base := c.baseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimRight(base, "/"), c.model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return generationResponse{}, fmt.Errorf("build gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "blogsmith-ai/1.0")

	client := c.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return generationResponse{}, fmt.Errorf("call gemini endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return generationResponse{}, fmt.Errorf("read gemini response: %w", err)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return generationResponse{}, fmt.Errorf("decode gemini response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errMsg := strings.TrimSpace(parsed.Error.Message)
		if errMsg == "" {
			errMsg = strings.TrimSpace(string(respBody))
		}
		if errMsg == "" {
			errMsg = resp.Status
		}
		return generationResponse{}, fmt.Errorf("gemini returned an error: %s", errMsg)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return generationResponse{}, errors.New("gemini returned no candidates")
	}

	content := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	return generationResponse{
		Content:          content,
		PromptTokens:     parsed.UsageMetadata.PromptTokenCount,
		CompletionTokens: parsed.UsageMetadata.CandidatesTokenCount,
	}, nil
}
