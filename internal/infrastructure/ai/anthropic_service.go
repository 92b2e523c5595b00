package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stoyanovb/gradina-api/internal/application/ports"
)

// Compile-time check that AnthropicService implements LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	systemPrompt = `Ти си копирайтър на български онлайн магазин за градински растения и цветя.
Напиши кратко продуктово описание на български език (60-120 думи) за посочения продукт.
Тонът е топъл и практичен: какво представлява растението, къде вирее (слънце/сянка, полив),
за кого е подходящо. Без заглавие, без списъци, без маркетингови клишета, само свързан текст.`
)

// AnthropicService implements the LLM port over the Anthropic Messages
// REST API with plain net/http; no SDK needed.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService constructs the adapter. An empty apiKey makes calls
// return a descriptive error instead of panicking.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		// Network timeout; the use case adds its own context deadline.
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateProductDescription asks the model for a Bulgarian description.
func (s *AnthropicService) GenerateProductDescription(ctx context.Context, name, latinName, category, keywords string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("ai: ANTHROPIC_API_KEY is not configured")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Продукт: %s\n", name)
	if latinName != "" {
		fmt.Fprintf(&sb, "Латинско име: %s\n", latinName)
	}
	if category != "" {
		fmt.Fprintf(&sb, "Категория: %s\n", category)
	}
	if keywords != "" {
		fmt.Fprintf(&sb, "Ключови думи: %s\n", keywords)
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: sb.String()}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: call messages API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("ai: API error %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai: unexpected status %d", resp.StatusCode)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("ai: empty completion")
}
