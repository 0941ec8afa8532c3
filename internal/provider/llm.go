package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
)

const llmName = "llm"

// LLMClient обращается к OpenAI-совместимому endpoint chat completions
type LLMClient struct {
	url    string
	apiKey string
	model  string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
}

func NewLLMClient(cfg config.ProvidersConfig) *LLMClient {
	return &LLMClient{
		url:    cfg.LLMURL,
		apiKey: cfg.LLMAPIKey,
		model:  cfg.LLMModel,
		client: newHTTPClient(cfg.Timeout),
		cb:     NewBreaker(llmName, cfg),
	}
}

func (l *LLMClient) Name() string { return llmName }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete отправляет промпт и возвращает текст первого варианта ответа
func (l *LLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	if l.apiKey == "" {
		return "", fmt.Errorf("%s: %w", llmName, ErrNotConfigured)
	}
	return execute(l.cb, func() (string, error) {
		return l.complete(ctx, prompt)
	})
}

func (l *LLMClient) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:          l.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := newJSONRequest(ctx, http.MethodPost, l.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)

	var resp chatResponse
	if err := doJSON(l.client, req, llmName, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("llm response has no content")
	}
	return resp.Choices[0].Message.Content, nil
}
