// Package openai generates teaching content through an OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
	"github.com/heartmarshall/word-teacher/internal/prompt"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	providerName   = "openai"

	systemPrompt = "You are an English teacher who replies with a single JSON object and nothing else."

	maxErrorBody = 4 << 10
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Enhancer turns dictionary entries into EnhancedContent using a chat model.
type Enhancer struct {
	apiKey      string
	keySetting  string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
	log         *slog.Logger
}

// NewEnhancer creates an Enhancer from the enhancer settings. A missing API
// key is reported by Enhance, not here.
func NewEnhancer(cfg config.EnhancerConfig, logger *slog.Logger) *Enhancer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Enhancer{
		apiKey:      cfg.APIKey,
		keySetting:  cfg.KeySetting(),
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "openai"),
	}
}

// Enhance asks the model for teaching content about req.Word.
func (e *Enhancer) Enhance(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error) {
	if e.apiKey == "" {
		return domain.EnhancedContent{}, &domain.ConfigError{Setting: e.keySetting}
	}

	text, err := prompt.BuildTeachingPrompt(entries, req)
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, err)
	}

	payload, err := json.Marshal(chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:      e.maxTokens,
		Temperature:    e.temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)

	start := time.Now()
	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		e.log.ErrorContext(ctx, "openai request failed", slog.String("word", req.Word), slog.String("error", err.Error()))
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.EnhancedContent{}, statusError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, &domain.FormatError{
			Source:  providerName,
			Message: "cannot decode chat completion",
			Err:     err,
		})
	}

	e.log.DebugContext(ctx, "openai response",
		slog.String("word", req.Word),
		slog.String("model", out.Model),
		slog.Int("prompt_tokens", out.Usage.PromptTokens),
		slog.Int("completion_tokens", out.Usage.CompletionTokens),
		slog.Duration("duration", time.Since(start)),
	)

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("empty response for %q", req.Word),
		})
	}

	content, err := prompt.ParseEnhancedContent(out.Choices[0].Message.Content)
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("cannot parse content for %q", req.Word),
			Err:     err,
		})
	}

	return content, nil
}

// statusError builds an UpstreamError from a non-200 response, keeping the
// provider's error message as the cause when there is one.
func statusError(resp *http.Response) *domain.UpstreamError {
	upErr := &domain.UpstreamError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
		upErr.Err = errors.New(er.Error.Message)
	}
	return upErr
}
