// Package anthropic generates teaching content with the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
	"github.com/heartmarshall/word-teacher/internal/prompt"
)

const providerName = "anthropic"

// Enhancer turns dictionary entries into EnhancedContent using Claude.
type Enhancer struct {
	client      sdk.Client
	hasKey      bool
	keySetting  string
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	log         *slog.Logger
}

// NewEnhancer creates an Enhancer from the enhancer settings. A missing API
// key is not an error here; Enhance reports it on every call instead.
func NewEnhancer(cfg config.EnhancerConfig, logger *slog.Logger) *Enhancer {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Enhancer{
		client:      sdk.NewClient(opts...),
		hasKey:      cfg.APIKey != "",
		keySetting:  cfg.KeySetting(),
		model:       cfg.Model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		log:         logger.With("adapter", "anthropic"),
	}
}

// Enhance asks the model for teaching content about req.Word.
func (e *Enhancer) Enhance(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error) {
	if !e.hasKey {
		return domain.EnhancedContent{}, &domain.ConfigError{Setting: e.keySetting}
	}

	text, err := prompt.BuildTeachingPrompt(entries, req)
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := e.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(e.model),
		MaxTokens:   e.maxTokens,
		Temperature: sdk.Float(e.temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(text)),
		},
	})
	if err != nil {
		e.log.ErrorContext(ctx, "anthropic request failed",
			slog.String("word", req.Word),
			slog.String("error", err.Error()),
		)
		return domain.EnhancedContent{}, upstreamError(err)
	}

	e.log.DebugContext(ctx, "anthropic response",
		slog.String("word", req.Word),
		slog.String("model", string(msg.Model)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)

	reply := replyText(msg)
	if reply == "" {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("empty response for %q", req.Word),
		})
	}

	content, err := prompt.ParseEnhancedContent(reply)
	if err != nil {
		return domain.EnhancedContent{}, domain.NewUpstreamError(providerName, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("cannot parse content for %q", req.Word),
			Err:     err,
		})
	}

	return content, nil
}

// replyText joins the text blocks of a message.
func replyText(msg *sdk.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// upstreamError maps an SDK failure to an UpstreamError. For API errors the
// cause is the message from the error body, falling back to the SDK error.
func upstreamError(err error) *domain.UpstreamError {
	var apiErr *sdk.Error
	if !errors.As(err, &apiErr) {
		return domain.NewUpstreamError(providerName, err)
	}

	cause := err
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(apiErr.RawJSON()), &body) == nil && body.Error.Message != "" {
		cause = errors.New(body.Error.Message)
	}

	return &domain.UpstreamError{
		Provider:   providerName,
		StatusCode: apiErr.StatusCode,
		Reason:     http.StatusText(apiErr.StatusCode),
		Err:        cause,
	}
}
