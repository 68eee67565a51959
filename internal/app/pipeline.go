package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/word-teacher/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/word-teacher/internal/adapter/provider/freedict"
	"github.com/heartmarshall/word-teacher/internal/adapter/provider/openai"
	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
	"github.com/heartmarshall/word-teacher/internal/service/teacher"
)

// Enhancer generates teaching content for a validated request.
type Enhancer interface {
	Enhance(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error)
}

// NewEnhancer returns the content enhancer for the configured provider.
func NewEnhancer(cfg config.EnhancerConfig, logger *slog.Logger) (Enhancer, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.NewEnhancer(cfg, logger), nil
	case config.ProviderOpenAI:
		return openai.NewEnhancer(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported enhancer provider %q", cfg.Provider)
	}
}

// NewTeacherService wires the dictionary client and the configured enhancer
// into a teaching pipeline.
func NewTeacherService(cfg *config.Config, logger *slog.Logger, opts ...teacher.Option) (*teacher.Service, error) {
	enhancer, err := NewEnhancer(cfg.Enhancer, logger)
	if err != nil {
		return nil, err
	}

	dictionary := freedict.NewClient(cfg.Dictionary, logger)

	logger.Info("teaching pipeline configured",
		slog.String("dictionary", cfg.Dictionary.BaseURL),
		slog.String("enhancer", cfg.Enhancer.Provider),
		slog.String("model", cfg.Enhancer.Model),
		slog.Bool("credential_set", cfg.Enhancer.APIKey != ""),
	)

	return teacher.NewService(logger, dictionary, enhancer, opts...), nil
}
