// Package teacher runs the word teaching pipeline: validate the request, look
// the word up in the dictionary, generate teaching content and assemble the
// response envelope.
package teacher

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

type dictionaryClient interface {
	Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error)
}

type contentEnhancer interface {
	Enhance(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error)
}

type recorder interface {
	ObserveStage(stage string, d time.Duration, err error)
	ObserveRun(failedStage string, kind domain.ErrorKind)
}

// Service orchestrates one teaching request at a time per call. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	dictionary dictionaryClient
	enhancer   contentEnhancer
	metrics    recorder
	now        func() time.Time
	log        *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock sets the clock used for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRecorder sets where stage timings and run outcomes are reported.
func WithRecorder(r recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// NewService creates a new teaching Service.
func NewService(
	log *slog.Logger,
	dictionary dictionaryClient,
	enhancer contentEnhancer,
	opts ...Option,
) *Service {
	s := &Service{
		dictionary: dictionary,
		enhancer:   enhancer,
		metrics:    nopRecorder{},
		now:        time.Now,
		log:        log.With("service", "teacher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, time.Duration, error) {}
func (nopRecorder) ObserveRun(string, domain.ErrorKind)       {}
