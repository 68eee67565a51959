package teacher

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/heartmarshall/word-teacher/internal/domain"
	"github.com/heartmarshall/word-teacher/pkg/ctxutil"
)

// errInternal replaces a recovered panic in the envelope. The panic value
// itself is only logged.
var errInternal = errors.New("internal error")

// Run executes the pipeline for raw and always returns an envelope. Failures
// are reported through Success=false and Error, never as a Go error or panic.
func (s *Service) Run(ctx context.Context, raw domain.RawRequest) domain.TeachingResponse {
	resp, _ := s.Teach(ctx, raw)
	return resp
}

// Teach is Run plus the Outcome, which transports use to choose a status code.
func (s *Service) Teach(ctx context.Context, raw domain.RawRequest) (domain.TeachingResponse, Outcome) {
	log := s.log.With(slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)))
	start := time.Now()

	sc := stageContext{raw: raw}
	for _, st := range s.stages() {
		next, err := s.runStage(ctx, st, sc)
		if err != nil {
			kind := domain.KindOf(err)
			msg := st.prefix + ": " + err.Error()

			level := slog.LevelWarn
			if kind != domain.KindValidation && kind != domain.KindNotFound {
				level = slog.LevelError
			}
			log.Log(ctx, level, "teaching failed",
				slog.String("stage", st.name.String()),
				slog.String("kind", kind.String()),
				slog.String("error", msg),
				slog.Duration("duration", time.Since(start)),
			)

			s.metrics.ObserveRun(st.name.String(), kind)
			return domain.NewFailureResponse(raw, msg, s.now()), Outcome{Stage: st.name, Kind: kind}
		}
		sc = next
	}

	log.Info("word taught",
		slog.String("word", sc.request.Word),
		slog.String("style", sc.request.Style.String()),
		slog.String("level", sc.request.Level.String()),
		slog.Int("entries", len(sc.entries)),
		slog.String("phonetic", sc.phonetic.Text),
		slog.Duration("duration", time.Since(start)),
	)

	s.metrics.ObserveRun("", "")
	return sc.response, Outcome{}
}

// runStage runs one stage, times it and turns a panic into an error.
func (s *Service) runStage(ctx context.Context, st stage, sc stageContext) (next stageContext, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "panic recovered",
				slog.String("stage", st.name.String()),
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			next, err = sc, errInternal
		}
		s.metrics.ObserveStage(st.name.String(), time.Since(start), err)
	}()

	return st.run(ctx, sc)
}
