package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/word-teacher/internal/domain"
	"github.com/heartmarshall/word-teacher/internal/service/teacher"
)

// teachingService defines the minimal interface needed by TeachHandler.
type teachingService interface {
	Teach(ctx context.Context, raw domain.RawRequest) (domain.TeachingResponse, teacher.Outcome)
}

// TeachHandler serves the word teaching endpoint.
type TeachHandler struct {
	svc          teachingService
	maxBodyBytes int64
	now          func() time.Time
	log          *slog.Logger
}

// NewTeachHandler creates a TeachHandler that reads at most maxBodyBytes of
// request body.
func NewTeachHandler(svc teachingService, maxBodyBytes int64, logger *slog.Logger) *TeachHandler {
	return &TeachHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		now:          time.Now,
		log:          logger.With("handler", "teach"),
	}
}

// Teach handles POST /api/word-teacher. The body is {word, style?, level?};
// the response is always a TeachingResponse envelope.
func (h *TeachHandler) Teach(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeRequest(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		status, msg := http.StatusBadRequest, "invalid request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status, msg = http.StatusRequestEntityTooLarge, "request body too large"
		}
		h.log.InfoContext(r.Context(), "rejected request body", slog.String("error", err.Error()))
		writeJSON(w, status, domain.NewFailureResponse(domain.RawRequest{}, msg, h.now()))
		return
	}

	resp, out := h.svc.Teach(r.Context(), raw)
	writeJSON(w, statusFor(out), resp)
}

// decodeRequest reads exactly one JSON object with no unknown fields.
func decodeRequest(body io.Reader) (domain.RawRequest, error) {
	var raw domain.RawRequest

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return domain.RawRequest{}, err
	}
	if dec.More() {
		return domain.RawRequest{}, errors.New("unexpected data after request object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after request object")
		}
		return domain.RawRequest{}, err
	}
	return raw, nil
}

// statusFor maps a pipeline outcome to an HTTP status code.
func statusFor(out teacher.Outcome) int {
	if !out.Failed() {
		return http.StatusOK
	}
	switch out.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUpstream, domain.KindFormat:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
