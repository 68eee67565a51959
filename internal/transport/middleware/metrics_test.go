package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type observedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	started  int
	finished []observedRequest
}

func (f *fakeObserver) RequestStarted() { f.started++ }

func (f *fakeObserver) RequestFinished(method, route string, status int, _ time.Duration) {
	f.finished = append(f.finished, observedRequest{method: method, route: route, status: status})
}

func TestMetrics_RecordsStatusAndRoute(t *testing.T) {
	obs := &fakeObserver{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := Metrics(obs, "/api/word-teacher")(handler)
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/word-teacher", nil))

	if obs.started != 1 {
		t.Errorf("expected 1 started request, got %d", obs.started)
	}
	if len(obs.finished) != 1 {
		t.Fatalf("expected 1 finished request, got %d", len(obs.finished))
	}
	want := observedRequest{method: http.MethodPost, route: "/api/word-teacher", status: http.StatusNotFound}
	if obs.finished[0] != want {
		t.Errorf("expected %+v, got %+v", want, obs.finished[0])
	}
}

func TestMetrics_DefaultStatusOK(t *testing.T) {
	obs := &fakeObserver{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	Metrics(obs, "/api/health")(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if len(obs.finished) != 1 || obs.finished[0].status != http.StatusOK {
		t.Errorf("expected one request with status 200, got %+v", obs.finished)
	}
}

func TestMetrics_FinishedOnPanic(t *testing.T) {
	obs := &fakeObserver{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	var repanicked any
	func() {
		defer func() { repanicked = recover() }()
		Metrics(obs, "/x")(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	}()

	if repanicked != "boom" {
		t.Errorf("expected panic to propagate, got %v", repanicked)
	}
	if len(obs.finished) != 1 {
		t.Fatalf("expected request to be recorded after panic, got %d", len(obs.finished))
	}
	if obs.finished[0].status != http.StatusInternalServerError {
		t.Errorf("expected status 500 for panicking handler, got %d", obs.finished[0].status)
	}
}

func TestMetrics_InsideRecoveryCountsPanicAs500(t *testing.T) {
	obs := &fakeObserver{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var s []int
		_ = s[3]
	})

	rec := httptest.NewRecorder()
	Chain(Recovery(logger), Metrics(obs, "/api/word-teacher"))(handler).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/word-teacher", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("client status = %d, want 500", rec.Code)
	}
	if len(obs.finished) != 1 || obs.finished[0].status != http.StatusInternalServerError {
		t.Errorf("recorded %+v, want one request with status 500", obs.finished)
	}
}
