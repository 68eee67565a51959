package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	RequestStarted()
	RequestFinished(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports each request to obs under the given
// route label. Routes are labelled by the caller so path parameters never
// reach the label set. A panicking handler is counted as a 500 and the panic
// is passed on to the outer recovery layer.
func Metrics(obs httpObserver, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			obs.RequestStarted()
			defer func() {
				status := sw.status
				rec := recover()
				if rec != nil {
					status = http.StatusInternalServerError
				}
				obs.RequestFinished(r.Method, route, status, time.Since(start))
				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
