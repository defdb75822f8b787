// Package middleware holds the HTTP middleware applied to every route.
package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fcja/agendamentos/pkg/metrics"
)

// statusWriter captures the response status for the metrics labels.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Metrics records request count and latency per route. The route template
// ("/agendar/{categoria}") is used as the path label so the cardinality stays
// bounded.
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}
			m.ObserveRequest(r.Method, path, sw.status, time.Since(start))
		})
	}
}
