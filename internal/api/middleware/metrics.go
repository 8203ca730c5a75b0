package middleware

import (
	"net/http"
	"strconv"
	"time"

	"spaceflow/pkg/metrics"
)

// statusRecorder captures the status code the wrapped handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware counts and times every request, labeled by method, path
// and numeric status.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		metrics.RecordHttpRequest(r.Method, r.URL.Path, strconv.Itoa(recorder.status), time.Since(start))
	})
}
