package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/koboapp/kobo/internal/metrics"
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := normalizePath(r.URL.Path)
		metrics.HTTPRequest(r.Method, path, strconv.Itoa(wrapped.statusCode), time.Since(start))
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

var idResources = map[string]bool{
	"expenses":      true,
	"income":        true,
	"subscriptions": true,
	"savings":       true,
	"allocations":   true,
}

// normalizePath collapses record IDs to :id so metric labels stay
// low-cardinality.
func normalizePath(path string) string {
	const prefix = "/api/v1/"
	if !strings.HasPrefix(path, prefix) {
		return path
	}

	parts := strings.Split(path[len(prefix):], "/")
	if len(parts) >= 2 && idResources[parts[0]] && parts[1] != "" {
		parts[1] = ":id"
		return prefix + strings.Join(parts, "/")
	}

	return path
}
