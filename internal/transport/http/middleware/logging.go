package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/requestctx"
)

// Logger logs every backend call and records it on collector. collector may
// be nil.
func Logger(logger *slog.Logger, collector *metrics.Collector) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			duration := time.Since(start)

			endpoint := requestctx.GetEndpoint(r.Context())
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			collector.Record(endpoint, status, duration)

			attrs := []any{
				"endpoint", endpoint,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"durationMs", duration.Milliseconds(),
				"requestId", r.Header.Get(RequestIDHeader),
			}
			switch {
			case err != nil:
				logger.Warn("backend call failed", append(attrs, "err", err)...)
			case status >= 500:
				logger.Warn("backend call returned server error", attrs...)
			default:
				logger.Debug("backend call", attrs...)
			}
			return resp, err
		})
	}
}
