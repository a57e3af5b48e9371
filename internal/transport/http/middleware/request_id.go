package middleware

import (
	"net/http"

	"hrdesk/internal/requestctx"
)

const RequestIDHeader = "X-Request-ID"

// RequestID stamps every outgoing request with X-Request-ID, reusing the id
// already carried by the request context.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		ctx, reqID := requestctx.EnsureRequestID(r.Context())
		out := r.Clone(ctx)
		out.Header.Set(RequestIDHeader, reqID)
		return next.RoundTrip(out)
	})
}
