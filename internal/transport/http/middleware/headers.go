package middleware

import "net/http"

// DefaultHeaders sets User-Agent and Accept unless the caller already did.
func DefaultHeaders(userAgent string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			out := r.Clone(r.Context())
			if out.Header.Get("User-Agent") == "" && userAgent != "" {
				out.Header.Set("User-Agent", userAgent)
			}
			if out.Header.Get("Accept") == "" {
				out.Header.Set("Accept", "application/json, text/csv;q=0.9, */*;q=0.5")
			}
			return next.RoundTrip(out)
		})
	}
}
