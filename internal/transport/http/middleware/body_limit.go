package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrBodyTooLarge = errors.New("response body too large")

// BodyLimit fails reads of response bodies larger than maxBytes.
func BodyLimit(maxBytes int64) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(r)
			if err != nil || maxBytes <= 0 {
				return resp, err
			}
			if resp.ContentLength > maxBytes {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, resp.ContentLength)
			}
			resp.Body = &limitedBody{body: resp.Body, remaining: maxBytes}
			return resp, nil
		})
	}
}

type limitedBody struct {
	body      io.ReadCloser
	remaining int64
}

func (l *limitedBody) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrBodyTooLarge
	}
	// read one byte past the limit so an exact fit is not reported as too large
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.body.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n + int(l.remaining), ErrBodyTooLarge
	}
	return n, err
}

func (l *limitedBody) Close() error {
	return l.body.Close()
}
