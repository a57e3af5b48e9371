package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/requestctx"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

const (
	EndpointEmployeeAdd    = "employee.add"
	EndpointEmployeeSearch = "employee.search"
	EndpointEmployeeDelete = "employee.delete"
	EndpointPayrollCreate  = "payroll.create"
	EndpointExport         = "export"
	EndpointStatus         = "status"
	EndpointLogin          = "login"

	defaultMaxBodyBytes = 4 << 20
)

type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	Logger       *slog.Logger
	Metrics      *metrics.Collector
	// Transport is the innermost round tripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client talks to the HR backend. Session cookies set by Login are kept for
// later calls. Redirects are never followed: the backend answers unauthenticated
// calls with a redirect to its login page.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", opts.BaseURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	maxBody := opts.MaxBodyBytes
	if maxBody == 0 {
		maxBody = defaultMaxBodyBytes
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "hrdesk"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := middleware.Chain(opts.Transport,
		middleware.RequestID,
		middleware.DefaultHeaders(userAgent),
		middleware.Logger(opts.Logger, opts.Metrics),
		middleware.BodyLimit(maxBody),
	)

	return &Client{
		baseURL: base,
		timeout: timeout,
		http: &http.Client{
			Transport: transport,
			Jar:       jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpointURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	u.RawPath = ""
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends req under the client timeout. The caller closes the body.
func (c *Client) do(ctx context.Context, endpoint, method, target string, body io.Reader, contentType string) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	ctx = requestctx.WithEndpoint(ctx, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return resp, cancel, nil
}

func isRedirect(resp *http.Response) bool {
	return resp.StatusCode >= 300 && resp.StatusCode < 400
}

func redirectsToLogin(resp *http.Response) bool {
	if !isRedirect(resp) {
		return false
	}
	location, err := resp.Location()
	if err != nil {
		return false
	}
	return strings.TrimRight(location.Path, "/") == "/login"
}

// decode turns a backend answer into out. A body that is not JSON is a
// decode failure whatever the status; only parsed bodies can carry an
// application error.
func decode(op string, resp *http.Response, out any) error {
	if redirectsToLogin(resp) {
		return ErrUnauthorized
	}
	if err := api.DecodeJSON(resp, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
