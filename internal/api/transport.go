// Package api provides the low-level HTTP transport for CIF API calls.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tphakala/go-cif/internal/auth"
)

// APIVersion is the remote API version advertised in the Accept header.
const APIVersion = 2

const (
	defaultHTTPTimeout = 300 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Logger is the subset of the client logger the transport emits to.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Config carries the immutable settings a Transport is built from.
type Config struct {
	// Remote is the base URL of the service.
	Remote string

	// Token is the configured credential, appended to every request unless
	// the caller supplies an explicit token parameter on a read request.
	Token auth.Token

	// Timeout is the hard upper bound on a single request. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// Proxy is an optional proxy URL. Empty means a direct connection.
	Proxy string

	// InsecureSkipVerify disables TLS certificate verification. Disabling
	// verification is the caller's responsibility.
	InsecureSkipVerify bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient, when set, is used verbatim and Timeout, Proxy and
	// InsecureSkipVerify are ignored.
	HTTPClient *http.Client

	// Logger receives debug events. Nil means no logging.
	Logger Logger
}

// Transport executes CIF API requests. A single Transport shares one
// http.Client and is safe for concurrent use; it holds no per-call state.
type Transport struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Token      auth.Token
	UserAgent  string

	logger Logger
}

// NewTransport creates a Transport from cfg.
func NewTransport(cfg Config) (*Transport, error) {
	u, err := url.Parse(strings.TrimSuffix(cfg.Remote, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid remote URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}

		tr := &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		}
		if cfg.Proxy != "" {
			proxyURL, err := url.Parse(cfg.Proxy)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy URL: %w", err)
			}
			tr.Proxy = http.ProxyURL(proxyURL)
		}
		if cfg.InsecureSkipVerify {
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-in
		}

		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: tr,
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Transport{
		BaseURL:    u,
		HTTPClient: httpClient,
		Token:      cfg.Token,
		UserAgent:  "go-cif/1.0",
		logger:     logger,
	}, nil
}

// Response is the raw outcome of a single request.
type Response struct {
	StatusCode int
	Reason     string
	Body       []byte
	Headers    http.Header
}

// Get issues a read request to <remote>/<resource>?token=...&k=v. The
// token always encodes first; when params already carries a token it
// overrides the configured one. params may be nil.
func (t *Transport) Get(ctx context.Context, resource string, params *Params, headers http.Header) (*Response, error) {
	if params == nil {
		params = NewParams()
	}
	if params.Get("token") == "" {
		params.SetLeading("token", string(t.Token))
	} else {
		params.SetLeading("token", params.Get("token"))
	}

	u := t.BaseURL.JoinPath(resource)
	u.RawQuery = params.Encode()

	t.logger.Debugf("GET %s://%s%s (token=%s)", u.Scheme, u.Host, u.Path, t.Token.Redacted())
	return t.do(ctx, http.MethodGet, u, nil, headers)
}

// Put issues a write request to <remote>/<resource>/?token=... with body
// as the request payload. Only the configured token is used on this path.
func (t *Transport) Put(ctx context.Context, resource string, body []byte, headers http.Header) (*Response, error) {
	params := NewParams()
	params.SetLeading("token", string(t.Token))

	u := t.BaseURL.JoinPath(resource)
	u.Path += "/"
	u.RawQuery = params.Encode()

	t.logger.Debugf("PUT %s://%s%s (%d bytes, token=%s)", u.Scheme, u.Host, u.Path, len(body), t.Token.Redacted())
	return t.do(ctx, http.MethodPut, u, body, headers)
}

func (t *Transport) do(ctx context.Context, method string, u *url.URL, body []byte, headers http.Header) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", fmt.Sprintf("application/vnd.cif.v%d+json", APIVersion))
	httpReq.Header.Set("User-Agent", t.UserAgent)
	maps.Copy(httpReq.Header, headers)

	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	respBody, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(respBody)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	t.logger.Debugf("%s %s -> %d (%d bytes)", method, httpResp.Request.URL.Path, httpResp.StatusCode, len(respBody))

	return &Response{
		StatusCode: httpResp.StatusCode,
		Reason:     reasonPhrase(httpResp),
		Body:       respBody,
		Headers:    httpResp.Header,
	}, nil
}

// reasonPhrase extracts the HTTP reason phrase from the status line,
// falling back to the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
