package cif

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	remote             string
	token              string
	timeout            time.Duration
	proxy              string
	insecureSkipVerify bool
	httpClient         *http.Client
	userAgent          string
	logger             Logger
}

// WithRemote sets the base URL of the remote service.
func WithRemote(remote string) ClientOption {
	return func(c *clientConfig) {
		c.remote = remote
	}
}

// WithToken sets the authentication token. A token is required.
func WithToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithTimeout sets the request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) ClientOption {
	return func(c *clientConfig) {
		c.proxy = proxyURL
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. The
// security consequences are the caller's responsibility.
func WithInsecureSkipVerify() ClientOption {
	return func(c *clientConfig) {
		c.insecureSkipVerify = true
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout, proxy, and TLS
// options are ignored when this is used.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger injects a leveled logger. The default is a no-op.
func WithLogger(l Logger) ClientOption {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// RequestOption configures individual read requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithRequestID sets the X-Request-ID header for tracing.
func WithRequestID(id string) RequestOption {
	return WithHeader("X-Request-ID", id)
}

// WithNewRequestID sets a freshly generated X-Request-ID header.
func WithNewRequestID() RequestOption {
	return WithRequestID(uuid.NewString())
}
