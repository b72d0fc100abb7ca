package cif

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/tphakala/go-cif/internal/api"
	"github.com/tphakala/go-cif/internal/auth"
)

// Default configuration values.
const (
	defaultRemote  = "https://localhost"
	defaultTimeout = 300 * time.Second
)

// Client is the CIF API client. A single Client shares one underlying
// HTTP executor and is safe for concurrent use; its configuration is
// immutable after construction.
type Client struct {
	// Observables provides access to indicator search and submission.
	Observables ObservableService

	// Feeds provides access to aggregated feed search and submission.
	Feeds FeedService

	transport *api.Transport
	logger    Logger
}

// NewClient creates a new CIF client with the given options. A token is
// required; the remote defaults to https://localhost, the timeout to 300
// seconds, and TLS verification is enabled unless explicitly disabled.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		remote:  defaultRemote,
		timeout: defaultTimeout,
		logger:  nopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	token := auth.Token(cfg.token)
	if !token.Valid() {
		return nil, ErrNoToken
	}

	transport, err := api.NewTransport(api.Config{
		Remote:             cfg.remote,
		Token:              token,
		Timeout:            cfg.timeout,
		Proxy:              cfg.proxy,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		HTTPClient:         cfg.httpClient,
		Logger:             cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}

	client := &Client{
		transport: transport,
		logger:    cfg.logger,
	}

	// Initialize services
	client.Observables = newObservableService(transport, cfg.logger)
	client.Feeds = newFeedService(transport, cfg.logger)

	return client, nil
}

// envSettings mirrors the environment variables the original SDK reads.
type envSettings struct {
	Remote      string `envconfig:"REMOTE"`
	Token       string `envconfig:"TOKEN"`
	Timeout     int    `envconfig:"TIMEOUT"`
	Proxy       string `envconfig:"PROXY"`
	NoVerifySSL bool   `envconfig:"NO_VERIFY_SSL"`
}

// NewClientFromEnv creates a client configured from CIF_REMOTE, CIF_TOKEN,
// CIF_TIMEOUT (seconds), CIF_PROXY, and CIF_NO_VERIFY_SSL. Explicit
// options override the environment.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	var env envSettings
	if err := envconfig.Process("cif", &env); err != nil {
		return nil, fmt.Errorf("cif: reading environment: %w", err)
	}

	var envOpts []ClientOption
	if env.Remote != "" {
		envOpts = append(envOpts, WithRemote(env.Remote))
	}
	if env.Token != "" {
		envOpts = append(envOpts, WithToken(env.Token))
	}
	if env.Timeout > 0 {
		envOpts = append(envOpts, WithTimeout(time.Duration(env.Timeout)*time.Second))
	}
	if env.Proxy != "" {
		envOpts = append(envOpts, WithProxy(env.Proxy))
	}
	if env.NoVerifySSL {
		envOpts = append(envOpts, WithInsecureSkipVerify())
	}

	return NewClient(append(envOpts, opts...)...)
}

// Remote returns the configured base URL of the remote service.
func (c *Client) Remote() string {
	return c.transport.BaseURL.String()
}
