package cif

import (
	"context"
	"net/http"
	"time"

	"github.com/tphakala/go-cif/internal/api"
)

const resourcePing = "ping"

// Ping issues a connectivity check against the remote and returns the
// wall-clock round-trip duration. The response payload is discarded. On a
// transport failure or a non-200 status the error is returned instead of
// a duration.
func (c *Client) Ping(ctx context.Context, opts ...RequestOption) (time.Duration, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	start := time.Now()
	resp, err := c.transport.Get(ctx, resourcePing, api.NewParams(), reqCfg.headers)
	elapsed := time.Since(start)

	if err != nil {
		return 0, &TransportError{Resource: resourcePing, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Body:       string(resp.Body),
		}
	}

	c.logger.Debugf("ping round trip: %s", elapsed)
	return elapsed, nil
}
