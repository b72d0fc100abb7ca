package cif

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tphakala/go-cif/internal/api"
)

// resourceClient implements the read/write cycle shared by the observables
// and feeds resources: build the request, execute it, classify the outcome.
type resourceClient struct {
	transport *api.Transport
	resource  string
	logger    Logger
}

// search issues a read request and decodes the body on status 200. Any
// other status yields an *APIError carrying the raw, unparsed body.
func (r *resourceClient) search(ctx context.Context, params *api.Params, opts ...RequestOption) ([]*Observable, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	resp, err := r.transport.Get(ctx, r.resource, params, reqCfg.headers)
	if err != nil {
		return nil, &TransportError{Resource: r.resource, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Errorf("search %s failed: %d %s", r.resource, resp.StatusCode, resp.Reason)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Body:       string(resp.Body),
		}
	}

	var results []*Observable
	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return nil, &DecodeError{Resource: r.resource, Err: err}
	}
	return results, nil
}

// submit serializes the records as a JSON sequence and PUTs them. Status
// >= 399 is escalated: logged at fatal level and returned as a
// *SubmissionError rather than an ordinary API error.
func (r *resourceClient) submit(ctx context.Context, observables []*Observable) (*SubmitResult, error) {
	if len(observables) == 0 {
		return nil, ErrNoObservables
	}

	body, err := json.Marshal(observables)
	if err != nil {
		return nil, fmt.Errorf("cif: encoding %s submission: %w", r.resource, err)
	}

	resp, err := r.transport.Put(ctx, r.resource, body, nil)
	if err != nil {
		return nil, &TransportError{Resource: r.resource, Err: err}
	}

	if resp.StatusCode >= 399 {
		r.logger.Fatalf("submission to %s failed: %d %s: contact the service administrator", r.resource, resp.StatusCode, resp.Reason)
		return nil, &SubmissionError{APIError: APIError{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Body:       string(resp.Body),
		}}
	}

	result := &SubmitResult{
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
		Headers:    resp.Headers,
	}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &result.Payload); err != nil {
			return nil, &DecodeError{Resource: r.resource, Err: err}
		}
	}
	return result, nil
}
