package cif

import (
	"context"

	"github.com/tphakala/go-cif/internal/api"
)

const resourceObservables = "observables"

// ObservableService provides operations on the observables resource.
//
//go:generate mockery --name=ObservableService --output=mocks --outpkg=mocks --filename=observable_service.go
type ObservableService interface {
	// Search returns the observables matching the filter. All filter
	// fields pass through to the query string; zero-valued fields are
	// omitted.
	Search(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error)

	// SearchByID looks up records by identifier. Only the filter's ID and
	// Token fields are sent; every other field is discarded.
	SearchByID(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error)

	// Submit uploads one or more records. A single record and a
	// one-element sequence produce identical request bodies.
	Submit(ctx context.Context, observables ...*Observable) (*SubmitResult, error)
}

// observableService implements ObservableService.
type observableService struct {
	resourceClient
}

func newObservableService(transport *api.Transport, logger Logger) *observableService {
	return &observableService{resourceClient{
		transport: transport,
		resource:  resourceObservables,
		logger:    logger,
	}}
}

// Search returns the observables matching the filter.
func (s *observableService) Search(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error) {
	return s.search(ctx, filter.params(), opts...)
}

// SearchByID looks up records by identifier.
func (s *observableService) SearchByID(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error) {
	return s.search(ctx, filter.idParams(), opts...)
}

// Submit uploads one or more records.
func (s *observableService) Submit(ctx context.Context, observables ...*Observable) (*SubmitResult, error) {
	return s.submit(ctx, observables)
}
