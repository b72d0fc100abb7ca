package cif

import (
	"context"

	"github.com/tphakala/go-cif/internal/api"
)

const resourceFeeds = "feeds"

// FeedService provides operations on the feeds resource: aggregated,
// pre-filtered observable sets maintained by the remote service.
type FeedService interface {
	// Search returns the feed records matching the filter.
	Search(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error)

	// Submit uploads one or more feed records.
	Submit(ctx context.Context, observables ...*Observable) (*SubmitResult, error)
}

// feedService implements FeedService.
type feedService struct {
	resourceClient
}

func newFeedService(transport *api.Transport, logger Logger) *feedService {
	return &feedService{resourceClient{
		transport: transport,
		resource:  resourceFeeds,
		logger:    logger,
	}}
}

// Search returns the feed records matching the filter.
func (s *feedService) Search(ctx context.Context, filter *SearchFilter, opts ...RequestOption) ([]*Observable, error) {
	return s.search(ctx, filter.params(), opts...)
}

// Submit uploads one or more feed records.
func (s *feedService) Submit(ctx context.Context, observables ...*Observable) (*SubmitResult, error) {
	return s.submit(ctx, observables)
}
