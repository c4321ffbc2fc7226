// Package refresh_feed_usecase fans the ingest gate out over a scope's
// feeds: bounded concurrency, all-settle, one summary.
package refresh_feed_usecase

import (
	"context"

	"intmon/domain"
	"intmon/port/feed_source_port"
	"intmon/usecase/ingest_usecase"
	"intmon/utils/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type RefreshFeedUsecase struct {
	feedSourceGateway feed_source_port.FeedSourcePort
	ingestUsecase     *ingest_usecase.IngestUsecase
	concurrency       int
}

func NewRefreshFeedUsecase(feedSourceGateway feed_source_port.FeedSourcePort, ingestUsecase *ingest_usecase.IngestUsecase, concurrency int) *RefreshFeedUsecase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RefreshFeedUsecase{
		feedSourceGateway: feedSourceGateway,
		ingestUsecase:     ingestUsecase,
		concurrency:       concurrency,
	}
}

// RefreshScope ingests every feed in the scope, stalest first. One
// feed's failure never aborts its siblings; failures become summary
// entries. Results keep the listing order regardless of completion
// order.
func (u *RefreshFeedUsecase) RefreshScope(ctx context.Context, scope domain.FeedScope) (*domain.RefreshSummary, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	feeds, err := u.feedSourceGateway.ListByScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	summary := u.refreshFeeds(ctx, feeds)

	logger.SafeInfoContext(ctx, "Scope refresh finished",
		"scope", scope.Key(),
		"attempted", summary.FeedsAttempted,
		"succeeded", summary.FeedsSucceeded,
		"new_items", summary.TotalNewItems)

	return summary, nil
}

// refreshFeeds runs the ingest gate over feeds with bounded
// concurrency. Results keep the listing order regardless of
// completion order, and goroutines never return errors so one feed's
// failure never aborts its siblings.
func (u *RefreshFeedUsecase) refreshFeeds(ctx context.Context, feeds []*domain.FeedSource) *domain.RefreshSummary {
	results := make([]domain.IngestResult, len(feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, feed := range feeds {
		g.Go(func() error {
			results[i] = u.ingestUsecase.Ingest(gctx, feed)
			return nil
		})
	}
	_ = g.Wait()

	summary := &domain.RefreshSummary{
		FeedsAttempted: len(feeds),
		Results:        results,
	}
	for _, result := range results {
		if result.Err == nil {
			summary.FeedsSucceeded++
			summary.TotalNewItems += result.NewItemCount
		}
	}
	return summary
}

// RefreshAll ingests every registered feed across all scopes. This is
// the background refresh pass; failures are summarized, never fatal.
func (u *RefreshFeedUsecase) RefreshAll(ctx context.Context) (*domain.RefreshSummary, error) {
	feeds, err := u.feedSourceGateway.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := u.refreshFeeds(ctx, feeds)

	logger.SafeInfoContext(ctx, "Background refresh finished",
		"attempted", summary.FeedsAttempted,
		"succeeded", summary.FeedsSucceeded,
		"new_items", summary.TotalNewItems)

	return summary, nil
}

// RefreshSingle ingests one feed on demand.
func (u *RefreshFeedUsecase) RefreshSingle(ctx context.Context, feedID uuid.UUID, scope domain.FeedScope) (*domain.IngestResult, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	feed, err := u.feedSourceGateway.GetByID(ctx, feedID, scope)
	if err != nil {
		return nil, err
	}

	result := u.ingestUsecase.Ingest(ctx, feed)
	return &result, nil
}
