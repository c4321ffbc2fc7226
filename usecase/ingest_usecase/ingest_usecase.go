// Package ingest_usecase implements the dedup and persistence gate:
// one feed's fetch cycle, from document retrieval to the count of rows
// that were genuinely new.
package ingest_usecase

import (
	"context"

	"intmon/domain"
	"intmon/port/feed_item_port"
	"intmon/port/feed_status_port"
	"intmon/port/fetch_feed_port"
	"intmon/utils/logger"
)

type IngestUsecase struct {
	fetchFeedGateway  fetch_feed_port.FetchFeedPort
	feedItemGateway   feed_item_port.FeedItemPort
	feedStatusGateway feed_status_port.UpdateFeedStatusPort
}

func NewIngestUsecase(fetchFeedGateway fetch_feed_port.FetchFeedPort, feedItemGateway feed_item_port.FeedItemPort, feedStatusGateway feed_status_port.UpdateFeedStatusPort) *IngestUsecase {
	return &IngestUsecase{
		fetchFeedGateway:  fetchFeedGateway,
		feedItemGateway:   feedItemGateway,
		feedStatusGateway: feedStatusGateway,
	}
}

// Ingest runs one cycle for one feed. The existing-identifier
// projection is read fresh every cycle, never cached across cycles, so
// repeated runs against unchanged upstream content converge to zero
// new items. A benign persistence failure (the rows already exist)
// degrades to a zero-new-items success instead of an error.
func (u *IngestUsecase) Ingest(ctx context.Context, feed *domain.FeedSource) domain.IngestResult {
	result := domain.IngestResult{FeedID: feed.ID, URL: feed.URL}

	items, err := u.fetchFeedGateway.FetchAndParse(ctx, feed)
	if err != nil {
		logger.SafeWarnContext(ctx, "Feed fetch failed", "url", feed.URL, "error", err)
		return fail(result, err)
	}
	result.TotalItemCount = len(items)

	existing, err := u.feedItemGateway.ExistingItemIDs(ctx, feed.ID)
	if err != nil {
		return fail(result, err)
	}

	newItems := make([]*domain.FeedItem, 0, len(items))
	for _, item := range items {
		if _, ok := existing[item.ID]; ok {
			continue
		}
		newItems = append(newItems, item)
	}

	inserted, err := u.feedItemGateway.InsertItems(ctx, newItems)
	if err != nil {
		if !domain.IsBenignPersistence(err) {
			return fail(result, err)
		}
		logger.SafeInfoContext(ctx, "Benign persistence failure, items already stored", "url", feed.URL, "error", err)
		inserted = 0
	}
	result.NewItemCount = inserted

	// the fetch succeeded, advance the watermark even when nothing was
	// new; a failed advance fails the cycle so the feed is retried (the
	// dedup gate makes the retry free)
	if err := u.feedStatusGateway.UpdateLastFetched(ctx, feed.ID); err != nil {
		logger.SafeWarnContext(ctx, "Failed to advance fetch watermark", "url", feed.URL, "error", err)
		return fail(result, err)
	}

	logger.SafeInfoContext(ctx, "Ingest cycle finished",
		"url", feed.URL,
		"total", result.TotalItemCount,
		"new", result.NewItemCount)

	return result
}

func fail(result domain.IngestResult, err error) domain.IngestResult {
	result.Err = err
	result.ErrMessage = err.Error()
	return result
}
