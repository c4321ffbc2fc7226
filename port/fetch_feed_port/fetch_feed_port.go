package fetch_feed_port

import (
	"context"

	"intmon/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort retrieves and normalizes one feed's current entries.
// Returned items are fully sanitized, identity-resolved, and stamped
// with the source's integration metadata and scope.
type FetchFeedPort interface {
	FetchAndParse(ctx context.Context, feed *domain.FeedSource) ([]*domain.FeedItem, error)
	// DiscoverFeedURL resolves an HTML page to the feed URL it
	// advertises via link[rel=alternate]. Empty result means the page
	// advertises none.
	DiscoverFeedURL(ctx context.Context, pageURL string) (string, error)
}
