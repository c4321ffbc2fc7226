package feed_item_port

import (
	"context"

	"intmon/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_item_port.go -destination=../../mocks/mock_feed_item_port.go -package=mocks

// FeedItemPort is the persistence surface for normalized feed items.
type FeedItemPort interface {
	// ExistingItemIDs returns the identifiers already stored for one
	// feed source, read fresh at the start of an ingest cycle.
	ExistingItemIDs(ctx context.Context, feedSourceID uuid.UUID) (map[string]struct{}, error)
	// InsertItems stores a batch and reports how many rows were new.
	InsertItems(ctx context.Context, items []*domain.FeedItem) (int, error)
	ListByScope(ctx context.Context, scope domain.FeedScope, limit, offset int) ([]*domain.FeedItem, error)
}
