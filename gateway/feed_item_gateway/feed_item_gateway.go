package feed_item_gateway

import (
	"context"

	"intmon/domain"
	"intmon/driver/monitor_db"

	"github.com/google/uuid"
)

// FeedItemGateway implements feed_item_port.FeedItemPort on top of the
// database repository.
type FeedItemGateway struct {
	repository *monitor_db.MonitorDBRepository
}

func NewFeedItemGateway(repository *monitor_db.MonitorDBRepository) *FeedItemGateway {
	return &FeedItemGateway{repository: repository}
}

func (g *FeedItemGateway) ExistingItemIDs(ctx context.Context, feedSourceID uuid.UUID) (map[string]struct{}, error) {
	return g.repository.FetchExistingItemIDs(ctx, feedSourceID)
}

func (g *FeedItemGateway) InsertItems(ctx context.Context, items []*domain.FeedItem) (int, error) {
	return g.repository.InsertFeedItems(ctx, items)
}

func (g *FeedItemGateway) ListByScope(ctx context.Context, scope domain.FeedScope, limit, offset int) ([]*domain.FeedItem, error) {
	return g.repository.FetchItemsByScope(ctx, scope, limit, offset)
}
