package register_feed_gateway

import (
	"context"

	"intmon/domain"
	"intmon/driver/monitor_db"

	"github.com/google/uuid"
)

// RegisterFeedGateway implements feed_source_port.FeedSourcePort on
// top of the database repository.
type RegisterFeedGateway struct {
	repository *monitor_db.MonitorDBRepository
}

func NewRegisterFeedGateway(repository *monitor_db.MonitorDBRepository) *RegisterFeedGateway {
	return &RegisterFeedGateway{repository: repository}
}

func (g *RegisterFeedGateway) Register(ctx context.Context, feed *domain.FeedSource) error {
	return g.repository.RegisterFeedSource(ctx, feed)
}

func (g *RegisterFeedGateway) GetByID(ctx context.Context, id uuid.UUID, scope domain.FeedScope) (*domain.FeedSource, error) {
	return g.repository.FetchFeedSourceByID(ctx, id, scope)
}

func (g *RegisterFeedGateway) ListByScope(ctx context.Context, scope domain.FeedScope) ([]*domain.FeedSource, error) {
	return g.repository.FetchFeedSourcesByScope(ctx, scope)
}

func (g *RegisterFeedGateway) ListAll(ctx context.Context) ([]*domain.FeedSource, error) {
	return g.repository.FetchAllFeedSources(ctx)
}

func (g *RegisterFeedGateway) Update(ctx context.Context, feed *domain.FeedSource) error {
	return g.repository.UpdateFeedSource(ctx, feed)
}

func (g *RegisterFeedGateway) Delete(ctx context.Context, id uuid.UUID, scope domain.FeedScope) error {
	return g.repository.DeleteFeedSource(ctx, id, scope)
}
