package feed_source_port

import (
	"context"

	"intmon/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_source_port.go -destination=../../mocks/mock_feed_source_port.go -package=mocks

// FeedSourcePort is the persistence surface for feed source records.
type FeedSourcePort interface {
	Register(ctx context.Context, feed *domain.FeedSource) error
	GetByID(ctx context.Context, id uuid.UUID, scope domain.FeedScope) (*domain.FeedSource, error)
	ListByScope(ctx context.Context, scope domain.FeedScope) ([]*domain.FeedSource, error)
	ListAll(ctx context.Context) ([]*domain.FeedSource, error)
	Update(ctx context.Context, feed *domain.FeedSource) error
	Delete(ctx context.Context, id uuid.UUID, scope domain.FeedScope) error
}
