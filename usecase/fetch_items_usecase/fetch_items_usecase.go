package fetch_items_usecase

import (
	"context"

	"intmon/domain"
	"intmon/port/feed_item_port"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// FetchItemsUsecase serves the normalized item timeline for one scope.
type FetchItemsUsecase struct {
	feedItemGateway feed_item_port.FeedItemPort
}

func NewFetchItemsUsecase(feedItemGateway feed_item_port.FeedItemPort) *FetchItemsUsecase {
	return &FetchItemsUsecase{feedItemGateway: feedItemGateway}
}

func (u *FetchItemsUsecase) Execute(ctx context.Context, scope domain.FeedScope, limit, offset int) ([]*domain.FeedItem, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return u.feedItemGateway.ListByScope(ctx, scope, limit, offset)
}
