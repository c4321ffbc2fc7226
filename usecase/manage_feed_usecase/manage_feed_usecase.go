package manage_feed_usecase

import (
	"context"
	"time"

	"intmon/domain"
	"intmon/port/feed_source_port"
	"intmon/utils"

	"github.com/google/uuid"
)

// UpdateFeedInput is an explicit edit of a feed source's mutable
// fields. Nil pointers leave the stored value untouched.
type UpdateFeedInput struct {
	URL              *string
	Title            *string
	Description      *string
	IntegrationName  *string
	IntegrationAlias *string
}

type ManageFeedUsecase struct {
	feedSourceGateway feed_source_port.FeedSourcePort
}

func NewManageFeedUsecase(feedSourceGateway feed_source_port.FeedSourcePort) *ManageFeedUsecase {
	return &ManageFeedUsecase{feedSourceGateway: feedSourceGateway}
}

func (u *ManageFeedUsecase) List(ctx context.Context, scope domain.FeedScope) ([]*domain.FeedSource, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return u.feedSourceGateway.ListByScope(ctx, scope)
}

func (u *ManageFeedUsecase) Get(ctx context.Context, id uuid.UUID, scope domain.FeedScope) (*domain.FeedSource, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return u.feedSourceGateway.GetByID(ctx, id, scope)
}

// Update applies an explicit edit. Feed metadata changes only through
// this path, never as a side effect of ingestion.
func (u *ManageFeedUsecase) Update(ctx context.Context, id uuid.UUID, scope domain.FeedScope, input UpdateFeedInput) (*domain.FeedSource, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	feed, err := u.feedSourceGateway.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	if input.URL != nil {
		normalized, err := utils.NormalizeFeedURL(*input.URL)
		if err != nil {
			return nil, &domain.ValidationError{Field: "url", Message: "feed url is not a valid absolute URL"}
		}
		// the background refresher will fetch the edited URL
		if err := utils.ValidateExternalURL(normalized); err != nil {
			return nil, err
		}
		feed.URL = normalized
	}
	if input.Title != nil {
		feed.Title = *input.Title
	}
	if input.Description != nil {
		feed.Description = *input.Description
	}
	if input.IntegrationName != nil {
		if *input.IntegrationName == "" {
			return nil, &domain.ValidationError{Field: "integration_name", Message: "integration name must not be empty"}
		}
		feed.IntegrationName = *input.IntegrationName
	}
	if input.IntegrationAlias != nil {
		feed.IntegrationAlias = *input.IntegrationAlias
	}
	feed.UpdatedAt = time.Now()

	if err := u.feedSourceGateway.Update(ctx, feed); err != nil {
		return nil, err
	}

	return feed, nil
}

// Delete removes the feed source and its items.
func (u *ManageFeedUsecase) Delete(ctx context.Context, id uuid.UUID, scope domain.FeedScope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	return u.feedSourceGateway.Delete(ctx, id, scope)
}
