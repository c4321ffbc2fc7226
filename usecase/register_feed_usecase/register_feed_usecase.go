package register_feed_usecase

import (
	"context"
	"errors"
	"time"

	"intmon/domain"
	"intmon/port/feed_source_port"
	"intmon/port/fetch_feed_port"
	"intmon/utils"
	"intmon/utils/logger"

	"github.com/google/uuid"
)

// RegisterFeedInput carries the caller-supplied registration fields.
type RegisterFeedInput struct {
	URL              string
	Title            string
	Description      string
	IntegrationName  string
	IntegrationAlias string
	Scope            domain.FeedScope
}

type RegisterFeedUsecase struct {
	feedSourceGateway feed_source_port.FeedSourcePort
	fetchFeedGateway  fetch_feed_port.FetchFeedPort
}

func NewRegisterFeedUsecase(feedSourceGateway feed_source_port.FeedSourcePort, fetchFeedGateway fetch_feed_port.FetchFeedPort) *RegisterFeedUsecase {
	return &RegisterFeedUsecase{
		feedSourceGateway: feedSourceGateway,
		fetchFeedGateway:  fetchFeedGateway,
	}
}

// Execute validates the input, performs a validation fetch to prove the
// URL serves a parseable feed, and stores the new source. When the URL
// turns out to be an HTML page, the page's advertised feed link is
// tried before giving up.
func (u *RegisterFeedUsecase) Execute(ctx context.Context, input RegisterFeedInput) (*domain.FeedSource, error) {
	if err := input.Scope.Validate(); err != nil {
		return nil, err
	}
	if input.URL == "" {
		return nil, &domain.ValidationError{Field: "url", Message: "feed url must not be empty"}
	}
	if input.IntegrationName == "" {
		return nil, &domain.ValidationError{Field: "integration_name", Message: "integration name must not be empty"}
	}

	normalized, err := utils.NormalizeFeedURL(input.URL)
	if err != nil {
		return nil, &domain.ValidationError{Field: "url", Message: "feed url is not a valid absolute URL"}
	}
	if err := utils.ValidateExternalURL(normalized); err != nil {
		return nil, err
	}

	now := time.Now()
	feed := &domain.FeedSource{
		ID:               uuid.New(),
		URL:              normalized,
		Title:            input.Title,
		Description:      input.Description,
		IntegrationName:  input.IntegrationName,
		IntegrationAlias: input.IntegrationAlias,
		Scope:            input.Scope,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := u.fetchFeedGateway.FetchAndParse(ctx, feed); err != nil {
		var parseErr *domain.ParseError
		if !errors.As(err, &parseErr) {
			return nil, err
		}

		// not a feed document; maybe an HTML page advertising one
		discovered, discoverErr := u.fetchFeedGateway.DiscoverFeedURL(ctx, feed.URL)
		if discoverErr != nil || discovered == "" {
			return nil, err
		}
		// the advertised link is page-controlled, re-check it before fetching
		if guardErr := utils.ValidateExternalURL(discovered); guardErr != nil {
			return nil, guardErr
		}

		logger.SafeInfoContext(ctx, "Discovered feed link from page", "page", feed.URL, "feed", discovered)
		feed.URL = discovered
		if _, err := u.fetchFeedGateway.FetchAndParse(ctx, feed); err != nil {
			return nil, err
		}
	}

	if feed.Title == "" {
		feed.Title = feed.DisplayName()
	}

	if err := u.feedSourceGateway.Register(ctx, feed); err != nil {
		return nil, err
	}

	return feed, nil
}
