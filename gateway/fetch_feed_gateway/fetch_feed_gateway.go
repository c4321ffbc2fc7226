// Package fetch_feed_gateway turns a registered feed source into
// normalized items: fetch the document, parse it with gofeed, sanitize
// every text field, and resolve each entry's stored identifier.
package fetch_feed_gateway

import (
	"context"
	"time"

	"intmon/domain"
	"intmon/utils/html_parser"
	"intmon/utils/identity"
	"intmon/utils/logger"

	"github.com/mmcdole/gofeed"
)

const fallbackTitle = "Untitled"

// FeedBodyFetcher retrieves the raw bytes of a feed document.
type FeedBodyFetcher interface {
	FetchFeedBody(ctx context.Context, feedURL string) ([]byte, error)
}

type FetchFeedGateway struct {
	fetcher       FeedBodyFetcher
	snippetLength int
}

func NewFetchFeedGateway(fetcher FeedBodyFetcher, snippetLength int) *FetchFeedGateway {
	return &FetchFeedGateway{
		fetcher:       fetcher,
		snippetLength: snippetLength,
	}
}

// FetchAndParse implements fetch_feed_port.FetchFeedPort. Document
// order is preserved; a malformed document fails the whole call rather
// than yielding a silently truncated list.
func (g *FetchFeedGateway) FetchAndParse(ctx context.Context, feed *domain.FeedSource) ([]*domain.FeedItem, error) {
	if feed.URL == "" {
		return nil, &domain.ValidationError{Field: "url", Message: "feed url must not be empty"}
	}
	if feed.IntegrationName == "" {
		return nil, &domain.ValidationError{Field: "integration_name", Message: "integration name must not be empty"}
	}

	body, err := g.fetcher.FetchFeedBody(ctx, feed.URL)
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		logger.SafeError("Error parsing feed document", "url", feed.URL, "error", err)
		return nil, &domain.ParseError{URL: feed.URL, Cause: err}
	}

	scopeKey := feed.Scope.Key()
	now := time.Now()

	items := make([]*domain.FeedItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		raw := domain.RawItem{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			Content:     entry.Content,
			GUID:        entry.GUID,
		}

		items = append(items, g.normalizeItem(raw, entry, feed, scopeKey, now))
	}

	return items, nil
}

// DiscoverFeedURL fetches an HTML page and returns the first feed URL
// it advertises. Used when a caller registers a site URL instead of
// the feed document itself.
func (g *FetchFeedGateway) DiscoverFeedURL(ctx context.Context, pageURL string) (string, error) {
	body, err := g.fetcher.FetchFeedBody(ctx, pageURL)
	if err != nil {
		return "", err
	}

	candidates := html_parser.DiscoverFeedLinks(string(body), pageURL)
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0], nil
}

func (g *FetchFeedGateway) normalizeItem(raw domain.RawItem, entry *gofeed.Item, feed *domain.FeedSource, scopeKey string, now time.Time) *domain.FeedItem {
	title := html_parser.Sanitize(raw.Title)
	if title == "" {
		title = fallbackTitle
	}

	// full content when the feed carries it, description otherwise
	body := raw.Content
	if body == "" {
		body = raw.Description
	}
	content := html_parser.Sanitize(body)

	publishedAt := now
	if entry.PublishedParsed != nil {
		publishedAt = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		publishedAt = *entry.UpdatedParsed
	}

	return &domain.FeedItem{
		ID:               identity.Resolve(raw, feed.URL, scopeKey),
		FeedSourceID:     feed.ID,
		Title:            title,
		Link:             raw.Link,
		Content:          content,
		Snippet:          html_parser.Truncate(body, g.snippetLength),
		PublishedAt:      publishedAt,
		IntegrationName:  feed.IntegrationName,
		IntegrationAlias: feed.IntegrationAlias,
		Scope:            feed.Scope,
		CreatedAt:        now,
	}
}
