package models

import "time"

type FeedSource struct {
	ID               string     `db:"id"`
	URL              string     `db:"url"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	IntegrationName  string     `db:"integration_name"`
	IntegrationAlias string     `db:"integration_alias"`
	UserID           *string    `db:"user_id"`
	GroupID          *string    `db:"group_id"`
	LastFetchedAt    *time.Time `db:"last_fetched_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type FeedItem struct {
	ID               string    `db:"id"`
	FeedSourceID     string    `db:"feed_source_id"`
	Title            string    `db:"title"`
	Link             string    `db:"link"`
	Content          string    `db:"content"`
	Snippet          string    `db:"snippet"`
	PublishedAt      time.Time `db:"published_at"`
	IntegrationName  string    `db:"integration_name"`
	IntegrationAlias string    `db:"integration_alias"`
	UserID           *string   `db:"user_id"`
	GroupID          *string   `db:"group_id"`
	CreatedAt        time.Time `db:"created_at"`
}
