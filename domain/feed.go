package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedScope is the ownership context of a feed source and its items:
// exactly one of UserID or GroupID is set.
type FeedScope struct {
	UserID  string `json:"user_id,omitempty"`
	GroupID string `json:"group_id,omitempty"`
}

// Validate enforces the one-owner invariant.
func (s FeedScope) Validate() error {
	if s.UserID == "" && s.GroupID == "" {
		return ErrScopeMissing
	}
	if s.UserID != "" && s.GroupID != "" {
		return ErrScopeAmbiguous
	}
	return nil
}

// Key returns the scope discriminator used for item identity and
// store-level filtering. Stable across process restarts.
func (s FeedScope) Key() string {
	if s.GroupID != "" {
		return "group:" + s.GroupID
	}
	return "user:" + s.UserID
}

// IsGroup reports whether the scope belongs to a group rather than a user.
func (s FeedScope) IsGroup() bool {
	return s.GroupID != ""
}

// FeedSource is a registered RSS/Atom subscription.
type FeedSource struct {
	ID               uuid.UUID  `json:"id"`
	URL              string     `json:"url"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	IntegrationName  string     `json:"integration_name"`
	IntegrationAlias string     `json:"integration_alias,omitempty"`
	Scope            FeedScope  `json:"scope"`
	LastFetchedAt    *time.Time `json:"last_fetched_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DisplayName returns the alias when set, otherwise the integration name.
func (f *FeedSource) DisplayName() string {
	if f.IntegrationAlias != "" {
		return f.IntegrationAlias
	}
	return f.IntegrationName
}

// RawItem is one parsed feed entry before sanitization and identity
// resolution. Field values are document-supplied and untrusted.
type RawItem struct {
	Title       string
	Link        string
	Description string
	Content     string
	GUID        string
	Published   time.Time
}

// FeedItem is one normalized entry, immutable after creation.
type FeedItem struct {
	ID               string    `json:"id"`
	FeedSourceID     uuid.UUID `json:"feed_source_id"`
	Title            string    `json:"title"`
	Link             string    `json:"link"`
	Content          string    `json:"content"`
	Snippet          string    `json:"snippet"`
	PublishedAt      time.Time `json:"published_at"`
	IntegrationName  string    `json:"integration_name"`
	IntegrationAlias string    `json:"integration_alias,omitempty"`
	Scope            FeedScope `json:"scope"`
	CreatedAt        time.Time `json:"created_at"`
}

// IngestResult reports one feed's ingest cycle.
type IngestResult struct {
	FeedID         uuid.UUID `json:"feed_id"`
	URL            string    `json:"url"`
	NewItemCount   int       `json:"new_item_count"`
	TotalItemCount int       `json:"total_item_count"`
	Err            error     `json:"-"`
	ErrMessage     string    `json:"error,omitempty"`
}

// RefreshSummary aggregates a batch run over multiple feeds. Results
// carry no ordering guarantee beyond what the caller imposes.
type RefreshSummary struct {
	FeedsAttempted int            `json:"feeds_attempted"`
	FeedsSucceeded int            `json:"feeds_succeeded"`
	TotalNewItems  int            `json:"total_new_items"`
	Results        []IngestResult `json:"results"`
}
