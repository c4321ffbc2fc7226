package monitor_db

import (
	"intmon/domain"
	"intmon/driver/models"

	"github.com/google/uuid"
)

func scopeToColumns(scope domain.FeedScope) (userID, groupID *string) {
	if scope.UserID != "" {
		userID = &scope.UserID
	}
	if scope.GroupID != "" {
		groupID = &scope.GroupID
	}
	return userID, groupID
}

func scopeFromColumns(userID, groupID *string) domain.FeedScope {
	var scope domain.FeedScope
	if userID != nil {
		scope.UserID = *userID
	}
	if groupID != nil {
		scope.GroupID = *groupID
	}
	return scope
}

func feedSourceToDomain(row *models.FeedSource) (*domain.FeedSource, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.FeedSource{
		ID:               id,
		URL:              row.URL,
		Title:            row.Title,
		Description:      row.Description,
		IntegrationName:  row.IntegrationName,
		IntegrationAlias: row.IntegrationAlias,
		Scope:            scopeFromColumns(row.UserID, row.GroupID),
		LastFetchedAt:    row.LastFetchedAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func feedItemToDomain(row *models.FeedItem) (*domain.FeedItem, error) {
	sourceID, err := uuid.Parse(row.FeedSourceID)
	if err != nil {
		return nil, err
	}

	return &domain.FeedItem{
		ID:               row.ID,
		FeedSourceID:     sourceID,
		Title:            row.Title,
		Link:             row.Link,
		Content:          row.Content,
		Snippet:          row.Snippet,
		PublishedAt:      row.PublishedAt,
		IntegrationName:  row.IntegrationName,
		IntegrationAlias: row.IntegrationAlias,
		Scope:            scopeFromColumns(row.UserID, row.GroupID),
		CreatedAt:        row.CreatedAt,
	}, nil
}
