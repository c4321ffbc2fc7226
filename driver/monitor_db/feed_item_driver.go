package monitor_db

import (
	"context"

	"intmon/domain"
	"intmon/driver/models"
	"intmon/utils/logger"

	"github.com/google/uuid"
)

// FetchExistingItemIDs returns the stored item identifiers for one feed
// source. The gate reads this projection fresh at the start of every
// ingest cycle.
func (r *MonitorDBRepository) FetchExistingItemIDs(ctx context.Context, feedSourceID uuid.UUID) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM feed_items WHERE feed_source_id = $1`,
		feedSourceID.String())
	if err != nil {
		logger.SafeError("Error fetching existing item ids", "error", err, "feed_source_id", feedSourceID)
		return nil, classifyPersistence("fetch existing item ids", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			logger.SafeError("Error scanning item id", "error", err)
			return nil, classifyPersistence("fetch existing item ids", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistence("fetch existing item ids", err)
	}

	return ids, nil
}

// InsertFeedItems writes a batch of items in one transaction and
// returns how many rows were actually inserted. ON CONFLICT DO NOTHING
// makes the insert race-safe: a concurrent writer that stored the same
// identifier first simply costs this batch a row in the count.
func (r *MonitorDBRepository) InsertFeedItems(ctx context.Context, items []*domain.FeedItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeError("Error starting transaction", "error", err)
		return 0, classifyPersistence("insert feed items", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, item := range items {
		userID, groupID := scopeToColumns(item.Scope)
		tag, err := tx.Exec(ctx,
			`INSERT INTO feed_items (id, feed_source_id, title, link, content, snippet, published_at, integration_name, integration_alias, user_id, group_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 ON CONFLICT (id) DO NOTHING`,
			item.ID, item.FeedSourceID.String(), item.Title, item.Link,
			item.Content, item.Snippet, item.PublishedAt,
			item.IntegrationName, item.IntegrationAlias,
			userID, groupID, item.CreatedAt)
		if err != nil {
			logger.SafeError("Error inserting feed item", "error", err, "item_id", item.ID)
			if isInsufficientPrivilege(err) {
				return 0, r.classifyRefusedInsert(ctx, items, err)
			}
			return 0, classifyPersistence("insert feed items", err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeError("Error committing transaction", "error", err)
		return 0, classifyPersistence("insert feed items", err)
	}

	return inserted, nil
}

// classifyRefusedInsert decides whether a 42501 refusal is benign. A
// restricted role refusing the write only means soft success when the
// store already holds the batch: re-read the projection and confirm
// every identifier exists. A refusal over absent rows is real item
// loss and stays fatal.
func (r *MonitorDBRepository) classifyRefusedInsert(ctx context.Context, items []*domain.FeedItem, cause error) error {
	existing, err := r.FetchExistingItemIDs(ctx, items[0].FeedSourceID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert feed items", Cause: cause}
	}
	for _, item := range items {
		if _, ok := existing[item.ID]; !ok {
			return &domain.PersistenceError{Op: "insert feed items", Cause: cause}
		}
	}
	return &domain.PersistenceError{Op: "insert feed items", Cause: cause, Benign: true}
}

// FetchItemsByScope returns a scope's normalized timeline, newest
// first.
func (r *MonitorDBRepository) FetchItemsByScope(ctx context.Context, scope domain.FeedScope, limit, offset int) ([]*domain.FeedItem, error) {
	query := `SELECT id, feed_source_id, title, link, content, snippet, published_at, integration_name, integration_alias, user_id, group_id, created_at
		FROM feed_items
		WHERE user_id IS NOT DISTINCT FROM $1 AND group_id IS NOT DISTINCT FROM $2
		ORDER BY published_at DESC, id ASC
		LIMIT $3 OFFSET $4`

	userID, groupID := scopeToColumns(scope)

	rows, err := r.pool.Query(ctx, query, userID, groupID, limit, offset)
	if err != nil {
		logger.SafeError("Error fetching feed items", "error", err, "scope", scope.Key())
		return nil, classifyPersistence("fetch feed items", err)
	}
	defer rows.Close()

	var items []*domain.FeedItem
	for rows.Next() {
		var row models.FeedItem
		err := rows.Scan(
			&row.ID, &row.FeedSourceID, &row.Title, &row.Link,
			&row.Content, &row.Snippet, &row.PublishedAt,
			&row.IntegrationName, &row.IntegrationAlias,
			&row.UserID, &row.GroupID, &row.CreatedAt)
		if err != nil {
			logger.SafeError("Error scanning feed item", "error", err)
			return nil, classifyPersistence("fetch feed items", err)
		}

		item, err := feedItemToDomain(&row)
		if err != nil {
			return nil, classifyPersistence("fetch feed items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistence("fetch feed items", err)
	}

	return items, nil
}
