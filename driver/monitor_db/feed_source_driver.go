package monitor_db

import (
	"context"
	"errors"

	"intmon/domain"
	"intmon/driver/models"
	"intmon/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const feedSourceColumns = `id, url, title, description, integration_name, integration_alias, user_id, group_id, last_fetched_at, created_at, updated_at`

// RegisterFeedSource inserts a new feed source. The url is unique per
// scope; a second registration of the same url for the same owner
// returns domain.ErrFeedAlreadyExists.
func (r *MonitorDBRepository) RegisterFeedSource(ctx context.Context, feed *domain.FeedSource) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeError("Error starting transaction", "error", err)
		return classifyPersistence("register feed source", err)
	}
	defer tx.Rollback(ctx)

	userID, groupID := scopeToColumns(feed.Scope)
	_, err = tx.Exec(ctx,
		`INSERT INTO feed_sources (id, url, title, description, integration_name, integration_alias, user_id, group_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		feed.ID.String(), feed.URL, feed.Title, feed.Description,
		feed.IntegrationName, feed.IntegrationAlias, userID, groupID,
		feed.CreatedAt, feed.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFeedAlreadyExists
		}
		logger.SafeError("Error registering feed source", "error", err, "url", feed.URL)
		return classifyPersistence("register feed source", err)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeError("Error committing transaction", "error", err)
		return classifyPersistence("register feed source", err)
	}

	logger.SafeInfo("Feed source registered", "url", feed.URL, "scope", feed.Scope.Key())
	return nil
}

// FetchFeedSourceByID returns one feed source restricted to the given
// scope. Rows owned by someone else are invisible, not forbidden.
func (r *MonitorDBRepository) FetchFeedSourceByID(ctx context.Context, id uuid.UUID, scope domain.FeedScope) (*domain.FeedSource, error) {
	query := `SELECT ` + feedSourceColumns + `
		FROM feed_sources
		WHERE id = $1 AND user_id IS NOT DISTINCT FROM $2 AND group_id IS NOT DISTINCT FROM $3`

	userID, groupID := scopeToColumns(scope)

	var row models.FeedSource
	err := r.pool.QueryRow(ctx, query, id.String(), userID, groupID).Scan(
		&row.ID, &row.URL, &row.Title, &row.Description,
		&row.IntegrationName, &row.IntegrationAlias,
		&row.UserID, &row.GroupID, &row.LastFetchedAt,
		&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		logger.SafeError("Error fetching feed source", "error", err, "id", id)
		return nil, classifyPersistence("fetch feed source", err)
	}

	return feedSourceToDomain(&row)
}

// FetchFeedSourcesByScope lists a scope's feed sources, stalest first
// so refresh passes visit never-fetched feeds before recently updated
// ones.
func (r *MonitorDBRepository) FetchFeedSourcesByScope(ctx context.Context, scope domain.FeedScope) ([]*domain.FeedSource, error) {
	query := `SELECT ` + feedSourceColumns + `
		FROM feed_sources
		WHERE user_id IS NOT DISTINCT FROM $1 AND group_id IS NOT DISTINCT FROM $2
		ORDER BY last_fetched_at ASC NULLS FIRST, created_at ASC`

	userID, groupID := scopeToColumns(scope)

	rows, err := r.pool.Query(ctx, query, userID, groupID)
	if err != nil {
		logger.SafeError("Error fetching feed sources", "error", err, "scope", scope.Key())
		return nil, classifyPersistence("fetch feed sources", err)
	}
	defer rows.Close()

	var feeds []*domain.FeedSource
	for rows.Next() {
		var row models.FeedSource
		err := rows.Scan(
			&row.ID, &row.URL, &row.Title, &row.Description,
			&row.IntegrationName, &row.IntegrationAlias,
			&row.UserID, &row.GroupID, &row.LastFetchedAt,
			&row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			logger.SafeError("Error scanning feed source", "error", err)
			return nil, classifyPersistence("fetch feed sources", err)
		}

		feed, err := feedSourceToDomain(&row)
		if err != nil {
			return nil, classifyPersistence("fetch feed sources", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistence("fetch feed sources", err)
	}

	return feeds, nil
}

// FetchAllFeedSources lists every registered feed source across all
// scopes, stalest first. Used by the background refresh job.
func (r *MonitorDBRepository) FetchAllFeedSources(ctx context.Context) ([]*domain.FeedSource, error) {
	query := `SELECT ` + feedSourceColumns + `
		FROM feed_sources
		ORDER BY last_fetched_at ASC NULLS FIRST, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.SafeError("Error fetching all feed sources", "error", err)
		return nil, classifyPersistence("fetch all feed sources", err)
	}
	defer rows.Close()

	var feeds []*domain.FeedSource
	for rows.Next() {
		var row models.FeedSource
		err := rows.Scan(
			&row.ID, &row.URL, &row.Title, &row.Description,
			&row.IntegrationName, &row.IntegrationAlias,
			&row.UserID, &row.GroupID, &row.LastFetchedAt,
			&row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			logger.SafeError("Error scanning feed source", "error", err)
			return nil, classifyPersistence("fetch all feed sources", err)
		}

		feed, err := feedSourceToDomain(&row)
		if err != nil {
			return nil, classifyPersistence("fetch all feed sources", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistence("fetch all feed sources", err)
	}

	return feeds, nil
}

// UpdateFeedSource applies an explicit edit of the mutable fields. Feed
// metadata never changes as a side effect of ingestion, only through
// this call.
func (r *MonitorDBRepository) UpdateFeedSource(ctx context.Context, feed *domain.FeedSource) error {
	userID, groupID := scopeToColumns(feed.Scope)
	tag, err := r.pool.Exec(ctx,
		`UPDATE feed_sources
		 SET url = $1, title = $2, description = $3, integration_name = $4, integration_alias = $5, updated_at = now()
		 WHERE id = $6 AND user_id IS NOT DISTINCT FROM $7 AND group_id IS NOT DISTINCT FROM $8`,
		feed.URL, feed.Title, feed.Description,
		feed.IntegrationName, feed.IntegrationAlias,
		feed.ID.String(), userID, groupID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFeedAlreadyExists
		}
		logger.SafeError("Error updating feed source", "error", err, "id", feed.ID)
		return classifyPersistence("update feed source", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	return nil
}

// DeleteFeedSource removes a feed source and all of its items in one
// transaction.
func (r *MonitorDBRepository) DeleteFeedSource(ctx context.Context, id uuid.UUID, scope domain.FeedScope) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeError("Error starting transaction", "error", err)
		return classifyPersistence("delete feed source", err)
	}
	defer tx.Rollback(ctx)

	userID, groupID := scopeToColumns(scope)

	_, err = tx.Exec(ctx,
		`DELETE FROM feed_items
		 WHERE feed_source_id IN (
			SELECT id FROM feed_sources
			WHERE id = $1 AND user_id IS NOT DISTINCT FROM $2 AND group_id IS NOT DISTINCT FROM $3)`,
		id.String(), userID, groupID)
	if err != nil {
		logger.SafeError("Error deleting feed items", "error", err, "id", id)
		return classifyPersistence("delete feed source", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM feed_sources
		 WHERE id = $1 AND user_id IS NOT DISTINCT FROM $2 AND group_id IS NOT DISTINCT FROM $3`,
		id.String(), userID, groupID)
	if err != nil {
		logger.SafeError("Error deleting feed source", "error", err, "id", id)
		return classifyPersistence("delete feed source", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeError("Error committing transaction", "error", err)
		return classifyPersistence("delete feed source", err)
	}

	logger.SafeInfo("Feed source deleted", "id", id, "scope", scope.Key())
	return nil
}

// UpdateLastFetchedAt advances the fetch watermark. Called only after a
// successful fetch cycle.
func (r *MonitorDBRepository) UpdateLastFetchedAt(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE feed_sources SET last_fetched_at = now() WHERE id = $1`,
		id.String())
	if err != nil {
		logger.SafeError("Error updating last_fetched_at", "error", err, "id", id)
		return classifyPersistence("update feed status", err)
	}
	return nil
}
