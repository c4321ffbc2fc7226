package feed_status_port

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_status_port.go -destination=../../mocks/mock_feed_status_port.go -package=mocks

// UpdateFeedStatusPort advances a feed source's fetch watermark.
type UpdateFeedStatusPort interface {
	UpdateLastFetched(ctx context.Context, feedSourceID uuid.UUID) error
}
