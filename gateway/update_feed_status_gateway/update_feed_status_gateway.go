package update_feed_status_gateway

import (
	"context"

	"intmon/driver/monitor_db"

	"github.com/google/uuid"
)

// UpdateFeedStatusGateway implements feed_status_port.UpdateFeedStatusPort.
type UpdateFeedStatusGateway struct {
	repository *monitor_db.MonitorDBRepository
}

func NewUpdateFeedStatusGateway(repository *monitor_db.MonitorDBRepository) *UpdateFeedStatusGateway {
	return &UpdateFeedStatusGateway{repository: repository}
}

func (g *UpdateFeedStatusGateway) UpdateLastFetched(ctx context.Context, feedSourceID uuid.UUID) error {
	return g.repository.UpdateLastFetchedAt(ctx, feedSourceID)
}
