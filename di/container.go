package di

import (
	"intmon/config"
	"intmon/driver/feed_fetch_driver"
	"intmon/driver/monitor_db"
	"intmon/gateway/feed_item_gateway"
	"intmon/gateway/fetch_feed_gateway"
	"intmon/gateway/register_feed_gateway"
	"intmon/gateway/update_feed_status_gateway"
	"intmon/usecase/fetch_items_usecase"
	"intmon/usecase/ingest_usecase"
	"intmon/usecase/manage_feed_usecase"
	"intmon/usecase/refresh_feed_usecase"
	"intmon/usecase/register_feed_usecase"
	"intmon/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	RegisterFeedUsecase *register_feed_usecase.RegisterFeedUsecase
	ManageFeedUsecase   *manage_feed_usecase.ManageFeedUsecase
	IngestUsecase       *ingest_usecase.IngestUsecase
	RefreshFeedUsecase  *refresh_feed_usecase.RefreshFeedUsecase
	FetchItemsUsecase   *fetch_items_usecase.FetchItemsUsecase
	MonitorDBRepository *monitor_db.MonitorDBRepository
	FeedFetchDriver     *feed_fetch_driver.FeedFetchDriver
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repository := monitor_db.NewMonitorDBRepository(pool)

	hostRateLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)
	fetchDriver := feed_fetch_driver.NewFeedFetchDriver(cfg, hostRateLimiter)

	fetchFeedGatewayImpl := fetch_feed_gateway.NewFetchFeedGateway(fetchDriver, cfg.Ingest.SnippetLength)
	feedSourceGatewayImpl := register_feed_gateway.NewRegisterFeedGateway(repository)
	feedItemGatewayImpl := feed_item_gateway.NewFeedItemGateway(repository)
	feedStatusGatewayImpl := update_feed_status_gateway.NewUpdateFeedStatusGateway(repository)

	registerFeedUsecase := register_feed_usecase.NewRegisterFeedUsecase(feedSourceGatewayImpl, fetchFeedGatewayImpl)
	manageFeedUsecase := manage_feed_usecase.NewManageFeedUsecase(feedSourceGatewayImpl)
	ingestUsecase := ingest_usecase.NewIngestUsecase(fetchFeedGatewayImpl, feedItemGatewayImpl, feedStatusGatewayImpl)
	refreshFeedUsecase := refresh_feed_usecase.NewRefreshFeedUsecase(feedSourceGatewayImpl, ingestUsecase, cfg.Ingest.BatchConcurrency)
	fetchItemsUsecase := fetch_items_usecase.NewFetchItemsUsecase(feedItemGatewayImpl)

	return &ApplicationComponents{
		RegisterFeedUsecase: registerFeedUsecase,
		ManageFeedUsecase:   manageFeedUsecase,
		IngestUsecase:       ingestUsecase,
		RefreshFeedUsecase:  refreshFeedUsecase,
		FetchItemsUsecase:   fetchItemsUsecase,
		MonitorDBRepository: repository,
		FeedFetchDriver:     fetchDriver,
	}
}
