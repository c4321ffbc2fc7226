package ingest_usecase

import (
	"context"
	"testing"

	"intmon/domain"
	"intmon/mocks"
	"intmon/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testFeed() *domain.FeedSource {
	return &domain.FeedSource{
		ID:              uuid.New(),
		URL:             "https://example.com/feed.xml",
		Title:           "Example",
		IntegrationName: "example",
		Scope:           domain.FeedScope{UserID: "u1"},
	}
}

func testItems(feedID uuid.UUID, ids ...string) []*domain.FeedItem {
	items := make([]*domain.FeedItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, &domain.FeedItem{
			ID:           id,
			FeedSourceID: feedID,
			Scope:        domain.FeedScope{UserID: "u1"},
		})
	}
	return items
}

func TestIngest_FiltersExistingItems(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	fetched := testItems(feed.ID, "user:u1::a", "user:u1::b", "user:u1::c")

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(fetched, nil)
	mockItems.EXPECT().ExistingItemIDs(gomock.Any(), feed.ID).Return(map[string]struct{}{
		"user:u1::a": {},
		"user:u1::b": {},
	}, nil)
	mockItems.EXPECT().InsertItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []*domain.FeedItem) (int, error) {
			require.Len(t, items, 1)
			assert.Equal(t, "user:u1::c", items[0].ID)
			return 1, nil
		})
	mockStatus.EXPECT().UpdateLastFetched(gomock.Any(), feed.ID).Return(nil)

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)
	result := usecase.Ingest(context.Background(), feed)

	require.NoError(t, result.Err)
	assert.Equal(t, 3, result.TotalItemCount)
	assert.Equal(t, 1, result.NewItemCount)
}

func TestIngest_ConvergesOnUnchangedFeed(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	fetched := testItems(feed.ID, "user:u1::a", "user:u1::b")
	stored := map[string]struct{}{}

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(fetched, nil).Times(2)
	mockItems.EXPECT().ExistingItemIDs(gomock.Any(), feed.ID).DoAndReturn(
		func(_ context.Context, _ uuid.UUID) (map[string]struct{}, error) {
			snapshot := make(map[string]struct{}, len(stored))
			for id := range stored {
				snapshot[id] = struct{}{}
			}
			return snapshot, nil
		}).Times(2)
	mockItems.EXPECT().InsertItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []*domain.FeedItem) (int, error) {
			for _, item := range items {
				stored[item.ID] = struct{}{}
			}
			return len(items), nil
		}).Times(2)
	mockStatus.EXPECT().UpdateLastFetched(gomock.Any(), feed.ID).Return(nil).Times(2)

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)

	first := usecase.Ingest(context.Background(), feed)
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.NewItemCount)

	// unchanged upstream content: the second cycle converges to zero
	second := usecase.Ingest(context.Background(), feed)
	require.NoError(t, second.Err)
	assert.Zero(t, second.NewItemCount)
	assert.Equal(t, 2, second.TotalItemCount)
}

func TestIngest_BenignPersistenceFailureIsSoftSuccess(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	fetched := testItems(feed.ID, "user:u1::a")

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(fetched, nil)
	mockItems.EXPECT().ExistingItemIDs(gomock.Any(), feed.ID).Return(map[string]struct{}{}, nil)
	mockItems.EXPECT().InsertItems(gomock.Any(), gomock.Any()).
		Return(0, &domain.PersistenceError{Op: "insert feed items", Benign: true})
	mockStatus.EXPECT().UpdateLastFetched(gomock.Any(), feed.ID).Return(nil)

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)
	result := usecase.Ingest(context.Background(), feed)

	require.NoError(t, result.Err)
	assert.Zero(t, result.NewItemCount)
}

func TestIngest_FetchFailure(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	netErr := &domain.NetworkError{URL: feed.URL, Cause: context.DeadlineExceeded}

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(nil, netErr)
	// no projection read, no insert, no watermark advance

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)
	result := usecase.Ingest(context.Background(), feed)

	require.Error(t, result.Err)
	assert.NotEmpty(t, result.ErrMessage)
	assert.Zero(t, result.NewItemCount)
}

func TestIngest_FatalPersistenceFailure(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	fetched := testItems(feed.ID, "user:u1::a")

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(fetched, nil)
	mockItems.EXPECT().ExistingItemIDs(gomock.Any(), feed.ID).Return(map[string]struct{}{}, nil)
	mockItems.EXPECT().InsertItems(gomock.Any(), gomock.Any()).
		Return(0, &domain.PersistenceError{Op: "insert feed items"})

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)
	result := usecase.Ingest(context.Background(), feed)

	require.Error(t, result.Err)
	assert.False(t, domain.IsBenignPersistence(result.Err))
	assert.Zero(t, result.NewItemCount)
}

func TestIngest_WatermarkFailureFailsCycle(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetch := mocks.NewMockFetchFeedPort(ctrl)
	mockItems := mocks.NewMockFeedItemPort(ctrl)
	mockStatus := mocks.NewMockUpdateFeedStatusPort(ctrl)

	feed := testFeed()
	fetched := testItems(feed.ID, "user:u1::a")
	persistErr := &domain.PersistenceError{Op: "update last fetched", Cause: assert.AnError}

	mockFetch.EXPECT().FetchAndParse(gomock.Any(), feed).Return(fetched, nil)
	mockItems.EXPECT().ExistingItemIDs(gomock.Any(), feed.ID).Return(map[string]struct{}{}, nil)
	mockItems.EXPECT().InsertItems(gomock.Any(), gomock.Any()).Return(1, nil)
	mockStatus.EXPECT().UpdateLastFetched(gomock.Any(), feed.ID).Return(persistErr)

	usecase := NewIngestUsecase(mockFetch, mockItems, mockStatus)
	result := usecase.Ingest(context.Background(), feed)

	require.Error(t, result.Err)
	assert.NotEmpty(t, result.ErrMessage)
	// the items landed before the watermark failed
	assert.Equal(t, 1, result.NewItemCount)
}
