package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port/mocks"
)

func newBoardUseCase(t *testing.T) (*BoardUseCase, *mocks.MockCatalogRepository, *mocks.MockTableStore) {
	catalog := mocks.NewMockCatalogRepository(t)
	store := mocks.NewMockTableStore(t)
	limiter := openLimiter(t)
	cfg := testReaderConfig()
	cfg.PageSize = 50
	cfg.MaxPageSize = 100
	reader := NewChunkReader(store, limiter, cfg, nil, discardLogger())
	return NewBoardUseCase(catalog, reader, limiter, testGate()), catalog, store
}

func TestReadCampaignRowsKeysCellsByHeader(t *testing.T) {
	uc, catalog, store := newBoardUseCase(t)
	campaign := &domain.Campaign{
		ID:        7,
		Name:      "Spring",
		TableName: "campaign_7",
		Headers:   []string{"Date", "Delivered Impressions", "Media Cost ($)"},
	}
	catalog.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(campaign, nil).Once()
	store.EXPECT().
		FetchPage(mock.Anything, campaign.Table(), 0, 50).
		Return(domain.Page{
			Rows: []domain.Row{
				{domain.RowIDColumn: int64(1), "date": "2024-03-01", "delivered_impressions": "100", "media_cost": "1.50"},
				{domain.RowIDColumn: int64(2), "date": "2024-03-02", "delivered_impressions": nil, "media_cost": "2"},
			},
			Total: 2,
		}, nil).
		Once()

	page, err := uc.ReadCampaignRows(context.Background(), viewer, 7, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, []domain.Column{
		{Header: "Date", Key: "date"},
		{Header: "Delivered Impressions", Key: "delivered_impressions"},
		{Header: "Media Cost ($)", Key: "media_cost"},
	}, page.Columns)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, int64(1), page.Rows[0].ID)
	assert.Equal(t, map[string]any{
		"Date":                  "2024-03-01",
		"Delivered Impressions": "100",
		"Media Cost ($)":        "1.50",
	}, page.Rows[0].Cells)
	assert.Nil(t, page.Rows[1].Cells["Delivered Impressions"])
}

func TestReadCampaignRowsCapsLimit(t *testing.T) {
	uc, catalog, store := newBoardUseCase(t)
	campaign := &domain.Campaign{ID: 3, TableName: "campaign_3", Headers: []string{"Date"}}
	catalog.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(campaign, nil).Once()
	store.EXPECT().
		FetchPage(mock.Anything, campaign.Table(), 200, 100).
		Return(domain.Page{Total: 150}, nil).
		Once()

	page, err := uc.ReadCampaignRows(context.Background(), admin, 3, 200, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Empty(t, page.Rows)
	assert.Equal(t, int64(150), page.Total)
}

func TestReadCampaignRowsErrors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc, _, _ := newBoardUseCase(t)
		_, err := uc.ReadCampaignRows(context.Background(), domain.Principal{}, 1, 0, 10)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
	t.Run("missing campaign", func(t *testing.T) {
		uc, catalog, _ := newBoardUseCase(t)
		catalog.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, nil).Once()
		_, err := uc.ReadCampaignRows(context.Background(), viewer, 404, 0, 10)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("negative offset", func(t *testing.T) {
		uc, catalog, _ := newBoardUseCase(t)
		catalog.EXPECT().
			GetCampaign(mock.Anything, int64(1)).
			Return(&domain.Campaign{ID: 1, TableName: "campaign_1"}, nil).
			Once()
		_, err := uc.ReadCampaignRows(context.Background(), viewer, 1, -5, 10)
		require.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestReadSourceRows(t *testing.T) {
	uc, catalog, store := newBoardUseCase(t)
	name := "source_9"
	source := &domain.Source{ID: 9, Name: "Ad server", TableName: &name, Headers: []string{"Day", "Imps"}}
	table, ok := source.Table()
	require.True(t, ok)

	catalog.EXPECT().GetSource(mock.Anything, int64(9)).Return(source, nil).Once()
	servePages(store, table, tableRows(3, func(i int, row domain.Row) {
		row["day"] = "2024-01-0" + string(rune('1'+i))
		row["imps"] = "10"
	}))

	page, err := uc.ReadSourceRows(context.Background(), viewer, 9, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, int64(2), page.Rows[0].ID)
	assert.Equal(t, "2024-01-02", page.Rows[0].Cells["Day"])
	assert.Equal(t, int64(3), page.Total)
}

func TestReadSourceRowsExternalEntity(t *testing.T) {
	uc, catalog, _ := newBoardUseCase(t)
	set, typ := "Orders", "Sales.Order"
	catalog.EXPECT().
		GetSource(mock.Anything, int64(4)).
		Return(&domain.Source{ID: 4, EntitySet: &set, EntityType: &typ}, nil).
		Once()

	_, err := uc.ReadSourceRows(context.Background(), viewer, 4, 0, 10)
	require.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestReadSourceRowsMissing(t *testing.T) {
	uc, catalog, _ := newBoardUseCase(t)
	catalog.EXPECT().GetSource(mock.Anything, int64(5)).Return(nil, nil).Once()

	_, err := uc.ReadSourceRows(context.Background(), viewer, 5, 0, 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
