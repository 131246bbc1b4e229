package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port/mocks"
	"mesa-board/internal/metrics"
)

var (
	monitorCampaignTable = domain.TableRef{
		Name:    "campaign_1",
		Kind:    domain.TableKindCampaign,
		OwnerID: 1,
		Headers: []string{"Date", "Booked Impressions", "Booked Revenue"},
	}
	monitorSourceTable = domain.TableRef{
		Name:    "source_2",
		Kind:    domain.TableKindSource,
		OwnerID: 2,
		Headers: []string{"Date", "Delivered Impressions", "Media Cost ($)"},
	}
	monitorScope = domain.Scope{CampaignTable: "campaign_1", SourceTable: "source_2"}
)

// monitorStore keeps upserted rollups in memory, keyed by scope and period.
type monitorStore struct {
	mu      sync.Mutex
	rows    map[string]map[string]domain.MonitorRow
	upserts int
}

func memoryMonitorRepo(t *testing.T) (*mocks.MockMonitorRepository, *monitorStore) {
	s := &monitorStore{rows: make(map[string]map[string]domain.MonitorRow)}
	repo := mocks.NewMockMonitorRepository(t)
	repo.EXPECT().
		UpsertMonitorRows(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, scope domain.Scope, rows []domain.MonitorRow) error {
			s.put(scope, rows)
			return nil
		}).
		Maybe()
	repo.EXPECT().
		ListMonitorRows(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, scope domain.Scope) ([]domain.MonitorRow, error) {
			return s.list(scope), nil
		}).
		Maybe()
	return repo, s
}

func (s *monitorStore) put(scope domain.Scope, rows []domain.MonitorRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	byPeriod, ok := s.rows[scope.Key()]
	if !ok {
		byPeriod = make(map[string]domain.MonitorRow)
		s.rows[scope.Key()] = byPeriod
	}
	for _, r := range rows {
		byPeriod[r.Period] = r
	}
}

func (s *monitorStore) list(scope domain.Scope) []domain.MonitorRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.MonitorRow
	for _, r := range s.rows[scope.Key()] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func (s *monitorStore) upsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upserts
}

func resolveTables(catalog *mocks.MockCatalogRepository, tables ...domain.TableRef) {
	for _, table := range tables {
		ref := table
		catalog.EXPECT().ResolveTable(mock.Anything, ref.Name).Return(&ref, nil).Maybe()
	}
}

type monitorFixture struct {
	catalog *mocks.MockCatalogRepository
	store   *mocks.MockTableStore
	repo    *mocks.MockMonitorRepository
	cache   *monitorStore
	metrics *metrics.Metrics
	uc      *MonitorUseCase
}

func newMonitorFixture(t *testing.T) *monitorFixture {
	f := &monitorFixture{
		catalog: mocks.NewMockCatalogRepository(t),
		store:   mocks.NewMockTableStore(t),
		metrics: testMetrics(),
	}
	f.repo, f.cache = memoryMonitorRepo(t)
	limiter := openLimiter(t)
	reader := NewChunkReader(f.store, limiter, testReaderConfig(), f.metrics, discardLogger())
	f.uc = NewMonitorUseCase(f.catalog, f.repo, reader, limiter, testGate(), configs.Monitor{}, f.metrics, discardLogger())
	return f
}

func (f *monitorFixture) serveDefaultTables() {
	resolveTables(f.catalog, monitorCampaignTable, monitorSourceTable)
	servePages(f.store, monitorCampaignTable, []domain.Row{
		{domain.RowIDColumn: int64(1), "date": "2024-03-01", "booked_impressions": "400", "booked_revenue": "1000.00"},
	})
	servePages(f.store, monitorSourceTable, []domain.Row{
		{domain.RowIDColumn: int64(1), "date": "2024-03-01", "delivered_impressions": "100", "media_cost": "10.25"},
		{domain.RowIDColumn: int64(2), "date": "2024-03-02", "delivered_impressions": "150", "media_cost": "5.50"},
		{domain.RowIDColumn: int64(3), "date": "2024-04-01", "delivered_impressions": "7", "media_cost": "1"},
	})
}

func TestRefreshPersistsMonthlyRollup(t *testing.T) {
	f := newMonitorFixture(t)
	f.serveDefaultTables()
	ctx := context.Background()

	res, err := f.uc.Refresh(ctx, admin, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Periods)
	assert.Zero(t, res.Anomalies)

	rows, err := f.uc.GetRows(ctx, viewer, monitorScope)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	march := rows[0]
	assert.Equal(t, "2024-03", march.Period)
	assert.Equal(t, int64(400), march.BookedImpressions)
	assert.Equal(t, int64(250), march.DeliveredImpressions)
	assert.Equal(t, int64(2), march.DeliveredLines)
	assert.True(t, dec("15.75").Equal(march.MediaCost))
	assert.True(t, dec("1000").Equal(march.BookedRevenue))
	assert.Equal(t, "2024-04", rows[1].Period)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Refreshes.WithLabelValues("ok")))
}

func TestRefreshIsIdempotent(t *testing.T) {
	f := newMonitorFixture(t)
	f.serveDefaultTables()
	ctx := context.Background()

	snapshot := func() []byte {
		rows, err := f.uc.GetRows(ctx, admin, monitorScope)
		require.NoError(t, err)
		b, err := json.Marshal(rows)
		require.NoError(t, err)
		return b
	}

	_, err := f.uc.Refresh(ctx, admin, monitorScope)
	require.NoError(t, err)
	first := snapshot()

	_, err = f.uc.Refresh(ctx, admin, monitorScope)
	require.NoError(t, err)
	require.JSONEq(t, string(first), string(snapshot()))
	assert.Equal(t, string(first), string(snapshot()))
	assert.Equal(t, 2, f.cache.upsertCount())
}

func TestRefreshSameTableReadsOnce(t *testing.T) {
	f := newMonitorFixture(t)
	resolveTables(f.catalog, monitorCampaignTable)
	servePages(f.store, monitorCampaignTable, []domain.Row{
		{domain.RowIDColumn: int64(1), "date": "2024-03-01", "delivered_impressions": "5"},
	})

	scope := domain.Scope{CampaignTable: "campaign_1", SourceTable: "campaign_1"}
	_, err := f.uc.Refresh(context.Background(), admin, scope)
	require.NoError(t, err)
	f.store.AssertNumberOfCalls(t, "FetchPage", 1)

	rows := f.cache.list(scope)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].DeliveredImpressions)
}

func TestRefreshRequiresFullAccess(t *testing.T) {
	f := newMonitorFixture(t)
	f.cache.put(monitorScope, []domain.MonitorRow{{Period: "2024-01", DeliveredImpressions: 9}})
	before := f.cache.list(monitorScope)

	_, err := f.uc.Refresh(context.Background(), viewer, monitorScope)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Refresh(context.Background(), domain.Principal{}, monitorScope)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.Equal(t, before, f.cache.list(monitorScope))
	assert.Equal(t, 1, f.cache.upsertCount())
	f.store.AssertNotCalled(t, "FetchPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshUnknownTable(t *testing.T) {
	f := newMonitorFixture(t)
	f.catalog.EXPECT().ResolveTable(mock.Anything, "campaign_1").Return(nil, nil).Once()

	_, err := f.uc.Refresh(context.Background(), admin, monitorScope)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.cache.upsertCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Refreshes.WithLabelValues("not_found")))
}

func TestRefreshTransientFailureKeepsCache(t *testing.T) {
	f := newMonitorFixture(t)
	resolveTables(f.catalog, monitorCampaignTable, monitorSourceTable)
	servePages(f.store, monitorCampaignTable, tableRows(3, func(_ int, row domain.Row) { row["date"] = "2024-03-01" }))
	f.store.EXPECT().
		FetchPage(mock.Anything, monitorSourceTable, mock.Anything, mock.Anything).
		Return(domain.Page{}, fmt.Errorf("connection refused: %w", domain.ErrTransient))

	cached := []domain.MonitorRow{{Period: "2023-12", DeliveredImpressions: 77}}
	f.cache.put(monitorScope, cached)

	_, err := f.uc.Refresh(context.Background(), admin, monitorScope)
	require.ErrorIs(t, err, domain.ErrTransient)

	rows, err := f.uc.GetRows(context.Background(), admin, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, cached, rows)
	assert.Equal(t, 1, f.cache.upsertCount())
}

func TestRefreshPersistFailureKeepsCache(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	store := mocks.NewMockTableStore(t)
	repo := mocks.NewMockMonitorRepository(t)
	m := testMetrics()
	limiter := openLimiter(t)
	reader := NewChunkReader(store, limiter, testReaderConfig(), m, discardLogger())
	uc := NewMonitorUseCase(catalog, repo, reader, limiter, testGate(), configs.Monitor{}, m, discardLogger())

	resolveTables(catalog, monitorCampaignTable, monitorSourceTable)
	servePages(store, monitorCampaignTable, nil)
	servePages(store, monitorSourceTable, []domain.Row{
		{domain.RowIDColumn: int64(1), "date": "2024-03-01", "delivered_impressions": "100"},
	})

	cached := []domain.MonitorRow{{Period: "2024-03", DeliveredImpressions: 40, DeliveredLines: 1}}
	repo.EXPECT().
		UpsertMonitorRows(mock.Anything, monitorScope, mock.Anything).
		Return(fmt.Errorf("commit: %w", domain.ErrTransient)).
		Once()
	repo.EXPECT().ListMonitorRows(mock.Anything, monitorScope).Return(cached, nil).Once()

	_, err := uc.Refresh(context.Background(), admin, monitorScope)
	require.ErrorIs(t, err, domain.ErrTransient)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Refreshes.WithLabelValues("transient")))
	assert.Zero(t, testutil.ToFloat64(m.Refreshes.WithLabelValues("ok")))

	rows, err := uc.GetRows(context.Background(), viewer, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, cached, rows)
}

func TestRefreshRejectsIncompleteScope(t *testing.T) {
	f := newMonitorFixture(t)
	_, err := f.uc.Refresh(context.Background(), admin, domain.Scope{CampaignTable: "campaign_1"})
	require.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestGetRowsUncachedScope(t *testing.T) {
	f := newMonitorFixture(t)

	rows, err := f.uc.GetRows(context.Background(), viewer, monitorScope)
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)

	_, err = f.uc.GetRows(context.Background(), domain.Principal{}, monitorScope)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestStatusTransitions(t *testing.T) {
	f := newMonitorFixture(t)
	resolveTables(f.catalog, monitorCampaignTable, monitorSourceTable)
	servePages(f.store, monitorSourceTable, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.store.EXPECT().
		FetchPage(mock.Anything, monitorCampaignTable, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.TableRef, int, int) (domain.Page, error) {
			once.Do(func() { close(started) })
			<-release
			return domain.Page{Rows: tableRows(1, func(_ int, row domain.Row) { row["date"] = "2024-02-10" }), Total: 1}, nil
		})

	ctx := context.Background()
	view, err := f.uc.Status(ctx, viewer, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, domain.MonitorUncached, view.State)

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.Refresh(ctx, admin, monitorScope)
		done <- err
	}()
	<-started

	view, err = f.uc.Status(ctx, viewer, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, domain.MonitorRefreshing, view.State)
	assert.Empty(t, view.Rows)

	close(release)
	require.NoError(t, <-done)

	view, err = f.uc.Status(ctx, viewer, monitorScope)
	require.NoError(t, err)
	assert.Equal(t, domain.MonitorCached, view.State)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "2024-02", view.Rows[0].Period)
}

func TestConcurrentRefreshesShareOneRecomputation(t *testing.T) {
	f := newMonitorFixture(t)

	var resolves atomic.Int32
	for _, table := range []domain.TableRef{monitorCampaignTable, monitorSourceTable} {
		ref := table
		f.catalog.EXPECT().
			ResolveTable(mock.Anything, ref.Name).
			RunAndReturn(func(context.Context, string) (*domain.TableRef, error) {
				resolves.Add(1)
				return &ref, nil
			})
	}
	servePages(f.store, monitorSourceTable, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.store.EXPECT().
		FetchPage(mock.Anything, monitorCampaignTable, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.TableRef, int, int) (domain.Page, error) {
			once.Do(func() { close(started) })
			<-release
			return domain.Page{Rows: tableRows(1, func(_ int, row domain.Row) { row["date"] = "2024-02-10" }), Total: 1}, nil
		})

	ctx := context.Background()
	const callers = 4
	results := make(chan error, callers)
	go func() {
		_, err := f.uc.Refresh(ctx, admin, monitorScope)
		results <- err
	}()
	<-started
	for i := 1; i < callers; i++ {
		go func() {
			_, err := f.uc.Refresh(ctx, admin, monitorScope)
			results <- err
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)

	for i := 0; i < callers; i++ {
		require.NoError(t, <-results)
	}
	assert.Equal(t, int32(2), resolves.Load())
	assert.Equal(t, 1, f.cache.upsertCount())
}

func TestRefreshCallerCancellationDoesNotAbortRecomputation(t *testing.T) {
	f := newMonitorFixture(t)
	resolveTables(f.catalog, monitorCampaignTable, monitorSourceTable)
	servePages(f.store, monitorSourceTable, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.store.EXPECT().
		FetchPage(mock.Anything, monitorCampaignTable, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.TableRef, int, int) (domain.Page, error) {
			once.Do(func() { close(started) })
			<-release
			return domain.Page{Rows: tableRows(1, func(_ int, row domain.Row) { row["date"] = "2024-05-01" }), Total: 1}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.uc.Refresh(ctx, admin, monitorScope)
		done <- err
	}()
	<-started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	close(release)
	require.Eventually(t, func() bool { return f.cache.upsertCount() == 1 }, time.Second, 10*time.Millisecond)
}
