package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"mesa-board/internal/access"
	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port"
	"mesa-board/internal/metrics"
)

const defaultRefreshTimeout = 5 * time.Minute

// MonitorUseCase maintains the monthly rollup cache. Reads are served from
// the persisted rows only and never wait for a refresh. Concurrent refreshes
// of the same scope share one recomputation.
type MonitorUseCase struct {
	catalog port.CatalogRepository
	repo    port.MonitorRepository
	reader  *ChunkReader
	limiter port.Limiter
	gate    *access.Gate
	cfg     configs.Monitor
	metrics *metrics.Metrics
	logger  *slog.Logger

	flight singleflight.Group

	mu         sync.Mutex
	refreshing map[string]struct{}
}

// NewMonitorUseCase wires the monitor cache.
func NewMonitorUseCase(
	catalog port.CatalogRepository,
	repo port.MonitorRepository,
	reader *ChunkReader,
	limiter port.Limiter,
	gate *access.Gate,
	cfg configs.Monitor,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MonitorUseCase {
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = defaultRefreshTimeout
	}
	return &MonitorUseCase{
		catalog:    catalog,
		repo:       repo,
		reader:     reader,
		limiter:    limiter,
		gate:       gate,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
		refreshing: make(map[string]struct{}),
	}
}

// GetRows returns the persisted rollups of scope sorted by period.
func (u *MonitorUseCase) GetRows(ctx context.Context, p domain.Principal, scope domain.Scope) ([]domain.MonitorRow, error) {
	if err := u.gate.EnforceAuthenticated(p); err != nil {
		return nil, err
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return u.list(ctx, scope)
}

// Status returns the cache state of scope along with its persisted rows. A
// scope being recomputed still returns its previous rows.
func (u *MonitorUseCase) Status(ctx context.Context, p domain.Principal, scope domain.Scope) (*port.MonitorView, error) {
	rows, err := u.GetRows(ctx, p, scope)
	if err != nil {
		return nil, err
	}
	view := &port.MonitorView{State: domain.MonitorUncached, Rows: rows}
	switch {
	case u.isRefreshing(scope):
		view.State = domain.MonitorRefreshing
	case len(rows) > 0:
		view.State = domain.MonitorCached
	}
	return view, nil
}

// Refresh recomputes the rollups of scope and persists them, whether or not
// rows are cached already. A caller joining a refresh already in flight
// waits for that one instead of starting another. The recomputation is
// detached from ctx so that a caller giving up does not fail the others.
func (u *MonitorUseCase) Refresh(ctx context.Context, p domain.Principal, scope domain.Scope) (*port.RefreshResult, error) {
	if err := u.gate.EnforceAuthenticated(p); err != nil {
		return nil, err
	}
	if err := u.gate.EnforceFullAccess(p); err != nil {
		return nil, err
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	ch := u.flight.DoChan(scope.Key(), func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.RefreshTimeout)
		defer cancel()
		return u.recompute(rctx, scope)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		out := *res.Val.(*port.RefreshResult)
		return &out, nil
	}
}

func (u *MonitorUseCase) recompute(ctx context.Context, scope domain.Scope) (*port.RefreshResult, error) {
	logger := u.logger.With(
		slog.String("refresh_id", uuid.NewString()),
		slog.String("campaign_table", scope.CampaignTable),
		slog.String("data_table", scope.SourceTable),
	)
	u.setRefreshing(scope, true)
	defer u.setRefreshing(scope, false)

	start := time.Now()
	res, err := u.compute(ctx, scope, logger)
	elapsed := time.Since(start)
	if err != nil {
		u.metrics.ObserveRefresh(refreshOutcome(err), elapsed.Seconds(), 0)
		logger.Error("monitor refresh failed", slog.Duration("elapsed", elapsed), slog.Any("error", err))
		return nil, err
	}
	u.metrics.ObserveRefresh("ok", elapsed.Seconds(), res.Anomalies)
	logger.Info("monitor refreshed",
		slog.Int("periods", res.Periods),
		slog.Int("anomalies", res.Anomalies),
		slog.Duration("elapsed", elapsed))
	return res, nil
}

func (u *MonitorUseCase) compute(ctx context.Context, scope domain.Scope, logger *slog.Logger) (*port.RefreshResult, error) {
	campaignTable, err := u.resolve(ctx, scope.CampaignTable)
	if err != nil {
		return nil, err
	}
	sourceTable, err := u.resolve(ctx, scope.SourceTable)
	if err != nil {
		return nil, err
	}

	var campaignRows, sourceRows []domain.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaignRows, err = u.reader.ReadAll(gctx, *campaignTable)
		return err
	})
	if sourceTable.Name != campaignTable.Name {
		g.Go(func() error {
			var err error
			sourceRows, err = u.reader.ReadAll(gctx, *sourceTable)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	rows, stats := rollup(campaignRows, sourceRows)
	if stats.total() > 0 {
		logger.Warn("rollup skipped unusable values",
			slog.Int("malformed_values", stats.malformed),
			slog.Int("undated_rows", stats.undated))
	}

	if len(rows) > 0 {
		if err = u.limiter.Acquire(ctx); err != nil {
			return nil, err
		}
		if err = u.repo.UpsertMonitorRows(ctx, scope, rows); err != nil {
			return nil, fmt.Errorf("persist monitor rows: %w", err)
		}
	}
	return &port.RefreshResult{Periods: len(rows), Anomalies: stats.total()}, nil
}

func (u *MonitorUseCase) resolve(ctx context.Context, name string) (*domain.TableRef, error) {
	if err := u.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	ref, err := u.catalog.ResolveTable(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve table %q: %w", name, err)
	}
	if ref == nil {
		return nil, fmt.Errorf("table %q: %w", name, domain.ErrNotFound)
	}
	return ref, nil
}

func (u *MonitorUseCase) list(ctx context.Context, scope domain.Scope) ([]domain.MonitorRow, error) {
	if err := u.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	rows, err := u.repo.ListMonitorRows(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list monitor rows: %w", err)
	}
	if rows == nil {
		rows = []domain.MonitorRow{}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })
	return rows, nil
}

func (u *MonitorUseCase) setRefreshing(scope domain.Scope, on bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if on {
		u.refreshing[scope.Key()] = struct{}{}
	} else {
		delete(u.refreshing, scope.Key())
	}
}

func (u *MonitorUseCase) isRefreshing(scope domain.Scope) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.refreshing[scope.Key()]
	return ok
}

func refreshOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTransient):
		return "transient"
	default:
		return "error"
	}
}
