package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port"
	"mesa-board/internal/metrics"
)

// ChunkReader pages through dynamic tables. Every attempt acquires the
// limiter once before it reaches the store, and transient failures are
// retried with exponential backoff a bounded number of times.
type ChunkReader struct {
	store   port.TableStore
	limiter port.Limiter
	cfg     configs.Reader
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewChunkReader creates a reader over store. A non-positive page size
// falls back to 500 rows.
func NewChunkReader(store port.TableStore, limiter port.Limiter, cfg configs.Reader, m *metrics.Metrics, logger *slog.Logger) *ChunkReader {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	if cfg.MaxPageSize > 0 && cfg.PageSize > cfg.MaxPageSize {
		cfg.PageSize = cfg.MaxPageSize
	}
	return &ChunkReader{store: store, limiter: limiter, cfg: cfg, metrics: m, logger: logger}
}

// PageSize returns the default page size.
func (r *ChunkReader) PageSize() int {
	return r.cfg.PageSize
}

// ReadChunk returns up to limit rows of table starting at offset, in row
// identity order, together with the row count of the whole table. Limits
// above the configured maximum are capped.
func (r *ChunkReader) ReadChunk(ctx context.Context, table domain.TableRef, offset, limit int) (domain.Page, error) {
	if offset < 0 {
		return domain.Page{}, fmt.Errorf("offset %d must not be negative: %w", offset, domain.ErrBadRequest)
	}
	if limit <= 0 {
		return domain.Page{}, fmt.Errorf("limit %d must be positive: %w", limit, domain.ErrBadRequest)
	}
	limit = r.capLimit(limit)

	var page domain.Page
	op := func() error {
		if err := r.limiter.Acquire(ctx); err != nil {
			return backoff.Permanent(err)
		}
		p, err := r.store.FetchPage(ctx, table, offset, limit)
		if err != nil {
			if errors.Is(err, domain.ErrTransient) {
				return err
			}
			return backoff.Permanent(err)
		}
		page = p
		return nil
	}
	notify := func(err error, next time.Duration) {
		r.metrics.ObserveRetry()
		r.logger.Warn("chunk read failed, retrying",
			slog.String("table", table.Name),
			slog.Int("offset", offset),
			slog.Duration("backoff", next),
			slog.Any("error", err))
	}

	if err := backoff.RetryNotify(op, r.retryPolicy(ctx), notify); err != nil {
		r.metrics.ObserveChunk(chunkOutcome(err))
		return domain.Page{}, fmt.Errorf("read %s table %q at offset %d: %w", table.Kind, table.Name, offset, err)
	}
	r.metrics.ObserveChunk("ok")
	return page, nil
}

// ReadAll walks table page by page and returns every row in order.
func (r *ChunkReader) ReadAll(ctx context.Context, table domain.TableRef) ([]domain.Row, error) {
	var rows []domain.Row
	for offset := 0; ; {
		page, err := r.ReadChunk(ctx, table, offset, r.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page.Rows...)
		offset += len(page.Rows)
		if len(page.Rows) == 0 || int64(offset) >= page.Total {
			return rows, nil
		}
	}
}

func (r *ChunkReader) capLimit(limit int) int {
	if r.cfg.MaxPageSize > 0 && limit > r.cfg.MaxPageSize {
		return r.cfg.MaxPageSize
	}
	return limit
}

func (r *ChunkReader) retryPolicy(ctx context.Context) backoff.BackOffContext {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.cfg.RetryInterval
	eb.MaxInterval = r.cfg.RetryMaxInterval
	eb.MaxElapsedTime = 0 // bounded by MaxRetries instead
	return backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx)
}

func chunkOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTransient):
		return "transient"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
