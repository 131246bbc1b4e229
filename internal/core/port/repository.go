package port

import (
	"context"

	"mesa-board/internal/core/domain"
)

// Limiter gates every outbound call to the backing store. Implementations
// must be safe for concurrent use.
type Limiter interface {
	// Acquire blocks until one more call may be issued. It only fails when
	// ctx ends first.
	Acquire(ctx context.Context) error
}

// TableStore reads dynamic tables. It is an outbound port; each method call
// is one logical call to the store, so callers acquire the limiter once per
// call even when the adapter needs a transaction around it.
type TableStore interface {
	// FetchPage returns up to limit rows starting at offset, ordered by the
	// row identity column, together with the table row count. A missing
	// table yields domain.ErrNotFound, transport failures
	// domain.ErrTransient.
	FetchPage(ctx context.Context, table domain.TableRef, offset, limit int) (domain.Page, error)
}

// CatalogRepository reads campaign and source metadata. Lookups return
// nil, nil when nothing matches.
type CatalogRepository interface {
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetSource returns a source by id.
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	// ResolveTable returns the handle of the campaign or source table named
	// name.
	ResolveTable(ctx context.Context, name string) (*domain.TableRef, error)
}

// MonitorRepository persists monitor rollups.
type MonitorRepository interface {
	// ListMonitorRows returns the rows of scope ordered by period.
	ListMonitorRows(ctx context.Context, scope domain.Scope) ([]domain.MonitorRow, error)
	// UpsertMonitorRows writes rows for scope in a single transaction,
	// overwriting stored rows of the same periods. Either every row is
	// written or none is.
	UpsertMonitorRows(ctx context.Context, scope domain.Scope, rows []domain.MonitorRow) error
}
