package port

import (
	"context"

	"mesa-board/internal/core/domain"
)

// MonitorUseCase exposes the monthly rollup cache. This interface is the
// primary port used by the HTTP adapter.
type MonitorUseCase interface {
	// GetRows returns the persisted rollups of scope sorted by period. An
	// uncached scope yields an empty slice, not an error.
	GetRows(ctx context.Context, p domain.Principal, scope domain.Scope) ([]domain.MonitorRow, error)

	// Status returns the cache state of scope with its persisted rows.
	Status(ctx context.Context, p domain.Principal, scope domain.Scope) (*MonitorView, error)

	// Refresh recomputes the rollups of scope from its dynamic tables and
	// persists them. Only full-access principals may call it.
	Refresh(ctx context.Context, p domain.Principal, scope domain.Scope) (*RefreshResult, error)
}

// BoardUseCase serves paginated board views of dynamic tables.
type BoardUseCase interface {
	// ReadCampaignRows returns one page of the table of a campaign.
	ReadCampaignRows(ctx context.Context, p domain.Principal, campaignID int64, offset, limit int) (*BoardPage, error)
	// ReadSourceRows returns one page of the table of a CSV-origin source.
	ReadSourceRows(ctx context.Context, p domain.Principal, sourceID int64, offset, limit int) (*BoardPage, error)
}

// MonitorView is the cache state of a scope together with its rows.
type MonitorView struct {
	State domain.MonitorState `json:"state"`
	Rows  []domain.MonitorRow `json:"rows"`
}

// RefreshResult acknowledges a finished recomputation. Periods counts the
// written rows; Anomalies counts values treated as zero and undated rows
// that were skipped.
type RefreshResult struct {
	Periods   int `json:"periods"`
	Anomalies int `json:"anomalies"`
}

// BoardPage is a page of a dynamic table in display terms. Cells of every
// row are keyed by display header.
type BoardPage struct {
	Columns []domain.Column `json:"columns"`
	Rows    []BoardRow      `json:"rows"`
	Total   int64           `json:"total"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}

// BoardRow is one row of a BoardPage.
type BoardRow struct {
	ID    any            `json:"id"`
	Cells map[string]any `json:"cells"`
}
