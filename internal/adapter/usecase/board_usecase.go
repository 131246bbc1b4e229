package usecase

import (
	"context"
	"fmt"

	"mesa-board/internal/access"
	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port"
)

// BoardUseCase serves board views: one page of a campaign or source table
// with cells keyed by display header.
type BoardUseCase struct {
	catalog port.CatalogRepository
	reader  *ChunkReader
	limiter port.Limiter
	gate    *access.Gate
}

// NewBoardUseCase wires the board read path.
func NewBoardUseCase(catalog port.CatalogRepository, reader *ChunkReader, limiter port.Limiter, gate *access.Gate) *BoardUseCase {
	return &BoardUseCase{catalog: catalog, reader: reader, limiter: limiter, gate: gate}
}

// ReadCampaignRows returns one page of the table of campaign campaignID. A
// zero limit selects the default page size.
func (u *BoardUseCase) ReadCampaignRows(ctx context.Context, p domain.Principal, campaignID int64, offset, limit int) (*port.BoardPage, error) {
	if err := u.gate.EnforceAuthenticated(p); err != nil {
		return nil, err
	}
	if err := u.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	c, err := u.catalog.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", campaignID, err)
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	return u.readPage(ctx, c.Table(), offset, limit)
}

// ReadSourceRows returns one page of the table of source sourceID. Sources
// backed by an external entity reference have no table to page through.
func (u *BoardUseCase) ReadSourceRows(ctx context.Context, p domain.Principal, sourceID int64, offset, limit int) (*port.BoardPage, error) {
	if err := u.gate.EnforceAuthenticated(p); err != nil {
		return nil, err
	}
	if err := u.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	s, err := u.catalog.GetSource(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get source %d: %w", sourceID, err)
	}
	if s == nil {
		return nil, fmt.Errorf("source %d: %w", sourceID, domain.ErrNotFound)
	}
	table, ok := s.Table()
	if !ok {
		return nil, fmt.Errorf("source %d references an external entity set: %w", sourceID, domain.ErrBadRequest)
	}
	return u.readPage(ctx, table, offset, limit)
}

func (u *BoardUseCase) readPage(ctx context.Context, table domain.TableRef, offset, limit int) (*port.BoardPage, error) {
	if limit == 0 {
		limit = u.reader.PageSize()
	}
	limit = u.reader.capLimit(limit)
	page, err := u.reader.ReadChunk(ctx, table, offset, limit)
	if err != nil {
		return nil, err
	}

	columns := table.Columns()
	out := &port.BoardPage{
		Columns: columns,
		Rows:    make([]port.BoardRow, 0, len(page.Rows)),
		Total:   page.Total,
		Offset:  offset,
		Limit:   limit,
	}
	for _, row := range page.Rows {
		cells := make(map[string]any, len(columns))
		for _, c := range columns {
			cells[c.Header] = row[c.Key]
		}
		out.Rows = append(out.Rows, port.BoardRow{ID: row[domain.RowIDColumn], Cells: cells})
	}
	return out, nil
}
