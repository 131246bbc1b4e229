package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-board/internal/core/domain"
)

// TableStore implements port.TableStore over dynamic tables in PostgreSQL.
type TableStore struct {
	pool *pgxpool.Pool
}

// NewTableStore returns a store reading through pool.
func NewTableStore(pool *pgxpool.Pool) *TableStore {
	return &TableStore{pool: pool}
}

// FetchPage reads one page and the table row count from the same snapshot,
// so the total stays consistent with the returned rows.
func (s *TableStore) FetchPage(ctx context.Context, table domain.TableRef, offset, limit int) (page domain.Page, err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return domain.Page{}, classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = classify(tx.Commit(ctx))
		}
	}()

	name := pgx.Identifier{table.Name}.Sanitize()
	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`SELECT * FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		name, pgx.Identifier{domain.RowIDColumn}.Sanitize()), limit, offset)
	batch.Queue(fmt.Sprintf(`SELECT count(*) FROM %s`, name))

	br := tx.SendBatch(ctx, batch)
	defer func() {
		if cerr := br.Close(); cerr != nil && err == nil {
			err = classify(cerr)
		}
	}()

	rows, err := br.Query()
	if err != nil {
		return domain.Page{}, classify(err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return domain.Page{}, classify(err)
	}
	if err = br.QueryRow().Scan(&page.Total); err != nil {
		return domain.Page{}, classify(err)
	}

	page.Rows = make([]domain.Row, 0, len(maps))
	for _, m := range maps {
		page.Rows = append(page.Rows, normalizeRow(m))
	}
	return page, nil
}

// normalizeRow turns driver values into plain Go values: text columns arrive
// as strings already, raw bytes are converted.
func normalizeRow(m map[string]any) domain.Row {
	row := make(domain.Row, len(m))
	for k, v := range m {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		row[k] = v
	}
	return row
}
