package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-board/internal/core/domain"
)

// MonitorRepository implements port.MonitorRepository on the monitor_rows
// table. Monetary columns are numeric and cross the wire as text to keep
// them exact.
type MonitorRepository struct {
	pool *pgxpool.Pool
}

// NewMonitorRepository returns a new repository instance.
func NewMonitorRepository(pool *pgxpool.Pool) *MonitorRepository {
	return &MonitorRepository{pool: pool}
}

// ListMonitorRows returns the rows of scope ordered by period.
func (r *MonitorRepository) ListMonitorRows(ctx context.Context, scope domain.Scope) ([]domain.MonitorRow, error) {
	query := `
        SELECT
            period,
            booked_impressions,
            delivered_impressions,
            delivered_lines,
            media_cost::text,
            media_fees::text,
            third_party_cost::text,
            total_cost::text,
            booked_revenue::text
        FROM monitor_rows
        WHERE campaign_table = $1 AND source_table = $2
        ORDER BY period`
	rows, err := r.pool.Query(ctx, query, scope.CampaignTable, scope.SourceTable)
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonitorRow, error) {
		var (
			m     domain.MonitorRow
			money [5]string
		)
		if err := row.Scan(
			&m.Period,
			&m.BookedImpressions,
			&m.DeliveredImpressions,
			&m.DeliveredLines,
			&money[0],
			&money[1],
			&money[2],
			&money[3],
			&money[4],
		); err != nil {
			return m, err
		}
		targets := [5]*decimal.Decimal{&m.MediaCost, &m.MediaFees, &m.ThirdPartyCost, &m.TotalCost, &m.BookedRevenue}
		for i, s := range money {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return m, fmt.Errorf("period %s: %w", m.Period, err)
			}
			*targets[i] = d
		}
		return m, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// UpsertMonitorRows writes rows in one transaction. Stored periods missing
// from rows are left alone.
func (r *MonitorRepository) UpsertMonitorRows(ctx context.Context, scope domain.Scope, rows []domain.MonitorRow) (err error) {
	if len(rows) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = classify(tx.Commit(ctx))
		}
	}()

	query := `
        INSERT INTO monitor_rows (
            campaign_table, source_table, period,
            booked_impressions, delivered_impressions, delivered_lines,
            media_cost, media_fees, third_party_cost, total_cost, booked_revenue,
            updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8::numeric, $9::numeric, $10::numeric, $11::numeric, now())
        ON CONFLICT (campaign_table, source_table, period) DO UPDATE SET
            booked_impressions = EXCLUDED.booked_impressions,
            delivered_impressions = EXCLUDED.delivered_impressions,
            delivered_lines = EXCLUDED.delivered_lines,
            media_cost = EXCLUDED.media_cost,
            media_fees = EXCLUDED.media_fees,
            third_party_cost = EXCLUDED.third_party_cost,
            total_cost = EXCLUDED.total_cost,
            booked_revenue = EXCLUDED.booked_revenue,
            updated_at = EXCLUDED.updated_at`
	batch := &pgx.Batch{}
	for _, m := range rows {
		batch.Queue(query,
			scope.CampaignTable, scope.SourceTable, m.Period,
			m.BookedImpressions, m.DeliveredImpressions, m.DeliveredLines,
			m.MediaCost.String(), m.MediaFees.String(), m.ThirdPartyCost.String(), m.TotalCost.String(), m.BookedRevenue.String())
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return classify(err)
	}
	return nil
}
