package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"mesa-board/internal/colkey"
)

const (
	demoCampaignTable = "campaign_demo"
	demoSourceTable   = "source_demo"
	demoMonths        = 6
	demoLinesPerMonth = 8
)

var (
	demoCampaignHeaders = []string{"Date", "Line Item", "Booked Impressions", "Booked Revenue"}
	demoSourceHeaders   = []string{"Date", "Line Item", "Delivered Impressions", "Media Cost ($)", "Media Fees", "Third-Party Cost"}
)

// Seed inserts a demo campaign and a CSV-origin source, each with a dynamic
// table holding a few months of rows, in one transaction. A database that
// already holds the demo campaign is left alone.
func Seed(ctx context.Context, db *pgxpool.Pool, logger *slog.Logger) (err error) {
	if err = checkSanitizer(ctx, db, logger, slices.Concat(demoCampaignHeaders, demoSourceHeaders)); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var campaignID int64
	err = tx.QueryRow(ctx, `INSERT INTO campaigns (name, table_name, headers, created_at, updated_at)
VALUES ($1, $2, $3, now(), now()) ON CONFLICT (table_name) DO NOTHING RETURNING id`,
		"Demo campaign", demoCampaignTable, demoCampaignHeaders).Scan(&campaignID)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Info("demo data already present, skipping seed")
		return nil
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO sources (name, table_name, headers, created_at)
VALUES ($1, $2, $3, now()) ON CONFLICT (table_name) DO NOTHING`,
		"Demo ad server export", demoSourceTable, demoSourceHeaders)
	if err != nil {
		return err
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -demoMonths, 0)

	var campaignRows, sourceRows [][]string
	for m := 0; m < demoMonths; m++ {
		month := start.AddDate(0, m, 0)
		for l := 1; l <= demoLinesPerMonth; l++ {
			day := month.AddDate(0, 0, r.Intn(28))
			line := fmt.Sprintf("Line %d", l)
			booked := 10000 + r.Intn(40000)
			delivered := booked * (70 + r.Intn(40)) / 100
			if r.Intn(10) == 0 {
				delivered = 0
			}
			cost := float64(delivered) / 1000 * 4.5
			campaignRows = append(campaignRows, []string{
				day.Format("2006-01-02"),
				line,
				fmt.Sprint(booked),
				fmt.Sprintf("$%.2f", float64(booked)/1000*9),
			})
			sourceRows = append(sourceRows, []string{
				day.Format("1/2/2006"),
				line,
				fmt.Sprint(delivered),
				fmt.Sprintf("%.2f", cost),
				fmt.Sprintf("%.2f", cost*0.1),
				fmt.Sprintf("%.2f", cost*0.05),
			})
		}
	}

	if err = createDynamicTable(ctx, tx, demoCampaignTable, demoCampaignHeaders, campaignRows); err != nil {
		return err
	}
	if err = createDynamicTable(ctx, tx, demoSourceTable, demoSourceHeaders, sourceRows); err != nil {
		return err
	}
	logger.Info("seeded demo data",
		slog.Int64("campaign_id", campaignID),
		slog.String("campaign_table", demoCampaignTable),
		slog.String("source_table", demoSourceTable),
		slog.Int("rows_per_table", len(campaignRows)))
	return nil
}

// createDynamicTable creates table through the create_dynamic_table routine
// and inserts rows, one value per header.
func createDynamicTable(ctx context.Context, tx pgx.Tx, table string, headers []string, rows [][]string) error {
	var keys []string
	if err := tx.QueryRow(ctx, `SELECT create_dynamic_table($1, $2)`, table, headers).Scan(&keys); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	cols := make([]string, len(keys))
	params := make([]string, len(keys))
	for i, k := range keys {
		cols[i] = pq.QuoteIdentifier(k)
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	insert := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		pq.QuoteIdentifier(table), strings.Join(cols, ", "), strings.Join(params, ", "))

	batch := &pgx.Batch{}
	for _, row := range rows {
		args := make([]any, len(keys))
		for i := range keys {
			args[i] = row[i]
		}
		batch.Queue(insert, args...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("fill table %s: %w", table, err)
	}
	return nil
}

// checkSanitizer compares colkey.Sanitize with the SQL routine for headers
// and warns on every mismatch. Diverging keys would make board cells and
// rollups read the wrong columns.
func checkSanitizer(ctx context.Context, db *pgxpool.Pool, logger *slog.Logger, headers []string) error {
	var sqlKeys []string
	err := db.QueryRow(ctx, `SELECT array_agg(sanitize_column_key(h) ORDER BY i) FROM unnest($1::text[]) WITH ORDINALITY AS t(h, i)`, headers).
		Scan(&sqlKeys)
	if err != nil {
		return fmt.Errorf("sanitize_column_key: %w", err)
	}
	for i, h := range headers {
		if goKey := colkey.Sanitize(h); i >= len(sqlKeys) || sqlKeys[i] != goKey {
			logger.Warn("column key sanitizers disagree",
				slog.String("header", h),
				slog.String("go_key", goKey),
				slog.Any("sql_keys", sqlKeys))
		}
	}
	return nil
}
