package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-board/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository using pgxpool.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// GetCampaign returns a campaign by id.
func (r *CatalogRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, name, table_name, headers, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.TableName, &c.Headers, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

// GetSource returns a source by id.
func (r *CatalogRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var s domain.Source
	err := r.pool.QueryRow(ctx, `SELECT id, name, table_name, entity_set, entity_type, headers, created_at FROM sources WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.TableName, &s.EntitySet, &s.EntityType, &s.Headers, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &s, nil
}

// ResolveTable looks name up among campaign and source tables.
func (r *CatalogRepository) ResolveTable(ctx context.Context, name string) (*domain.TableRef, error) {
	query := `
        SELECT 'campaign', id, headers FROM campaigns WHERE table_name = $1
        UNION ALL
        SELECT 'source', id, headers FROM sources WHERE table_name = $1
        LIMIT 1`
	ref := domain.TableRef{Name: name}
	err := r.pool.QueryRow(ctx, query, name).Scan(&ref.Kind, &ref.OwnerID, &ref.Headers)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &ref, nil
}
