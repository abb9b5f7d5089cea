package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const charterColumns = `id, title_ru, title_uz, title_en,
	description_ru, description_uz, description_en,
	file_url, version, is_active, created_at, updated_at`

type CharterRepository struct {
	pool *pgxpool.Pool
}

func NewCharterRepository(pool *pgxpool.Pool) *CharterRepository {
	return &CharterRepository{pool: pool}
}

func scanCharter(row pgx.Row) (models.Charter, error) {
	var c models.Charter
	err := row.Scan(
		&c.ID, &c.TitleRu, &c.TitleUz, &c.TitleEn,
		&c.DescriptionRu, &c.DescriptionUz, &c.DescriptionEn,
		&c.FileURL, &c.Version, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Charter{}, ErrNotFound
	}
	return c, err
}

func (r *CharterRepository) GetActive(ctx context.Context) (models.Charter, error) {
	query := `SELECT ` + charterColumns + ` FROM charters WHERE is_active = TRUE ORDER BY created_at DESC LIMIT 1`
	return scanCharter(r.pool.QueryRow(ctx, query))
}

func (r *CharterRepository) List(ctx context.Context, skip, limit int) ([]models.Charter, error) {
	query := `SELECT ` + charterColumns + ` FROM charters ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list charters: %w", err)
	}
	defer rows.Close()

	charters := make([]models.Charter, 0)
	for rows.Next() {
		c, err := scanCharter(rows)
		if err != nil {
			return nil, err
		}
		charters = append(charters, c)
	}
	return charters, rows.Err()
}

func (r *CharterRepository) GetByID(ctx context.Context, id int64) (models.Charter, error) {
	query := `SELECT ` + charterColumns + ` FROM charters WHERE id = $1`
	return scanCharter(r.pool.QueryRow(ctx, query, id))
}

// Create inserts the charter. When the new charter is active the existing
// active ones are deactivated in the same transaction, so at most one
// charter is active at any point.
func (r *CharterRepository) Create(ctx context.Context, c models.Charter) (models.Charter, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return models.Charter{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if c.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE charters SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE`); err != nil {
			return models.Charter{}, fmt.Errorf("deactivate charters: %w", err)
		}
	}

	const query = `
		INSERT INTO charters (
			title_ru, title_uz, title_en,
			description_ru, description_uz, description_en,
			file_url, version, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + charterColumns

	row := tx.QueryRow(ctx, query,
		c.TitleRu, c.TitleUz, c.TitleEn,
		c.DescriptionRu, c.DescriptionUz, c.DescriptionEn,
		c.FileURL, c.Version, c.IsActive,
	)
	created, err := scanCharter(row)
	if err != nil {
		return models.Charter{}, fmt.Errorf("insert charter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Charter{}, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}

// Update applies the patch; if it flips the charter to active, every other
// charter is deactivated inside the same transaction.
func (r *CharterRepository) Update(ctx context.Context, id int64, in models.CharterPatch) (models.Charter, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return models.Charter{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if in.IsActive != nil && *in.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE charters SET is_active = FALSE, updated_at = NOW() WHERE id <> $1 AND is_active = TRUE`, id); err != nil {
			return models.Charter{}, fmt.Errorf("deactivate charters: %w", err)
		}
	}

	p := newPatch()
	setIf(p, "title_ru", in.TitleRu)
	setIf(p, "title_uz", in.TitleUz)
	setIf(p, "title_en", in.TitleEn)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "file_url", in.FileURL)
	setIf(p, "version", in.Version)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("charters", id, charterColumns)
	updated, err := scanCharter(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Charter{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Charter{}, fmt.Errorf("commit: %w", err)
	}
	return updated, nil
}

func (r *CharterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM charters WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete charter: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
