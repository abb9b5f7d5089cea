package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const chiefColumns = `id, last_name_ru, last_name_uz, last_name_en,
	first_name_ru, first_name_uz, first_name_en,
	patronymic_ru, patronymic_uz, patronymic_en,
	position_ru, position_uz, position_en,
	degree_ru, degree_uz, degree_en,
	region_ru, region_uz, region_en,
	workplace_ru, workplace_uz, workplace_en,
	bio_ru, bio_uz, bio_en,
	photo_url, email, phone, "order", is_active, created_at, updated_at`

type ChiefRepository struct {
	pool *pgxpool.Pool
}

func NewChiefRepository(pool *pgxpool.Pool) *ChiefRepository {
	return &ChiefRepository{pool: pool}
}

func scanChief(row pgx.Row) (models.ChiefRheumatologist, error) {
	var c models.ChiefRheumatologist
	err := row.Scan(
		&c.ID, &c.LastNameRu, &c.LastNameUz, &c.LastNameEn,
		&c.FirstNameRu, &c.FirstNameUz, &c.FirstNameEn,
		&c.PatronymicRu, &c.PatronymicUz, &c.PatronymicEn,
		&c.PositionRu, &c.PositionUz, &c.PositionEn,
		&c.DegreeRu, &c.DegreeUz, &c.DegreeEn,
		&c.RegionRu, &c.RegionUz, &c.RegionEn,
		&c.WorkplaceRu, &c.WorkplaceUz, &c.WorkplaceEn,
		&c.BioRu, &c.BioUz, &c.BioEn,
		&c.PhotoURL, &c.Email, &c.Phone, &c.Order, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ChiefRheumatologist{}, ErrNotFound
	}
	return c, err
}

func (r *ChiefRepository) List(ctx context.Context, opts ListOptions) ([]models.ChiefRheumatologist, error) {
	query := `SELECT ` + chiefColumns + ` FROM chief_rheumatologists`
	if !opts.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY "order" ASC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Skip, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list chief rheumatologists: %w", err)
	}
	defer rows.Close()

	chiefs := make([]models.ChiefRheumatologist, 0)
	for rows.Next() {
		c, err := scanChief(rows)
		if err != nil {
			return nil, err
		}
		chiefs = append(chiefs, c)
	}
	return chiefs, rows.Err()
}

func (r *ChiefRepository) GetByID(ctx context.Context, id int64) (models.ChiefRheumatologist, error) {
	query := `SELECT ` + chiefColumns + ` FROM chief_rheumatologists WHERE id = $1`
	return scanChief(r.pool.QueryRow(ctx, query, id))
}

func (r *ChiefRepository) Create(ctx context.Context, c models.ChiefRheumatologist) (models.ChiefRheumatologist, error) {
	const query = `
		INSERT INTO chief_rheumatologists (
			last_name_ru, last_name_uz, last_name_en,
			first_name_ru, first_name_uz, first_name_en,
			patronymic_ru, patronymic_uz, patronymic_en,
			position_ru, position_uz, position_en,
			degree_ru, degree_uz, degree_en,
			region_ru, region_uz, region_en,
			workplace_ru, workplace_uz, workplace_en,
			bio_ru, bio_uz, bio_en,
			photo_url, email, phone, "order", is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)
		RETURNING ` + chiefColumns

	row := r.pool.QueryRow(ctx, query,
		c.LastNameRu, c.LastNameUz, c.LastNameEn,
		c.FirstNameRu, c.FirstNameUz, c.FirstNameEn,
		c.PatronymicRu, c.PatronymicUz, c.PatronymicEn,
		c.PositionRu, c.PositionUz, c.PositionEn,
		c.DegreeRu, c.DegreeUz, c.DegreeEn,
		c.RegionRu, c.RegionUz, c.RegionEn,
		c.WorkplaceRu, c.WorkplaceUz, c.WorkplaceEn,
		c.BioRu, c.BioUz, c.BioEn,
		c.PhotoURL, c.Email, c.Phone, c.Order, c.IsActive,
	)
	created, err := scanChief(row)
	if err != nil {
		return models.ChiefRheumatologist{}, fmt.Errorf("insert chief rheumatologist: %w", err)
	}
	return created, nil
}

func (r *ChiefRepository) Update(ctx context.Context, id int64, in models.ChiefRheumatologistPatch) (models.ChiefRheumatologist, error) {
	p := newPatch()
	setIf(p, "last_name_ru", in.LastNameRu)
	setIf(p, "last_name_uz", in.LastNameUz)
	setIf(p, "last_name_en", in.LastNameEn)
	setIf(p, "first_name_ru", in.FirstNameRu)
	setIf(p, "first_name_uz", in.FirstNameUz)
	setIf(p, "first_name_en", in.FirstNameEn)
	setIf(p, "patronymic_ru", in.PatronymicRu)
	setIf(p, "patronymic_uz", in.PatronymicUz)
	setIf(p, "patronymic_en", in.PatronymicEn)
	setIf(p, "position_ru", in.PositionRu)
	setIf(p, "position_uz", in.PositionUz)
	setIf(p, "position_en", in.PositionEn)
	setIf(p, "degree_ru", in.DegreeRu)
	setIf(p, "degree_uz", in.DegreeUz)
	setIf(p, "degree_en", in.DegreeEn)
	setIf(p, "region_ru", in.RegionRu)
	setIf(p, "region_uz", in.RegionUz)
	setIf(p, "region_en", in.RegionEn)
	setIf(p, "workplace_ru", in.WorkplaceRu)
	setIf(p, "workplace_uz", in.WorkplaceUz)
	setIf(p, "workplace_en", in.WorkplaceEn)
	setIf(p, "bio_ru", in.BioRu)
	setIf(p, "bio_uz", in.BioUz)
	setIf(p, "bio_en", in.BioEn)
	setIf(p, "photo_url", in.PhotoURL)
	setIf(p, "email", in.Email)
	setIf(p, "phone", in.Phone)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("chief_rheumatologists", id, chiefColumns)
	return scanChief(r.pool.QueryRow(ctx, query, args...))
}

func (r *ChiefRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM chief_rheumatologists WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete chief rheumatologist: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
