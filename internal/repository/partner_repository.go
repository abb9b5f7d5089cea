package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const partnerColumns = `id, name_ru, name_uz, name_en, short_name,
	description_ru, description_uz, description_en,
	logo_url, website_url, country_ru, country_uz, country_en,
	"order", is_active, created_at, updated_at`

type PartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

func scanPartner(row pgx.Row) (models.Partner, error) {
	var p models.Partner
	err := row.Scan(
		&p.ID, &p.NameRu, &p.NameUz, &p.NameEn, &p.ShortName,
		&p.DescriptionRu, &p.DescriptionUz, &p.DescriptionEn,
		&p.LogoURL, &p.WebsiteURL, &p.CountryRu, &p.CountryUz, &p.CountryEn,
		&p.Order, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Partner{}, ErrNotFound
	}
	return p, err
}

func (r *PartnerRepository) List(ctx context.Context, opts ListOptions) ([]models.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners`
	if !opts.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY "order" ASC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Skip, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	partners := make([]models.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (models.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	return scanPartner(r.pool.QueryRow(ctx, query, id))
}

func (r *PartnerRepository) Create(ctx context.Context, p models.Partner) (models.Partner, error) {
	const query = `
		INSERT INTO partners (
			name_ru, name_uz, name_en, short_name,
			description_ru, description_uz, description_en,
			logo_url, website_url, country_ru, country_uz, country_en,
			"order", is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + partnerColumns

	row := r.pool.QueryRow(ctx, query,
		p.NameRu, p.NameUz, p.NameEn, p.ShortName,
		p.DescriptionRu, p.DescriptionUz, p.DescriptionEn,
		p.LogoURL, p.WebsiteURL, p.CountryRu, p.CountryUz, p.CountryEn,
		p.Order, p.IsActive,
	)
	created, err := scanPartner(row)
	if err != nil {
		return models.Partner{}, fmt.Errorf("insert partner: %w", err)
	}
	return created, nil
}

func (r *PartnerRepository) Update(ctx context.Context, id int64, in models.PartnerPatch) (models.Partner, error) {
	p := newPatch()
	setIf(p, "name_ru", in.NameRu)
	setIf(p, "name_uz", in.NameUz)
	setIf(p, "name_en", in.NameEn)
	setIf(p, "short_name", in.ShortName)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "logo_url", in.LogoURL)
	setIf(p, "website_url", in.WebsiteURL)
	setIf(p, "country_ru", in.CountryRu)
	setIf(p, "country_uz", in.CountryUz)
	setIf(p, "country_en", in.CountryEn)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("partners", id, partnerColumns)
	return scanPartner(r.pool.QueryRow(ctx, query, args...))
}

func (r *PartnerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete partner: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
