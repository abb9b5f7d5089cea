package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const congressColumns = `id, title_ru, title_uz, title_en, description_ru, description_uz, description_en,
	program_ru, program_uz, program_en, date_start, date_end, location, image_url,
	is_active, registration_open, created_at, updated_at`

const registrationColumns = `id, congress_id, user_id, full_name, email, phone, organization, position, created_at`

type CongressRepository struct {
	pool *pgxpool.Pool
}

func NewCongressRepository(pool *pgxpool.Pool) *CongressRepository {
	return &CongressRepository{pool: pool}
}

func scanCongress(row pgx.Row) (models.Congress, error) {
	var c models.Congress
	err := row.Scan(
		&c.ID, &c.TitleRu, &c.TitleUz, &c.TitleEn,
		&c.DescriptionRu, &c.DescriptionUz, &c.DescriptionEn,
		&c.ProgramRu, &c.ProgramUz, &c.ProgramEn,
		&c.DateStart, &c.DateEnd, &c.Location, &c.ImageURL,
		&c.IsActive, &c.RegistrationOpen, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Congress{}, ErrNotFound
	}
	return c, err
}

func (r *CongressRepository) List(ctx context.Context, activeOnly bool, skip, limit int) ([]models.Congress, error) {
	query := `SELECT ` + congressColumns + ` FROM congresses`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list congresses: %w", err)
	}
	defer rows.Close()

	items := make([]models.Congress, 0)
	for rows.Next() {
		c, err := scanCongress(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *CongressRepository) GetByID(ctx context.Context, id int64) (models.Congress, error) {
	query := `SELECT ` + congressColumns + ` FROM congresses WHERE id = $1`
	return scanCongress(r.pool.QueryRow(ctx, query, id))
}

func (r *CongressRepository) Create(ctx context.Context, c models.Congress) (models.Congress, error) {
	const query = `
		INSERT INTO congresses (
			title_ru, title_uz, title_en, description_ru, description_uz, description_en,
			program_ru, program_uz, program_en, date_start, date_end, location, image_url,
			is_active, registration_open
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + congressColumns

	row := r.pool.QueryRow(ctx, query,
		c.TitleRu, c.TitleUz, c.TitleEn,
		c.DescriptionRu, c.DescriptionUz, c.DescriptionEn,
		c.ProgramRu, c.ProgramUz, c.ProgramEn,
		c.DateStart, c.DateEnd, c.Location, c.ImageURL,
		c.IsActive, c.RegistrationOpen,
	)
	created, err := scanCongress(row)
	if err != nil {
		return models.Congress{}, fmt.Errorf("insert congress: %w", err)
	}
	return created, nil
}

func (r *CongressRepository) Update(ctx context.Context, id int64, in models.CongressPatch) (models.Congress, error) {
	p := newPatch()
	setIf(p, "title_ru", in.TitleRu)
	setIf(p, "title_uz", in.TitleUz)
	setIf(p, "title_en", in.TitleEn)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "program_ru", in.ProgramRu)
	setIf(p, "program_uz", in.ProgramUz)
	setIf(p, "program_en", in.ProgramEn)
	setIf(p, "date_start", in.DateStart)
	setIf(p, "date_end", in.DateEnd)
	setIf(p, "location", in.Location)
	setIf(p, "image_url", in.ImageURL)
	setIf(p, "is_active", in.IsActive)
	setIf(p, "registration_open", in.RegistrationOpen)

	query, args := p.updateQuery("congresses", id, congressColumns)
	return scanCongress(r.pool.QueryRow(ctx, query, args...))
}

func (r *CongressRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM congresses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete congress: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanRegistration(row pgx.Row) (models.CongressRegistration, error) {
	var reg models.CongressRegistration
	err := row.Scan(
		&reg.ID, &reg.CongressID, &reg.UserID, &reg.FullName, &reg.Email,
		&reg.Phone, &reg.Organization, &reg.Position, &reg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CongressRegistration{}, ErrNotFound
	}
	return reg, err
}

func (r *CongressRepository) CreateRegistration(ctx context.Context, reg models.CongressRegistration) (models.CongressRegistration, error) {
	const query = `
		INSERT INTO congress_registrations (congress_id, user_id, full_name, email, phone, organization, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + registrationColumns

	row := r.pool.QueryRow(ctx, query,
		reg.CongressID, reg.UserID, reg.FullName, reg.Email,
		reg.Phone, reg.Organization, reg.Position,
	)
	created, err := scanRegistration(row)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return models.CongressRegistration{}, ErrParentNotFound
		}
		return models.CongressRegistration{}, fmt.Errorf("insert registration: %w", err)
	}
	return created, nil
}

func (r *CongressRepository) ListRegistrations(ctx context.Context, congressID *int64, skip, limit int) ([]models.CongressRegistration, error) {
	var (
		where []string
		args  []any
	)
	if congressID != nil {
		args = append(args, *congressID)
		where = append(where, fmt.Sprintf("congress_id = $%d", len(args)))
	}

	query := `SELECT ` + registrationColumns + ` FROM congress_registrations`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, skip)
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]models.CongressRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *CongressRepository) CountRegistrations(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM congress_registrations`).Scan(&count)
	return count, err
}
