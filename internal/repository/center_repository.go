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

const centerColumns = `id, name_ru, name_uz, name_en,
	description_ru, description_uz, description_en,
	address_ru, address_uz, address_en,
	phone, email, website, image_url, "order", is_active, created_at, updated_at`

const staffColumns = `id, center_id, last_name_ru, last_name_uz, last_name_en,
	first_name_ru, first_name_uz, first_name_en,
	patronymic_ru, patronymic_uz, patronymic_en,
	position_ru, position_uz, position_en,
	credentials_ru, credentials_uz, credentials_en,
	photo_url, "order", is_active, created_at, updated_at`

// CenterRepository manages regional centers and their staff. Staff rows are
// owned by their center: deleting a center cascades to them at the schema
// level.
type CenterRepository struct {
	pool *pgxpool.Pool
}

func NewCenterRepository(pool *pgxpool.Pool) *CenterRepository {
	return &CenterRepository{pool: pool}
}

func scanCenter(row pgx.Row) (models.Center, error) {
	var c models.Center
	err := row.Scan(
		&c.ID, &c.NameRu, &c.NameUz, &c.NameEn,
		&c.DescriptionRu, &c.DescriptionUz, &c.DescriptionEn,
		&c.AddressRu, &c.AddressUz, &c.AddressEn,
		&c.Phone, &c.Email, &c.Website, &c.ImageURL,
		&c.Order, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Center{}, ErrNotFound
	}
	return c, err
}

func (r *CenterRepository) List(ctx context.Context, opts ListOptions) ([]models.Center, error) {
	query := `SELECT ` + centerColumns + ` FROM centers`
	if !opts.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY "order" ASC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Skip, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()

	centers := make([]models.Center, 0)
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func (r *CenterRepository) GetByID(ctx context.Context, id int64) (models.Center, error) {
	query := `SELECT ` + centerColumns + ` FROM centers WHERE id = $1`
	return scanCenter(r.pool.QueryRow(ctx, query, id))
}

// GetWithStaff loads a center and its active staff ordered for display.
func (r *CenterRepository) GetWithStaff(ctx context.Context, id int64) (models.CenterWithStaff, error) {
	center, err := r.GetByID(ctx, id)
	if err != nil {
		return models.CenterWithStaff{}, err
	}

	staff, err := r.ListStaff(ctx, &id, ListOptions{IncludeInactive: false, Skip: 0, Limit: 100})
	if err != nil {
		return models.CenterWithStaff{}, err
	}

	return models.CenterWithStaff{Center: center, Staff: staff}, nil
}

func (r *CenterRepository) Create(ctx context.Context, c models.Center) (models.Center, error) {
	const query = `
		INSERT INTO centers (
			name_ru, name_uz, name_en,
			description_ru, description_uz, description_en,
			address_ru, address_uz, address_en,
			phone, email, website, image_url, "order", is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + centerColumns

	row := r.pool.QueryRow(ctx, query,
		c.NameRu, c.NameUz, c.NameEn,
		c.DescriptionRu, c.DescriptionUz, c.DescriptionEn,
		c.AddressRu, c.AddressUz, c.AddressEn,
		c.Phone, c.Email, c.Website, c.ImageURL, c.Order, c.IsActive,
	)
	created, err := scanCenter(row)
	if err != nil {
		return models.Center{}, fmt.Errorf("insert center: %w", err)
	}
	return created, nil
}

func (r *CenterRepository) Update(ctx context.Context, id int64, in models.CenterPatch) (models.Center, error) {
	p := newPatch()
	setIf(p, "name_ru", in.NameRu)
	setIf(p, "name_uz", in.NameUz)
	setIf(p, "name_en", in.NameEn)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "address_ru", in.AddressRu)
	setIf(p, "address_uz", in.AddressUz)
	setIf(p, "address_en", in.AddressEn)
	setIf(p, "phone", in.Phone)
	setIf(p, "email", in.Email)
	setIf(p, "website", in.Website)
	setIf(p, "image_url", in.ImageURL)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("centers", id, centerColumns)
	return scanCenter(r.pool.QueryRow(ctx, query, args...))
}

func (r *CenterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete center: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanStaff(row pgx.Row) (models.CenterStaff, error) {
	var s models.CenterStaff
	err := row.Scan(
		&s.ID, &s.CenterID, &s.LastNameRu, &s.LastNameUz, &s.LastNameEn,
		&s.FirstNameRu, &s.FirstNameUz, &s.FirstNameEn,
		&s.PatronymicRu, &s.PatronymicUz, &s.PatronymicEn,
		&s.PositionRu, &s.PositionUz, &s.PositionEn,
		&s.CredentialsRu, &s.CredentialsUz, &s.CredentialsEn,
		&s.PhotoURL, &s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CenterStaff{}, ErrNotFound
	}
	return s, err
}

func (r *CenterRepository) ListStaff(ctx context.Context, centerID *int64, opts ListOptions) ([]models.CenterStaff, error) {
	var (
		where []string
		args  []any
	)
	if centerID != nil {
		args = append(args, *centerID)
		where = append(where, fmt.Sprintf("center_id = $%d", len(args)))
	}
	if !opts.IncludeInactive {
		where = append(where, "is_active = TRUE")
	}

	query := `SELECT ` + staffColumns + ` FROM center_staff`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, opts.Skip)
	query += fmt.Sprintf(` ORDER BY "order" ASC OFFSET $%d`, len(args))
	args = append(args, opts.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list center staff: %w", err)
	}
	defer rows.Close()

	staff := make([]models.CenterStaff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *CenterRepository) GetStaffByID(ctx context.Context, id int64) (models.CenterStaff, error) {
	query := `SELECT ` + staffColumns + ` FROM center_staff WHERE id = $1`
	return scanStaff(r.pool.QueryRow(ctx, query, id))
}

func (r *CenterRepository) CreateStaff(ctx context.Context, s models.CenterStaff) (models.CenterStaff, error) {
	const query = `
		INSERT INTO center_staff (
			center_id, last_name_ru, last_name_uz, last_name_en,
			first_name_ru, first_name_uz, first_name_en,
			patronymic_ru, patronymic_uz, patronymic_en,
			position_ru, position_uz, position_en,
			credentials_ru, credentials_uz, credentials_en,
			photo_url, "order", is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING ` + staffColumns

	row := r.pool.QueryRow(ctx, query,
		s.CenterID, s.LastNameRu, s.LastNameUz, s.LastNameEn,
		s.FirstNameRu, s.FirstNameUz, s.FirstNameEn,
		s.PatronymicRu, s.PatronymicUz, s.PatronymicEn,
		s.PositionRu, s.PositionUz, s.PositionEn,
		s.CredentialsRu, s.CredentialsUz, s.CredentialsEn,
		s.PhotoURL, s.Order, s.IsActive,
	)
	created, err := scanStaff(row)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return models.CenterStaff{}, ErrParentNotFound
		}
		return models.CenterStaff{}, fmt.Errorf("insert center staff: %w", err)
	}
	return created, nil
}

func (r *CenterRepository) UpdateStaff(ctx context.Context, id int64, in models.CenterStaffPatch) (models.CenterStaff, error) {
	p := newPatch()
	setIf(p, "center_id", in.CenterID)
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
	setIf(p, "credentials_ru", in.CredentialsRu)
	setIf(p, "credentials_uz", in.CredentialsUz)
	setIf(p, "credentials_en", in.CredentialsEn)
	setIf(p, "photo_url", in.PhotoURL)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("center_staff", id, staffColumns)
	staff, err := scanStaff(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return models.CenterStaff{}, ErrParentNotFound
		}
		return models.CenterStaff{}, err
	}
	return staff, nil
}

func (r *CenterRepository) DeleteStaff(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM center_staff WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete center staff: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
