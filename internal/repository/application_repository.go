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

const applicationColumns = `id, school_type, event_id, last_name, first_name, patronymic,
	phone, city, category, inn, email, specialization, workplace, message, status, created_at`

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func scanApplication(row pgx.Row) (models.SchoolApplication, error) {
	var a models.SchoolApplication
	err := row.Scan(
		&a.ID, &a.SchoolType, &a.EventID, &a.LastName, &a.FirstName, &a.Patronymic,
		&a.Phone, &a.City, &a.Category, &a.INN, &a.Email,
		&a.Specialization, &a.Workplace, &a.Message, &a.Status, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SchoolApplication{}, ErrNotFound
	}
	return a, err
}

func (r *ApplicationRepository) Create(ctx context.Context, a models.SchoolApplication) (models.SchoolApplication, error) {
	const query = `
		INSERT INTO school_applications (
			school_type, event_id, last_name, first_name, patronymic,
			phone, city, category, inn, email, specialization, workplace, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + applicationColumns

	row := r.pool.QueryRow(ctx, query,
		a.SchoolType, a.EventID, a.LastName, a.FirstName, a.Patronymic,
		a.Phone, a.City, a.Category, a.INN, a.Email,
		a.Specialization, a.Workplace, a.Message, a.Status,
	)
	created, err := scanApplication(row)
	if err != nil {
		return models.SchoolApplication{}, fmt.Errorf("insert school application: %w", err)
	}
	return created, nil
}

// ApplicationFilter is the allow-listed filter set for admin listings.
type ApplicationFilter struct {
	SchoolType *string
	Status     *string
	Skip       int
	Limit      int
}

func (r *ApplicationRepository) List(ctx context.Context, f ApplicationFilter) ([]models.SchoolApplication, error) {
	var (
		where []string
		args  []any
	)
	if f.SchoolType != nil {
		args = append(args, *f.SchoolType)
		where = append(where, fmt.Sprintf("school_type = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + applicationColumns + ` FROM school_applications`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Skip)
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d", len(args))
	args = append(args, f.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list school applications: %w", err)
	}
	defer rows.Close()

	apps := make([]models.SchoolApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (models.SchoolApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM school_applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE school_applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM school_applications`).Scan(&count)
	return count, err
}
