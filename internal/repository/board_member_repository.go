package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const boardMemberColumns = `id, last_name_ru, last_name_uz, last_name_en,
	first_name_ru, first_name_uz, first_name_en,
	patronymic_ru, patronymic_uz, patronymic_en,
	position_ru, position_uz, position_en,
	degree_ru, degree_uz, degree_en,
	workplace_ru, workplace_uz, workplace_en,
	bio_ru, bio_uz, bio_en,
	achievements_ru, achievements_uz, achievements_en,
	photo_url, email, phone, "order", is_active, created_at, updated_at`

type BoardMemberRepository struct {
	pool *pgxpool.Pool
}

func NewBoardMemberRepository(pool *pgxpool.Pool) *BoardMemberRepository {
	return &BoardMemberRepository{pool: pool}
}

func scanBoardMember(row pgx.Row) (models.BoardMember, error) {
	var m models.BoardMember
	err := row.Scan(
		&m.ID, &m.LastNameRu, &m.LastNameUz, &m.LastNameEn,
		&m.FirstNameRu, &m.FirstNameUz, &m.FirstNameEn,
		&m.PatronymicRu, &m.PatronymicUz, &m.PatronymicEn,
		&m.PositionRu, &m.PositionUz, &m.PositionEn,
		&m.DegreeRu, &m.DegreeUz, &m.DegreeEn,
		&m.WorkplaceRu, &m.WorkplaceUz, &m.WorkplaceEn,
		&m.BioRu, &m.BioUz, &m.BioEn,
		&m.AchievementsRu, &m.AchievementsUz, &m.AchievementsEn,
		&m.PhotoURL, &m.Email, &m.Phone, &m.Order, &m.IsActive,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BoardMember{}, ErrNotFound
	}
	return m, err
}

func (r *BoardMemberRepository) List(ctx context.Context, opts ListOptions) ([]models.BoardMember, error) {
	query := `SELECT ` + boardMemberColumns + ` FROM board_members`
	if !opts.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY "order" ASC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Skip, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	defer rows.Close()

	members := make([]models.BoardMember, 0)
	for rows.Next() {
		m, err := scanBoardMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *BoardMemberRepository) GetByID(ctx context.Context, id int64) (models.BoardMember, error) {
	query := `SELECT ` + boardMemberColumns + ` FROM board_members WHERE id = $1`
	return scanBoardMember(r.pool.QueryRow(ctx, query, id))
}

func (r *BoardMemberRepository) Create(ctx context.Context, m models.BoardMember) (models.BoardMember, error) {
	const query = `
		INSERT INTO board_members (
			last_name_ru, last_name_uz, last_name_en,
			first_name_ru, first_name_uz, first_name_en,
			patronymic_ru, patronymic_uz, patronymic_en,
			position_ru, position_uz, position_en,
			degree_ru, degree_uz, degree_en,
			workplace_ru, workplace_uz, workplace_en,
			bio_ru, bio_uz, bio_en,
			achievements_ru, achievements_uz, achievements_en,
			photo_url, email, phone, "order", is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)
		RETURNING ` + boardMemberColumns

	row := r.pool.QueryRow(ctx, query,
		m.LastNameRu, m.LastNameUz, m.LastNameEn,
		m.FirstNameRu, m.FirstNameUz, m.FirstNameEn,
		m.PatronymicRu, m.PatronymicUz, m.PatronymicEn,
		m.PositionRu, m.PositionUz, m.PositionEn,
		m.DegreeRu, m.DegreeUz, m.DegreeEn,
		m.WorkplaceRu, m.WorkplaceUz, m.WorkplaceEn,
		m.BioRu, m.BioUz, m.BioEn,
		m.AchievementsRu, m.AchievementsUz, m.AchievementsEn,
		m.PhotoURL, m.Email, m.Phone, m.Order, m.IsActive,
	)
	created, err := scanBoardMember(row)
	if err != nil {
		return models.BoardMember{}, fmt.Errorf("insert board member: %w", err)
	}
	return created, nil
}

func (r *BoardMemberRepository) Update(ctx context.Context, id int64, in models.BoardMemberPatch) (models.BoardMember, error) {
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
	setIf(p, "workplace_ru", in.WorkplaceRu)
	setIf(p, "workplace_uz", in.WorkplaceUz)
	setIf(p, "workplace_en", in.WorkplaceEn)
	setIf(p, "bio_ru", in.BioRu)
	setIf(p, "bio_uz", in.BioUz)
	setIf(p, "bio_en", in.BioEn)
	setIf(p, "achievements_ru", in.AchievementsRu)
	setIf(p, "achievements_uz", in.AchievementsUz)
	setIf(p, "achievements_en", in.AchievementsEn)
	setIf(p, "photo_url", in.PhotoURL)
	setIf(p, "email", in.Email)
	setIf(p, "phone", in.Phone)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("board_members", id, boardMemberColumns)
	return scanBoardMember(r.pool.QueryRow(ctx, query, args...))
}

func (r *BoardMemberRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM board_members WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete board member: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
