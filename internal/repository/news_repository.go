package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rheumassoc/api/internal/models"
)

const newsColumns = `id, news_type, title_ru, title_uz, title_en, subtitle_ru, subtitle_uz, subtitle_en,
	content_ru, content_uz, content_en, excerpt_ru, excerpt_uz, excerpt_en,
	image_url, background_image_url, event_date_start, event_date_end,
	event_location_ru, event_location_uz, event_location_en, registration_url,
	is_published, is_featured, author_id, views_count, created_at, updated_at`

type NewsRepository struct {
	pool *pgxpool.Pool
}

func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func scanNews(row pgx.Row) (models.News, error) {
	var n models.News
	err := row.Scan(
		&n.ID, &n.NewsType, &n.TitleRu, &n.TitleUz, &n.TitleEn,
		&n.SubtitleRu, &n.SubtitleUz, &n.SubtitleEn,
		&n.ContentRu, &n.ContentUz, &n.ContentEn,
		&n.ExcerptRu, &n.ExcerptUz, &n.ExcerptEn,
		&n.ImageURL, &n.BackgroundImageURL,
		&n.EventDateStart, &n.EventDateEnd,
		&n.EventLocationRu, &n.EventLocationUz, &n.EventLocationEn,
		&n.RegistrationURL,
		&n.IsPublished, &n.IsFeatured, &n.AuthorID, &n.ViewsCount,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.News{}, ErrNotFound
	}
	return n, err
}

// NewsFilter is the allow-listed filter set for news listings.
type NewsFilter struct {
	NewsType      *string
	PublishedOnly bool
	FeaturedOnly  bool
	UpcomingFrom  *time.Time
	OrderByEvent  bool
	Skip          int
	Limit         int
}

func (r *NewsRepository) List(ctx context.Context, f NewsFilter) ([]models.News, error) {
	var (
		where []string
		args  []any
	)
	if f.PublishedOnly {
		where = append(where, "is_published = TRUE")
	}
	if f.FeaturedOnly {
		where = append(where, "is_featured = TRUE")
	}
	if f.NewsType != nil {
		args = append(args, *f.NewsType)
		where = append(where, fmt.Sprintf("news_type = $%d", len(args)))
	}
	if f.UpcomingFrom != nil {
		args = append(args, *f.UpcomingFrom)
		where = append(where, fmt.Sprintf("event_date_start >= $%d", len(args)))
	}

	query := `SELECT ` + newsColumns + ` FROM news`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.OrderByEvent {
		query += " ORDER BY event_date_start ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	args = append(args, f.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	args = append(args, f.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	items := make([]models.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`
	return scanNews(r.pool.QueryRow(ctx, query, id))
}

func (r *NewsRepository) Create(ctx context.Context, n models.News) (models.News, error) {
	const query = `
		INSERT INTO news (
			news_type, title_ru, title_uz, title_en, subtitle_ru, subtitle_uz, subtitle_en,
			content_ru, content_uz, content_en, excerpt_ru, excerpt_uz, excerpt_en,
			image_url, background_image_url, event_date_start, event_date_end,
			event_location_ru, event_location_uz, event_location_en, registration_url,
			is_published, is_featured, author_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING ` + newsColumns

	row := r.pool.QueryRow(ctx, query,
		n.NewsType, n.TitleRu, n.TitleUz, n.TitleEn,
		n.SubtitleRu, n.SubtitleUz, n.SubtitleEn,
		n.ContentRu, n.ContentUz, n.ContentEn,
		n.ExcerptRu, n.ExcerptUz, n.ExcerptEn,
		n.ImageURL, n.BackgroundImageURL,
		n.EventDateStart, n.EventDateEnd,
		n.EventLocationRu, n.EventLocationUz, n.EventLocationEn,
		n.RegistrationURL,
		n.IsPublished, n.IsFeatured, n.AuthorID,
	)
	created, err := scanNews(row)
	if err != nil {
		return models.News{}, fmt.Errorf("insert news: %w", err)
	}
	return created, nil
}

func (r *NewsRepository) Update(ctx context.Context, id int64, in models.NewsPatch) (models.News, error) {
	p := newPatch()
	setIf(p, "news_type", in.NewsType)
	setIf(p, "title_ru", in.TitleRu)
	setIf(p, "title_uz", in.TitleUz)
	setIf(p, "title_en", in.TitleEn)
	setIf(p, "subtitle_ru", in.SubtitleRu)
	setIf(p, "subtitle_uz", in.SubtitleUz)
	setIf(p, "subtitle_en", in.SubtitleEn)
	setIf(p, "content_ru", in.ContentRu)
	setIf(p, "content_uz", in.ContentUz)
	setIf(p, "content_en", in.ContentEn)
	setIf(p, "excerpt_ru", in.ExcerptRu)
	setIf(p, "excerpt_uz", in.ExcerptUz)
	setIf(p, "excerpt_en", in.ExcerptEn)
	setIf(p, "image_url", in.ImageURL)
	setIf(p, "background_image_url", in.BackgroundImageURL)
	setIf(p, "event_date_start", in.EventDateStart)
	setIf(p, "event_date_end", in.EventDateEnd)
	setIf(p, "event_location_ru", in.EventLocationRu)
	setIf(p, "event_location_uz", in.EventLocationUz)
	setIf(p, "event_location_en", in.EventLocationEn)
	setIf(p, "registration_url", in.RegistrationURL)
	setIf(p, "is_published", in.IsPublished)
	setIf(p, "is_featured", in.IsFeatured)

	query, args := p.updateQuery("news", id, newsColumns)
	return scanNews(r.pool.QueryRow(ctx, query, args...))
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AddViews folds an accumulated view count into the stored row. Used by the
// background flush job.
func (r *NewsRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE news SET views_count = views_count + $2 WHERE id = $1`, id, delta)
	return err
}

func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&count)
	return count, err
}
