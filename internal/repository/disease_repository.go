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

const diseaseColumns = `id, name_ru, name_uz, name_en, short_name,
	description_ru, description_uz, description_en,
	symptoms_ru, symptoms_uz, symptoms_en,
	treatment_ru, treatment_uz, treatment_en,
	image_url, "order", is_active, created_at, updated_at`

const diseaseDocumentColumns = `id, disease_id, title_ru, title_uz, title_en,
	description_ru, description_uz, description_en,
	file_url, document_type, "order", is_active, created_at, updated_at`

// DiseaseRepository manages disease reference pages and their attached
// documents.
type DiseaseRepository struct {
	pool *pgxpool.Pool
}

func NewDiseaseRepository(pool *pgxpool.Pool) *DiseaseRepository {
	return &DiseaseRepository{pool: pool}
}

func scanDisease(row pgx.Row) (models.Disease, error) {
	var d models.Disease
	err := row.Scan(
		&d.ID, &d.NameRu, &d.NameUz, &d.NameEn, &d.ShortName,
		&d.DescriptionRu, &d.DescriptionUz, &d.DescriptionEn,
		&d.SymptomsRu, &d.SymptomsUz, &d.SymptomsEn,
		&d.TreatmentRu, &d.TreatmentUz, &d.TreatmentEn,
		&d.ImageURL, &d.Order, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Disease{}, ErrNotFound
	}
	return d, err
}

func (r *DiseaseRepository) List(ctx context.Context, opts ListOptions) ([]models.Disease, error) {
	query := `SELECT ` + diseaseColumns + ` FROM diseases`
	if !opts.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY "order" ASC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Skip, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list diseases: %w", err)
	}
	defer rows.Close()

	diseases := make([]models.Disease, 0)
	for rows.Next() {
		d, err := scanDisease(rows)
		if err != nil {
			return nil, err
		}
		diseases = append(diseases, d)
	}
	return diseases, rows.Err()
}

func (r *DiseaseRepository) GetByID(ctx context.Context, id int64) (models.Disease, error) {
	query := `SELECT ` + diseaseColumns + ` FROM diseases WHERE id = $1`
	return scanDisease(r.pool.QueryRow(ctx, query, id))
}

func (r *DiseaseRepository) Create(ctx context.Context, d models.Disease) (models.Disease, error) {
	const query = `
		INSERT INTO diseases (
			name_ru, name_uz, name_en, short_name,
			description_ru, description_uz, description_en,
			symptoms_ru, symptoms_uz, symptoms_en,
			treatment_ru, treatment_uz, treatment_en,
			image_url, "order", is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + diseaseColumns

	row := r.pool.QueryRow(ctx, query,
		d.NameRu, d.NameUz, d.NameEn, d.ShortName,
		d.DescriptionRu, d.DescriptionUz, d.DescriptionEn,
		d.SymptomsRu, d.SymptomsUz, d.SymptomsEn,
		d.TreatmentRu, d.TreatmentUz, d.TreatmentEn,
		d.ImageURL, d.Order, d.IsActive,
	)
	created, err := scanDisease(row)
	if err != nil {
		return models.Disease{}, fmt.Errorf("insert disease: %w", err)
	}
	return created, nil
}

func (r *DiseaseRepository) Update(ctx context.Context, id int64, in models.DiseasePatch) (models.Disease, error) {
	p := newPatch()
	setIf(p, "name_ru", in.NameRu)
	setIf(p, "name_uz", in.NameUz)
	setIf(p, "name_en", in.NameEn)
	setIf(p, "short_name", in.ShortName)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "symptoms_ru", in.SymptomsRu)
	setIf(p, "symptoms_uz", in.SymptomsUz)
	setIf(p, "symptoms_en", in.SymptomsEn)
	setIf(p, "treatment_ru", in.TreatmentRu)
	setIf(p, "treatment_uz", in.TreatmentUz)
	setIf(p, "treatment_en", in.TreatmentEn)
	setIf(p, "image_url", in.ImageURL)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("diseases", id, diseaseColumns)
	return scanDisease(r.pool.QueryRow(ctx, query, args...))
}

func (r *DiseaseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM diseases WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete disease: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanDiseaseDocument(row pgx.Row) (models.DiseaseDocument, error) {
	var d models.DiseaseDocument
	err := row.Scan(
		&d.ID, &d.DiseaseID, &d.TitleRu, &d.TitleUz, &d.TitleEn,
		&d.DescriptionRu, &d.DescriptionUz, &d.DescriptionEn,
		&d.FileURL, &d.DocumentType, &d.Order, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DiseaseDocument{}, ErrNotFound
	}
	return d, err
}

func (r *DiseaseRepository) ListDocuments(ctx context.Context, diseaseID *int64, opts ListOptions) ([]models.DiseaseDocument, error) {
	var (
		where []string
		args  []any
	)
	if diseaseID != nil {
		args = append(args, *diseaseID)
		where = append(where, fmt.Sprintf("disease_id = $%d", len(args)))
	}
	if !opts.IncludeInactive {
		where = append(where, "is_active = TRUE")
	}

	query := `SELECT ` + diseaseDocumentColumns + ` FROM disease_documents`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, opts.Skip)
	query += fmt.Sprintf(` ORDER BY "order" ASC OFFSET $%d`, len(args))
	args = append(args, opts.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list disease documents: %w", err)
	}
	defer rows.Close()

	docs := make([]models.DiseaseDocument, 0)
	for rows.Next() {
		d, err := scanDiseaseDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DiseaseRepository) GetDocumentByID(ctx context.Context, id int64) (models.DiseaseDocument, error) {
	query := `SELECT ` + diseaseDocumentColumns + ` FROM disease_documents WHERE id = $1`
	return scanDiseaseDocument(r.pool.QueryRow(ctx, query, id))
}

func (r *DiseaseRepository) CreateDocument(ctx context.Context, d models.DiseaseDocument) (models.DiseaseDocument, error) {
	const query = `
		INSERT INTO disease_documents (
			disease_id, title_ru, title_uz, title_en,
			description_ru, description_uz, description_en,
			file_url, document_type, "order", is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + diseaseDocumentColumns

	row := r.pool.QueryRow(ctx, query,
		d.DiseaseID, d.TitleRu, d.TitleUz, d.TitleEn,
		d.DescriptionRu, d.DescriptionUz, d.DescriptionEn,
		d.FileURL, d.DocumentType, d.Order, d.IsActive,
	)
	created, err := scanDiseaseDocument(row)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return models.DiseaseDocument{}, ErrParentNotFound
		}
		return models.DiseaseDocument{}, fmt.Errorf("insert disease document: %w", err)
	}
	return created, nil
}

func (r *DiseaseRepository) UpdateDocument(ctx context.Context, id int64, in models.DiseaseDocumentPatch) (models.DiseaseDocument, error) {
	p := newPatch()
	setIf(p, "disease_id", in.DiseaseID)
	setIf(p, "title_ru", in.TitleRu)
	setIf(p, "title_uz", in.TitleUz)
	setIf(p, "title_en", in.TitleEn)
	setIf(p, "description_ru", in.DescriptionRu)
	setIf(p, "description_uz", in.DescriptionUz)
	setIf(p, "description_en", in.DescriptionEn)
	setIf(p, "file_url", in.FileURL)
	setIf(p, "document_type", in.DocumentType)
	setIf(p, `"order"`, in.Order)
	setIf(p, "is_active", in.IsActive)

	query, args := p.updateQuery("disease_documents", id, diseaseDocumentColumns)
	doc, err := scanDiseaseDocument(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return models.DiseaseDocument{}, ErrParentNotFound
		}
		return models.DiseaseDocument{}, err
	}
	return doc, nil
}

func (r *DiseaseRepository) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM disease_documents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete disease document: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
