package models

import "time"

type Disease struct {
	ID            int64      `json:"id"`
	NameRu        string     `json:"name_ru"`
	NameUz        string     `json:"name_uz"`
	NameEn        string     `json:"name_en"`
	ShortName     *string    `json:"short_name"`
	DescriptionRu *string    `json:"description_ru"`
	DescriptionUz *string    `json:"description_uz"`
	DescriptionEn *string    `json:"description_en"`
	SymptomsRu    *string    `json:"symptoms_ru"`
	SymptomsUz    *string    `json:"symptoms_uz"`
	SymptomsEn    *string    `json:"symptoms_en"`
	TreatmentRu   *string    `json:"treatment_ru"`
	TreatmentUz   *string    `json:"treatment_uz"`
	TreatmentEn   *string    `json:"treatment_en"`
	ImageURL      *string    `json:"image_url"`
	Order         int        `json:"order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type DiseasePatch struct {
	NameRu        *string `json:"name_ru"`
	NameUz        *string `json:"name_uz"`
	NameEn        *string `json:"name_en"`
	ShortName     *string `json:"short_name"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	DescriptionEn *string `json:"description_en"`
	SymptomsRu    *string `json:"symptoms_ru"`
	SymptomsUz    *string `json:"symptoms_uz"`
	SymptomsEn    *string `json:"symptoms_en"`
	TreatmentRu   *string `json:"treatment_ru"`
	TreatmentUz   *string `json:"treatment_uz"`
	TreatmentEn   *string `json:"treatment_en"`
	ImageURL      *string `json:"image_url"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"is_active"`
}

// DiseaseDocument is a downloadable document (clinical recommendation,
// protocol) optionally linked to a disease.
type DiseaseDocument struct {
	ID            int64      `json:"id"`
	DiseaseID     *int64     `json:"disease_id"`
	TitleRu       string     `json:"title_ru"`
	TitleUz       string     `json:"title_uz"`
	TitleEn       string     `json:"title_en"`
	DescriptionRu *string    `json:"description_ru"`
	DescriptionUz *string    `json:"description_uz"`
	DescriptionEn *string    `json:"description_en"`
	FileURL       string     `json:"file_url"`
	DocumentType  *string    `json:"document_type"`
	Order         int        `json:"order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type DiseaseDocumentPatch struct {
	DiseaseID     *int64  `json:"disease_id"`
	TitleRu       *string `json:"title_ru"`
	TitleUz       *string `json:"title_uz"`
	TitleEn       *string `json:"title_en"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	DescriptionEn *string `json:"description_en"`
	FileURL       *string `json:"file_url"`
	DocumentType  *string `json:"document_type"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"is_active"`
}
