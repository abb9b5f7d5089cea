package models

import "time"

type Congress struct {
	ID               int64      `json:"id"`
	TitleRu          string     `json:"title_ru"`
	TitleUz          string     `json:"title_uz"`
	TitleEn          string     `json:"title_en"`
	DescriptionRu    *string    `json:"description_ru"`
	DescriptionUz    *string    `json:"description_uz"`
	DescriptionEn    *string    `json:"description_en"`
	ProgramRu        *string    `json:"program_ru"`
	ProgramUz        *string    `json:"program_uz"`
	ProgramEn        *string    `json:"program_en"`
	DateStart        *time.Time `json:"date_start"`
	DateEnd          *time.Time `json:"date_end"`
	Location         *string    `json:"location"`
	ImageURL         *string    `json:"image_url"`
	IsActive         bool       `json:"is_active"`
	RegistrationOpen bool       `json:"registration_open"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

type CongressPatch struct {
	TitleRu          *string    `json:"title_ru"`
	TitleUz          *string    `json:"title_uz"`
	TitleEn          *string    `json:"title_en"`
	DescriptionRu    *string    `json:"description_ru"`
	DescriptionUz    *string    `json:"description_uz"`
	DescriptionEn    *string    `json:"description_en"`
	ProgramRu        *string    `json:"program_ru"`
	ProgramUz        *string    `json:"program_uz"`
	ProgramEn        *string    `json:"program_en"`
	DateStart        *time.Time `json:"date_start"`
	DateEnd          *time.Time `json:"date_end"`
	Location         *string    `json:"location"`
	ImageURL         *string    `json:"image_url"`
	IsActive         *bool      `json:"is_active"`
	RegistrationOpen *bool      `json:"registration_open"`
}

type CongressRegistration struct {
	ID           int64     `json:"id"`
	CongressID   int64     `json:"congress_id"`
	UserID       *int64    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	Organization *string   `json:"organization"`
	Position     *string   `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}
