package models

import "time"

type NewsType string

const (
	NewsTypeNews  NewsType = "news"
	NewsTypeEvent NewsType = "event"
)

func ValidNewsType(t string) bool {
	switch NewsType(t) {
	case NewsTypeNews, NewsTypeEvent:
		return true
	}
	return false
}

// News covers both plain news items and events; event fields are only
// populated when NewsType is "event".
type News struct {
	ID                 int64      `json:"id"`
	NewsType           NewsType   `json:"news_type"`
	TitleRu            string     `json:"title_ru"`
	TitleUz            string     `json:"title_uz"`
	TitleEn            string     `json:"title_en"`
	SubtitleRu         *string    `json:"subtitle_ru"`
	SubtitleUz         *string    `json:"subtitle_uz"`
	SubtitleEn         *string    `json:"subtitle_en"`
	ContentRu          string     `json:"content_ru"`
	ContentUz          string     `json:"content_uz"`
	ContentEn          string     `json:"content_en"`
	ExcerptRu          *string    `json:"excerpt_ru"`
	ExcerptUz          *string    `json:"excerpt_uz"`
	ExcerptEn          *string    `json:"excerpt_en"`
	ImageURL           *string    `json:"image_url"`
	BackgroundImageURL *string    `json:"background_image_url"`
	EventDateStart     *time.Time `json:"event_date_start"`
	EventDateEnd       *time.Time `json:"event_date_end"`
	EventLocationRu    *string    `json:"event_location_ru"`
	EventLocationUz    *string    `json:"event_location_uz"`
	EventLocationEn    *string    `json:"event_location_en"`
	RegistrationURL    *string    `json:"registration_url"`
	IsPublished        bool       `json:"is_published"`
	IsFeatured         bool       `json:"is_featured"`
	AuthorID           *int64     `json:"author_id"`
	ViewsCount         int64      `json:"views_count"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

type NewsPatch struct {
	NewsType           *string    `json:"news_type"`
	TitleRu            *string    `json:"title_ru"`
	TitleUz            *string    `json:"title_uz"`
	TitleEn            *string    `json:"title_en"`
	SubtitleRu         *string    `json:"subtitle_ru"`
	SubtitleUz         *string    `json:"subtitle_uz"`
	SubtitleEn         *string    `json:"subtitle_en"`
	ContentRu          *string    `json:"content_ru"`
	ContentUz          *string    `json:"content_uz"`
	ContentEn          *string    `json:"content_en"`
	ExcerptRu          *string    `json:"excerpt_ru"`
	ExcerptUz          *string    `json:"excerpt_uz"`
	ExcerptEn          *string    `json:"excerpt_en"`
	ImageURL           *string    `json:"image_url"`
	BackgroundImageURL *string    `json:"background_image_url"`
	EventDateStart     *time.Time `json:"event_date_start"`
	EventDateEnd       *time.Time `json:"event_date_end"`
	EventLocationRu    *string    `json:"event_location_ru"`
	EventLocationUz    *string    `json:"event_location_uz"`
	EventLocationEn    *string    `json:"event_location_en"`
	RegistrationURL    *string    `json:"registration_url"`
	IsPublished        *bool      `json:"is_published"`
	IsFeatured         *bool      `json:"is_featured"`
}
