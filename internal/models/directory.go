package models

import "time"

// BoardMember is a member of the association's governing board.
type BoardMember struct {
	ID             int64      `json:"id"`
	LastNameRu     string     `json:"last_name_ru"`
	LastNameUz     string     `json:"last_name_uz"`
	LastNameEn     string     `json:"last_name_en"`
	FirstNameRu    string     `json:"first_name_ru"`
	FirstNameUz    string     `json:"first_name_uz"`
	FirstNameEn    string     `json:"first_name_en"`
	PatronymicRu   *string    `json:"patronymic_ru"`
	PatronymicUz   *string    `json:"patronymic_uz"`
	PatronymicEn   *string    `json:"patronymic_en"`
	PositionRu     *string    `json:"position_ru"`
	PositionUz     *string    `json:"position_uz"`
	PositionEn     *string    `json:"position_en"`
	DegreeRu       *string    `json:"degree_ru"`
	DegreeUz       *string    `json:"degree_uz"`
	DegreeEn       *string    `json:"degree_en"`
	WorkplaceRu    *string    `json:"workplace_ru"`
	WorkplaceUz    *string    `json:"workplace_uz"`
	WorkplaceEn    *string    `json:"workplace_en"`
	BioRu          *string    `json:"bio_ru"`
	BioUz          *string    `json:"bio_uz"`
	BioEn          *string    `json:"bio_en"`
	AchievementsRu *string    `json:"achievements_ru"`
	AchievementsUz *string    `json:"achievements_uz"`
	AchievementsEn *string    `json:"achievements_en"`
	PhotoURL       *string    `json:"photo_url"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Order          int        `json:"order"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type BoardMemberPatch struct {
	LastNameRu     *string `json:"last_name_ru"`
	LastNameUz     *string `json:"last_name_uz"`
	LastNameEn     *string `json:"last_name_en"`
	FirstNameRu    *string `json:"first_name_ru"`
	FirstNameUz    *string `json:"first_name_uz"`
	FirstNameEn    *string `json:"first_name_en"`
	PatronymicRu   *string `json:"patronymic_ru"`
	PatronymicUz   *string `json:"patronymic_uz"`
	PatronymicEn   *string `json:"patronymic_en"`
	PositionRu     *string `json:"position_ru"`
	PositionUz     *string `json:"position_uz"`
	PositionEn     *string `json:"position_en"`
	DegreeRu       *string `json:"degree_ru"`
	DegreeUz       *string `json:"degree_uz"`
	DegreeEn       *string `json:"degree_en"`
	WorkplaceRu    *string `json:"workplace_ru"`
	WorkplaceUz    *string `json:"workplace_uz"`
	WorkplaceEn    *string `json:"workplace_en"`
	BioRu          *string `json:"bio_ru"`
	BioUz          *string `json:"bio_uz"`
	BioEn          *string `json:"bio_en"`
	AchievementsRu *string `json:"achievements_ru"`
	AchievementsUz *string `json:"achievements_uz"`
	AchievementsEn *string `json:"achievements_en"`
	PhotoURL       *string `json:"photo_url"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Order          *int    `json:"order"`
	IsActive       *bool   `json:"is_active"`
}

// ChiefRheumatologist is the lead rheumatologist of a region.
type ChiefRheumatologist struct {
	ID           int64      `json:"id"`
	LastNameRu   string     `json:"last_name_ru"`
	LastNameUz   string     `json:"last_name_uz"`
	LastNameEn   string     `json:"last_name_en"`
	FirstNameRu  string     `json:"first_name_ru"`
	FirstNameUz  string     `json:"first_name_uz"`
	FirstNameEn  string     `json:"first_name_en"`
	PatronymicRu *string    `json:"patronymic_ru"`
	PatronymicUz *string    `json:"patronymic_uz"`
	PatronymicEn *string    `json:"patronymic_en"`
	PositionRu   *string    `json:"position_ru"`
	PositionUz   *string    `json:"position_uz"`
	PositionEn   *string    `json:"position_en"`
	DegreeRu     *string    `json:"degree_ru"`
	DegreeUz     *string    `json:"degree_uz"`
	DegreeEn     *string    `json:"degree_en"`
	RegionRu     *string    `json:"region_ru"`
	RegionUz     *string    `json:"region_uz"`
	RegionEn     *string    `json:"region_en"`
	WorkplaceRu  *string    `json:"workplace_ru"`
	WorkplaceUz  *string    `json:"workplace_uz"`
	WorkplaceEn  *string    `json:"workplace_en"`
	BioRu        *string    `json:"bio_ru"`
	BioUz        *string    `json:"bio_uz"`
	BioEn        *string    `json:"bio_en"`
	PhotoURL     *string    `json:"photo_url"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Order        int        `json:"order"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ChiefRheumatologistPatch struct {
	LastNameRu   *string `json:"last_name_ru"`
	LastNameUz   *string `json:"last_name_uz"`
	LastNameEn   *string `json:"last_name_en"`
	FirstNameRu  *string `json:"first_name_ru"`
	FirstNameUz  *string `json:"first_name_uz"`
	FirstNameEn  *string `json:"first_name_en"`
	PatronymicRu *string `json:"patronymic_ru"`
	PatronymicUz *string `json:"patronymic_uz"`
	PatronymicEn *string `json:"patronymic_en"`
	PositionRu   *string `json:"position_ru"`
	PositionUz   *string `json:"position_uz"`
	PositionEn   *string `json:"position_en"`
	DegreeRu     *string `json:"degree_ru"`
	DegreeUz     *string `json:"degree_uz"`
	DegreeEn     *string `json:"degree_en"`
	RegionRu     *string `json:"region_ru"`
	RegionUz     *string `json:"region_uz"`
	RegionEn     *string `json:"region_en"`
	WorkplaceRu  *string `json:"workplace_ru"`
	WorkplaceUz  *string `json:"workplace_uz"`
	WorkplaceEn  *string `json:"workplace_en"`
	BioRu        *string `json:"bio_ru"`
	BioUz        *string `json:"bio_uz"`
	BioEn        *string `json:"bio_en"`
	PhotoURL     *string `json:"photo_url"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Order        *int    `json:"order"`
	IsActive     *bool   `json:"is_active"`
}

type Partner struct {
	ID            int64      `json:"id"`
	NameRu        string     `json:"name_ru"`
	NameUz        string     `json:"name_uz"`
	NameEn        string     `json:"name_en"`
	ShortName     *string    `json:"short_name"`
	DescriptionRu *string    `json:"description_ru"`
	DescriptionUz *string    `json:"description_uz"`
	DescriptionEn *string    `json:"description_en"`
	LogoURL       *string    `json:"logo_url"`
	WebsiteURL    *string    `json:"website_url"`
	CountryRu     *string    `json:"country_ru"`
	CountryUz     *string    `json:"country_uz"`
	CountryEn     *string    `json:"country_en"`
	Order         int        `json:"order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type PartnerPatch struct {
	NameRu        *string `json:"name_ru"`
	NameUz        *string `json:"name_uz"`
	NameEn        *string `json:"name_en"`
	ShortName     *string `json:"short_name"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	DescriptionEn *string `json:"description_en"`
	LogoURL       *string `json:"logo_url"`
	WebsiteURL    *string `json:"website_url"`
	CountryRu     *string `json:"country_ru"`
	CountryUz     *string `json:"country_uz"`
	CountryEn     *string `json:"country_en"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"is_active"`
}

// Charter is the association's statute document. At most one charter is
// active at any time; activating one deactivates the rest.
type Charter struct {
	ID            int64      `json:"id"`
	TitleRu       string     `json:"title_ru"`
	TitleUz       string     `json:"title_uz"`
	TitleEn       string     `json:"title_en"`
	DescriptionRu *string    `json:"description_ru"`
	DescriptionUz *string    `json:"description_uz"`
	DescriptionEn *string    `json:"description_en"`
	FileURL       string     `json:"file_url"`
	Version       *string    `json:"version"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type CharterPatch struct {
	TitleRu       *string `json:"title_ru"`
	TitleUz       *string `json:"title_uz"`
	TitleEn       *string `json:"title_en"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	DescriptionEn *string `json:"description_en"`
	FileURL       *string `json:"file_url"`
	Version       *string `json:"version"`
	IsActive      *bool   `json:"is_active"`
}
