package models

import "time"

// Center is a regional rheumatology center. Deleting a center removes its
// staff as well.
type Center struct {
	ID            int64      `json:"id"`
	NameRu        string     `json:"name_ru"`
	NameUz        string     `json:"name_uz"`
	NameEn        string     `json:"name_en"`
	DescriptionRu *string    `json:"description_ru"`
	DescriptionUz *string    `json:"description_uz"`
	DescriptionEn *string    `json:"description_en"`
	AddressRu     *string    `json:"address_ru"`
	AddressUz     *string    `json:"address_uz"`
	AddressEn     *string    `json:"address_en"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email"`
	Website       *string    `json:"website"`
	ImageURL      *string    `json:"image_url"`
	Order         int        `json:"order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type CenterPatch struct {
	NameRu        *string `json:"name_ru"`
	NameUz        *string `json:"name_uz"`
	NameEn        *string `json:"name_en"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	DescriptionEn *string `json:"description_en"`
	AddressRu     *string `json:"address_ru"`
	AddressUz     *string `json:"address_uz"`
	AddressEn     *string `json:"address_en"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Website       *string `json:"website"`
	ImageURL      *string `json:"image_url"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"is_active"`
}

type CenterStaff struct {
	ID            int64      `json:"id"`
	CenterID      int64      `json:"center_id"`
	LastNameRu    string     `json:"last_name_ru"`
	LastNameUz    string     `json:"last_name_uz"`
	LastNameEn    string     `json:"last_name_en"`
	FirstNameRu   string     `json:"first_name_ru"`
	FirstNameUz   string     `json:"first_name_uz"`
	FirstNameEn   string     `json:"first_name_en"`
	PatronymicRu  *string    `json:"patronymic_ru"`
	PatronymicUz  *string    `json:"patronymic_uz"`
	PatronymicEn  *string    `json:"patronymic_en"`
	PositionRu    *string    `json:"position_ru"`
	PositionUz    *string    `json:"position_uz"`
	PositionEn    *string    `json:"position_en"`
	CredentialsRu *string    `json:"credentials_ru"`
	CredentialsUz *string    `json:"credentials_uz"`
	CredentialsEn *string    `json:"credentials_en"`
	PhotoURL      *string    `json:"photo_url"`
	Order         int        `json:"order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type CenterStaffPatch struct {
	CenterID      *int64  `json:"center_id"`
	LastNameRu    *string `json:"last_name_ru"`
	LastNameUz    *string `json:"last_name_uz"`
	LastNameEn    *string `json:"last_name_en"`
	FirstNameRu   *string `json:"first_name_ru"`
	FirstNameUz   *string `json:"first_name_uz"`
	FirstNameEn   *string `json:"first_name_en"`
	PatronymicRu  *string `json:"patronymic_ru"`
	PatronymicUz  *string `json:"patronymic_uz"`
	PatronymicEn  *string `json:"patronymic_en"`
	PositionRu    *string `json:"position_ru"`
	PositionUz    *string `json:"position_uz"`
	PositionEn    *string `json:"position_en"`
	CredentialsRu *string `json:"credentials_ru"`
	CredentialsUz *string `json:"credentials_uz"`
	CredentialsEn *string `json:"credentials_en"`
	PhotoURL      *string `json:"photo_url"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"is_active"`
}

type CenterWithStaff struct {
	Center
	Staff []CenterStaff `json:"staff"`
}
