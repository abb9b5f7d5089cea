package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func ValidUserRole(role string) bool {
	switch UserRole(role) {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash []byte     `json:"-"`
	LastName     string     `json:"last_name"`
	FirstName    string     `json:"first_name"`
	Patronymic   *string    `json:"patronymic"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// FullName is "Last First Patronymic", used across admin listings.
func (u User) FullName() string {
	parts := []string{u.LastName, u.FirstName}
	if u.Patronymic != nil && *u.Patronymic != "" {
		parts = append(parts, *u.Patronymic)
	}
	return strings.Join(parts, " ")
}

// ShortName is "First Patronymic", used for greeting text.
func (u User) ShortName() string {
	if u.Patronymic != nil && *u.Patronymic != "" {
		return u.FirstName + " " + *u.Patronymic
	}
	return u.FirstName
}
