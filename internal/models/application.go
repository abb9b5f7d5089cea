package models

import "time"

type SchoolType string

const (
	SchoolTypeRheumatologist SchoolType = "rheumatologist"
	SchoolTypePatient        SchoolType = "patient"
)

func ValidSchoolType(t string) bool {
	switch SchoolType(t) {
	case SchoolTypeRheumatologist, SchoolTypePatient:
		return true
	}
	return false
}

// Qualification category of the applicant.
const (
	CategoryHighest = "highest"
	CategoryFirst   = "first"
	CategorySecond  = "second"
	CategoryThird   = "third"
	CategoryNone    = "none"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryHighest, CategoryFirst, CategorySecond, CategoryThird, CategoryNone:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// SchoolApplication is a public enrollment request for the rheumatology
// school. Status starts as pending and moves to approved or rejected.
type SchoolApplication struct {
	ID             int64             `json:"id"`
	SchoolType     SchoolType        `json:"school_type"`
	EventID        *int64            `json:"event_id"`
	LastName       string            `json:"last_name"`
	FirstName      string            `json:"first_name"`
	Patronymic     *string           `json:"patronymic"`
	Phone          string            `json:"phone"`
	City           string            `json:"city"`
	Category       string            `json:"category"`
	INN            string            `json:"inn"`
	Email          string            `json:"email"`
	Specialization string            `json:"specialization"`
	Workplace      string            `json:"workplace"`
	Message        *string           `json:"message"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}
