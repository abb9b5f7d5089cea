package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUserRole(t *testing.T) {
	assert.True(t, ValidUserRole("user"))
	assert.True(t, ValidUserRole("admin"))
	assert.False(t, ValidUserRole("superadmin"))
	assert.False(t, ValidUserRole(""))
}

func TestValidNewsType(t *testing.T) {
	assert.True(t, ValidNewsType("news"))
	assert.True(t, ValidNewsType("event"))
	assert.False(t, ValidNewsType("article"))
}

func TestValidSchoolType(t *testing.T) {
	assert.True(t, ValidSchoolType("rheumatologist"))
	assert.True(t, ValidSchoolType("patient"))
	assert.False(t, ValidSchoolType("student"))
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"highest", "first", "second", "third", "none"} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("fourth"))
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		assert.True(t, ValidApplicationStatus(s), s)
	}
	assert.False(t, ValidApplicationStatus("archived"))
}

func TestUserNameHelpers(t *testing.T) {
	patronymic := "Akmalovna"
	user := User{LastName: "Karimova", FirstName: "Nilufar", Patronymic: &patronymic}
	assert.Equal(t, "Karimova Nilufar Akmalovna", user.FullName())

	noPatronymic := User{LastName: "Karimova", FirstName: "Nilufar"}
	assert.Equal(t, "Karimova Nilufar", noPatronymic.FullName())
}
