package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("a+b@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("2b8e7c0a-4c1f-4f4a-9d8e-1a2b3c4d5e6f"))
	assert.False(t, IsValidUUID("2b8e7c0a"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-03-01"))
	assert.False(t, IsValidDate("01-03-2026"))
	assert.False(t, IsValidDate("2026-13-01"))
	assert.False(t, IsValidDate(""))
}

func TestIsFutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")

	assert.True(t, IsFutureDate(tomorrow))
	assert.False(t, IsFutureDate(yesterday))
	assert.False(t, IsFutureDate(today))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("ENG-0001"))
	assert.True(t, IsValidEmployeeCode("HR-1234"))
	assert.False(t, IsValidEmployeeCode("eng-0001"))
	assert.False(t, IsValidEmployeeCode("ENGINEERING-0001"))
	assert.False(t, IsValidEmployeeCode("ENG-01"))
	assert.False(t, IsValidEmployeeCode(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "hours", Message: "hours must be between 0.5 and 24"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.NotEmpty(t, errs.Error())
}
