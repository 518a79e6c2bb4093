package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("jane+tag@sub.example.co"))
	assert.False(t, IsValidEmail("jane"))
	assert.False(t, IsValidEmail("jane@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("jane@example"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190b7a1-9f3e-7cc1-b5d5-111111111111"))
	assert.True(t, IsValidUUID("0190B7A1-9F3E-7CC1-B5D5-111111111111"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-06-02")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("02-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("Approved", []string{"Approved", "Rejected"}))
	assert.False(t, IsInSlice("Pending", []string{"Approved", "Rejected"}))
	assert.False(t, IsInSlice("approved", []string{"Approved"}))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: email is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password is required",
	}, errs.ToMap())
}
