package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("John Lennon"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsInSlice(t *testing.T) {
	actions := []string{"Clock In", "Clock Out"}

	assert.True(t, IsInSlice("Clock In", actions))
	assert.True(t, IsInSlice("Clock Out", actions))
	assert.False(t, IsInSlice("clock in", actions), "matching is case-sensitive")
	assert.False(t, IsInSlice("Dance", actions))
	assert.False(t, IsInSlice("", nil))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-12-12")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("12/12/2024")
	assert.False(t, ok)

	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "name: name is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"name":     "name is required",
		"password": "password is required",
	}, errs.ToMap())
}
