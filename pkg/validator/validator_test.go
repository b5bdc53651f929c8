package validator

import (
	"testing"

	"go-registration-portal/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AllFieldsPresent(t *testing.T) {
	cv := NewValidator()

	req := dto.RegisterRequest{
		Fullname:      "John Smith",
		EmailID:       "john@example.com",
		ContactNumber: "1234567890",
		Gender:        "Male",
		DateOfBirth:   "1990-01-01",
		City:          "Chennai",
		Area:          "Mylapore",
		Password:      "secret123",
	}

	assert.NoError(t, cv.Validate(&req))
}

func TestValidate_OnlyPresenceIsChecked(t *testing.T) {
	cv := NewValidator()

	// Format validation is a client-form concern; the server accepts any
	// non-empty value.
	req := dto.RegisterRequest{
		Fullname:      "x",
		EmailID:       "not-an-email",
		ContactNumber: "12345",
		Gender:        "whatever",
		DateOfBirth:   "someday",
		City:          "Nowhere",
		Area:          "n/a",
		Password:      "p",
	}

	assert.NoError(t, cv.Validate(&req))
}

func TestMissingFields(t *testing.T) {
	cv := NewValidator()

	req := dto.RegisterRequest{
		Fullname: "John Smith",
		Password: "secret123",
	}

	err := cv.Validate(&req)
	require.Error(t, err)

	missing := cv.MissingFields(err)
	assert.ElementsMatch(t, []string{"EmailID", "ContactNumber", "Gender", "DateOfBirth", "City", "Area"}, missing)
}
