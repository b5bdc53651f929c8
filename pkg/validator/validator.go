package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// MissingFields extracts the names of fields that failed a "required" check,
// for diagnostic logging. Clients only ever see a generic message.
func (cv *CustomValidator) MissingFields(err error) []string {
	var fields []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			if e.Tag() == "required" {
				fields = append(fields, e.Field())
			}
		}
	}

	return fields
}
