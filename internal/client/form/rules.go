package form

import (
	"regexp"
)

var (
	fullnamePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{6,16}$`)
)

// validateField returns the message for one field, or "" when it passes.
func (f *Form) validateField(field string) string {
	value := f.values[field]

	switch field {
	case FieldFullname:
		if value == "" {
			return "Full Name is required"
		}
		if len(value) < 5 {
			return "Full Name should have at least 5 characters"
		}
		if !fullnamePattern.MatchString(value) {
			return "Full Name must contain only letters"
		}
	case FieldEmailID:
		if value == "" {
			return "Email ID is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid Email ID"
		}
	case FieldContactNumber:
		if value == "" {
			return "Contact Number is required"
		}
		if !phonePattern.MatchString(value) {
			return "Please enter a valid 10-digit Contact Number"
		}
	case FieldGender:
		if value == "" {
			return "Gender is required"
		}
		if value != "Male" && value != "Female" && value != "Other" {
			return "Gender must be Male, Female or Other"
		}
	case FieldDateOfBirth:
		if value == "" {
			return "Date of Birth is required"
		}
	case FieldCity:
		if value == "" {
			return "City is required"
		}
	case FieldArea:
		if value == "" {
			return "Area is required"
		}
	case FieldPassword:
		if value == "" {
			return "Password is required"
		}
		if len(value) < 5 {
			return "Password should have a minimum length of 5 characters"
		}
		if !passwordPattern.MatchString(value) {
			return "Invalid password format"
		}
	case FieldConfirmPassword:
		if value == "" {
			return "Please confirm your password"
		}
		if value != f.values[FieldPassword] {
			return "Passwords do not match"
		}
	case FieldProfilePhoto:
		if value == "" {
			return "Profile Photo is required"
		}
	}

	return ""
}
