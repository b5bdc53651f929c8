package dto

// RegisterRequest carries the text fields of a registration submission. Only
// presence is validated server-side; format rules (email shape, phone digits,
// password strength) live in the client form.
type RegisterRequest struct {
	Fullname      string `validate:"required"`
	EmailID       string `validate:"required"`
	ContactNumber string `validate:"required"`
	Gender        string `validate:"required"`
	DateOfBirth   string `validate:"required"`
	City          string `validate:"required"`
	Area          string `validate:"required"`
	Password      string `validate:"required"`
}

// RegistrationResponse is one stored registration as returned by the list
// endpoint. Field names match the submitted form fields.
type RegistrationResponse struct {
	ID            uint   `json:"id"`
	Fullname      string `json:"Fullname"`
	EmailID       string `json:"EmailID"`
	ContactNumber string `json:"ContactNumber"`
	Gender        string `json:"Gender"`
	DateOfBirth   string `json:"DateOfBirth"`
	City          string `json:"City"`
	Area          string `json:"Area"`
	ProfilePhoto  string `json:"ProfilePhoto"`
}

type RegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

type ProfilePhotoResponse struct {
	ProfilePhotoURL string `json:"profilePhotoUrl"`
}
