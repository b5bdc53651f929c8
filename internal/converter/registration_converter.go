package converter

import (
	"go-registration-portal/internal/delivery/dto"
	"go-registration-portal/internal/domain/entity"
)

// RegistrationToResponse converts a Registration entity to its response DTO.
// The stored password is intentionally never serialized.
func RegistrationToResponse(registration *entity.Registration) *dto.RegistrationResponse {
	if registration == nil {
		return nil
	}

	return &dto.RegistrationResponse{
		ID:            registration.ID,
		Fullname:      registration.Fullname,
		EmailID:       registration.EmailID,
		ContactNumber: registration.ContactNumber,
		Gender:        registration.Gender,
		DateOfBirth:   registration.DateOfBirth,
		City:          registration.City,
		Area:          registration.Area,
		ProfilePhoto:  registration.ProfilePhoto,
	}
}

// RegistrationsToResponse converts a slice of entities, always returning a
// non-nil slice so the wire shape stays `[]` rather than `null`.
func RegistrationsToResponse(registrations []entity.Registration) []dto.RegistrationResponse {
	responses := make([]dto.RegistrationResponse, 0, len(registrations))
	for i := range registrations {
		responses = append(responses, *RegistrationToResponse(&registrations[i]))
	}
	return responses
}
