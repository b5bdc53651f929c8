package handler

import (
	"net/http"

	"go-registration-portal/internal/delivery/dto"
	"go-registration-portal/internal/usecase"
	"go-registration-portal/pkg/response"
	"go-registration-portal/pkg/validator"

	"github.com/sirupsen/logrus"
)

const missingFieldsMessage = "Please provide all required fields"

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

// Register handles POST /api/register. The request is a multipart form with
// eight text fields plus the ProfilePhoto file; any missing part yields a 400
// before anything is written.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, missingFieldsMessage)
		return
	}

	req := dto.RegisterRequest{
		Fullname:      r.FormValue("Fullname"),
		EmailID:       r.FormValue("EmailID"),
		ContactNumber: r.FormValue("ContactNumber"),
		Gender:        r.FormValue("Gender"),
		DateOfBirth:   r.FormValue("DateOfBirth"),
		City:          r.FormValue("City"),
		Area:          r.FormValue("Area"),
		Password:      r.FormValue("Password"),
	}

	if err := h.validator.Validate(&req); err != nil {
		logrus.WithField("missing", h.validator.MissingFields(err)).
			Info("Validation failed: missing required fields")
		response.BadRequest(w, missingFieldsMessage)
		return
	}

	photo, header, err := r.FormFile("ProfilePhoto")
	if err != nil {
		logrus.Info("Validation failed: missing profile photo")
		response.BadRequest(w, missingFieldsMessage)
		return
	}
	defer photo.Close()

	if err := h.registrationUsecase.Register(r.Context(), &req, photo, header.Filename); err != nil {
		response.InternalServerError(w, "Internal Server Error")
		return
	}

	response.Message(w, http.StatusCreated, "Registration successful")
}

// List handles GET /api/user-registrations.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.registrationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, dto.RegistrationsResponse{Registrations: registrations})
}

// LatestProfilePhoto handles GET /api/profile-photo.
func (h *RegistrationHandler) LatestProfilePhoto(w http.ResponseWriter, r *http.Request) {
	path, err := h.registrationUsecase.LatestProfilePhoto(r.Context())
	if err != nil {
		if err == usecase.ErrNoProfilePhoto {
			response.NotFound(w, "No profile photo found")
			return
		}
		response.InternalServerError(w, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, dto.ProfilePhotoResponse{ProfilePhotoURL: path})
}
