// Package form implements the registration form: draft field state, the
// per-field validation rules, the city/area cascade and the submission state
// machine. Validation here is deliberately stricter than the server, which
// only checks field presence.
package form

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-registration-portal/internal/client/api"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle of one form session.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

// SuccessDisplayDuration is how long the success message stays visible
// before the form resets to a fresh editing session.
const SuccessDisplayDuration = 5 * time.Second

// Field names, matching the multipart form keys the server expects.
const (
	FieldFullname        = "Fullname"
	FieldEmailID         = "EmailID"
	FieldContactNumber   = "ContactNumber"
	FieldGender          = "Gender"
	FieldDateOfBirth     = "DateOfBirth"
	FieldCity            = "City"
	FieldArea            = "Area"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
	FieldProfilePhoto    = "ProfilePhoto"
)

// AllFields lists the fields in presentation order.
var AllFields = []string{
	FieldProfilePhoto,
	FieldFullname,
	FieldEmailID,
	FieldContactNumber,
	FieldGender,
	FieldDateOfBirth,
	FieldCity,
	FieldArea,
	FieldPassword,
	FieldConfirmPassword,
}

// Form holds one registration draft. It is not safe for concurrent use; the
// client is single-threaded.
type Form struct {
	api    *api.Client
	log    *logrus.Logger
	state  State
	values map[string]string
	errors map[string]string
	cities []string
	areas  []string
}

func New(client *api.Client, log *logrus.Logger) *Form {
	return &Form{
		api:    client,
		log:    log,
		state:  StateEditing,
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

func (f *Form) State() State {
	return f.state
}

// Load fetches the city list. Called once per editing session.
func (f *Form) Load(ctx context.Context) error {
	cities, err := f.api.Cities(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cities: %w", err)
	}
	f.cities = cities
	return nil
}

func (f *Form) Cities() []string {
	return f.cities
}

// Areas returns the area list for the currently selected city.
func (f *Form) Areas() []string {
	return f.areas
}

func (f *Form) Value(field string) string {
	return f.values[field]
}

// Errors returns the current field-level validation messages.
func (f *Form) Errors() map[string]string {
	return f.errors
}

// SetField updates one draft value and revalidates just that field. A failing
// rule records a field-level message but never blocks editing other fields.
func (f *Form) SetField(field, value string) {
	f.values[field] = value
	if msg := f.validateField(field); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
		if field == FieldPassword || field == FieldConfirmPassword {
			f.revalidateConfirm()
		}
	}
}

// SelectCity records the chosen city, fetches its areas and clears any
// previously chosen area. The fetch is not cancelled by a newer selection;
// whichever response lands last wins.
func (f *Form) SelectCity(ctx context.Context, city string) error {
	f.SetField(FieldCity, city)

	areas, err := f.api.Areas(ctx, city)
	if err != nil {
		return fmt.Errorf("failed to fetch areas: %w", err)
	}
	f.areas = areas
	f.values[FieldArea] = ""
	return nil
}

// Validate runs every field rule and returns the collected messages.
// Submission is blocked while any message remains.
func (f *Form) Validate() map[string]string {
	for _, field := range AllFields {
		if msg := f.validateField(field); msg != "" {
			f.errors[field] = msg
		} else {
			delete(f.errors, field)
		}
	}
	return f.errors
}

// Submit packages the draft fields and the selected photo into one multipart
// request. Validation failures keep the form in Editing; a transport or
// server failure moves it to Failed and is logged only.
func (f *Form) Submit(ctx context.Context) error {
	if len(f.Validate()) > 0 {
		return fmt.Errorf("form has %d validation errors", len(f.errors))
	}

	f.state = StateSubmitting

	photoPath := f.values[FieldProfilePhoto]
	photo, err := os.Open(photoPath)
	if err != nil {
		f.state = StateFailed
		f.log.Errorf("Failed to open profile photo %s: %v", photoPath, err)
		return err
	}
	defer photo.Close()

	fields := map[string]string{
		FieldFullname:        f.values[FieldFullname],
		FieldEmailID:         f.values[FieldEmailID],
		FieldContactNumber:   f.values[FieldContactNumber],
		FieldGender:          f.values[FieldGender],
		FieldDateOfBirth:     f.values[FieldDateOfBirth],
		FieldCity:            f.values[FieldCity],
		FieldArea:            f.values[FieldArea],
		FieldPassword:        f.values[FieldPassword],
		FieldConfirmPassword: f.values[FieldConfirmPassword],
	}

	if err := f.api.Register(ctx, fields, filepath.Base(photoPath), photo); err != nil {
		f.state = StateFailed
		f.log.Errorf("Registration failed: %v", err)
		return err
	}

	f.state = StateSucceeded
	return nil
}

// Reset discards the whole session and starts a fresh editing state. This is
// a full reinitialization: drafts, errors, the photo selection and the
// fetched lookup data are all dropped.
func (f *Form) Reset() {
	f.state = StateEditing
	f.values = make(map[string]string)
	f.errors = make(map[string]string)
	f.cities = nil
	f.areas = nil
}

func (f *Form) revalidateConfirm() {
	if msg := f.validateField(FieldConfirmPassword); msg != "" {
		f.errors[FieldConfirmPassword] = msg
	} else {
		delete(f.errors, FieldConfirmPassword)
	}
}
