package repository

import (
	"context"

	"go-registration-portal/internal/domain/entity"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	FindAll(ctx context.Context) ([]entity.Registration, error)
	// FindLatestWithPhoto returns the most recently inserted registration
	// carrying a profile photo, or (nil, nil) when no such row exists.
	FindLatestWithPhoto(ctx context.Context) (*entity.Registration, error)
}
