package repository

import (
	"context"
	"errors"

	"go-registration-portal/internal/domain/entity"
	domainRepo "go-registration-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) domainRepo.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) FindAll(ctx context.Context) ([]entity.Registration, error) {
	var registrations []entity.Registration
	err := r.db.WithContext(ctx).Order("id ASC").Find(&registrations).Error
	return registrations, err
}

func (r *registrationRepository) FindLatestWithPhoto(ctx context.Context) (*entity.Registration, error) {
	var registration entity.Registration
	err := r.db.WithContext(ctx).
		Where("profile_photo <> ''").
		Order("id DESC").
		First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &registration, nil
}
