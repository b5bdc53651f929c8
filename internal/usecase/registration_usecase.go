package usecase

import (
	"context"
	"errors"
	"io"

	"go-registration-portal/internal/converter"
	"go-registration-portal/internal/delivery/dto"
	"go-registration-portal/internal/domain/entity"
	"go-registration-portal/internal/domain/repository"
	"go-registration-portal/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoProfilePhoto is returned when no registration with a photo exists.
	ErrNoProfilePhoto = errors.New("no profile photo found")
)

// FileStorage persists an uploaded file and returns the relative path it is
// reachable at.
type FileStorage interface {
	Save(src io.Reader, originalName string) (string, error)
}

// PhotoCache caches the latest profile photo path. Implementations report a
// miss with cache.ErrCacheMiss.
type PhotoCache interface {
	GetLatest(ctx context.Context) (string, error)
	SetLatest(ctx context.Context, path string) error
}

type RegistrationUsecase interface {
	// Register persists the uploaded photo and then the registration record.
	// The caller has already verified field presence; a record is written only
	// if the photo was stored successfully.
	Register(ctx context.Context, req *dto.RegisterRequest, photo io.Reader, photoName string) error
	List(ctx context.Context) ([]dto.RegistrationResponse, error)
	// LatestProfilePhoto returns the photo path of the most recent
	// registration, or ErrNoProfilePhoto when none exists.
	LatestProfilePhoto(ctx context.Context) (string, error)
}

type registrationUsecase struct {
	log              *logrus.Logger
	registrationRepo repository.RegistrationRepository
	fileStorage      FileStorage
	photoCache       PhotoCache
}

func NewRegistrationUsecase(
	log *logrus.Logger,
	registrationRepo repository.RegistrationRepository,
	fileStorage FileStorage,
	photoCache PhotoCache,
) RegistrationUsecase {
	return &registrationUsecase{
		log:              log,
		registrationRepo: registrationRepo,
		fileStorage:      fileStorage,
		photoCache:       photoCache,
	}
}

func (u *registrationUsecase) Register(ctx context.Context, req *dto.RegisterRequest, photo io.Reader, photoName string) error {
	photoPath, err := u.fileStorage.Save(photo, photoName)
	if err != nil {
		u.log.Warnf("Failed to store profile photo: %+v", err)
		return err
	}

	registration := &entity.Registration{
		Fullname:      req.Fullname,
		EmailID:       req.EmailID,
		ContactNumber: req.ContactNumber,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		City:          req.City,
		Area:          req.Area,
		Password:      req.Password,
		ProfilePhoto:  photoPath,
	}

	if err := u.registrationRepo.Create(ctx, registration); err != nil {
		u.log.Warnf("Failed to create registration: %+v", err)
		return err
	}

	// Write-through: keep the latest-photo cache fresh. A cache failure never
	// fails the registration.
	if err := u.photoCache.SetLatest(ctx, photoPath); err != nil {
		u.log.Warnf("Failed to cache latest profile photo: %+v", err)
	}

	u.log.WithFields(logrus.Fields{
		"email": req.EmailID,
		"photo": photoPath,
	}).Info("Registration saved successfully")

	return nil
}

func (u *registrationUsecase) List(ctx context.Context) ([]dto.RegistrationResponse, error) {
	registrations, err := u.registrationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch registrations: %+v", err)
		return nil, err
	}

	return converter.RegistrationsToResponse(registrations), nil
}

func (u *registrationUsecase) LatestProfilePhoto(ctx context.Context) (string, error) {
	path, err := u.photoCache.GetLatest(ctx)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		u.log.Warnf("Failed to read latest photo from cache: %+v", err)
	}

	registration, err := u.registrationRepo.FindLatestWithPhoto(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch latest registration with photo: %+v", err)
		return "", err
	}
	if registration == nil {
		return "", ErrNoProfilePhoto
	}

	if err := u.photoCache.SetLatest(ctx, registration.ProfilePhoto); err != nil {
		u.log.Warnf("Failed to repopulate photo cache: %+v", err)
	}

	return registration.ProfilePhoto, nil
}
