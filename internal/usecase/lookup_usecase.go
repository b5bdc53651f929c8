package usecase

import (
	"go-registration-portal/internal/domain/repository"
)

type LookupUsecase interface {
	ListCities() []string
	ListAreas(city string) []string
}

type lookupUsecase struct {
	lookupRepo repository.LookupRepository
}

func NewLookupUsecase(lookupRepo repository.LookupRepository) LookupUsecase {
	return &lookupUsecase{lookupRepo: lookupRepo}
}

func (u *lookupUsecase) ListCities() []string {
	return u.lookupRepo.ListCities()
}

func (u *lookupUsecase) ListAreas(city string) []string {
	return u.lookupRepo.ListAreas(city)
}
