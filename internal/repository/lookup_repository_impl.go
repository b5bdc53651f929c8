package repository

import (
	"go-registration-portal/config"
	domainRepo "go-registration-portal/internal/domain/repository"
)

type lookupRepository struct {
	cities []string
	areas  map[string][]string
}

// NewLookupRepository builds the in-memory lookup store from configuration.
// The data is read-only after construction, so it is safe to share across
// request handlers without locking.
func NewLookupRepository(cfg config.LookupConfig) domainRepo.LookupRepository {
	return &lookupRepository{
		cities: cfg.Cities,
		areas:  cfg.Areas,
	}
}

func (r *lookupRepository) ListCities() []string {
	cities := make([]string, len(r.cities))
	copy(cities, r.cities)
	return cities
}

func (r *lookupRepository) ListAreas(city string) []string {
	configured, ok := r.areas[city]
	if !ok {
		return []string{}
	}
	areas := make([]string, len(configured))
	copy(areas, configured)
	return areas
}
