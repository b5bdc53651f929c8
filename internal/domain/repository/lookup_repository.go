package repository

type LookupRepository interface {
	ListCities() []string
	// ListAreas returns the configured areas for an exact city match and an
	// empty list for any unrecognized city. It never fails.
	ListAreas(city string) []string
}
