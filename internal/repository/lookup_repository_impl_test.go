package repository

import (
	"testing"

	"go-registration-portal/config"

	"github.com/stretchr/testify/assert"
)

func TestLookupRepository_ListCities(t *testing.T) {
	repo := NewLookupRepository(config.DefaultLookup())

	cities := repo.ListCities()
	assert.Equal(t, []string{"Coimbatore", "Chennai", "Madurai"}, cities)

	// Mutating the returned slice must not affect the store.
	cities[0] = "mutated"
	assert.Equal(t, "Coimbatore", repo.ListCities()[0])
}

func TestLookupRepository_ListAreas(t *testing.T) {
	repo := NewLookupRepository(config.DefaultLookup())

	tests := []struct {
		name     string
		city     string
		expected []string
	}{
		{
			name:     "known city",
			city:     "Chennai",
			expected: []string{"Anna Nagar", "T. Nagar", "Mylapore"},
		},
		{
			name:     "another known city",
			city:     "Coimbatore",
			expected: []string{"Gandhipuram", "Peelamedu", "RS Puram"},
		},
		{
			name:     "unknown city returns empty list",
			city:     "Atlantis",
			expected: []string{},
		},
		{
			name:     "lookup is case sensitive",
			city:     "chennai",
			expected: []string{},
		},
		{
			name:     "empty input",
			city:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas := repo.ListAreas(tt.city)
			assert.NotNil(t, areas)
			assert.Equal(t, tt.expected, areas)
		})
	}
}
