// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"

	"github.com/pawadopt/adoption-service/internal/domain/model"
)

// MockCatalogLoader is a mock implementation of CatalogLoader for testing
// This demonstrates how the clean architecture allows easy swapping of
// implementations
type MockCatalogLoader struct {
	Catalog *model.Catalog
	Err     error
}

// NewMockCatalogLoader creates a new mock loader with a small sample catalog
func NewMockCatalogLoader() *MockCatalogLoader {
	return &MockCatalogLoader{
		Catalog: &model.Catalog{
			General: []model.Organization{
				{
					Name:        "Petfinder",
					Website:     "https://www.petfinder.com",
					Phone:       "N/A",
					Location:    "Online Platform",
					Description: "Largest online database of adoptable pets",
					Platform:    model.PlatformPetfinder,
				},
				{
					Name:        "City Animal Shelter",
					Website:     "https://shelter.example.org",
					Phone:       "1-555-0100",
					Location:    "Springfield",
					Description: "Municipal shelter with walk-in adoptions",
				},
			},
			BreedSpecific: map[string][]model.Organization{
				"german_shepherd": {
					{
						Name:        "German Shepherd Rescue of Orange County",
						Website:     "https://www.gsroc.org",
						Phone:       "1-714-974-7762",
						Location:    "Orange County, CA",
						Description: "Specialized rescue for German Shepherds",
					},
				},
			},
		},
	}
}

// Load implements the CatalogLoader interface with mock data
func (m *MockCatalogLoader) Load(ctx context.Context) (*model.Catalog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Catalog, nil
}
