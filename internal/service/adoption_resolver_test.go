// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/pkg/constants"
	"github.com/stretchr/testify/assert"
)

// testCatalog mirrors the shape of the embedded seed: four general entries
// tagged with their platforms plus a handful of breed-specific rescues
func testCatalog() *model.Catalog {
	return &model.Catalog{
		General: []model.Organization{
			{
				Name:        "American Society for the Prevention of Cruelty to Animals (ASPCA)",
				Website:     "https://www.aspca.org/adopt-pet",
				Phone:       "1-800-628-0028",
				Location:    "National (Multiple Locations)",
				Description: "Leading animal welfare organization",
				Platform:    model.PlatformASPCA,
			},
			{
				Name:        "Humane Society of the United States",
				Website:     "https://www.humanesociety.org/adopt",
				Phone:       "1-202-452-1100",
				Location:    "National (Multiple Locations)",
				Description: "Animal welfare organization with local chapters",
				Platform:    model.PlatformHumaneSociety,
			},
			{
				Name:        "Petfinder",
				Website:     "https://www.petfinder.com",
				Phone:       "N/A",
				Location:    "Online Platform",
				Description: "Largest online database of adoptable pets",
				Platform:    model.PlatformPetfinder,
			},
			{
				Name:        "Smallville Rescue Barn",
				Website:     "https://rescuebarn.example.org",
				Phone:       "N/A",
				Location:    "Smallville",
				Description: "Local rescue with no platform affiliation",
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
			"poodle": {
				{
					Name:        "Poodle Rescue of New England",
					Website:     "https://www.poodlerescueofnewengland.org",
					Phone:       "1-617-555-0123",
					Location:    "New England",
					Description: "Rescue organization for Poodles of all sizes",
				},
			},
		},
	}
}

func TestCreateSearchURLs(t *testing.T) {
	tests := []struct {
		name            string
		breed           string
		expectedEncoded string
	}{
		{
			name:            "plain breed name",
			breed:           "poodle",
			expectedEncoded: "poodle",
		},
		{
			name:            "breed name with space",
			breed:           "german shepherd",
			expectedEncoded: "german%20shepherd",
		},
		{
			name:            "breed name with punctuation",
			breed:           "mixed/unknown?",
			expectedEncoded: "mixed%2Funknown%3F",
		},
		{
			name:            "empty breed name",
			breed:           "",
			expectedEncoded: "",
		},
	}

	resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			urls := resolver.CreateSearchURLs(tc.breed)

			assert.Len(t, urls, len(model.Platforms()))
			for _, platform := range model.Platforms() {
				url, ok := urls[platform]
				assert.True(t, ok, "missing platform %s", platform)
				assert.NotEmpty(t, url)
				assert.Contains(t, url, "breed="+tc.expectedEncoded)
			}
		})
	}
}

func TestCreateSearchURLsDeterministic(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

	first := resolver.CreateSearchURLs("golden retriever")
	second := resolver.CreateSearchURLs("golden retriever")

	assert.Equal(t, first, second)
}

func TestCreateSearchURLsPetfinderAlwaysPresent(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

	for _, breed := range []string{"poodle", "", "   ", "no such breed"} {
		urls := resolver.CreateSearchURLs(breed)
		assert.NotEmpty(t, urls[model.PlatformPetfinder])
	}
}

func TestResolveCenters(t *testing.T) {
	tests := []struct {
		name               string
		breed              string
		expectedFirstName  string
		expectBreedEntries bool
	}{
		{
			name:               "known breed with space normalization",
			breed:              "German Shepherd",
			expectedFirstName:  "German Shepherd Rescue of Orange County",
			expectBreedEntries: true,
		},
		{
			name:               "known breed with underscore key",
			breed:              "german_shepherd",
			expectedFirstName:  "German Shepherd Rescue of Orange County",
			expectBreedEntries: true,
		},
		{
			name:               "known breed with mixed case",
			breed:              "Poodle",
			expectedFirstName:  "Poodle Rescue of New England",
			expectBreedEntries: true,
		},
		{
			name:               "unknown breed falls back to general entries",
			breed:              "basenji",
			expectBreedEntries: false,
		},
		{
			name:               "empty breed falls back to general entries",
			breed:              "",
			expectBreedEntries: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

			result, err := resolver.ResolveCenters(context.Background(), tc.breed)
			assert.NoError(t, err)
			assert.NotNil(t, result)

			assert.Equal(t, tc.breed, result.Breed)
			assert.NotEmpty(t, result.Centers)
			assert.LessOrEqual(t, len(result.Centers), constants.MaxResolvedCenters)
			assert.Len(t, result.SearchURLs, len(model.Platforms()))

			for _, center := range result.Centers {
				assert.NotEmpty(t, center.DirectSearchURL)
				assert.True(t, center.SearchAvailable)
			}

			if tc.expectBreedEntries {
				// Ranked selection puts breed-specific rescues first
				assert.Equal(t, tc.expectedFirstName, result.Centers[0].Name)
			}
		})
	}
}

func TestResolveCentersBoundWithoutBreedEntries(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

	result, err := resolver.ResolveCenters(context.Background(), "basenji")
	assert.NoError(t, err)

	// 4 general + 2 additional platforms, truncated at the cap
	assert.Len(t, result.Centers, constants.MaxResolvedCenters)
}

func TestMergeCandidates(t *testing.T) {
	tests := []struct {
		name          string
		breed         string
		expectedCount int
		containsName  string
	}{
		{
			name:          "german shepherd includes dedicated rescue",
			breed:         "german shepherd",
			expectedCount: 1 + 4 + 2,
			containsName:  "German Shepherd Rescue of Orange County",
		},
		{
			name:          "unknown breed yields general plus platforms",
			breed:         "basenji",
			expectedCount: 4 + 2,
			containsName:  "PetSmart Charities",
		},
		{
			name:          "empty breed yields general plus platforms",
			breed:         "",
			expectedCount: 4 + 2,
			containsName:  "Rescue Me",
		},
	}

	catalog := testCatalog()
	resolver := &adoptionResolver{catalog: catalog, policy: SelectionRanked}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			searchURLs := resolver.CreateSearchURLs(tc.breed)
			candidates := resolver.mergeCandidates(tc.breed, searchURLs)

			assert.Len(t, candidates, tc.expectedCount)

			names := make([]string, 0, len(candidates))
			for _, candidate := range candidates {
				names = append(names, candidate.Name)
				assert.NotEmpty(t, candidate.DirectSearchURL)
			}
			assert.Contains(t, names, tc.containsName)
		})
	}
}

func TestMergeCandidatesAnnotation(t *testing.T) {
	catalog := testCatalog()
	resolver := &adoptionResolver{catalog: catalog, policy: SelectionRanked}

	searchURLs := resolver.CreateSearchURLs("poodle")
	candidates := resolver.mergeCandidates("poodle", searchURLs)

	byName := make(map[string]model.EnrichedOrganization, len(candidates))
	for _, candidate := range candidates {
		byName[candidate.Name] = candidate
	}

	// Breed-specific entries use the primary platform search
	assert.Equal(t, searchURLs[model.PlatformPetfinder], byName["Poodle Rescue of New England"].DirectSearchURL)

	// Platform-tagged general entries use their platform's breed search
	assert.Equal(t, searchURLs[model.PlatformASPCA], byName["American Society for the Prevention of Cruelty to Animals (ASPCA)"].DirectSearchURL)
	assert.Equal(t, searchURLs[model.PlatformHumaneSociety], byName["Humane Society of the United States"].DirectSearchURL)
	assert.Equal(t, searchURLs[model.PlatformPetfinder], byName["Petfinder"].DirectSearchURL)

	// Untagged entries fall back to their own website
	assert.Equal(t, "https://rescuebarn.example.org", byName["Smallville Rescue Barn"].DirectSearchURL)

	// Additional platforms use their own breed search
	assert.Equal(t, searchURLs[model.PlatformPetSmartCharities], byName["PetSmart Charities"].DirectSearchURL)
	assert.Equal(t, searchURLs[model.PlatformRescueMe], byName["Rescue Me"].DirectSearchURL)
}

func TestResolveCentersRankedIsDeterministic(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), SelectionRanked)

	first, err := resolver.ResolveCenters(context.Background(), "poodle")
	assert.NoError(t, err)
	second, err := resolver.ResolveCenters(context.Background(), "poodle")
	assert.NoError(t, err)

	assert.Equal(t, first.Centers, second.Centers)
}

func TestResolveCentersShufflePolicy(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), SelectionShuffle)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		result, err := resolver.ResolveCenters(context.Background(), "german shepherd")
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(result.Centers), constants.MaxResolvedCenters)
		assert.NotEmpty(t, result.Centers)

		for _, center := range result.Centers {
			assert.NotEmpty(t, center.DirectSearchURL)
			seen[center.Name] = true
		}
	}

	// Over repeated shuffles the selection should cover more organizations
	// than a single truncated result can hold
	assert.Greater(t, len(seen), constants.MaxResolvedCenters)
}

func TestListAllCenters(t *testing.T) {
	catalog := testCatalog()
	resolver := NewAdoptionResolver(catalog, SelectionRanked)

	summary, err := resolver.ListAllCenters(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, summary)

	assert.Equal(t, catalog.General, summary.GeneralCenters)
	assert.Equal(t, []string{"german_shepherd", "poodle"}, summary.BreedSpecificKeys)
	assert.Equal(t, 4+2, summary.TotalCount)

	expectedTotal := len(catalog.General)
	for _, entries := range catalog.BreedSpecific {
		expectedTotal += len(entries)
	}
	assert.Equal(t, expectedTotal, summary.TotalCount)
}

func TestNewAdoptionResolverDefaultsPolicy(t *testing.T) {
	resolver := NewAdoptionResolver(testCatalog(), "")

	impl, ok := resolver.(*adoptionResolver)
	assert.True(t, ok)
	assert.Equal(t, SelectionRanked, impl.policy)
}
