// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/pawadopt/adoption-service/internal/domain/model"
)

// predictResponse is the response for POST /predict
type predictResponse struct {
	Breed            string                       `json:"breed"`
	Confidence       float64                      `json:"confidence"`
	AdoptionCenters  []model.EnrichedOrganization `json:"adoption_centers"`
	DirectSearchURLs model.SearchURLSet           `json:"direct_search_urls"`
	Message          string                       `json:"message"`
	RedirectInfo     redirectInfo                 `json:"redirect_info"`
}

// redirectInfo lists the primary platform URLs a client can jump to directly
type redirectInfo struct {
	PetfinderURL string `json:"petfinder_url"`
	AdoptapetURL string `json:"adoptapet_url"`
	AspcaURL     string `json:"aspca_url"`
	Note         string `json:"note"`
}

// centersResponse is the response for GET /adoption-centers/{breed}
type centersResponse struct {
	Breed            string                       `json:"breed"`
	AdoptionCenters  []model.EnrichedOrganization `json:"adoption_centers"`
	Count            int                          `json:"count"`
	DirectSearchURLs model.SearchURLSet           `json:"direct_search_urls"`
}

// catalogResponse is the response for GET /adoption-centers
type catalogResponse struct {
	GeneralCenters       []model.Organization `json:"general_centers"`
	BreedSpecificCenters []string             `json:"breed_specific_centers"`
	TotalCount           int                  `json:"total_count"`
}

// searchURLsResponse is the response for GET /search-urls/{breed}
type searchURLsResponse struct {
	Breed      string             `json:"breed"`
	SearchURLs model.SearchURLSet `json:"search_urls"`
	Message    string             `json:"message"`
}

// resolveResultToResponse converts a domain resolution result into the
// centers response
func resolveResultToResponse(result *model.ResolveResult) centersResponse {
	return centersResponse{
		Breed:            result.Breed,
		AdoptionCenters:  result.Centers,
		Count:            len(result.Centers),
		DirectSearchURLs: result.SearchURLs,
	}
}

// classificationToResponse builds the predict response from a classification
// and its resolved adoption centers
func classificationToResponse(classification *model.Classification, result *model.ResolveResult) predictResponse {
	return predictResponse{
		Breed:            classification.Breed,
		Confidence:       classification.Confidence,
		AdoptionCenters:  result.Centers,
		DirectSearchURLs: result.SearchURLs,
		Message:          fmt.Sprintf("Found %d adoption centers for %s dogs", len(result.Centers), classification.Breed),
		RedirectInfo: redirectInfo{
			PetfinderURL: result.SearchURLs[model.PlatformPetfinder],
			AdoptapetURL: result.SearchURLs[model.PlatformAdoptAPet],
			AspcaURL:     result.SearchURLs[model.PlatformASPCA],
			Note:         "Click any URL to search for this breed directly on the adoption website",
		},
	}
}

// catalogSummaryToResponse converts a catalog summary into the catalog
// response
func catalogSummaryToResponse(summary *model.CatalogSummary) catalogResponse {
	return catalogResponse{
		GeneralCenters:       summary.GeneralCenters,
		BreedSpecificCenters: summary.BreedSpecificKeys,
		TotalCount:           summary.TotalCount,
	}
}
