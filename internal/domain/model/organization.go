// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package model

// Organization represents an adoption organization entity
type Organization struct {
	// Organization display name
	Name string `json:"name" yaml:"name"`
	// Organization website URL
	Website string `json:"website" yaml:"website"`
	// Contact phone number, or "N/A" when not available
	Phone string `json:"phone" yaml:"phone"`
	// Free-text location
	Location string `json:"location" yaml:"location"`
	// Free-text description
	Description string `json:"description" yaml:"description"`
	// Platform identifies the external search platform the organization
	// belongs to, when any. Authored in the catalog; empty for plain
	// rescue groups.
	Platform Platform `json:"-" yaml:"platform,omitempty"`
}

// EnrichedOrganization is an Organization annotated with a direct,
// breed-filtered search URL. Built per request, never persisted.
type EnrichedOrganization struct {
	Organization

	// DirectSearchURL points at the platform search pre-filtered for the
	// requested breed, falling back to the organization's own website
	DirectSearchURL string `json:"direct_search_url"`
	// SearchAvailable indicates the direct search URL is usable
	SearchAvailable bool `json:"search_available"`
}

// ResolveResult contains the outcome of an adoption center resolution
type ResolveResult struct {
	// Breed is the breed name as supplied by the caller
	Breed string
	// Centers is the selected set of adoption centers, at most
	// constants.MaxResolvedCenters entries
	Centers []EnrichedOrganization
	// SearchURLs maps every known platform to a breed-filtered search URL
	SearchURLs SearchURLSet
}

// CatalogSummary describes the full catalog without per-breed resolution
type CatalogSummary struct {
	// GeneralCenters is the full general-purpose organization list
	GeneralCenters []Organization
	// BreedSpecificKeys is the sorted set of normalized breed keys with
	// dedicated entries
	BreedSpecificKeys []string
	// TotalCount is the number of organizations across both partitions
	TotalCount int
}
