// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/url"
	"sort"
	"strings"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/pkg/constants"
)

// SelectionPolicy controls how the merged candidate list is reduced to the
// bounded result set
type SelectionPolicy string

const (
	// SelectionRanked keeps candidates in merge order: breed-specific
	// entries first, then general entries in catalog order, then the
	// additional platforms. Identical queries return identical results.
	SelectionRanked SelectionPolicy = "ranked"

	// SelectionShuffle randomizes the candidate list before truncation,
	// matching the behavior of the original system for result variety.
	SelectionShuffle SelectionPolicy = "shuffle"
)

// searchURLTemplates holds one URL template per platform. The single %s verb
// receives the percent-encoded breed name.
var searchURLTemplates = map[model.Platform]string{
	model.PlatformPetfinder:         "https://www.petfinder.com/search/dogs-for-adoption/?breed=%s",
	model.PlatformAdoptAPet:         "https://www.adoptapet.com/s/adoptable-dogs?breed=%s",
	model.PlatformASPCA:             "https://www.aspca.org/adopt-pet?animal=dog&breed=%s",
	model.PlatformHumaneSociety:     "https://www.humanesociety.org/adopt?animal=dog&breed=%s",
	model.PlatformPetSmartCharities: "https://www.petsmartcharities.org/adopt-a-pet?animal=dog&breed=%s",
	model.PlatformRescueMe:          "https://www.rescueme.org/dog?breed=%s",
	model.PlatformAKCRescue:         "https://www.akc.org/rescue-network/?breed=%s",
}

// additionalPlatforms are appended to every resolution after the catalog
// entries, so a query always has candidates even for an unknown breed.
var additionalPlatforms = []model.Organization{
	{
		Name:        "PetSmart Charities",
		Website:     "https://www.petsmartcharities.org",
		Phone:       "1-800-745-2275",
		Location:    "National",
		Description: "PetSmart's charitable foundation with adoption centers",
		Platform:    model.PlatformPetSmartCharities,
	},
	{
		Name:        "Rescue Me",
		Website:     "https://www.rescueme.org",
		Phone:       "N/A",
		Location:    "Online Platform",
		Description: "Direct-to-adopter rescue platform",
		Platform:    model.PlatformRescueMe,
	},
}

// AdoptionResolver defines the interface for adoption center resolution
// operations over the static catalog
type AdoptionResolver interface {
	// ResolveCenters returns a bounded set of adoption centers for the
	// given breed name, each annotated with a direct search URL, plus the
	// full platform search URL set
	ResolveCenters(ctx context.Context, breedName string) (*model.ResolveResult, error)

	// CreateSearchURLs builds breed-filtered search URLs for every known
	// platform. Pure: identical input yields identical output.
	CreateSearchURLs(breedName string) model.SearchURLSet

	// ListAllCenters returns a summary of the full catalog
	ListAllCenters(ctx context.Context) (*model.CatalogSummary, error)
}

// adoptionResolver handles adoption-center resolution over an immutable
// catalog injected at construction time
type adoptionResolver struct {
	catalog *model.Catalog
	policy  SelectionPolicy
}

// ResolveCenters resolves adoption centers for a breed name
func (r *adoptionResolver) ResolveCenters(ctx context.Context, breedName string) (*model.ResolveResult, error) {

	slog.DebugContext(ctx, "starting adoption center resolution",
		"breed", breedName,
		"breed_key", model.NormalizeBreedKey(breedName),
	)

	searchURLs := r.CreateSearchURLs(breedName)
	candidates := r.mergeCandidates(breedName, searchURLs)
	centers := r.selectCenters(candidates)

	slog.DebugContext(ctx, "adoption center resolution completed",
		"breed", breedName,
		"candidate_count", len(candidates),
		"center_count", len(centers),
	)

	return &model.ResolveResult{
		Breed:      breedName,
		Centers:    centers,
		SearchURLs: searchURLs,
	}, nil
}

// CreateSearchURLs builds the per-platform search URL set for a breed name
func (r *adoptionResolver) CreateSearchURLs(breedName string) model.SearchURLSet {
	encoded := encodeBreedQuery(breedName)

	searchURLs := make(model.SearchURLSet, len(searchURLTemplates))
	for platform, template := range searchURLTemplates {
		searchURLs[platform] = fmt.Sprintf(template, encoded)
	}
	return searchURLs
}

// ListAllCenters returns the general list, the known breed-specific keys and
// the total organization count
func (r *adoptionResolver) ListAllCenters(ctx context.Context) (*model.CatalogSummary, error) {

	keys := make([]string, 0, len(r.catalog.BreedSpecific))
	for key := range r.catalog.BreedSpecific {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := &model.CatalogSummary{
		GeneralCenters:    r.catalog.General,
		BreedSpecificKeys: keys,
		TotalCount:        r.catalog.TotalCount(),
	}

	slog.DebugContext(ctx, "catalog summary built",
		"general_count", len(summary.GeneralCenters),
		"breed_key_count", len(summary.BreedSpecificKeys),
		"total_count", summary.TotalCount,
	)

	return summary, nil
}

// mergeCandidates builds the full pre-selection candidate list: breed-specific
// entries, then all general entries, then the additional platforms. Every
// candidate carries a non-empty direct search URL.
func (r *adoptionResolver) mergeCandidates(breedName string, searchURLs model.SearchURLSet) []model.EnrichedOrganization {

	breedEntries := r.catalog.BreedEntries(breedName)

	candidates := make([]model.EnrichedOrganization, 0, len(breedEntries)+len(r.catalog.General)+len(additionalPlatforms))

	// Breed-specific rescues point at the primary platform search
	for _, org := range breedEntries {
		candidates = append(candidates, model.EnrichedOrganization{
			Organization:    org,
			DirectSearchURL: searchURLs[model.PlatformPetfinder],
			SearchAvailable: true,
		})
	}

	for _, org := range r.catalog.General {
		candidates = append(candidates, enrich(org, searchURLs))
	}

	for _, org := range additionalPlatforms {
		candidates = append(candidates, enrich(org, searchURLs))
	}

	return candidates
}

// enrich annotates an organization with its direct search URL. Organizations
// tagged with a known platform get that platform's breed search; anything
// else falls back to its own website.
func enrich(org model.Organization, searchURLs model.SearchURLSet) model.EnrichedOrganization {
	directURL := org.Website
	if searchURL, ok := searchURLs[org.Platform]; ok && org.Platform != "" {
		directURL = searchURL
	}

	return model.EnrichedOrganization{
		Organization:    org,
		DirectSearchURL: directURL,
		SearchAvailable: true,
	}
}

// selectCenters reduces the candidate list to at most MaxResolvedCenters
// entries according to the configured policy
func (r *adoptionResolver) selectCenters(candidates []model.EnrichedOrganization) []model.EnrichedOrganization {

	selected := candidates
	if r.policy == SelectionShuffle {
		selected = make([]model.EnrichedOrganization, len(candidates))
		copy(selected, candidates)
		rand.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}

	if len(selected) > constants.MaxResolvedCenters {
		selected = selected[:constants.MaxResolvedCenters]
	}
	return selected
}

// encodeBreedQuery percent-encodes a breed name for use as a URL query value
func encodeBreedQuery(breedName string) string {
	return strings.ReplaceAll(url.QueryEscape(breedName), "+", "%20")
}

// NewAdoptionResolver creates a new AdoptionResolver instance over the
// provided immutable catalog
func NewAdoptionResolver(catalog *model.Catalog, policy SelectionPolicy) AdoptionResolver {
	if policy == "" {
		policy = SelectionRanked
	}
	return &adoptionResolver{
		catalog: catalog,
		policy:  policy,
	}
}
