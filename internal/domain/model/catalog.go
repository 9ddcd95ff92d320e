// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package model

import "strings"

// Catalog is the process-wide, read-only adoption organization registry.
// It is loaded once at startup and never mutated afterwards, which makes it
// safe to share across concurrent resolutions without locking.
type Catalog struct {
	// General organizations apply to every breed query
	General []Organization `yaml:"general"`
	// BreedSpecific maps a normalized breed key to the organizations
	// dedicated to that breed
	BreedSpecific map[string][]Organization `yaml:"breed_specific"`
}

// NormalizeBreedKey converts a free-text breed name into the catalog lookup
// key: lowercase, with whitespace runs and hyphens collapsed to single
// underscores.
func NormalizeBreedKey(breedName string) string {
	fields := strings.FieldsFunc(strings.ToLower(breedName), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}

// BreedEntries returns the breed-specific organizations for the given breed
// name. A breed without dedicated entries yields an empty slice; that is an
// expected path, not an error.
func (c *Catalog) BreedEntries(breedName string) []Organization {
	return c.BreedSpecific[NormalizeBreedKey(breedName)]
}

// TotalCount returns the number of organizations across both partitions
func (c *Catalog) TotalCount() int {
	total := len(c.General)
	for _, entries := range c.BreedSpecific {
		total += len(entries)
	}
	return total
}
