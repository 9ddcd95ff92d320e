// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/pkg/errors"
)

//go:embed seed.yaml
var seedCatalog []byte

// Loader implements the port.CatalogLoader interface over a YAML catalog.
// By default the embedded seed is used; Path points at an external file
// overriding it.
type Loader struct {
	// Path is an optional filesystem path to a catalog YAML file
	Path string
}

// Load reads, parses and validates the catalog
func (l *Loader) Load(ctx context.Context) (*model.Catalog, error) {

	data := seedCatalog
	source := "embedded seed"
	if l.Path != "" {
		fileData, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, errors.NewUnexpected("failed to read catalog file", err)
		}
		data = fileData
		source = l.Path
	}

	var catalog model.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.NewUnexpected("failed to parse catalog", err)
	}

	if err := validate(&catalog); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "adoption catalog loaded",
		"source", source,
		"general_count", len(catalog.General),
		"breed_key_count", len(catalog.BreedSpecific),
		"total_count", catalog.TotalCount(),
	)

	return &catalog, nil
}

// validate enforces the catalog invariants: a non-empty general partition,
// normalized breed keys, and complete organization records
func validate(catalog *model.Catalog) error {

	if len(catalog.General) == 0 {
		return errors.NewValidation("catalog has no general organizations")
	}

	for i, org := range catalog.General {
		if err := validateOrganization(org); err != nil {
			return errors.NewValidation(fmt.Sprintf("general entry %d is invalid", i), err)
		}
	}

	for key, entries := range catalog.BreedSpecific {
		if key != model.NormalizeBreedKey(key) {
			return errors.NewValidation(fmt.Sprintf("breed key %q is not normalized", key))
		}
		if len(entries) == 0 {
			return errors.NewValidation(fmt.Sprintf("breed key %q has no entries", key))
		}
		for i, org := range entries {
			if err := validateOrganization(org); err != nil {
				return errors.NewValidation(fmt.Sprintf("entry %d under breed key %q is invalid", i, key), err)
			}
		}
	}

	return nil
}

func validateOrganization(org model.Organization) error {
	if org.Name == "" {
		return fmt.Errorf("organization name is required")
	}
	if org.Website == "" {
		return fmt.Errorf("organization website is required")
	}
	return nil
}

// NewLoader creates a new catalog Loader. An empty path selects the
// embedded seed catalog.
func NewLoader(path string) *Loader {
	return &Loader{
		Path: path,
	}
}
