// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pawadopt/adoption-service/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLoadEmbeddedSeed(t *testing.T) {
	loader := NewLoader("")

	catalog, err := loader.Load(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, catalog)

	assert.GreaterOrEqual(t, len(catalog.General), 4)

	for _, key := range []string{"german_shepherd", "golden_retriever", "labrador_retriever", "bulldog", "poodle"} {
		assert.NotEmpty(t, catalog.BreedSpecific[key], "missing breed key %s", key)
	}

	assert.Equal(t, len(catalog.General)+6, catalog.TotalCount())
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError bool
		errorType     interface{}
	}{
		{
			name: "valid catalog",
			content: `general:
  - name: Petfinder
    website: https://www.petfinder.com
    phone: N/A
    location: Online Platform
    description: Adoptable pet database
    platform: petfinder
breed_specific:
  poodle:
    - name: Poodle Rescue
      website: https://poodles.example.org
`,
			expectedError: false,
		},
		{
			name:          "malformed yaml",
			content:       "general: [unclosed",
			expectedError: true,
			errorType:     errors.Unexpected{},
		},
		{
			name: "empty general partition",
			content: `general: []
breed_specific: {}
`,
			expectedError: true,
			errorType:     errors.Validation{},
		},
		{
			name: "non-normalized breed key",
			content: `general:
  - name: Petfinder
    website: https://www.petfinder.com
breed_specific:
  German Shepherd:
    - name: Rescue
      website: https://rescue.example.org
`,
			expectedError: true,
			errorType:     errors.Validation{},
		},
		{
			name: "breed key without entries",
			content: `general:
  - name: Petfinder
    website: https://www.petfinder.com
breed_specific:
  poodle: []
`,
			expectedError: true,
			errorType:     errors.Validation{},
		},
		{
			name: "organization without website",
			content: `general:
  - name: Petfinder
breed_specific: {}
`,
			expectedError: true,
			errorType:     errors.Validation{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			assert.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			loader := NewLoader(path)
			catalog, err := loader.Load(context.Background())

			if tc.expectedError {
				assert.Error(t, err)
				assert.Nil(t, catalog)
				if tc.errorType != nil {
					assert.IsType(t, tc.errorType, err)
				}
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, catalog)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))

	catalog, err := loader.Load(context.Background())
	assert.Error(t, err)
	assert.Nil(t, catalog)
	assert.IsType(t, errors.Unexpected{}, err)
}
