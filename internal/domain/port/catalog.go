// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/pawadopt/adoption-service/internal/domain/model"
)

// CatalogLoader defines the behavior for loading the adoption organization
// catalog. Loading happens once at startup; a failure is fatal and must
// prevent the service from accepting traffic.
type CatalogLoader interface {
	// Load reads and validates the catalog
	Load(ctx context.Context) (*model.Catalog, error)
}
