// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/pawadopt/adoption-service/internal/domain/model"
)

// BreedClassifier defines the behavior for breed classification operations
// This abstraction allows different classifier implementations (remote model
// service, mock, etc.) without the domain layer knowing about specific
// implementations
type BreedClassifier interface {
	// ClassifyImage classifies the dog breed in the provided image bytes
	ClassifyImage(ctx context.Context, image []byte, filename string) (*model.Classification, error)

	// IsReady checks if the classification service is ready
	IsReady(ctx context.Context) error
}
