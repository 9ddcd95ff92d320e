// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/internal/domain/port"
	"github.com/pawadopt/adoption-service/pkg/errors"
)

// BreedClassifier defines the interface for breed classification operations
// This abstraction allows different classifier implementations (remote model
// service, mock, etc.) without callers knowing about specific implementations
type BreedClassifier interface {
	// ClassifyImage classifies the dog breed in the provided image bytes
	ClassifyImage(ctx context.Context, image []byte, filename string) (*model.Classification, error)

	// IsReady checks if the classification service is ready
	IsReady(ctx context.Context) error
}

// BreedClassification handles breed classification business operations
// It depends on abstractions (interfaces) rather than concrete implementations
type BreedClassification struct {
	breedClassifier port.BreedClassifier
}

// ClassifyImage performs breed classification with input validation
func (s *BreedClassification) ClassifyImage(ctx context.Context, image []byte, filename string) (*model.Classification, error) {

	if len(image) == 0 {
		return nil, errors.NewValidation("image payload is empty")
	}

	slog.DebugContext(ctx, "starting breed classification",
		"filename", filename,
		"image_bytes", len(image),
	)

	// Delegate to the classifier implementation
	classification, err := s.breedClassifier.ClassifyImage(ctx, image, filename)
	if err != nil {
		slog.ErrorContext(ctx, "breed classification operation failed",
			"error", err,
		)
		return nil, err
	}

	slog.DebugContext(ctx, "breed classification completed",
		"breed", classification.Breed,
		"confidence", classification.Confidence,
	)

	return classification, nil
}

// IsReady checks if the underlying classifier is ready
func (s *BreedClassification) IsReady(ctx context.Context) error {
	if err := s.breedClassifier.IsReady(ctx); err != nil {
		return err
	}

	return nil
}

// NewBreedClassification creates a new BreedClassification instance
func NewBreedClassification(breedClassifier port.BreedClassifier) BreedClassifier {
	return &BreedClassification{
		breedClassifier: breedClassifier,
	}
}
