// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/pkg/errors"
)

// MockBreedClassifier is a mock implementation of BreedClassifier for testing
// and local development. It guesses the breed from keywords in the uploaded
// filename so the full request flow can be exercised without the model
// service.
type MockBreedClassifier struct {
	// Classification overrides the filename heuristic when set
	Classification *model.Classification
	// Err is returned from ClassifyImage when set
	Err error
	// ReadyErr is returned from IsReady when set
	ReadyErr error
}

// filenameBreeds maps filename keywords to breed names for the mock heuristic
var filenameBreeds = []struct {
	keyword string
	breed   string
}{
	{"german", "german shepherd"},
	{"golden", "golden retriever"},
	{"labrador", "labrador retriever"},
	{"lab", "labrador retriever"},
	{"bulldog", "bulldog"},
	{"poodle", "poodle"},
}

// NewMockBreedClassifier creates a new mock classifier
func NewMockBreedClassifier() *MockBreedClassifier {
	return &MockBreedClassifier{}
}

// ClassifyImage implements the BreedClassifier interface with mock behavior
func (m *MockBreedClassifier) ClassifyImage(ctx context.Context, image []byte, filename string) (*model.Classification, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	if len(image) == 0 {
		return nil, errors.NewValidation("image payload is empty")
	}

	if m.Classification != nil {
		return m.Classification, nil
	}

	slog.DebugContext(ctx, "executing mock classification", "filename", filename)

	lower := strings.ToLower(filename)
	for _, entry := range filenameBreeds {
		if strings.Contains(lower, entry.keyword) {
			return &model.Classification{
				Breed:      entry.breed,
				Confidence: 0.92,
			}, nil
		}
	}

	// Default breed when the filename gives no hint
	return &model.Classification{
		Breed:      "golden retriever",
		Confidence: 0.5,
	}, nil
}

// IsReady implements the BreedClassifier interface
func (m *MockBreedClassifier) IsReady(ctx context.Context) error {
	return m.ReadyErr
}
