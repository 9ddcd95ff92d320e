// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package classifier

import (
	"context"
	"log/slog"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	"github.com/pawadopt/adoption-service/pkg/errors"
)

// BreedClassifier implements the port.BreedClassifier interface using the
// remote breed classification service
type BreedClassifier struct {
	client *Client
}

// ClassifyImage classifies the dog breed in the image via the remote service
func (b *BreedClassifier) ClassifyImage(ctx context.Context, image []byte, filename string) (*model.Classification, error) {

	slog.DebugContext(ctx, "classifying image via remote service",
		"filename", filename,
		"image_bytes", len(image),
	)

	result, err := b.client.Classify(ctx, image, filename)
	if err != nil {
		slog.ErrorContext(ctx, "remote classification failed", "error", err)
		return nil, err
	}

	classification := convertToDomainModel(result)
	if classification.Breed == "" {
		return nil, errors.NewNotFound("classification service returned no breed")
	}

	slog.DebugContext(ctx, "remote classification completed",
		"breed", classification.Breed,
		"confidence", classification.Confidence,
	)

	return classification, nil
}

// convertToDomainModel maps the wire response to the domain model, preferring
// the top entry of the ranked prediction list when present
func convertToDomainModel(resp *classifyResponse) *model.Classification {
	classification := &model.Classification{
		Breed:      resp.Breed,
		Confidence: resp.Confidence,
	}

	if classification.Breed == "" && len(resp.Predictions) > 0 {
		classification.Breed = resp.Predictions[0].Breed
		classification.Confidence = resp.Predictions[0].Confidence
	}

	return classification
}

// IsReady checks if the remote classification service is ready
func (b *BreedClassifier) IsReady(ctx context.Context) error {
	return b.client.IsReady(ctx)
}

// NewBreedClassifier creates a new remote-service-backed breed classifier
func NewBreedClassifier(ctx context.Context, config Config) (*BreedClassifier, error) {

	client := NewClient(config)

	slog.InfoContext(ctx, "remote breed classifier initialized",
		"base_url", config.BaseURL,
		"classify_path", config.ClassifyPath,
	)

	return &BreedClassifier{
		client: client,
	}, nil
}
