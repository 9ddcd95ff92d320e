// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/pawadopt/adoption-service/internal/domain/port"
	"github.com/pawadopt/adoption-service/internal/infrastructure/catalog"
	"github.com/pawadopt/adoption-service/internal/infrastructure/classifier"
	"github.com/pawadopt/adoption-service/internal/infrastructure/mock"
	usecase "github.com/pawadopt/adoption-service/internal/service"
)

// CatalogImpl injects the catalog loader implementation
func CatalogImpl(ctx context.Context) port.CatalogLoader {

	// Catalog source implementation configuration
	catalogSource := os.Getenv("CATALOG_SOURCE")
	if catalogSource == "" {
		catalogSource = "embedded"
	}

	switch catalogSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock catalog loader")
		return mock.NewMockCatalogLoader()

	case "embedded", "file":
		catalogFile := os.Getenv("CATALOG_FILE")
		if catalogSource == "file" && catalogFile == "" {
			log.Fatalf("CATALOG_FILE is required when CATALOG_SOURCE is file")
		}

		slog.InfoContext(ctx, "initializing catalog loader",
			"source", catalogSource,
			"file", catalogFile,
		)
		return catalog.NewLoader(catalogFile)

	default:
		log.Fatalf("unsupported catalog implementation: %s", catalogSource)
		return nil
	}
}

// ClassifierImpl injects the breed classifier implementation
func ClassifierImpl(ctx context.Context) port.BreedClassifier {

	var (
		breedClassifier port.BreedClassifier
		err             error
	)

	// Classifier source implementation configuration
	classifierSource := os.Getenv("CLASSIFIER_SOURCE")
	if classifierSource == "" {
		classifierSource = "remote"
	}

	switch classifierSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock breed classifier")
		breedClassifier = mock.NewMockBreedClassifier()

	case "remote":
		classifierURL := os.Getenv("CLASSIFIER_URL")
		if classifierURL == "" {
			classifierURL = "http://localhost:8000"
		}

		classifierPath := os.Getenv("CLASSIFIER_PATH")
		classifierTimeout := os.Getenv("CLASSIFIER_TIMEOUT")

		classifierMaxRetries := os.Getenv("CLASSIFIER_MAX_RETRIES")
		classifierMaxRetriesInt := 2 // default
		if classifierMaxRetries != "" {
			classifierMaxRetriesInt, err = strconv.Atoi(classifierMaxRetries)
			if err != nil {
				log.Fatalf("invalid classifier max retries value %s: %v", classifierMaxRetries, err)
			}
		}

		classifierRetryDelay := os.Getenv("CLASSIFIER_RETRY_DELAY")

		classifierConfig, err := classifier.NewConfig(classifierURL,
			classifierPath,
			classifierTimeout,
			classifierMaxRetriesInt,
			classifierRetryDelay,
		)
		if err != nil {
			log.Fatalf("failed to create classifier configuration: %v", err)
		}

		slog.InfoContext(ctx, "initializing remote breed classifier",
			"base_url", classifierConfig.BaseURL,
			"timeout", classifierConfig.Timeout,
			"max_retries", classifierConfig.MaxRetries,
		)

		breedClassifier, err = classifier.NewBreedClassifier(ctx, classifierConfig)
		if err != nil {
			log.Fatalf("failed to initialize remote breed classifier: %v", err)
		}

	default:
		log.Fatalf("unsupported classifier implementation: %s", classifierSource)
	}

	return breedClassifier
}

// SelectionPolicyImpl resolves the adoption center selection policy from the
// environment
func SelectionPolicyImpl(ctx context.Context) usecase.SelectionPolicy {

	policy := os.Getenv("SELECTION_POLICY")
	if policy == "" {
		policy = string(usecase.SelectionRanked)
	}

	switch usecase.SelectionPolicy(policy) {
	case usecase.SelectionRanked, usecase.SelectionShuffle:
		slog.InfoContext(ctx, "using selection policy", "policy", policy)
		return usecase.SelectionPolicy(policy)

	default:
		log.Fatalf("unsupported selection policy: %s", policy)
		return ""
	}
}
