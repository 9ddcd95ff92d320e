// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/pawadopt/adoption-service/internal/domain/model"
	usecase "github.com/pawadopt/adoption-service/internal/service"
	"github.com/pawadopt/adoption-service/pkg/errors"
)

const (
	// maxUploadBytes bounds the accepted image upload size
	maxUploadBytes = 10 << 20

	// defaultPetfinderURL is the redirect fallback when no breed search URL
	// is available
	defaultPetfinderURL = "https://www.petfinder.com"
)

// AdoptionAPI exposes the adoption resolution and breed classification
// services over HTTP
type AdoptionAPI struct {
	resolver       usecase.AdoptionResolver
	classification usecase.BreedClassifier
}

// NewAdoptionAPI creates the HTTP API over the provided services
func NewAdoptionAPI(resolver usecase.AdoptionResolver, classification usecase.BreedClassifier) *AdoptionAPI {
	return &AdoptionAPI{
		resolver:       resolver,
		classification: classification,
	}
}

// Routes registers every endpoint on the given router
func (a *AdoptionAPI) Routes(r chi.Router) {
	r.Post("/predict", a.Predict)
	r.Get("/adoption-centers", a.ListCenters)
	r.Get("/adoption-centers/{breed}", a.CentersByBreed)
	r.Get("/search-urls/{breed}", a.SearchURLs)
	r.Get("/redirect/{breed}", a.Redirect)
	r.Get("/livez", a.Livez)
	r.Get("/readyz", a.Readyz)
}

// Predict accepts an uploaded dog image, classifies the breed via the
// external classifier and returns adoption centers for the result
func (a *AdoptionAPI) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, errors.NewValidation("no file uploaded", err))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(ctx, w, errors.NewValidation("no file selected"))
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, errors.NewUnexpected("failed to read uploaded file", err))
		return
	}

	slog.DebugContext(ctx, "adoptionAPI.predict",
		"filename", header.Filename,
		"image_bytes", len(image),
	)

	classification, err := a.classification.ClassifyImage(ctx, image, header.Filename)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := a.resolver.ResolveCenters(ctx, classification.Breed)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, classificationToResponse(classification, result))
}

// breedParam extracts and unescapes the breed path segment
func breedParam(r *http.Request) string {
	breed := chi.URLParam(r, "breed")
	if unescaped, err := url.PathUnescape(breed); err == nil {
		return unescaped
	}
	return breed
}

// CentersByBreed returns adoption centers and search URLs for a breed
func (a *AdoptionAPI) CentersByBreed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	breed := breedParam(r)

	slog.DebugContext(ctx, "adoptionAPI.adoption-centers",
		"breed", breed,
	)

	result, err := a.resolver.ResolveCenters(ctx, breed)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resolveResultToResponse(result))
}

// ListCenters returns the full catalog summary
func (a *AdoptionAPI) ListCenters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := a.resolver.ListAllCenters(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, catalogSummaryToResponse(summary))
}

// SearchURLs returns the per-platform search URL set for a breed
func (a *AdoptionAPI) SearchURLs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	breed := breedParam(r)

	slog.DebugContext(ctx, "adoptionAPI.search-urls",
		"breed", breed,
	)

	writeJSON(ctx, w, http.StatusOK, searchURLsResponse{
		Breed:      breed,
		SearchURLs: a.resolver.CreateSearchURLs(breed),
		Message:    fmt.Sprintf("Direct search URLs for %s dogs", breed),
	})
}

// Redirect sends the client to the Petfinder search pre-filtered for the
// breed
func (a *AdoptionAPI) Redirect(w http.ResponseWriter, r *http.Request) {
	breed := breedParam(r)

	target := a.resolver.CreateSearchURLs(breed)[model.PlatformPetfinder]
	if target == "" {
		target = defaultPetfinderURL
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// Livez reports process liveness
func (a *AdoptionAPI) Livez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Readyz reports readiness of the service and its classifier dependency
func (a *AdoptionAPI) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := a.classification.IsReady(ctx); err != nil {
		writeError(ctx, w, errors.NewServiceUnavailable("classifier not ready", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
