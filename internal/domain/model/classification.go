// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package model

// Classification is the outcome of an external breed classification call
type Classification struct {
	// Breed is the predicted breed name
	Breed string `json:"breed"`
	// Confidence is the model's confidence for the prediction, in [0, 1]
	Confidence float64 `json:"confidence"`
}
