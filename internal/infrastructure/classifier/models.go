// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package classifier

// classifyResponse is the wire format returned by the breed classification
// service. The service reports its best prediction at the top level and may
// include the ranked prediction list.
type classifyResponse struct {
	Breed       string       `json:"breed"`
	Confidence  float64      `json:"confidence"`
	Predictions []prediction `json:"top_predictions,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// prediction is a single entry of the ranked prediction list
type prediction struct {
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
}
