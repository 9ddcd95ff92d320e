// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package constants

const (

	// MaxResolvedCenters caps the number of adoption centers returned per resolution
	MaxResolvedCenters = 5
)
