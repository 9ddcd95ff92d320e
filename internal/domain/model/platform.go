// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package model

// Platform identifies an external pet adoption search platform
type Platform string

const (
	PlatformPetfinder         Platform = "petfinder"
	PlatformAdoptAPet         Platform = "adoptapet"
	PlatformASPCA             Platform = "aspca"
	PlatformHumaneSociety     Platform = "humane_society"
	PlatformPetSmartCharities Platform = "petsmart_charities"
	PlatformRescueMe          Platform = "rescue_me"
	PlatformAKCRescue         Platform = "akc_rescue"
)

// Platforms lists every known platform in a stable order
func Platforms() []Platform {
	return []Platform{
		PlatformPetfinder,
		PlatformAdoptAPet,
		PlatformASPCA,
		PlatformHumaneSociety,
		PlatformPetSmartCharities,
		PlatformRescueMe,
		PlatformAKCRescue,
	}
}

// SearchURLSet maps each platform to a fully formed, breed-filtered search
// URL. Derived deterministically from a breed name.
type SearchURLSet map[Platform]string
