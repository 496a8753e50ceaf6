package domain

// ExternalPlace represents a point of interest returned by the mapping
// provider. Places are ephemeral: they exist for one duplicate-check/display
// cycle and are never persisted or mutated by this service.
type ExternalPlace struct {
	ExternalID       string `json:"externalId"`
	DisplayName      string `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`
	Location         LatLng `json:"location"`

	// Flattened from the provider's structured address components.
	City       string `json:"city,omitempty"`
	StateCode  string `json:"stateCode,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Provenance classifies where a displayed result originated and how much
// weight the user should give it.
type Provenance string

const (
	// ProvenancePrimary marks a database record whose name matches the
	// active business-name query.
	ProvenancePrimary Provenance = "primary"

	// ProvenanceNearbyDatabase marks a database record returned for the
	// searched area without a name match.
	ProvenanceNearbyDatabase Provenance = "nearbyDatabase"

	// ProvenanceChain marks a database record belonging to a chain.
	ProvenanceChain Provenance = "chain"

	// ProvenanceExternalUnlisted marks a result synthesized from a mapping
	// provider place that has no matching database record.
	ProvenanceExternalUnlisted Provenance = "externalUnlisted"
)

// IsValid reports whether p is one of the four known categories.
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenancePrimary, ProvenanceNearbyDatabase, ProvenanceChain, ProvenanceExternalUnlisted:
		return true
	}
	return false
}

// MatchReason describes which rule decided that an external place and a
// directory record denote the same business.
type MatchReason string

const (
	MatchReasonPlaceID        MatchReason = "placeId"
	MatchReasonNameAndAddress MatchReason = "nameAndAddress"
	MatchReasonNameAndPhone   MatchReason = "nameAndPhone"
	MatchReasonNone           MatchReason = "none"
)

// ReconciledResult is one annotated entry in a search response. Exactly one
// of Record or Place is set.
type ReconciledResult struct {
	Record     *BusinessRecord `json:"record,omitempty"`
	Place      *ExternalPlace  `json:"place,omitempty"`
	Provenance Provenance      `json:"provenance"`

	// DuplicateOfID is set when Place was matched to an existing record.
	// A result with this set is never classified externalUnlisted; it is
	// presented as the matched record instead.
	DuplicateOfID string `json:"duplicateOfInternalId,omitempty"`
}

// AddBusinessPrefill carries the fields used to prefill the add-business form
// when a clicked place has no duplicate in the directory.
type AddBusinessPrefill struct {
	Name            string  `json:"name"`
	Address1        string  `json:"address1"`
	City            string  `json:"city,omitempty"`
	State           string  `json:"state,omitempty"`
	ZipCode         string  `json:"zipCode,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Website         string  `json:"website,omitempty"`
	ExternalPlaceID string  `json:"externalPlaceId"`
	Coordinates     *LatLng `json:"coordinates,omitempty"`
}

// DuplicateCheckResult is the outcome of checking one clicked place against
// the directory.
type DuplicateCheckResult struct {
	Found   bool                `json:"found"`
	Reason  MatchReason         `json:"reason"`
	Record  *BusinessRecord     `json:"record,omitempty"`
	Prefill *AddBusinessPrefill `json:"prefill,omitempty"`
}
