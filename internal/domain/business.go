package domain

// LatLng is a latitude/longitude pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Incentive represents a discount offered by a business to an eligible group
type Incentive struct {
	ID          string `json:"id"`
	Eligibility string `json:"eligibility"` // e.g. "veteran", "active-duty", "first-responder"
	Description string `json:"description"`
	Discount    string `json:"discount,omitempty"`
}

// BusinessRecord represents a business listed in the Patriot Thanks directory.
// Records are owned by the directory backend; this service treats them as
// read-only input.
type BusinessRecord struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Address1        string      `json:"address1"`
	Address2        string      `json:"address2,omitempty"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	ZipCode         string      `json:"zipCode"`
	Phone           string      `json:"phone,omitempty"`
	ChainID         string      `json:"chainId,omitempty"`
	ExternalPlaceID string      `json:"externalPlaceId,omitempty"`
	Coordinates     *LatLng     `json:"coordinates,omitempty"`
	Incentives      []Incentive `json:"incentives,omitempty"`

	// ExternallySourced is true only for records synthesized from an
	// ExternalPlace for display. It never appears on records returned by
	// the directory API.
	ExternallySourced bool `json:"externallySourced,omitempty"`
}

// HasIncentives reports whether the record carries at least one incentive.
func (b *BusinessRecord) HasIncentives() bool {
	return len(b.Incentives) > 0
}

// SearchRequest represents a business search as entered by the user.
// Location is the combined free-text address/city-state/zip field.
type SearchRequest struct {
	BusinessName string `json:"businessName,omitempty" form:"businessName"`
	Location     string `json:"location,omitempty" form:"location"`
	Category     string `json:"category,omitempty" form:"category"`
	ServiceType  string `json:"serviceType,omitempty" form:"serviceType"`
}

// DirectoryQuery holds the discrete parameters sent to the directory search
// API after the combined location field has been parsed.
type DirectoryQuery struct {
	BusinessName    string
	Address         string
	City            string
	State           string
	Zip             string
	Category        string
	ServiceType     string
	ExternalPlaceID string
}

// IsEmpty reports whether no search parameter is set at all.
func (q DirectoryQuery) IsEmpty() bool {
	return q == DirectoryQuery{}
}
