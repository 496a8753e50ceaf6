package places

import "github.com/patriot-thanks/backend/internal/domain"

// Address component types used to flatten the structured breakdown
const (
	componentLocality   = "locality"
	componentSublocal   = "sublocality"
	componentAdminArea1 = "administrative_area_level_1"
	componentPostalCode = "postal_code"
)

// mapToExternalPlace converts a provider place-details payload to our domain
// ExternalPlace model, flattening address components into city/state/zip.
func mapToExternalPlace(details *placeDetails) *domain.ExternalPlace {
	place := &domain.ExternalPlace{
		ExternalID:       details.ID,
		DisplayName:      details.DisplayName.Text,
		FormattedAddress: details.FormattedAddress,
		PhoneNumber:      details.NationalPhoneNumber,
		WebsiteURL:       details.WebsiteURI,
		Location: domain.LatLng{
			Lat: details.Location.Latitude,
			Lng: details.Location.Longitude,
		},
	}

	for _, component := range details.AddressComponents {
		for _, componentType := range component.Types {
			switch componentType {
			case componentLocality:
				place.City = component.LongText
			case componentSublocal:
				// Fallback for places that carry no locality
				if place.City == "" {
					place.City = component.LongText
				}
			case componentAdminArea1:
				place.StateCode = component.ShortText
			case componentPostalCode:
				place.PostalCode = component.LongText
			}
		}
	}

	return place
}
