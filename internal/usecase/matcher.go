package usecase

import (
	"log"
	"strings"

	"github.com/patriot-thanks/backend/internal/domain"
)

// MatcherConfig holds configuration for the matcher
type MatcherConfig struct {
	EnableDebugLogging bool
}

// Matcher decides whether an external place and a directory record denote
// the same real-world business.
type Matcher struct {
	enableDebugLogging bool
}

// NewMatcher creates a new matcher with the given configuration
func NewMatcher(config MatcherConfig) *Matcher {
	return &Matcher{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match runs the tiered comparison rules in strict priority order; the
// first satisfied rule wins and short-circuits the rest:
//
//  1. Both sides carry a non-empty external place ID and they are equal.
//  2. Normalized names are equal and either normalized street address
//     contains the other (tolerates one side being the more specific string).
//  3. Normalized names are equal and normalized phones are non-empty and equal.
//
// Place-ID equality dominates because the provider guarantees ID uniqueness.
// The name-based tiers exist for manually entered records that never got a
// place ID; name alone is never sufficient, so it is corroborated by address
// or phone to avoid false positives on common names.
func (m *Matcher) Match(place *domain.ExternalPlace, record *domain.BusinessRecord) (bool, domain.MatchReason) {
	if place == nil || record == nil {
		return false, domain.MatchReasonNone
	}

	if place.ExternalID != "" && place.ExternalID == record.ExternalPlaceID {
		m.debugf("[MATCH] %q == record %s via place ID %s", place.DisplayName, record.ID, place.ExternalID)
		return true, domain.MatchReasonPlaceID
	}

	placeName := normalizeName(place.DisplayName)
	recordName := normalizeName(record.Name)

	// A blank name would normalize-equal another blank name; never treat
	// that as a match.
	if placeName == "" || placeName != recordName {
		return false, domain.MatchReasonNone
	}

	placeAddr := normalizeAddressPrefix(place.FormattedAddress)
	recordAddr := normalizeAddressPrefix(record.Address1)
	if placeAddr != "" && recordAddr != "" &&
		(strings.Contains(recordAddr, placeAddr) || strings.Contains(placeAddr, recordAddr)) {
		m.debugf("[MATCH] %q == record %s via name+address (%q ~ %q)", place.DisplayName, record.ID, placeAddr, recordAddr)
		return true, domain.MatchReasonNameAndAddress
	}

	placePhone := normalizePhone(place.PhoneNumber)
	recordPhone := normalizePhone(record.Phone)
	if placePhone != "" && placePhone == recordPhone {
		m.debugf("[MATCH] %q == record %s via name+phone %s", place.DisplayName, record.ID, placePhone)
		return true, domain.MatchReasonNameAndPhone
	}

	return false, domain.MatchReasonNone
}

func (m *Matcher) debugf(format string, args ...interface{}) {
	if m.enableDebugLogging {
		log.Printf(format, args...)
	}
}
