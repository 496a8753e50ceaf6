package usecase

import (
	"strings"

	"github.com/patriot-thanks/backend/internal/domain"
)

// Classify assigns a provenance category to a directory record under the
// active business-name query. It is total (always exactly one category) and
// pure: it never mutates the record or performs I/O.
//
// Later rules override earlier ones. Source trustworthiness is the strongest
// signal a user needs, then chain grouping, then textual relevance, so
// externally-sourced beats chain, which beats the name-match default.
func Classify(record *domain.BusinessRecord, businessNameQuery string) domain.Provenance {
	provenance := domain.ProvenanceNearbyDatabase

	if query := normalizeName(businessNameQuery); query != "" {
		if strings.Contains(normalizeName(record.Name), query) {
			provenance = domain.ProvenancePrimary
		}
	}

	if record.ChainID != "" {
		provenance = domain.ProvenanceChain
	}

	if record.ExternallySourced {
		provenance = domain.ProvenanceExternalUnlisted
	}

	return provenance
}
