package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/patriot-thanks/backend/internal/domain"
)

var (
	// Matches a "City, ST" location like "Fayetteville, NC"
	cityStateRegex = regexp.MustCompile(`^([^,]+),\s*([A-Za-z]{2})\.?$`)

	// Matches a 5-digit zip, optionally +4
	zipRegex = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
)

// ReconcilerConfig holds configuration for the reconciler
type ReconcilerConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// Reconciler orchestrates the two user-facing cycles: a search producing a
// classified result list, and a duplicate check deciding whether a clicked
// mapping-provider place is already listed in the directory.
type Reconciler struct {
	directory          domain.DirectoryClient
	places             domain.PlacesClient
	cache              domain.CacheRepository
	matcher            *Matcher
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// SearchOutcome is the annotated result set for one search, plus the
// has-incentive filter view used by the results page. The filter view is a
// display subset, not a reclassification.
type SearchOutcome struct {
	Results        []domain.ReconciledResult `json:"results"`
	WithIncentives []domain.ReconciledResult `json:"withIncentives"`
}

// NewReconciler creates a new reconciler with dependencies
func NewReconciler(
	directory domain.DirectoryClient,
	places domain.PlacesClient,
	cache domain.CacheRepository,
	config ReconcilerConfig,
) *Reconciler {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &Reconciler{
		directory:          directory,
		places:             places,
		cache:              cache,
		matcher:            NewMatcher(MatcherConfig{EnableDebugLogging: config.EnableDebugLogging}),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Search runs one search cycle: parse the combined location field, query the
// directory, and classify every returned record. A failed directory lookup
// degrades to an empty result set rather than an error page.
func (r *Reconciler) Search(ctx context.Context, request *domain.SearchRequest) (*SearchOutcome, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	query := buildDirectoryQuery(request)
	if query.IsEmpty() {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := searchCacheKey(request)
	if cached := r.getCachedOutcome(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	records, err := r.directory.Search(ctx, query)
	if err != nil {
		log.Printf("[RECONCILE] Directory search failed, returning empty results: %v", err)
		return &SearchOutcome{Results: []domain.ReconciledResult{}, WithIncentives: []domain.ReconciledResult{}}, nil
	}

	outcome := r.classifyRecords(records, request.BusinessName)

	if err := r.cache.Set(ctx, cacheKey, outcome, r.cacheTTL); err != nil {
		log.Printf("[RECONCILE] Failed to cache search outcome: %v", err)
	}

	return outcome, nil
}

// classifyRecords builds the annotated result list and the incentive filter
// view from raw directory records.
func (r *Reconciler) classifyRecords(records []domain.BusinessRecord, businessNameQuery string) *SearchOutcome {
	outcome := &SearchOutcome{
		Results:        make([]domain.ReconciledResult, 0, len(records)),
		WithIncentives: []domain.ReconciledResult{},
	}

	for i := range records {
		record := records[i]
		result := domain.ReconciledResult{
			Record:     &record,
			Provenance: Classify(&record, businessNameQuery),
		}
		outcome.Results = append(outcome.Results, result)
		if record.HasIncentives() {
			outcome.WithIncentives = append(outcome.WithIncentives, result)
		}

		if r.enableDebugLogging {
			log.Printf("[RECONCILE] %q classified %s", record.Name, result.Provenance)
		}
	}

	return outcome
}

// CheckDuplicate runs one duplicate-check cycle for a clicked place. The
// lookup prefers the provider place ID and falls back to name+city+state for
// places the directory was queried about before IDs were recorded. Lookup
// failure is treated the same as zero candidates: no duplicate, and the
// caller may offer the add-business prefill.
func (r *Reconciler) CheckDuplicate(ctx context.Context, place *domain.ExternalPlace) (*domain.DuplicateCheckResult, error) {
	if place == nil {
		return nil, domain.ErrInvalidRequest
	}
	if place.DisplayName == "" || (place.Location == domain.LatLng{}) {
		return nil, domain.ErrPlaceIncomplete
	}

	query := domain.DirectoryQuery{ExternalPlaceID: place.ExternalID}
	if place.ExternalID == "" {
		query = domain.DirectoryQuery{
			BusinessName: place.DisplayName,
			City:         place.City,
			State:        place.StateCode,
		}
	}

	candidates, err := r.directory.Search(ctx, query)
	if err != nil {
		// Fail open: the user may still add the business.
		log.Printf("[RECONCILE] Duplicate-check lookup failed for %q, treating as no duplicate: %v", place.DisplayName, err)
		return r.noDuplicate(place), nil
	}

	for i := range candidates {
		if ok, reason := r.matcher.Match(place, &candidates[i]); ok {
			if r.enableDebugLogging {
				log.Printf("[RECONCILE] %q is duplicate of record %s (%s)", place.DisplayName, candidates[i].ID, reason)
			}
			return &domain.DuplicateCheckResult{
				Found:  true,
				Reason: reason,
				Record: &candidates[i],
			}, nil
		}
	}

	return r.noDuplicate(place), nil
}

// ResolvePlace fetches full place details for a bare place ID and validates
// them for the duplicate-check flow.
func (r *Reconciler) ResolvePlace(ctx context.Context, placeID string) (*domain.ExternalPlace, error) {
	if placeID == "" {
		return nil, domain.ErrInvalidRequest
	}

	place, err := r.places.GetPlaceDetails(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("resolve place %s: %w", placeID, err)
	}
	if place.DisplayName == "" || (place.Location == domain.LatLng{}) {
		return nil, domain.ErrPlaceIncomplete
	}

	return place, nil
}

// AsUnlistedResult presents a place with no directory duplicate as a
// displayable result: a synthesized record classified externalUnlisted.
func AsUnlistedResult(place *domain.ExternalPlace) domain.ReconciledResult {
	record := &domain.BusinessRecord{
		Name:              place.DisplayName,
		Address1:          addressStreetPortion(place.FormattedAddress),
		City:              place.City,
		State:             place.StateCode,
		ZipCode:           place.PostalCode,
		Phone:             place.PhoneNumber,
		ExternalPlaceID:   place.ExternalID,
		Coordinates:       &domain.LatLng{Lat: place.Location.Lat, Lng: place.Location.Lng},
		ExternallySourced: true,
	}
	return domain.ReconciledResult{
		Record:     record,
		Place:      place,
		Provenance: Classify(record, ""),
	}
}

func (r *Reconciler) noDuplicate(place *domain.ExternalPlace) *domain.DuplicateCheckResult {
	return &domain.DuplicateCheckResult{
		Found:   false,
		Reason:  domain.MatchReasonNone,
		Prefill: prefillFromPlace(place),
	}
}

// prefillFromPlace maps a place's fields onto the add-business form.
func prefillFromPlace(place *domain.ExternalPlace) *domain.AddBusinessPrefill {
	return &domain.AddBusinessPrefill{
		Name:            place.DisplayName,
		Address1:        addressStreetPortion(place.FormattedAddress),
		City:            place.City,
		State:           place.StateCode,
		ZipCode:         place.PostalCode,
		Phone:           place.PhoneNumber,
		Website:         place.WebsiteURL,
		ExternalPlaceID: place.ExternalID,
		Coordinates:     &domain.LatLng{Lat: place.Location.Lat, Lng: place.Location.Lng},
	}
}

// addressStreetPortion keeps the street part of a formatted address in its
// original casing, for display and form prefill.
func addressStreetPortion(s string) string {
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// buildDirectoryQuery assembles discrete directory parameters from the
// combined user input. A "City, ST" location splits into city/state; a zip
// shape is passed as zip as well; anything else rides through as a generic
// address parameter.
func buildDirectoryQuery(request *domain.SearchRequest) domain.DirectoryQuery {
	query := domain.DirectoryQuery{
		BusinessName: strings.TrimSpace(request.BusinessName),
		Category:     strings.TrimSpace(request.Category),
		ServiceType:  strings.TrimSpace(request.ServiceType),
	}

	location := strings.TrimSpace(request.Location)
	if location == "" {
		return query
	}

	if m := cityStateRegex.FindStringSubmatch(location); m != nil {
		query.City = strings.TrimSpace(m[1])
		query.State = strings.ToUpper(m[2])
		return query
	}

	query.Address = location
	if zipRegex.MatchString(location) {
		query.Zip = location
	}
	return query
}

// searchCacheKey creates a normalized cache key for one search request.
func searchCacheKey(request *domain.SearchRequest) string {
	return fmt.Sprintf("search:%s:%s:%s:%s",
		normalizeName(request.BusinessName),
		normalizeName(request.Location),
		normalizeName(request.Category),
		normalizeName(request.ServiceType),
	)
}

// getCachedOutcome retrieves a search outcome from cache. The memory cache
// stores JSON-shaped values, so the outcome is rehydrated through JSON.
func (r *Reconciler) getCachedOutcome(ctx context.Context, key string) *SearchOutcome {
	value, err := r.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	var outcome SearchOutcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return nil
	}
	return &outcome
}
