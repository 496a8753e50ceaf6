package domain

import "errors"

var (
	// ErrLookupFailed is returned when a directory API call fails or
	// returns a non-OK status
	ErrLookupFailed = errors.New("directory lookup failed")

	// ErrNoResults is returned when a directory search matches nothing
	ErrNoResults = errors.New("no businesses found")

	// ErrPlaceIncomplete is returned when a mapping-provider place is
	// missing required fields (display name or location)
	ErrPlaceIncomplete = errors.New("external place is missing required fields")

	// ErrPlaceNotFound is returned when the mapping provider has no place
	// for the requested identifier
	ErrPlaceNotFound = errors.New("place not found")

	// ErrPlacesAPIFailure is returned when the mapping-provider API request fails
	ErrPlacesAPIFailure = errors.New("places API request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
