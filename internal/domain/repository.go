package domain

import (
	"context"
	"time"
)

// DirectoryClient defines the interface for the internal business-search
// REST API. The backend owns the data; this service only queries it.
type DirectoryClient interface {
	Search(ctx context.Context, query DirectoryQuery) ([]BusinessRecord, error)
}

// PlacesClient defines the interface for the mapping provider's
// place-details API. Injected rather than reached through provider globals
// so the reconciler stays independent of any one provider's setup.
type PlacesClient interface {
	GetPlaceDetails(ctx context.Context, placeID string) (*ExternalPlace, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
