package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/patriot-thanks/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("https://api.example.com")

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 250 * time.Millisecond},
		{2, 500 * time.Millisecond},
		{3, 1000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "search", r.URL.Query().Get("operation"))
		assert.Equal(t, "Olive Garden", r.URL.Query().Get("businessName"))
		assert.Equal(t, "Fayetteville", r.URL.Query().Get("city"))
		assert.Equal(t, "NC", r.URL.Query().Get("state"))
		assert.Empty(t, r.URL.Query().Get("zip"))

		response := searchResponse{
			Results: []domain.BusinessRecord{
				{ID: "b1", Name: "Olive Garden Restaurant", City: "Fayetteville", State: "NC"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.Search(context.Background(), domain.DirectoryQuery{
		BusinessName: "Olive Garden",
		City:         "Fayetteville",
		State:        "NC",
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0].ID)
	assert.Equal(t, "Olive Garden Restaurant", records[0].Name)
}

func TestSearch_PlaceIDLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ChIJabc", r.URL.Query().Get("google_place_id"))
		json.NewEncoder(w).Encode(searchResponse{
			Results: []domain.BusinessRecord{{ID: "b1", ExternalPlaceID: "ChIJabc"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.Search(context.Background(), domain.DirectoryQuery{ExternalPlaceID: "ChIJabc"})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ChIJabc", records[0].ExternalPlaceID)
}

func TestSearch_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{Results: []domain.BusinessRecord{}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.Search(context.Background(), domain.DirectoryQuery{BusinessName: "Nothing Here"})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch_ClientErrorNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), domain.DirectoryQuery{BusinessName: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLookupFailed))
	assert.Equal(t, 1, calls)
}

func TestSearch_ServerErrorRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(searchResponse{
			Results: []domain.BusinessRecord{{ID: "b1"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.Search(context.Background(), domain.DirectoryQuery{BusinessName: "x"})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, records, 1)
}

func TestSearch_AllRetriesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), domain.DirectoryQuery{BusinessName: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLookupFailed))
}

func TestSearch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), domain.DirectoryQuery{BusinessName: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestSearch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.Search(ctx, domain.DirectoryQuery{BusinessName: "x"})

	require.Error(t, err)
}
